package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Command palette
// ---------------------------------------------------------------------------

type command struct {
	id          string
	label       string
	description string
	enabled     func(a App) (bool, string)
	execute     func(a App) (App, tea.Cmd, error)
}

type commandMatch struct {
	cmd            command
	score          int
	enabled        bool
	disabledReason string
}

func commandAlwaysEnabled(App) (bool, string) { return true, "" }

func commandList() []command {
	return []command{
		{
			id:          "game:new-deal",
			label:       "New Deal",
			description: "Reshuffle and deal a fresh game",
			enabled:     commandAlwaysEnabled,
			execute: func(a App) (App, tea.Cmd, error) {
				a = a.startNewDeal()
				return a, nil, nil
			},
		},
		{
			id:          "game:draw",
			label:       "Draw Card",
			description: "Draw the top deck card onto the waste pile",
			enabled: func(a App) (bool, string) {
				if a.eng.DeckEmpty() {
					return false, "The deck is empty."
				}
				return true, ""
			},
			execute: func(a App) (App, tea.Cmd, error) {
				a = a.drawCard()
				return a, nil, nil
			},
		},
		{
			id:          "game:foundation",
			label:       "Send to Foundation",
			description: "Move the selected card or waste top to its foundation",
			enabled: func(a App) (bool, string) {
				if a.sel == nil && a.eng.DiscardEmpty() {
					return false, "Nothing is selected and the waste pile is empty."
				}
				return true, ""
			},
			execute: func(a App) (App, tea.Cmd, error) {
				a = a.sendToFoundation()
				return a, nil, nil
			},
		},
		{
			id:          "ui:help",
			label:       "Toggle Help",
			description: "Show or hide the full key reference",
			enabled:     commandAlwaysEnabled,
			execute: func(a App) (App, tea.Cmd, error) {
				a.showHelp = !a.showHelp
				return a, nil, nil
			},
		},
		{
			id:          "app:quit",
			label:       "Quit",
			description: "Exit the game",
			enabled:     commandAlwaysEnabled,
			execute: func(a App) (App, tea.Cmd, error) {
				return a, tea.Quit, nil
			},
		},
	}
}

// searchCommands ranks commands against the query. Fuzzy subsequence
// scoring picks the matches; edit distance to the label breaks score
// ties so the closest-spelled command lists first.
func searchCommands(cmds []command, query string, a App) []commandMatch {
	q := strings.TrimSpace(query)
	out := make([]commandMatch, 0, len(cmds))
	for _, cmd := range cmds {
		matched, score := commandMatchScore(cmd, q)
		if !matched {
			continue
		}
		enabled, reason := cmd.enabled(a)
		out = append(out, commandMatch{cmd: cmd, score: score, enabled: enabled, disabledReason: reason})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].enabled != out[j].enabled {
			return out[i].enabled
		}
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		if q != "" {
			di := levenshtein.ComputeDistance(strings.ToLower(q), strings.ToLower(out[i].cmd.label))
			dj := levenshtein.ComputeDistance(strings.ToLower(q), strings.ToLower(out[j].cmd.label))
			if di != dj {
				return di < dj
			}
		}
		return out[i].cmd.label < out[j].cmd.label
	})
	return out
}

func commandMatchScore(cmd command, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{cmd.label, cmd.id, cmd.description} {
		matched, score := fuzzyMatchScore(field, query)
		if !matched {
			continue
		}
		if strings.EqualFold(field, query) {
			score += 15
		}
		if score > best {
			best = score
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, best
}

// fuzzyMatchScore matches query as a subsequence of label, rewarding
// matches at the start and consecutive runs.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
