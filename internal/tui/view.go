package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/klondike/internal/cards"
	"github.com/jask/klondike/internal/engine"
)

const pileColWidth = 6

func (a App) View() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(a.renderTopRow())
	b.WriteString("\n\n")
	b.WriteString(a.renderTableau())
	b.WriteString("\n")

	if a.cmdOpen {
		b.WriteString("\n")
		b.WriteString(a.renderPalette())
		b.WriteString("\n")
	}
	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(a.renderFullHelp())
		b.WriteString("\n")
	}

	body := b.String()
	statusLine := a.renderStatus()
	footer := a.renderFooter(renderHelp(a.keys.ShortHelp()))
	return a.placeWithFooter(body, statusLine, footer)
}

func (a App) renderHeader() string {
	deal := a.eng.DealID()
	if len(deal) > 8 {
		deal = deal[:8]
	}
	info := a.st.paletteDim.Render(fmt.Sprintf("deal %s  moves %d", deal, *a.moves))
	return " " + a.st.title.Render("Klondike") + "  " + info
}

// renderTopRow shows the deck, the waste top and the four foundations.
func (a App) renderTopRow() string {
	deck := "[  ]"
	if n := a.eng.DeckSize(); n > 0 {
		deck = fmt.Sprintf("[%2d]", n)
	}

	waste := a.st.emptySlot.Render("···")
	if top, err := a.eng.DiscardTop(); err == nil {
		label := a.cardLabel(top)
		if a.sel != nil && a.sel.fromWaste {
			label = a.st.selected.Render(top.String())
		}
		waste = label
	}

	cells := make([]string, 0, cards.SuitCount)
	for _, s := range cards.Suits() {
		if top, err := a.eng.FoundationTop(s); err == nil {
			cells = append(cells, a.cardLabel(top))
		} else {
			cells = append(cells, a.st.emptySlot.Render(s.String()+" ·"))
		}
	}

	return fmt.Sprintf(" Deck %s  Waste %s    %s", deck, padRight(waste, 4), strings.Join(cells, "  "))
}

func (a App) renderTableau() string {
	views := make([][]engine.CardView, engine.PileCount)
	rows := 0
	for i := range views {
		views[i] = a.eng.PileView(engine.PileIndex(i))
		if len(views[i]) > rows {
			rows = len(views[i])
		}
	}

	var b strings.Builder
	for i := 0; i < engine.PileCount; i++ {
		label := fmt.Sprintf(" %d", i+1)
		if engine.PileIndex(i) == a.cursor {
			marker := fmt.Sprintf("▾%d", i+1)
			if a.sel == nil && a.depth > 1 {
				marker = fmt.Sprintf("▾%d×%d", i+1, a.depth)
			}
			label = a.st.cursor.Render(marker)
		}
		b.WriteString(padRight(" "+label, pileColWidth))
	}
	for r := 0; r < rows; r++ {
		b.WriteString("\n")
		for p := 0; p < engine.PileCount; p++ {
			cell := ""
			if r < len(views[p]) {
				cell = a.renderPileCard(views[p][r])
			} else if r == 0 {
				cell = a.st.emptySlot.Render("···")
			}
			b.WriteString(padRight("  "+cell, pileColWidth))
		}
	}
	return b.String()
}

func (a App) renderPileCard(cv engine.CardView) string {
	if !cv.FaceUp {
		return a.st.faceDown.Render("▒▒")
	}
	if a.inSelection(cv.Card) {
		return a.st.selected.Render(cv.Card.String())
	}
	return a.cardLabel(cv.Card)
}

func (a App) cardLabel(c cards.Card) string {
	if c.Color() == cards.Red {
		return a.st.redCard.Render(c.String())
	}
	return a.st.blackCard.Render(c.String())
}

func (a App) renderPalette() string {
	lines := []string{" :" + a.cmdQuery + "█"}
	shown := len(a.cmdMatches)
	if shown > 8 {
		shown = 8
	}
	for i := 0; i < shown; i++ {
		match := a.cmdMatches[i]
		line := fmt.Sprintf("%s — %s", match.cmd.label, match.cmd.description)
		switch {
		case i == a.cmdCursor:
			line = a.st.paletteSel.Render("> " + line)
		case !match.enabled:
			line = a.st.paletteDim.Render("  " + line)
		default:
			line = "  " + line
		}
		lines = append(lines, " "+line)
	}
	if shown == 0 {
		lines = append(lines, " "+a.st.paletteDim.Render("  no matching commands"))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderFullHelp() string {
	var rows []string
	for _, group := range a.keys.FullHelp() {
		rows = append(rows, " "+renderHelp(group))
	}
	return strings.Join(rows, "\n")
}

func (a App) renderStatus() string {
	style := a.st.statusBar
	if a.statusErr {
		style = a.st.statusErr
	}
	if a.width == 0 {
		return style.Render(a.status)
	}
	flat := strings.ReplaceAll(a.status, "\n", " ")
	return style.Render(padRight(flat, a.width-2))
}

func (a App) renderFooter(text string) string {
	if a.width == 0 {
		return a.st.footer.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return a.st.footer.Render(padRight(flat, a.width-2))
}

func (a App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
