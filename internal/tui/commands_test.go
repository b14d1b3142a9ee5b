package tui

import "testing"

func TestFuzzyMatchScore(t *testing.T) {
	cases := []struct {
		label   string
		query   string
		matched bool
	}{
		{"New Deal", "nd", true},
		{"New Deal", "deal", true},
		{"New Deal", "NEW DEAL", true},
		{"New Deal", "dn", false},
		{"Draw Card", "z", false},
		{"Draw Card", "", true},
	}
	for _, tc := range cases {
		matched, _ := fuzzyMatchScore(tc.label, tc.query)
		if matched != tc.matched {
			t.Errorf("fuzzyMatchScore(%q, %q) matched = %v, want %v", tc.label, tc.query, matched, tc.matched)
		}
	}
}

func TestFuzzyMatchScorePrefersPrefixAndRuns(t *testing.T) {
	_, prefix := fuzzyMatchScore("draw card", "draw")
	_, scattered := fuzzyMatchScore("send to foundation", "eno")
	if prefix <= scattered {
		t.Errorf("prefix score %d not above scattered score %d", prefix, scattered)
	}
	_, exact := fuzzyMatchScore("quit", "quit")
	_, partial := fuzzyMatchScore("quiet time", "quit")
	if exact <= partial {
		t.Errorf("exact score %d not above partial score %d", exact, partial)
	}
}

func TestSearchCommandsEmptyQueryListsAll(t *testing.T) {
	a := testApp(t)
	matches := searchCommands(a.commands, "", a)
	if len(matches) != len(a.commands) {
		t.Fatalf("matches = %d, want %d", len(matches), len(a.commands))
	}
	for i := 1; i < len(matches); i++ {
		if !matches[i-1].enabled && matches[i].enabled {
			t.Error("disabled command sorted above an enabled one")
		}
	}
}

func TestSearchCommandsRanksQuitFirst(t *testing.T) {
	a := testApp(t)
	matches := searchCommands(a.commands, "quit", a)
	if len(matches) == 0 || matches[0].cmd.id != "app:quit" {
		t.Fatalf("top match for quit = %+v", matches)
	}
}

func TestSearchCommandsDisabledSortLast(t *testing.T) {
	a := testApp(t)
	for !a.eng.DeckEmpty() {
		if err := a.eng.Draw(); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}
	matches := searchCommands(a.commands, "", a)
	last := matches[len(matches)-1]
	if last.enabled {
		t.Fatal("no disabled command at the bottom with an empty deck")
	}
	if last.cmd.id != "game:draw" {
		t.Errorf("last match = %s, want game:draw", last.cmd.id)
	}
	if last.disabledReason == "" {
		t.Error("disabled match has no reason")
	}
}
