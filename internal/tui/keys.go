package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Waste      key.Binding
	Foundation key.Binding
	Draw       key.Binding
	NewDeal    key.Binding
	Palette    key.Binding
	Help       key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pile left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pile right")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "grab more")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "grab fewer")),
		Select:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick up / drop")),
		Waste:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "take waste card")),
		Foundation: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "to foundation")),
		Draw:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
		NewDeal:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new deal")),
		Palette:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Draw, k.Select, k.Foundation, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.Waste, k.Foundation, k.Draw},
		{k.NewDeal, k.Palette, k.Help, k.Cancel, k.Quit},
	}
}
