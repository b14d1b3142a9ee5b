// Package tui is the terminal presentation layer. It renders the board
// and routes key presses into engine operations; all game state lives
// behind the engine facade and every mutation goes through it.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/klondike/internal/cards"
	"github.com/jask/klondike/internal/engine"
)

// selection is a picked-up run of cards waiting for a destination.
type selection struct {
	run       []cards.Card
	fromWaste bool
	pile      engine.PileIndex // source pile, valid when !fromWaste
}

// App is the bubbletea model.
type App struct {
	eng       *engine.Engine
	keys      keyMap
	st        styles
	moves     *int // bumped by an engine listener; pointer survives model copies
	cursor    engine.PileIndex
	depth     int // cards to grab from the top of the cursor pile
	sel       *selection
	status    string
	statusErr bool
	width     int
	height    int
	showHelp  bool

	commands   []command
	cmdOpen    bool
	cmdQuery   string
	cmdCursor  int
	cmdMatches []commandMatch
}

// New builds the TUI model around an engine. Key overrides come from
// keybindings.toml when present.
func New(eng *engine.Engine, theme string) (App, error) {
	km := newKeyMap()
	overrides, err := loadKeyOverrides()
	if err != nil {
		return App{}, err
	}
	km, err = applyKeyOverrides(km, overrides)
	if err != nil {
		return App{}, err
	}

	moves := new(int)
	eng.AddListener(engine.ListenerFunc(func() { *moves++ }))

	return App{
		eng:      eng,
		keys:     km,
		st:       newStyles(theme),
		moves:    moves,
		depth:    1,
		commands: commandList(),
		status:   "New deal. Press d to draw, ? for help.",
	}, nil
}

// Run starts the program in the alternate screen.
func Run(a App) error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if a.cmdOpen {
			return a.updatePalette(msg)
		}
		return a.updateBoard(msg)
	}
	return a, nil
}

func (a App) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case key.Matches(msg, a.keys.Palette):
		a.cmdOpen = true
		a.cmdQuery = ""
		a.cmdCursor = 0
		a.rebuildMatches()
		return a, nil
	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
			a.depth = 1
		}
		return a, nil
	case key.Matches(msg, a.keys.Right):
		if a.cursor < engine.PileCount-1 {
			a.cursor++
			a.depth = 1
		}
		return a, nil
	case key.Matches(msg, a.keys.Up):
		if a.sel == nil && a.depth < a.faceUpCount(a.cursor) {
			a.depth++
		}
		return a, nil
	case key.Matches(msg, a.keys.Down):
		if a.depth > 1 {
			a.depth--
		}
		return a, nil
	case key.Matches(msg, a.keys.Draw):
		return a.drawCard(), nil
	case key.Matches(msg, a.keys.NewDeal):
		return a.startNewDeal(), nil
	case key.Matches(msg, a.keys.Waste):
		return a.takeWaste(), nil
	case key.Matches(msg, a.keys.Foundation):
		return a.sendToFoundation(), nil
	case key.Matches(msg, a.keys.Cancel):
		a.sel = nil
		a.depth = 1
		a.setStatus("")
		return a, nil
	case key.Matches(msg, a.keys.Select):
		if a.sel == nil {
			return a.pickUp(), nil
		}
		return a.drop(), nil
	}
	return a, nil
}

func (a App) pickUp() App {
	view := a.eng.PileView(a.cursor)
	if len(view) == 0 {
		a.setError(fmt.Sprintf("Pile %d is empty.", a.cursor+1))
		return a
	}
	faceUp := a.faceUpCount(a.cursor)
	if a.depth > faceUp {
		a.depth = faceUp
	}
	card := view[len(view)-a.depth].Card
	run, err := a.eng.Sequence(card, a.cursor)
	if err != nil {
		a.setError(err.Error())
		return a
	}
	a.sel = &selection{run: run, pile: a.cursor}
	if len(run) == 1 {
		a.setStatus(fmt.Sprintf("Picked up %v.", run[0]))
	} else {
		a.setStatus(fmt.Sprintf("Picked up %v and %d cards on it.", run[0], len(run)-1))
	}
	return a
}

func (a App) drop() App {
	sel := a.sel
	if !sel.fromWaste && sel.pile == a.cursor {
		a.sel = nil
		a.setStatus("Put back.")
		return a
	}
	if !a.eng.CanDropOnPile(sel.run[0], a.cursor) {
		a.setError(fmt.Sprintf("%v cannot go on pile %d.", sel.run[0], a.cursor+1))
		return a
	}
	if err := a.eng.DropToPile(sel.run, a.cursor); err != nil {
		a.setError(err.Error())
		return a
	}
	a.setStatus(fmt.Sprintf("Moved %v to pile %d.", sel.run[0], a.cursor+1))
	a.sel = nil
	a.depth = 1
	return a
}

func (a App) takeWaste() App {
	top, err := a.eng.DiscardTop()
	if err != nil {
		a.setError("The waste pile is empty.")
		return a
	}
	a.sel = &selection{run: []cards.Card{top}, fromWaste: true}
	a.setStatus(fmt.Sprintf("Picked up %v from the waste pile.", top))
	return a
}

func (a App) drawCard() App {
	if a.eng.DeckEmpty() {
		a.setError("The deck is empty. Press n for a new deal.")
		return a
	}
	if err := a.eng.Draw(); err != nil {
		a.setError(err.Error())
		return a
	}
	top, _ := a.eng.DiscardTop()
	a.setStatus(fmt.Sprintf("Drew %v.", top))
	return a
}

func (a App) sendToFoundation() App {
	var c cards.Card
	switch {
	case a.sel != nil:
		if len(a.sel.run) != 1 {
			a.setError("Only a single card can move to a foundation.")
			return a
		}
		c = a.sel.run[0]
	default:
		top, err := a.eng.DiscardTop()
		if err != nil {
			a.setError("Nothing selected and the waste pile is empty.")
			return a
		}
		c = top
	}
	if !a.eng.CanMoveToFoundation(c, c.Suit) {
		a.setError(fmt.Sprintf("%v cannot go to its foundation yet.", c))
		return a
	}
	if err := a.eng.MoveToFoundation(c); err != nil {
		a.setError(err.Error())
		return a
	}
	a.sel = nil
	a.depth = 1
	a.setStatus(fmt.Sprintf("%v to foundation.", c))
	return a
}

func (a App) startNewDeal() App {
	a.eng.Reset()
	a.sel = nil
	a.cursor = 0
	a.depth = 1
	*a.moves = 0
	a.setStatus("New deal.")
	return a
}

// faceUpCount returns how many cards of the pile are face-up.
func (a App) faceUpCount(idx engine.PileIndex) int {
	n := 0
	for _, cv := range a.eng.PileView(idx) {
		if cv.FaceUp {
			n++
		}
	}
	return n
}

func (a App) inSelection(c cards.Card) bool {
	if a.sel == nil {
		return false
	}
	for _, sc := range a.sel.run {
		if sc == c {
			return true
		}
	}
	return false
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// ---------------------------------------------------------------------------
// Command palette input
// ---------------------------------------------------------------------------

func (a App) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.cmdOpen = false
		return a, nil
	case "up":
		if a.cmdCursor > 0 {
			a.cmdCursor--
		}
		return a, nil
	case "down":
		if a.cmdCursor < len(a.cmdMatches)-1 {
			a.cmdCursor++
		}
		return a, nil
	case "backspace":
		if a.cmdQuery != "" {
			a.cmdQuery = a.cmdQuery[:len(a.cmdQuery)-1]
			a.rebuildMatches()
		}
		return a, nil
	case "enter":
		return a.executeSelected()
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		a.cmdQuery += msg.String()
		a.rebuildMatches()
	}
	return a, nil
}

func (a App) executeSelected() (tea.Model, tea.Cmd) {
	a.cmdOpen = false
	if len(a.cmdMatches) == 0 || a.cmdCursor >= len(a.cmdMatches) {
		return a, nil
	}
	match := a.cmdMatches[a.cmdCursor]
	if !match.enabled {
		a.setError(match.disabledReason)
		return a, nil
	}
	next, cmd, err := match.cmd.execute(a)
	if err != nil {
		next.setError(err.Error())
	}
	return next, cmd
}

func (a *App) rebuildMatches() {
	a.cmdMatches = searchCommands(a.commands, a.cmdQuery, *a)
	if a.cmdCursor >= len(a.cmdMatches) {
		a.cmdCursor = 0
	}
}
