// Package engine implements the rules engine for a Klondike solitaire
// game. The Engine facade owns the authoritative state — deck, discard
// pile, four foundations and seven tableau piles — and is the only
// component that mutates any of them. Every card is in exactly one zone
// at all times; each move locates its card, detaches it from the source
// zone and attaches it to the destination as one step, then notifies
// registered listeners exactly once.
//
// The Engine is single-threaded by design: operations run to completion
// and listener callbacks are synchronous. Wrap calls in a single lock if
// sharing an Engine across goroutines.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/klondike/internal/cards"
)

// Listener is notified after every state-changing operation. It carries
// no payload; listeners re-query the engine for current state.
type Listener interface {
	GameStateChanged()
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func()

// GameStateChanged calls f.
func (f ListenerFunc) GameStateChanged() { f() }

// zone is the kind of container a card currently sits in.
type zone int

const (
	zoneDiscard zone = iota
	zoneFoundation
	zoneTableau
)

// location pins a card to its current zone. The foundation suit is the
// card's own suit; only tableau locations need the pile index.
type location struct {
	zone zone
	pile PileIndex
}

// Engine is the game facade. Construct one per game with New; it is
// dealt and ready to play immediately.
type Engine struct {
	deck        *cards.Deck
	discard     []cards.Card
	foundations Foundations
	tableau     Tableau
	listeners   []Listener
	dealID      string
	log         *slog.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger attaches a structured logger; moves are logged at debug level.
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New builds an engine around the given deck and deals the opening
// layout. The deck decides shuffling behavior (seeded, ordered); the
// engine never constructs its own.
func New(deck *cards.Deck, opts ...EngineOption) *Engine {
	e := &Engine{
		deck: deck,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.deal()
	return e
}

// Reset reshuffles the same 52 cards and deals a fresh game, then
// notifies listeners.
func (e *Engine) Reset() {
	e.deal()
	e.notify()
}

func (e *Engine) deal() {
	e.deck.Shuffle()
	e.discard = e.discard[:0]
	e.foundations.Reset()
	if err := e.tableau.Reset(e.deck); err != nil {
		// A full deck always covers the 28-card deal.
		panic(err)
	}
	e.dealID = uuid.NewString()
	e.log.Debug("dealt new game", "deal", e.dealID, "deck", e.deck.Size())
}

// AddListener registers a listener for state changes. Listeners are
// invoked synchronously in registration order and live for the life of
// the engine.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) notify() {
	for _, l := range e.listeners {
		l.GameStateChanged()
	}
}

// DealID identifies the current deal; it changes on every Reset.
func (e *Engine) DealID() string {
	return e.dealID
}

// DeckEmpty reports whether the deck has no cards left.
func (e *Engine) DeckEmpty() bool {
	return e.deck.Empty()
}

// DeckSize returns the number of cards left in the deck.
func (e *Engine) DeckSize() int {
	return e.deck.Size()
}

// DiscardEmpty reports whether the discard pile has no cards.
func (e *Engine) DiscardEmpty() bool {
	return len(e.discard) == 0
}

// DiscardTop returns the top of the discard pile.
func (e *Engine) DiscardTop() (cards.Card, error) {
	if len(e.discard) == 0 {
		return cards.Card{}, ErrEmptyDiscard
	}
	return e.discard[len(e.discard)-1], nil
}

// HasFoundationTop reports whether the foundation for the suit holds
// any cards.
func (e *Engine) HasFoundationTop(s cards.Suit) bool {
	return !e.foundations.Empty(s)
}

// FoundationTop returns the top card of the suit's foundation.
func (e *Engine) FoundationTop(s cards.Suit) (cards.Card, error) {
	return e.foundations.Top(s)
}

// PileView returns a read-only view of the tableau pile, bottom first.
func (e *Engine) PileView(idx PileIndex) []CardView {
	return e.tableau.View(idx)
}

// Draw moves the top card of the deck onto the discard pile. The deck
// must not be empty; check DeckEmpty first.
func (e *Engine) Draw() error {
	if e.deck.Empty() {
		return ErrEmptyDeck
	}
	c, err := e.deck.Draw()
	if err != nil {
		return err
	}
	e.discard = append(e.discard, c)
	e.log.Debug("drew card", "deal", e.dealID, "card", c.String())
	e.notify()
	return nil
}

// CanMoveToFoundation reports whether the card may be placed on the
// given suit's foundation: an Ace always may; any other card needs a
// non-empty foundation topped by the rank directly below it. The check
// ignores where the card currently sits.
func (e *Engine) CanMoveToFoundation(c cards.Card, s cards.Suit) bool {
	if c.Suit != s {
		return false
	}
	if c.Rank == cards.Ace {
		return true
	}
	top, err := e.foundations.Top(s)
	if err != nil {
		return false
	}
	return c.Rank == top.Rank+1
}

// MoveToFoundation moves the card from its current zone — the discard
// top or a tableau pile top — onto its suit's foundation. The move must
// pass CanMoveToFoundation; callers check first.
func (e *Engine) MoveToFoundation(c cards.Card) error {
	if !e.CanMoveToFoundation(c, c.Suit) {
		return RuleError(fmt.Sprintf("engine: %v cannot move to its foundation", c))
	}
	loc, ok := e.locate(c)
	if !ok || loc.zone == zoneFoundation {
		return InvariantError(fmt.Sprintf("engine: %v is in no movable zone", c))
	}
	if err := e.detach(c, loc); err != nil {
		return err
	}
	if err := e.foundations.Push(c); err != nil {
		return InvariantError(fmt.Sprintf("engine: reattach failed: %v", err))
	}
	e.log.Debug("moved to foundation", "deal", e.dealID, "card", c.String())
	e.notify()
	return nil
}

// CanDropOnPile reports whether the card may be placed on the tableau
// pile. The tableau owns the rule; the engine only forwards the query.
func (e *Engine) CanDropOnPile(c cards.Card, idx PileIndex) bool {
	return e.tableau.CanDrop(c, idx)
}

// Sequence returns the card plus every card stacked above it in the
// pile, bottom first, as one movable unit.
func (e *Engine) Sequence(c cards.Card, idx PileIndex) ([]cards.Card, error) {
	return e.tableau.Sequence(c, idx)
}

// DropToPile moves an ordered run of one or more cards onto the tableau
// pile. A single card may come from the discard top, a foundation top
// or a tableau pile; a longer run always comes from a tableau pile and
// is relocated as a unit, preserving order. Listeners are notified once
// per call, after the whole run has moved.
func (e *Engine) DropToPile(run []cards.Card, idx PileIndex) error {
	if len(run) == 0 {
		return RuleError("engine: empty card run")
	}
	if !idx.Valid() {
		return RuleError(fmt.Sprintf("engine: pile index %d out of range", idx))
	}
	if !e.tableau.CanDrop(run[0], idx) {
		return RuleError(fmt.Sprintf("engine: %v cannot drop on pile %d", run[0], int(idx)+1))
	}
	if len(run) == 1 {
		if err := e.moveOneToPile(run[0], idx); err != nil {
			return err
		}
	} else {
		// Unwind the source pile top first, then replay in order so
		// the run keeps its internal order on the destination.
		buf := make([]cards.Card, 0, len(run))
		for i := len(run) - 1; i >= 0; i-- {
			if err := e.tableau.PopTop(run[i]); err != nil {
				return InvariantError(fmt.Sprintf("engine: run detach failed: %v", err))
			}
			buf = append(buf, run[i])
		}
		for i := len(buf) - 1; i >= 0; i-- {
			e.tableau.Push(buf[i], idx)
		}
	}
	e.log.Debug("dropped on pile", "deal", e.dealID, "cards", len(run), "pile", int(idx)+1)
	e.notify()
	return nil
}

// moveOneToPile is the single-card variant of the locate/detach/attach
// idiom, with a tableau destination.
func (e *Engine) moveOneToPile(c cards.Card, idx PileIndex) error {
	loc, ok := e.locate(c)
	if !ok {
		return InvariantError(fmt.Sprintf("engine: %v is in no movable zone", c))
	}
	if err := e.detach(c, loc); err != nil {
		return err
	}
	e.tableau.Push(c, idx)
	return nil
}

// locate resolves the zone currently exposing the card, probing the
// discard top, then the card's foundation top, then tableau membership.
// Cards still in the deck are not movable and report no location.
func (e *Engine) locate(c cards.Card) (location, bool) {
	if len(e.discard) > 0 && e.discard[len(e.discard)-1] == c {
		return location{zone: zoneDiscard}, true
	}
	if top, err := e.foundations.Top(c.Suit); err == nil && top == c {
		return location{zone: zoneFoundation}, true
	}
	if idx, ok := e.tableau.PileOf(c); ok {
		return location{zone: zoneTableau, pile: idx}, true
	}
	return location{}, false
}

// detach removes the card from the located zone. Failure here means the
// located state changed underneath us, which cannot happen in correct
// single-threaded use.
func (e *Engine) detach(c cards.Card, loc location) error {
	switch loc.zone {
	case zoneDiscard:
		e.discard = e.discard[:len(e.discard)-1]
		return nil
	case zoneFoundation:
		_, err := e.foundations.Pop(c.Suit)
		if err != nil {
			return InvariantError(fmt.Sprintf("engine: detach failed: %v", err))
		}
		return nil
	case zoneTableau:
		if err := e.tableau.PopTop(c); err != nil {
			return InvariantError(fmt.Sprintf("engine: detach failed: %v", err))
		}
		return nil
	default:
		return InvariantError(fmt.Sprintf("engine: unknown zone %d", loc.zone))
	}
}
