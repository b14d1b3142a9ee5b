package engine

import (
	"fmt"

	"github.com/jask/klondike/internal/cards"
)

// PileIndex identifies one of the seven tableau piles.
type PileIndex int

const (
	Pile1 PileIndex = iota
	Pile2
	Pile3
	Pile4
	Pile5
	Pile6
	Pile7
)

// PileCount is the number of tableau piles.
const PileCount = 7

// Valid reports whether the index names an actual pile.
func (p PileIndex) Valid() bool {
	return p >= Pile1 && p < PileCount
}

// CardView is one card of a tableau pile as the presentation layer
// sees it: face-down cards are present but their identity is hidden
// behind the flag.
type CardView struct {
	Card   cards.Card
	FaceUp bool
}

// tableauPile is one pile: cards bottom to top, with the first hidden
// cards face-down. The top card of a non-empty pile is always face-up.
type tableauPile struct {
	cards  []cards.Card
	hidden int
}

// Tableau holds the seven working piles. Piles grow by alternating-color
// descending runs; contiguous face-up suffixes move between piles as
// units. Only the Engine mutates a Tableau.
type Tableau struct {
	piles [PileCount]tableauPile
}

// Reset deals the opening tableau from the deck: pile n receives n+1
// cards with only the last one face-up, 28 cards in total.
func (t *Tableau) Reset(d *cards.Deck) error {
	for i := range t.piles {
		t.piles[i].cards = t.piles[i].cards[:0]
		t.piles[i].hidden = i
		for n := 0; n <= i; n++ {
			c, err := d.Draw()
			if err != nil {
				return fmt.Errorf("deal pile %d: %w", i+1, err)
			}
			t.piles[i].cards = append(t.piles[i].cards, c)
		}
	}
	return nil
}

// Contains reports whether the card sits in any pile, face-up or not.
func (t *Tableau) Contains(c cards.Card) bool {
	_, ok := t.pileOf(c)
	return ok
}

// PileOf returns the pile currently holding the card.
func (t *Tableau) PileOf(c cards.Card) (PileIndex, bool) {
	return t.pileOf(c)
}

func (t *Tableau) pileOf(c cards.Card) (PileIndex, bool) {
	for i := range t.piles {
		for _, pc := range t.piles[i].cards {
			if pc == c {
				return PileIndex(i), true
			}
		}
	}
	return 0, false
}

// PopTop removes the card from its pile. The card must currently be the
// top of that pile; removing anything else is a caller error. When the
// removal exposes a face-down card, that card turns face-up.
func (t *Tableau) PopTop(c cards.Card) error {
	idx, ok := t.pileOf(c)
	if !ok {
		return RuleError(fmt.Sprintf("engine: %v is not in the tableau", c))
	}
	p := &t.piles[idx]
	if p.cards[len(p.cards)-1] != c {
		return RuleError(fmt.Sprintf("engine: %v is not the top of pile %d", c, idx+1))
	}
	p.cards = p.cards[:len(p.cards)-1]
	if p.hidden > 0 && p.hidden == len(p.cards) {
		p.hidden--
	}
	return nil
}

// Push places a single card face-up on top of the pile. Legality is the
// caller's concern; check CanDrop first.
func (t *Tableau) Push(c cards.Card, idx PileIndex) {
	t.piles[idx].cards = append(t.piles[idx].cards, c)
}

// CanDrop reports whether the card may legally be placed on the pile:
// a King on an empty pile, otherwise one rank below the pile's top card
// and of the opposite color.
func (t *Tableau) CanDrop(c cards.Card, idx PileIndex) bool {
	if !idx.Valid() {
		return false
	}
	p := t.piles[idx]
	if len(p.cards) == 0 {
		return c.Rank == cards.King
	}
	top := p.cards[len(p.cards)-1]
	return top.Rank == c.Rank+1 && top.Color() != c.Color()
}

// Sequence returns the card and every card stacked above it in the
// pile, bottom first. The card must be in the pile's face-up portion.
func (t *Tableau) Sequence(c cards.Card, idx PileIndex) ([]cards.Card, error) {
	if !idx.Valid() {
		return nil, RuleError(fmt.Sprintf("engine: pile index %d out of range", idx))
	}
	p := t.piles[idx]
	for i := p.hidden; i < len(p.cards); i++ {
		if p.cards[i] == c {
			seq := make([]cards.Card, len(p.cards)-i)
			copy(seq, p.cards[i:])
			return seq, nil
		}
	}
	return nil, RuleError(fmt.Sprintf("engine: %v is not face-up in pile %d", c, idx+1))
}

// View returns the pile for presentation, bottom first, with each
// card's face-up status.
func (t *Tableau) View(idx PileIndex) []CardView {
	p := t.piles[idx]
	out := make([]CardView, len(p.cards))
	for i, c := range p.cards {
		out[i] = CardView{Card: c, FaceUp: i >= p.hidden}
	}
	return out
}

// Size returns the number of cards in the pile.
func (t *Tableau) Size(idx PileIndex) int {
	return len(t.piles[idx].cards)
}
