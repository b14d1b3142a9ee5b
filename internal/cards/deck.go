package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when drawing from an empty deck.
var ErrEmptyDeck = errors.New("cards: draw from empty deck")

// Deck is an ordered pile of the 52 unique cards. Draw takes from the
// top (the end of the slice). A Deck is not safe for concurrent use.
type Deck struct {
	cards   []Card
	rng     *rand.Rand
	ordered bool
}

// Option configures a Deck at construction time.
type Option func(*Deck)

// WithSeed makes every Shuffle use a deterministic random source.
func WithSeed(seed int64) Option {
	return func(d *Deck) {
		d.rng = rand.New(rand.NewSource(seed))
	}
}

// Ordered disables shuffling entirely: Shuffle only resets the deck to
// canonical suit-then-rank order. Intended for tests and debugging,
// where drawn cards must be predictable.
func Ordered() Option {
	return func(d *Deck) {
		d.ordered = true
	}
}

// NewDeck returns a full deck in canonical order. Call Shuffle before
// dealing a real game.
func NewDeck(opts ...Option) *Deck {
	d := &Deck{cards: make([]Card, 0, SuitCount*RankCount)}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.reset()
	return d
}

func (d *Deck) reset() {
	d.cards = d.cards[:0]
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
}

// Shuffle restores all 52 cards and puts them in random order, or in
// canonical order for a deck built with Ordered.
func (d *Deck) Shuffle() {
	d.reset()
	if d.ordered {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards left.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
