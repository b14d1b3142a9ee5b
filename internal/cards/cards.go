// Package cards models a standard 52-card French deck: suits, ranks and
// the deck itself. Cards are immutable values; two cards are the same
// card exactly when their suit and rank are equal, which is unambiguous
// because a deck never holds duplicates.
package cards

// Suit represents a card suit.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// SuitCount is the number of suits in a deck.
const SuitCount = 4

// Suits returns all suits in canonical order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Color is the red/black color of a suit.
type Color int

const (
	Black Color = iota
	Red
)

// Color returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Rank represents a card rank, ordered Ace low through King high.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// RankCount is the number of ranks per suit.
const RankCount = 13

// Ranks returns all ranks in ascending order.
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return string(rune('0' + int(r) + 1))
	}
}

// Card is a playing card value. The zero value is the ace of clubs.
type Card struct {
	Suit Suit
	Rank Rank
}

// Color returns the card's suit color.
func (c Card) Color() Color {
	return c.Suit.Color()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
