package engine

// RuleError reports an operation whose precondition does not hold:
// drawing from an empty deck, peeking an empty pile, moving a card that
// fails its legality predicate. Callers avoid these by checking the
// corresponding query first.
type RuleError string

func (e RuleError) Error() string { return string(e) }

// InvariantError reports an internal inconsistency, such as a move
// failing to find its card in any accessible zone. It indicates a
// defect in move orchestration, not a caller mistake.
type InvariantError string

func (e InvariantError) Error() string { return string(e) }

var (
	// ErrEmptyDeck is returned by Draw when the deck has no cards.
	ErrEmptyDeck = RuleError("engine: draw from empty deck")
	// ErrEmptyDiscard is returned by DiscardTop when the discard pile is empty.
	ErrEmptyDiscard = RuleError("engine: discard pile is empty")
	// ErrEmptyFoundation is returned when peeking or popping an empty foundation.
	ErrEmptyFoundation = RuleError("engine: foundation is empty")
)
