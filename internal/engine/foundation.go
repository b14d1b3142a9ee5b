package engine

import (
	"fmt"

	"github.com/jask/klondike/internal/cards"
)

// Foundations holds the four per-suit ascending stacks where completed
// suits accumulate, Ace at the bottom through King on top. Each suit's
// stack is independent of the others.
type Foundations struct {
	stacks [cards.SuitCount][]cards.Card
}

// Reset empties all four stacks.
func (f *Foundations) Reset() {
	for i := range f.stacks {
		f.stacks[i] = f.stacks[i][:0]
	}
}

// Empty reports whether the stack for the given suit has no cards.
func (f *Foundations) Empty(s cards.Suit) bool {
	return len(f.stacks[s]) == 0
}

// Top returns the top card of the given suit's stack.
func (f *Foundations) Top(s cards.Suit) (cards.Card, error) {
	stack := f.stacks[s]
	if len(stack) == 0 {
		return cards.Card{}, ErrEmptyFoundation
	}
	return stack[len(stack)-1], nil
}

// Push places a card on its own suit's stack. The card must be an Ace
// on an empty stack, or exactly one rank above the current top.
func (f *Foundations) Push(c cards.Card) error {
	stack := f.stacks[c.Suit]
	if len(stack) == 0 {
		if c.Rank != cards.Ace {
			return RuleError(fmt.Sprintf("engine: %v cannot start the %v foundation", c, c.Suit))
		}
	} else if top := stack[len(stack)-1]; c.Rank != top.Rank+1 {
		return RuleError(fmt.Sprintf("engine: %v does not follow %v on its foundation", c, top))
	}
	f.stacks[c.Suit] = append(stack, c)
	return nil
}

// Pop removes and returns the top card of the given suit's stack.
func (f *Foundations) Pop(s cards.Suit) (cards.Card, error) {
	stack := f.stacks[s]
	if len(stack) == 0 {
		return cards.Card{}, ErrEmptyFoundation
	}
	top := stack[len(stack)-1]
	f.stacks[s] = stack[:len(stack)-1]
	return top, nil
}

// Size returns the number of cards on the given suit's stack.
func (f *Foundations) Size(s cards.Suit) int {
	return len(f.stacks[s])
}
