package engine

import (
	"testing"

	"github.com/jask/klondike/internal/cards"
)

func TestFoundationStartsEmpty(t *testing.T) {
	var f Foundations
	for _, s := range cards.Suits() {
		if !f.Empty(s) {
			t.Errorf("foundation %v not empty", s)
		}
		if _, err := f.Top(s); err != ErrEmptyFoundation {
			t.Errorf("Top(%v) err = %v, want ErrEmptyFoundation", s, err)
		}
		if _, err := f.Pop(s); err != ErrEmptyFoundation {
			t.Errorf("Pop(%v) err = %v, want ErrEmptyFoundation", s, err)
		}
	}
}

func TestFoundationPushAscending(t *testing.T) {
	var f Foundations
	for _, r := range []cards.Rank{cards.Ace, cards.Two, cards.Three} {
		if err := f.Push(cards.Card{Suit: cards.Hearts, Rank: r}); err != nil {
			t.Fatalf("Push(%v♥): %v", r, err)
		}
	}
	top, err := f.Top(cards.Hearts)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if top.Rank != cards.Three {
		t.Errorf("top = %v, want 3♥", top)
	}
	if f.Size(cards.Hearts) != 3 {
		t.Errorf("Size = %d, want 3", f.Size(cards.Hearts))
	}
}

func TestFoundationRejectsIllegalPush(t *testing.T) {
	var f Foundations
	if err := f.Push(cards.Card{Suit: cards.Spades, Rank: cards.Five}); err == nil {
		t.Error("expected error starting a foundation with a five")
	}
	if err := f.Push(cards.Card{Suit: cards.Spades, Rank: cards.Ace}); err != nil {
		t.Fatalf("Push(A♠): %v", err)
	}
	if err := f.Push(cards.Card{Suit: cards.Spades, Rank: cards.Three}); err == nil {
		t.Error("expected error skipping a rank")
	}
}

func TestFoundationSuitsAreIsolated(t *testing.T) {
	var f Foundations
	if err := f.Push(cards.Card{Suit: cards.Clubs, Rank: cards.Ace}); err != nil {
		t.Fatalf("Push(A♣): %v", err)
	}
	if !f.Empty(cards.Diamonds) || !f.Empty(cards.Hearts) || !f.Empty(cards.Spades) {
		t.Error("pushing to clubs touched another suit's stack")
	}
	// The two of another suit must not continue the clubs ace.
	if err := f.Push(cards.Card{Suit: cards.Diamonds, Rank: cards.Two}); err == nil {
		t.Error("expected error: 2♦ cannot start the diamonds foundation")
	}
}

func TestFoundationPop(t *testing.T) {
	var f Foundations
	ace := cards.Card{Suit: cards.Hearts, Rank: cards.Ace}
	two := cards.Card{Suit: cards.Hearts, Rank: cards.Two}
	if err := f.Push(ace); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := f.Push(two); err != nil {
		t.Fatalf("Push: %v", err)
	}
	got, err := f.Pop(cards.Hearts)
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got != two {
		t.Errorf("Pop = %v, want %v", got, two)
	}
	top, _ := f.Top(cards.Hearts)
	if top != ace {
		t.Errorf("top after pop = %v, want %v", top, ace)
	}
}
