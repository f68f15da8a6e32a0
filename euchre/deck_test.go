package euchre

import (
	"math/rand"
	"testing"

	"euchre-lite/card"
)

func TestDeck_StartsWithFullEuchreDeck(t *testing.T) {
	d := newDeck(rand.New(rand.NewSource(1)), nil)
	if d.Remaining() != 24 {
		t.Fatalf("expected 24 cards, got %d", d.Remaining())
	}
	dealt, err := d.Deal(24)
	if err != nil {
		t.Fatalf("Deal err: %v", err)
	}
	seen := make(map[card.Card]bool, 24)
	for _, c := range dealt {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
	for _, c := range EuchreCards {
		if !seen[c] {
			t.Fatalf("missing card %v", c)
		}
	}
}

func TestDeck_DealExhaustedLeavesDeckUnmodified(t *testing.T) {
	d := newDeck(rand.New(rand.NewSource(1)), nil)
	if _, err := d.Deal(20); err != nil {
		t.Fatalf("Deal err: %v", err)
	}
	if _, err := d.Deal(5); err != ErrDeckExhausted {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
	if d.Remaining() != 4 {
		t.Fatalf("failed deal must not remove cards: %d remaining", d.Remaining())
	}
	if _, err := d.Deal(4); err != nil {
		t.Fatalf("Deal remainder err: %v", err)
	}
}

func TestDeck_SameSeedSameOrder(t *testing.T) {
	a := newDeck(rand.New(rand.NewSource(7)), nil)
	b := newDeck(rand.New(rand.NewSource(7)), nil)
	ca, _ := a.Deal(24)
	cb, _ := b.Deal(24)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("seeded shuffles diverge at %d: %v vs %v", i, ca[i], cb[i])
		}
	}
}

func TestDeck_OverridePreservesOrder(t *testing.T) {
	d := newDeck(rand.New(rand.NewSource(1)), EuchreCards)
	dealt, err := d.Deal(3)
	if err != nil {
		t.Fatalf("Deal err: %v", err)
	}
	want := []card.Card{card.CardSpade9, card.CardSpadeT, card.CardSpadeJ}
	for i := range want {
		if dealt[i] != want[i] {
			t.Fatalf("override order broken at %d: got %v want %v", i, dealt[i], want[i])
		}
	}
}
