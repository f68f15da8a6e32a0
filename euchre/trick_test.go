package euchre

import (
	"testing"

	"euchre-lite/card"
)

func playOut(t *testing.T, trump card.Suit, cards []card.Card) Play {
	t.Helper()
	tr := newTrick(trump)
	for i, c := range cards {
		tr.addPlay(&Player{Name: "p", Seat: i}, c)
	}
	win, err := tr.winner()
	if err != nil {
		t.Fatalf("winner err: %v", err)
	}
	return win
}

func TestTrickWinner_LeftBowerBeatsPlainTrump(t *testing.T) {
	// Spades trump, spades led: J♣ is the left bower and outranks the plain
	// trump K♠ and 9♠ as well as the off-suit A♥.
	win := playOut(t, card.Spade, []card.Card{
		card.CardSpade9, card.CardHeartA, card.CardSpadeK, card.CardClubJ,
	})
	if win.Card != card.CardClubJ {
		t.Fatalf("expected left bower J♣ to win, got %v", win.Card)
	}
}

func TestTrickWinner_RightBowerBeatsLeftBower(t *testing.T) {
	win := playOut(t, card.Heart, []card.Card{
		card.CardHeartJ, card.CardDiamondJ, card.CardHeartA, card.CardHeartK,
	})
	if win.Card != card.CardHeartJ {
		t.Fatalf("expected right bower J♥ to win, got %v", win.Card)
	}
	// Same cards with the left bower leading.
	win = playOut(t, card.Heart, []card.Card{
		card.CardDiamondJ, card.CardHeartA, card.CardHeartK, card.CardHeartJ,
	})
	if win.Card != card.CardHeartJ {
		t.Fatalf("expected right bower J♥ to win from last seat, got %v", win.Card)
	}
}

func TestTrickWinner_NoTrumpHighestOfLedSuit(t *testing.T) {
	win := playOut(t, card.Spade, []card.Card{
		card.CardClub9, card.CardClubQ, card.CardDiamondA, card.CardClubK,
	})
	if win.Card != card.CardClubK {
		t.Fatalf("expected K♣ (highest of led suit) to win, got %v", win.Card)
	}
}

func TestTrickWinner_AnyTrumpBeatsOffSuitAce(t *testing.T) {
	win := playOut(t, card.Heart, []card.Card{
		card.CardClubA, card.CardClubK, card.CardHeart9, card.CardClubQ,
	})
	if win.Card != card.CardHeart9 {
		t.Fatalf("expected 9♥ trump to win over led aces, got %v", win.Card)
	}
}

func TestTrickWinner_LeftBowerLeadSetsTrumpAsLedSuit(t *testing.T) {
	tr := newTrick(card.Spade)
	tr.addPlay(&Player{Seat: 0}, card.CardClubJ) // left bower leads
	led, ok := tr.LedSuit()
	if !ok || led != card.Spade {
		t.Fatalf("expected led suit spades when left bower leads, got %v ok=%v", led, ok)
	}
}

func TestTrickWinner_PureFunctionOfContent(t *testing.T) {
	// The winning card is independent of which seat played it as long as the
	// play sequence content is fixed.
	cards := []card.Card{card.CardSpade9, card.CardHeartA, card.CardSpadeK, card.CardClubJ}
	first := playOut(t, card.Spade, cards)
	for i := 0; i < 5; i++ {
		again := playOut(t, card.Spade, cards)
		if again.Card != first.Card {
			t.Fatalf("winner changed between identical tricks: %v vs %v", again.Card, first.Card)
		}
	}
}

func TestTrickWinner_EmptyTrick(t *testing.T) {
	tr := newTrick(card.Spade)
	if _, err := tr.winner(); err == nil {
		t.Fatalf("expected error for empty trick")
	}
}
