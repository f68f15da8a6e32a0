package npc

import (
	"math/rand"
	"testing"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

var _ euchre.Agent = (*RuleBrain)(nil)

func testBrain(seed int64) *RuleBrain {
	return NewRuleBrain(DefaultPersonas[0], seed)
}

func randomHand(rng *rand.Rand) card.CardList {
	deck := make([]card.Card, len(euchre.EuchreCards))
	copy(deck, euchre.EuchreCards)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return card.CardList(deck[:euchre.HandSize])
}

func TestChooseTrump_NeverNamesTurnedDownSuit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		b := testBrain(rng.Int63())
		view := euchre.HandView{
			Cards:      randomHand(rng),
			Lead:       card.CardSpadeA,
			TurnedDown: true,
		}
		if suit, ok := b.ChooseTrump(view); ok && suit == card.Spade {
			t.Fatalf("brain called the turned-down suit on hand %v", view.Cards)
		}
	}
}

func TestChooseTrump_ForcedDealerAlwaysCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, persona := range DefaultPersonas {
		for i := 0; i < 50; i++ {
			b := NewRuleBrain(persona, rng.Int63())
			view := euchre.HandView{
				Cards:      randomHand(rng),
				Lead:       card.CardHeartK,
				TurnedDown: true,
				MustChoose: true,
				IsDealer:   true,
			}
			suit, ok := b.ChooseTrump(view)
			if !ok {
				t.Fatalf("persona %s passed when forced", persona.ID)
			}
			if suit == card.Heart {
				t.Fatalf("persona %s named the turned-down suit when forced", persona.ID)
			}
		}
	}
}

func TestPlayCard_FollowsSuit(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		b := testBrain(rng.Int63())
		hand := randomHand(rng)
		view := euchre.HandView{
			Cards:     hand,
			TrumpSet:  true,
			TrumpSuit: card.Spade,
			LedSet:    true,
			LedSuit:   card.Heart,
			Trick:     []euchre.PlayView{{Seat: 0, Card: card.CardHeart9}},
		}
		c := b.PlayCard(view)
		if !hand.Contains(c) {
			t.Fatalf("brain played a card it does not hold: %v", c)
		}
		inSuit := hand.OfEffectiveSuit(card.Heart, card.Spade)
		if inSuit.Count() > 0 && card.EffectiveSuit(c, card.Spade) != card.Heart {
			t.Fatalf("brain broke follow-suit: played %v holding %v", c, inSuit)
		}
	}
}

func TestPlayCard_TakesCheapWinOverBigWin(t *testing.T) {
	b := testBrain(1)
	view := euchre.HandView{
		Cards:     card.CardList{card.CardHeartQ, card.CardHeartA},
		TrumpSet:  true,
		TrumpSuit: card.Spade,
		LedSet:    true,
		LedSuit:   card.Heart,
		Trick:     []euchre.PlayView{{Seat: 0, Card: card.CardHeartT}},
	}
	if c := b.PlayCard(view); c != card.CardHeartQ {
		t.Fatalf("expected the queen to be enough, brain played %v", c)
	}
}

func TestPlayCard_ThrowsOffWhenTrickIsLost(t *testing.T) {
	b := testBrain(1)
	view := euchre.HandView{
		Cards:     card.CardList{card.CardClub9, card.CardClubK},
		TrumpSet:  true,
		TrumpSuit: card.Spade,
		LedSet:    true,
		LedSuit:   card.Heart,
		Trick:     []euchre.PlayView{{Seat: 0, Card: card.CardHeartA}},
	}
	if c := b.PlayCard(view); c != card.CardClub9 {
		t.Fatalf("expected the cheapest throw-off, brain played %v", c)
	}
}

func TestReplaceCard_DiscardsHeldNonTrump(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		b := testBrain(rng.Int63())
		hand := randomHand(rng)
		view := euchre.HandView{Cards: hand, Lead: card.CardSpadeA}
		discard := b.ReplaceCard(view, card.CardSpadeA)
		if !hand.Contains(discard) {
			t.Fatalf("brain discarded a card it does not hold: %v", discard)
		}
	}
}

func TestRuleBrain_SameSeedSameDecisions(t *testing.T) {
	view := euchre.HandView{
		Cards: card.CardList{card.CardSpadeJ, card.CardClubJ, card.CardSpadeA, card.CardHeart9, card.CardDiamondT},
		Lead:  card.CardSpadeK,
	}
	a := testBrain(42)
	b := testBrain(42)
	for i := 0; i < 20; i++ {
		if a.CallTrump(view) != b.CallTrump(view) {
			t.Fatalf("seeded brains diverged on CallTrump at step %d", i)
		}
	}
}

func TestRegistry_DefaultsAndOverride(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("steady"); !ok {
		t.Fatalf("default persona missing")
	}
	if err := r.LoadFromJSON([]byte(`[{"id":"steady","name":"Altered","brain":{"aggression":1}}]`)); err != nil {
		t.Fatalf("LoadFromJSON err: %v", err)
	}
	p, _ := r.Get("steady")
	if p.Name != "Altered" || p.Brain.Aggression != 1 {
		t.Fatalf("override not applied: %+v", p)
	}
	if got := r.Pick(rand.New(rand.NewSource(1))); got == nil {
		t.Fatalf("Pick returned nil with personas loaded")
	}
}

func TestRegistry_BadJSON(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadFromJSON([]byte(`{not json`)); err == nil {
		t.Fatalf("expected parse error")
	}
}
