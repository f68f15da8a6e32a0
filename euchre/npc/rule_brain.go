package npc

import (
	"math/rand"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

// RuleBrain is a heuristic euchre.Agent driven by a PersonalityProfile.
// Every answer it produces is legal, so the engine never re-solicits it.
type RuleBrain struct {
	Persona *Persona
	rng     *rand.Rand
}

// NewRuleBrain creates a RuleBrain from a persona definition.
func NewRuleBrain(persona *Persona, seed int64) *RuleBrain {
	return &RuleBrain{
		Persona: persona,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *RuleBrain) Name() string { return b.Persona.Name }

// callThreshold is the hand strength demanded before calling trump,
// shifted by personality and a little noise.
func (b *RuleBrain) callThreshold() int {
	p := b.Persona.Brain
	base := 95.0 + p.Tightness*40.0 - p.Aggression*25.0
	base += (b.rng.Float64() - 0.5) * p.Randomness * 30.0
	return int(base)
}

// CallTrump orders the lead card up when the hand is strong in its suit.
// The dealer's side counts the lead card itself, since ordering up hands it
// to the dealer.
func (b *RuleBrain) CallTrump(view euchre.HandView) bool {
	trump := view.Lead.Suit()
	strength := handStrength(view.Cards, trump)
	if view.IsDealer {
		strength += playPower(view.Lead, trump, trump) / 2
	}
	return strength >= b.callThreshold()
}

// ChooseTrump names the strongest remaining suit, or passes when none of
// them clears the threshold. A forced dealer always names the best one.
func (b *RuleBrain) ChooseTrump(view euchre.HandView) (card.Suit, bool) {
	barred := view.Lead.Suit()
	best := card.Suit(0)
	bestStrength := -1
	for _, s := range card.Suits {
		if s == barred {
			continue
		}
		if strength := handStrength(view.Cards, s); strength > bestStrength {
			best = s
			bestStrength = strength
		}
	}
	if view.MustChoose || bestStrength >= b.callThreshold() {
		return best, true
	}
	return 0, false
}

// ReplaceCard discards the weakest non-trump card.
func (b *RuleBrain) ReplaceCard(view euchre.HandView, lead card.Card) card.Card {
	trump := lead.Suit()
	worst := view.Cards[0]
	worstPower := playPower(worst, trump, trump)
	for _, c := range view.Cards[1:] {
		if power := playPower(c, trump, trump); power < worstPower {
			worst = c
			worstPower = power
		}
	}
	return worst
}

// GoAlone requires a near-lock hand, relaxed a little for aggressive
// personalities.
func (b *RuleBrain) GoAlone(view euchre.HandView) bool {
	if !view.TrumpSet {
		return false
	}
	p := b.Persona.Brain
	threshold := 190.0 - p.Aggression*35.0 + (b.rng.Float64()-0.5)*p.Randomness*20.0
	return handStrength(view.Cards, view.TrumpSuit) >= int(threshold)
}

// PlayCard picks the cheapest card that takes the trick, or throws off the
// weakest legal card when the trick cannot be taken.
func (b *RuleBrain) PlayCard(view euchre.HandView) card.Card {
	legal := legalPlays(view)

	if !view.LedSet {
		// Leading: put the strongest card out.
		best := legal[0]
		for _, c := range legal[1:] {
			if playPower(c, view.TrumpSuit, view.TrumpSuit) > playPower(best, view.TrumpSuit, view.TrumpSuit) {
				best = c
			}
		}
		return best
	}

	winning := currentWinnerPower(view)
	var cheapestWinner card.Card
	cheapestPower := 0
	haveWinner := false
	weakest := legal[0]
	weakestPower := playPower(weakest, view.LedSuit, view.TrumpSuit)
	for _, c := range legal {
		power := playPower(c, view.LedSuit, view.TrumpSuit)
		if power > winning && (!haveWinner || power < cheapestPower) {
			cheapestWinner = c
			cheapestPower = power
			haveWinner = true
		}
		if power < weakestPower {
			weakest = c
			weakestPower = power
		}
	}
	if haveWinner {
		return cheapestWinner
	}
	return weakest
}

func legalPlays(view euchre.HandView) card.CardList {
	if view.LedSet {
		inSuit := view.Cards.OfEffectiveSuit(view.LedSuit, view.TrumpSuit)
		if inSuit.Count() > 0 {
			return inSuit
		}
	}
	return view.Cards
}

func currentWinnerPower(view euchre.HandView) int {
	best := 0
	for _, play := range view.Trick {
		if power := playPower(play.Card, view.LedSuit, view.TrumpSuit); power > best {
			best = power
		}
	}
	return best
}

// playPower ranks a card inside one trick: right bower, left bower, plain
// trump, led suit, garbage.
func playPower(c card.Card, led, trump card.Suit) int {
	if card.IsTrump(c, trump) {
		if c.IsJack() {
			if c.Suit() == trump {
				return 320 // right bower
			}
			return 310 // left bower
		}
		return 200 + c.TrickVal()
	}
	if c.Suit() == led {
		return 100 + c.TrickVal()
	}
	return c.TrickVal()
}

// handStrength scores a whole hand for a candidate trump suit.
func handStrength(cards card.CardList, trump card.Suit) int {
	total := 0
	for _, c := range cards {
		switch {
		case card.IsTrump(c, trump):
			total += playPower(c, trump, trump) / 2
		case c.IsAce():
			total += 20
		default:
			total += c.TrickVal() / 3
		}
	}
	return total
}
