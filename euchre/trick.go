package euchre

import "euchre-lite/card"

// Play 一次出牌
type Play struct {
	Player *Player
	Card   card.Card
}

// Trick collects the plays of one trick. The effective suit of the first
// play fixes the led suit (a led left bower leads trump, not its printed
// suit).
type Trick struct {
	trump  card.Suit
	plays  []Play
	ledSet bool
	led    card.Suit
}

func newTrick(trump card.Suit) *Trick {
	return &Trick{
		trump: trump,
		plays: make([]Play, 0, NumSeats),
	}
}

func (t *Trick) addPlay(p *Player, c card.Card) {
	if !t.ledSet {
		t.led = card.EffectiveSuit(c, t.trump)
		t.ledSet = true
	}
	t.plays = append(t.plays, Play{Player: p, Card: c})
}

func (t *Trick) Plays() []Play {
	out := make([]Play, len(t.plays))
	copy(out, t.plays)
	return out
}

func (t *Trick) LedSuit() (card.Suit, bool) {
	return t.led, t.ledSet
}

// winner computes the taking play. A pure function of the plays, the led
// suit and the trump suit; ties cannot occur in a single deck.
func (t *Trick) winner() (Play, error) {
	if len(t.plays) == 0 {
		return Play{}, ErrInvalidState("empty trick has no winner")
	}
	best := t.plays[0]
	for _, play := range t.plays[1:] {
		if beats(play.Card, best.Card, t.led, t.trump) {
			best = play
		}
	}
	return best, nil
}

// beats reports whether challenger c takes over the current winner w.
func beats(c, w card.Card, led, trump card.Suit) bool {
	cTrump := card.IsTrump(c, trump)
	wTrump := card.IsTrump(w, trump)

	// 将牌压非将牌
	if cTrump != wTrump {
		return cTrump
	}

	if cTrump && wTrump {
		// Bower beats plain trump; right bower beats left.
		if c.IsJack() != w.IsJack() {
			return c.IsJack()
		}
		if c.IsJack() && w.IsJack() {
			return c.Suit() == trump
		}
		return c.TrickVal() > w.TrickVal()
	}

	// Both off-trump: only a higher card of the led suit takes over.
	return c.Suit() == led && c.TrickVal() > w.TrickVal()
}
