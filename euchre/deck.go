package euchre

import (
	"math/rand"

	"euchre-lite/card"
)

// Deck is one hand's 24-card pile. It is built and shuffled when the hand is
// dealt and only shrinks afterwards; Deal removes cards from the front.
type Deck struct {
	cards card.CardList
}

func newDeck(rng *rand.Rand, override []card.Card) *Deck {
	d := &Deck{}
	if override != nil {
		d.cards.Init(override)
		return d
	}
	cards := make([]card.Card, len(EuchreCards))
	copy(cards, EuchreCards)
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	d.cards.Init(cards)
	return d
}

func (d *Deck) Remaining() int {
	return d.cards.Count()
}

// Deal removes and returns n cards. On ErrDeckExhausted the deck is left
// unmodified.
func (d *Deck) Deal(n int) (card.CardList, error) {
	cards, ok := d.cards.PopCards(n)
	if !ok {
		return nil, ErrDeckExhausted
	}
	return cards, nil
}
