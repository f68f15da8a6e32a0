package euchre

import "euchre-lite/card"

type Player struct {
	Name string
	Seat int
	Team TeamID

	cards card.CardList
	skip  bool
}

func (p *Player) Hand() card.CardList { return p.cards }

// Skip 本手牌是否坐出（搭档单打时置位）
func (p *Player) Skip() bool { return p.skip }

func (p *Player) resetForNewHand() {
	p.cards = make(card.CardList, 0, HandSize)
	p.skip = false
}

func (p *Player) addCards(cards ...card.Card) {
	p.cards.Add(cards...)
}

func (p *Player) holds(c card.Card) bool {
	return p.cards.Contains(c)
}

func (p *Player) removeCard(c card.Card) bool {
	return p.cards.Remove(c)
}

func (p *Player) setSkip(v bool) { p.skip = v }
