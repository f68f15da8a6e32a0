package euchre

import (
	"math/rand"

	"euchre-lite/card"
)

// Hand is one deal of the deck: five cards to each seat, a face-up lead
// card and a three-card kitty. It carries the bidding outcome and the trick
// loop, and is discarded once the Game settles it.
type Hand struct {
	seating     *Seating
	agents      [NumSeats]Agent
	maxSolicits int

	deck  *Deck
	lead  card.Card
	kitty card.CardList

	trumpSet   bool
	trumpSuit  card.Suit
	trumpTeam  *Team
	loner      *Player
	turnedDown bool

	leader       *Player // leads the next trick
	trick        *Trick  // trick in progress (or just completed)
	tricksPlayed int

	events []HandEvent
}

// newHand builds a shuffled deck and deals it out:
// 24 = 4×5 手牌 + 1 明牌 + 3 底牌
func newHand(seating *Seating, agents [NumSeats]Agent, rng *rand.Rand, cfg Config) (*Hand, error) {
	h := &Hand{
		seating:     seating,
		agents:      agents,
		maxSolicits: cfg.MaxSolicits,
		deck:        newDeck(rng, cfg.DeckOverride),
		leader:      seating.StartPlayer(),
	}

	for _, team := range seating.teams {
		team.resetTricks()
	}

	order, err := seating.Ordered(seating.StartPlayer())
	if err != nil {
		return nil, err
	}
	for _, p := range order {
		p.resetForNewHand()
	}
	for _, p := range order {
		cards, err := h.deck.Deal(HandSize)
		if err != nil {
			return nil, err
		}
		p.addCards(cards...)
		h.record(HandEvent{Type: EventDeal, Seat: p.Seat, Cards: cards})
	}

	leadCards, err := h.deck.Deal(1)
	if err != nil {
		return nil, err
	}
	h.lead = leadCards[0]
	h.record(HandEvent{Type: EventLead, Seat: InvalidSeat, Card: h.lead})

	h.kitty, err = h.deck.Deal(KittySize)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Active reports whether any playing seat still holds cards. A sitting-out
// loner partner keeps their dealt cards, so skipped seats don't count.
func (h *Hand) Active() bool {
	for _, p := range h.seating.players {
		if p.skip {
			continue
		}
		if p.cards.Count() > 0 {
			return true
		}
	}
	return false
}

func (h *Hand) Lead() card.Card { return h.lead }

func (h *Hand) KittyCount() int { return h.kitty.Count() }

func (h *Hand) TrumpSuit() (card.Suit, bool) {
	return h.trumpSuit, h.trumpSet
}

func (h *Hand) TrumpTeam() *Team { return h.trumpTeam }

func (h *Hand) LonerPlayer() *Player { return h.loner }

func (h *Hand) Leader() *Player { return h.leader }

// Trick returns the trick in progress (or the last completed one).
func (h *Hand) Trick() *Trick { return h.trick }

func (h *Hand) TricksPlayed() int { return h.tricksPlayed }

// PlayTrick runs one full trick: every non-skipped player is queried in
// rotation from the current leader, the winner is computed and their team's
// trick counter incremented. The winner leads the next trick.
func (h *Hand) PlayTrick() (Play, error) {
	if !h.trumpSet {
		return Play{}, ErrInvalidState("trump not decided")
	}
	if !h.Active() {
		return Play{}, ErrNotActive
	}

	t := newTrick(h.trumpSuit)
	h.trick = t

	order, err := h.seating.Ordered(h.leader)
	if err != nil {
		return Play{}, err
	}
	for _, p := range order {
		if p.skip {
			continue
		}
		c, err := h.solicitPlay(p, t)
		if err != nil {
			return Play{}, err
		}
		p.removeCard(c)
		t.addPlay(p, c)
		h.record(HandEvent{Type: EventPlay, Seat: p.Seat, Card: c})
	}

	win, err := t.winner()
	if err != nil {
		return Play{}, err
	}
	team, err := h.seating.TeamOf(win.Player)
	if err != nil {
		return Play{}, err
	}
	team.addTrick()
	h.leader = win.Player
	h.tricksPlayed++
	h.record(HandEvent{
		Type:   EventTrickWon,
		Seat:   win.Player.Seat,
		Card:   win.Card,
		Team:   team.ID,
		Tricks: team.tricks,
	})
	return win, nil
}

// solicitPlay queries the agent until it produces a legal card or the
// solicit budget runs out. No state is touched on an illegal answer.
func (h *Hand) solicitPlay(p *Player, t *Trick) (card.Card, error) {
	var lastErr error
	for attempt := 0; attempt < h.maxSolicits; attempt++ {
		c := h.agents[p.Seat].PlayCard(h.viewFor(p))
		if lastErr = h.checkPlay(p, t, c); lastErr == nil {
			return c, nil
		}
	}
	return card.CardInvalid, lastErr
}

func (h *Hand) checkPlay(p *Player, t *Trick, c card.Card) error {
	if !p.holds(c) {
		return errIllegalMove(p.Seat, "card %v not held", c)
	}
	if led, ok := t.LedSuit(); ok {
		inSuit := p.cards.OfEffectiveSuit(led, h.trumpSuit)
		if inSuit.Count() > 0 && card.EffectiveSuit(c, h.trumpSuit) != led {
			return errIllegalMove(p.Seat, "must follow %s", led.Name())
		}
	}
	return nil
}

// viewFor builds the read-only projection handed to an agent. Hand cards
// and trick plays are copied out.
func (h *Hand) viewFor(p *Player) HandView {
	v := HandView{
		Seat:       p.Seat,
		DealerSeat: h.seating.Dealer().Seat,
		IsDealer:   p == h.seating.Dealer(),
		Lead:       h.lead,
		TurnedDown: h.turnedDown,
		TrumpSet:   h.trumpSet,
		TrumpSuit:  h.trumpSuit,
	}
	v.Cards = make(card.CardList, p.cards.Count())
	copy(v.Cards, p.cards)

	for _, team := range h.seating.teams {
		v.Scores[team.ID] = team.score
		v.Tricks[team.ID] = team.tricks
	}

	if h.trick != nil {
		if led, ok := h.trick.LedSuit(); ok {
			v.LedSet = true
			v.LedSuit = led
		}
		for _, play := range h.trick.plays {
			v.Trick = append(v.Trick, PlayView{
				Seat: play.Player.Seat,
				Name: play.Player.Name,
				Card: play.Card,
			})
		}
	}
	return v
}
