package euchre

import "euchre-lite/card"

type PlayerSnapshot struct {
	Seat  int
	Name  string
	Team  TeamID
	Skip  bool
	Cards []card.Card
}

type TeamSnapshot struct {
	ID     TeamID
	Names  [2]string
	Score  int
	Tricks int
}

type PlaySnapshot struct {
	Seat int
	Name string
	Card card.Card
}

type HandSnapshot struct {
	Lead       card.Card
	TurnedDown bool
	TrumpSet   bool
	TrumpSuit  card.Suit
	LonerSeat  int
	LeaderSeat int
	KittyCount int

	TricksPlayed int
	LedSet       bool
	LedSuit      card.Suit
	Trick        []PlaySnapshot
}

type Snapshot struct {
	Active       bool
	WinningScore int
	DealerSeat   int
	HandsPlayed  int

	Teams   [2]TeamSnapshot
	Players []PlayerSnapshot
	Hand    *HandSnapshot
}

// Snapshot is the read-only projection for presentation. Per-player hands
// are included; a renderer showing one player's view filters the rest
// itself.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Active:       g.Active(),
		WinningScore: g.cfg.WinningScore,
		DealerSeat:   g.seating.Dealer().Seat,
		HandsPlayed:  g.handsPlayed,
	}

	for _, team := range g.seating.teams {
		s.Teams[team.ID] = TeamSnapshot{
			ID:     team.ID,
			Names:  [2]string{team.players[0].Name, team.players[1].Name},
			Score:  team.score,
			Tricks: team.tricks,
		}
	}

	for _, p := range g.seating.players {
		cards := make([]card.Card, p.cards.Count())
		copy(cards, p.cards)
		s.Players = append(s.Players, PlayerSnapshot{
			Seat:  p.Seat,
			Name:  p.Name,
			Team:  p.Team,
			Skip:  p.skip,
			Cards: cards,
		})
	}

	if h := g.hand; h != nil {
		hs := &HandSnapshot{
			Lead:         h.lead,
			TurnedDown:   h.turnedDown,
			TrumpSet:     h.trumpSet,
			TrumpSuit:    h.trumpSuit,
			LonerSeat:    InvalidSeat,
			LeaderSeat:   h.leader.Seat,
			KittyCount:   h.kitty.Count(),
			TricksPlayed: h.tricksPlayed,
		}
		if h.loner != nil {
			hs.LonerSeat = h.loner.Seat
		}
		if h.trick != nil {
			if led, ok := h.trick.LedSuit(); ok {
				hs.LedSet = true
				hs.LedSuit = led
			}
			for _, play := range h.trick.plays {
				hs.Trick = append(hs.Trick, PlaySnapshot{
					Seat: play.Player.Seat,
					Name: play.Player.Name,
					Card: play.Card,
				})
			}
		}
		s.Hand = hs
	}
	return s
}
