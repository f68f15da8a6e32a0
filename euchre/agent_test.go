package euchre

import "euchre-lite/card"

type chooseAns struct {
	suit card.Suit
	ok   bool
}

// scriptedAgent answers queries from per-query scripts and falls back to a
// safe default (pass / first legal card) once a script is exhausted.
type scriptedAgent struct {
	calls    []bool
	chooses  []chooseAns
	replaces []card.Card
	alones   []bool
	plays    []card.Card
}

func (a *scriptedAgent) CallTrump(view HandView) bool {
	if len(a.calls) > 0 {
		ans := a.calls[0]
		a.calls = a.calls[1:]
		return ans
	}
	return false
}

func (a *scriptedAgent) ChooseTrump(view HandView) (card.Suit, bool) {
	if len(a.chooses) > 0 {
		ans := a.chooses[0]
		a.chooses = a.chooses[1:]
		return ans.suit, ans.ok
	}
	if view.MustChoose {
		return firstLegalSuit(view), true
	}
	return 0, false
}

func (a *scriptedAgent) ReplaceCard(view HandView, lead card.Card) card.Card {
	if len(a.replaces) > 0 {
		ans := a.replaces[0]
		a.replaces = a.replaces[1:]
		return ans
	}
	return view.Cards[0]
}

func (a *scriptedAgent) GoAlone(view HandView) bool {
	if len(a.alones) > 0 {
		ans := a.alones[0]
		a.alones = a.alones[1:]
		return ans
	}
	return false
}

func (a *scriptedAgent) PlayCard(view HandView) card.Card {
	if len(a.plays) > 0 {
		ans := a.plays[0]
		a.plays = a.plays[1:]
		return ans
	}
	return firstLegalCard(view)
}

func firstLegalSuit(view HandView) card.Suit {
	for _, s := range card.Suits {
		if s != view.Lead.Suit() {
			return s
		}
	}
	return 0
}

func firstLegalCard(view HandView) card.Card {
	if view.LedSet {
		inSuit := view.Cards.OfEffectiveSuit(view.LedSuit, view.TrumpSuit)
		if inSuit.Count() > 0 {
			return inSuit[0]
		}
	}
	return view.Cards[0]
}

// newTestGame seats four scripted agents with a fixed first dealer.
func newTestGame(cfg Config, agents [NumSeats]*scriptedAgent) (*Game, error) {
	if cfg.ForcedDealerSeat == nil {
		dealer := 0
		cfg.ForcedDealerSeat = &dealer
	}
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}
	names := [NumSeats]string{"North", "East", "South", "West"}
	for seat, agent := range agents {
		if agent == nil {
			agent = &scriptedAgent{}
		}
		if err := g.SitDown(seat, names[seat], agent); err != nil {
			return nil, err
		}
	}
	return g, nil
}
