package euchre

import "euchre-lite/card"

// ProcessCallTrump runs the two-round trump selection. Round 1 offers the
// face-up lead card to each player in rotation; the first caller orders it
// up, the dealer side exchange happens and trump is the lead suit. If all
// four pass, round 2 asks each player to name any other suit, and the dealer
// is never offered a pass on the final turn, so the procedure always ends
// with a trump team.
func (h *Hand) ProcessCallTrump() error {
	if h.trumpSet {
		return ErrInvalidState("trump already decided")
	}

	order, err := h.seating.Ordered(h.seating.StartPlayer())
	if err != nil {
		return err
	}

	// Round 1: "order it up"
	for _, p := range order {
		if !h.agents[p.Seat].CallTrump(h.viewFor(p)) {
			continue
		}
		h.trumpSuit = h.lead.Suit()
		h.trumpSet = true
		h.record(HandEvent{Type: EventOrderUp, Seat: p.Seat, Suit: h.trumpSuit})
		if err := h.exchangeLead(p); err != nil {
			return err
		}
		return h.finishCall(p)
	}

	h.turnedDown = true
	h.record(HandEvent{Type: EventTurnDown, Seat: InvalidSeat, Suit: h.lead.Suit()})

	// Round 2: "calling it"; the dealer goes last and may not pass.
	dealer := h.seating.Dealer()
	for _, p := range order {
		suit, called, err := h.solicitChoose(p, p == dealer)
		if err != nil {
			return err
		}
		if !called {
			continue
		}
		h.trumpSuit = suit
		h.trumpSet = true
		h.record(HandEvent{Type: EventCallSuit, Seat: p.Seat, Suit: suit})
		return h.finishCall(p)
	}

	// Unreachable while the forced-dealer rule holds.
	return ErrInvalidState("no trump called")
}

// finishCall fixes the calling team and handles the loner declaration.
func (h *Hand) finishCall(caller *Player) error {
	team, err := h.seating.TeamOf(caller)
	if err != nil {
		return err
	}
	h.trumpTeam = team

	if h.agents[caller.Seat].GoAlone(h.viewFor(caller)) {
		partner, err := h.seating.PartnerOf(caller)
		if err != nil {
			return err
		}
		h.loner = caller
		partner.setSkip(true)
		h.record(HandEvent{Type: EventGoAlone, Seat: caller.Seat, Team: team.ID})
	}
	return nil
}

// exchangeLead makes the round-1 caller discard one held card and take the
// lead card in its place. The discard joins the kitty face down.
func (h *Hand) exchangeLead(caller *Player) error {
	var lastErr error
	for attempt := 0; attempt < h.maxSolicits; attempt++ {
		discard := h.agents[caller.Seat].ReplaceCard(h.viewFor(caller), h.lead)
		if !caller.holds(discard) {
			lastErr = errIllegalMove(caller.Seat, "discard %v not held", discard)
			continue
		}
		caller.removeCard(discard)
		caller.addCards(h.lead)
		h.kitty.Add(discard)
		h.record(HandEvent{Type: EventDiscard, Seat: caller.Seat, Card: discard})
		return nil
	}
	return lastErr
}

// solicitChoose queries one round-2 answer. Passing is rejected for a
// forced dealer, as is calling the turned-down suit.
func (h *Hand) solicitChoose(p *Player, forced bool) (card.Suit, bool, error) {
	view := h.viewFor(p)
	view.MustChoose = forced

	var lastErr error
	for attempt := 0; attempt < h.maxSolicits; attempt++ {
		suit, called := h.agents[p.Seat].ChooseTrump(view)
		if !called {
			if forced {
				lastErr = errIllegalMove(p.Seat, "dealer must choose a suit")
				continue
			}
			return 0, false, nil
		}
		if !suit.Valid() {
			lastErr = errIllegalMove(p.Seat, "unknown suit %d", suit)
			continue
		}
		if suit == h.lead.Suit() {
			lastErr = errIllegalMove(p.Seat, "cannot call the turned-down suit %s", suit.Name())
			continue
		}
		return suit, true, nil
	}
	return 0, false, lastErr
}
