package euchre

import "euchre-lite/card"

// EventType identifies one entry in a hand's event log.
type EventType string

const (
	EventDeal     EventType = "deal"      // per-seat: five cards dealt
	EventLead     EventType = "lead"      // the face-up card
	EventOrderUp  EventType = "order_up"  // round-1 call
	EventTurnDown EventType = "turn_down" // round 1 ended with no caller
	EventCallSuit EventType = "call_suit" // round-2 call
	EventDiscard  EventType = "discard"   // dealer-exchange discard
	EventGoAlone  EventType = "go_alone"
	EventPlay     EventType = "play"
	EventTrickWon EventType = "trick_won"
	EventSettle   EventType = "settle"
)

// HandEvent is one step of a hand as it actually happened. The engine
// appends events as decisions resolve; replay tapes and the CLI transcript
// are both projections of this log.
type HandEvent struct {
	Type EventType
	Seat int       // acting seat, InvalidSeat when not seat-specific
	Card card.Card // CardInvalid when not card-specific
	Suit card.Suit
	Team TeamID

	Cards  card.CardList // EventDeal: the dealt cards
	Points int           // EventSettle: points awarded
	Tricks int           // EventTrickWon/EventSettle: running count
}

func (h *Hand) record(ev HandEvent) {
	h.events = append(h.events, ev)
}

// Events returns the hand's event log so far (copy).
func (h *Hand) Events() []HandEvent {
	out := make([]HandEvent, len(h.events))
	copy(out, h.events)
	return out
}
