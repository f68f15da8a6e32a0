package replay

import (
	"errors"
	"fmt"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

const defaultGameID = "replay_local"

// GenerateTape replays one scripted hand through the real engine and
// returns its event transcript. The script must answer every engine query
// in order; any divergence aborts with a ReplayError naming the step.
func GenerateTape(spec HandSpec) (*Tape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	driver := &scriptDriver{decisions: ns.decisions}
	game, err := euchre.NewGame(euchre.Config{
		MaxSolicits:      1, // 脚本答案必须一次合法
		Seed:             ns.seed,
		ForcedDealerSeat: &ns.dealerSeat,
		DeckOverride:     ns.deck,
	})
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}
	for seat := 0; seat < euchre.NumSeats; seat++ {
		if err := game.SitDown(seat, ns.names[seat], &seatAgent{driver: driver, seat: seat}); err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "seat_init_failed", Message: err.Error()}
		}
	}

	if err := game.DealHand(); err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "deal_failed", Message: err.Error()}
	}
	hand := game.Hand()
	if err := hand.ProcessCallTrump(); err != nil {
		return nil, driver.fail(err)
	}
	for hand.Active() {
		if _, err := hand.PlayTrick(); err != nil {
			return nil, driver.fail(err)
		}
	}
	result, err := game.SettleHand()
	if err != nil {
		return nil, driver.fail(err)
	}
	if driver.cursor != len(ns.decisions) {
		return nil, &ReplayError{
			StepIndex: int32(driver.cursor),
			Reason:    "unused_decisions",
			Message:   fmt.Sprintf("hand completed with %d unused decisions", len(ns.decisions)-driver.cursor),
		}
	}

	tape := &Tape{
		TapeVersion: 1,
		GameID:      defaultGameID,
		DealerSeat:  ns.dealerSeat,
	}
	for i, ev := range hand.Events() {
		tape.Events = append(tape.Events, toTapeEvent(uint64(i), ev))
	}
	tape.Settlement = &TapeSettlement{
		CallingTeam:     int(result.CallingTeam),
		WinningTeam:     int(result.WinningTeam),
		CallingTricks:   result.CallingTricks,
		DefendingTricks: result.DefendingTricks,
		Points:          result.Points,
		March:           result.March,
		Euchred:         result.Euchred,
		Loner:           result.Loner,
	}
	return tape, nil
}

func toTapeEvent(seq uint64, ev euchre.HandEvent) TapeEvent {
	out := TapeEvent{
		Seq:    seq,
		Type:   string(ev.Type),
		Seat:   ev.Seat,
		Team:   int(ev.Team),
		Points: ev.Points,
		Tricks: ev.Tricks,
	}
	if ev.Card != card.CardInvalid {
		out.Card = card.CompactString(ev.Card)
	}
	switch ev.Type {
	case euchre.EventOrderUp, euchre.EventCallSuit, euchre.EventTurnDown:
		out.Suit = ev.Suit.Name()
	}
	if len(ev.Cards) > 0 {
		out.Cards = card.CardStrings(ev.Cards)
	}
	return out
}

// scriptDriver hands scripted decisions to the seat agents one at a time.
// The first divergence between the script and the engine's actual query is
// latched in err; agents answer harmlessly after that so the engine fails
// fast and the latched error wins.
type scriptDriver struct {
	decisions []normalizedDecision
	cursor    int
	err       *ReplayError
}

func (d *scriptDriver) next(seat int, query string) (normalizedDecision, bool) {
	if d.err != nil {
		return normalizedDecision{}, false
	}
	if d.cursor >= len(d.decisions) {
		d.err = &ReplayError{
			StepIndex: int32(d.cursor),
			Reason:    "script_exhausted",
			Message:   fmt.Sprintf("engine asked seat %d for %s but the script is empty", seat, query),
			Expected:  &ExpectedQuery{Seat: seat, Query: query},
		}
		return normalizedDecision{}, false
	}
	dec := d.decisions[d.cursor]
	if dec.seat != seat || dec.query != query {
		d.err = &ReplayError{
			StepIndex: int32(d.cursor),
			Reason:    "decision_mismatch",
			Message:   fmt.Sprintf("script has %s by seat %d, engine asked seat %d for %s", dec.query, dec.seat, seat, query),
			Expected:  &ExpectedQuery{Seat: seat, Query: query},
		}
		return normalizedDecision{}, false
	}
	d.cursor++
	return dec, true
}

// fail converts an engine error into a ReplayError, preferring the latched
// script divergence when there is one.
func (d *scriptDriver) fail(err error) error {
	if d.err != nil {
		return d.err
	}
	var illegal *euchre.IllegalMoveError
	if errors.As(err, &illegal) {
		step := d.cursor - 1
		if step < 0 {
			step = 0
		}
		return &ReplayError{StepIndex: int32(step), Reason: "illegal_decision", Message: err.Error()}
	}
	return &ReplayError{StepIndex: -1, Reason: "engine_failed", Message: err.Error()}
}

// seatAgent is the euchre.Agent for one seat, answering from the shared
// script.
type seatAgent struct {
	driver *scriptDriver
	seat   int
}

func (a *seatAgent) CallTrump(euchre.HandView) bool {
	dec, ok := a.driver.next(a.seat, queryCallTrump)
	return ok && dec.call
}

func (a *seatAgent) ChooseTrump(euchre.HandView) (card.Suit, bool) {
	dec, ok := a.driver.next(a.seat, queryChooseTrump)
	if !ok || !dec.call {
		return 0, false
	}
	return dec.suit, true
}

func (a *seatAgent) ReplaceCard(euchre.HandView, card.Card) card.Card {
	dec, ok := a.driver.next(a.seat, queryReplaceCard)
	if !ok {
		return card.CardInvalid
	}
	return dec.card
}

func (a *seatAgent) GoAlone(euchre.HandView) bool {
	dec, ok := a.driver.next(a.seat, queryGoAlone)
	return ok && dec.call
}

func (a *seatAgent) PlayCard(euchre.HandView) card.Card {
	dec, ok := a.driver.next(a.seat, queryPlayCard)
	if !ok {
		return card.CardInvalid
	}
	return dec.card
}
