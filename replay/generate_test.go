package replay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lonerHandSpec stacks every seat with a single suit: seat 1 hearts, seat 2
// clubs, seat 3 diamonds, dealer 0 spades with the A♠ face up. The dealer
// orders it up, goes alone and sweeps all five tricks.
func lonerHandSpec() HandSpec {
	return HandSpec{
		DealerSeat: 0,
		Seats: []SeatSpec{
			{Seat: 0, Name: "Dealer"},
		},
		Deck: []string{
			"9h", "Th", "Jh", "Qh", "Kh",
			"9c", "Tc", "Jc", "Qc", "Kc",
			"9d", "Td", "Jd", "Qd", "Kd",
			"9s", "Ts", "Js", "Qs", "Ks",
			"As",
			"Ah", "Ac", "Ad",
		},
		Decisions: []DecisionSpec{
			{Type: "call_trump", Seat: 1},
			{Type: "call_trump", Seat: 2},
			{Type: "call_trump", Seat: 3},
			{Type: "call_trump", Seat: 0, Call: true},
			{Type: "replace_card", Seat: 0, Card: "9s"},
			{Type: "go_alone", Seat: 0, Call: true},
			// Partner (seat 2) sits out; seat 1 leads, the dealer trumps in
			// and then runs the spades.
			{Type: "play_card", Seat: 1, Card: "Kh"},
			{Type: "play_card", Seat: 3, Card: "9d"},
			{Type: "play_card", Seat: 0, Card: "Ts"},
			{Type: "play_card", Seat: 0, Card: "Js"},
			{Type: "play_card", Seat: 1, Card: "9h"},
			{Type: "play_card", Seat: 3, Card: "Td"},
			{Type: "play_card", Seat: 0, Card: "Qs"},
			{Type: "play_card", Seat: 1, Card: "Th"},
			{Type: "play_card", Seat: 3, Card: "Jd"},
			{Type: "play_card", Seat: 0, Card: "Ks"},
			{Type: "play_card", Seat: 1, Card: "Jh"},
			{Type: "play_card", Seat: 3, Card: "Qd"},
			{Type: "play_card", Seat: 0, Card: "As"},
			{Type: "play_card", Seat: 1, Card: "Qh"},
			{Type: "play_card", Seat: 3, Card: "Kd"},
		},
		RNG: &RNGSpec{Seed: 7},
	}
}

func TestGenerateTape_LonerMarch(t *testing.T) {
	tape, err := GenerateTape(lonerHandSpec())
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}

	if tape.Settlement == nil {
		t.Fatalf("expected a settlement on the tape")
	}
	s := tape.Settlement
	if s.WinningTeam != 0 || s.Points != 4 || !s.March || !s.Loner {
		t.Fatalf("expected a 4-point loner march for team 0, got %+v", s)
	}

	counts := make(map[string]int)
	for _, e := range tape.Events {
		counts[e.Type]++
	}
	if counts["deal"] != 4 || counts["order_up"] != 1 || counts["discard"] != 1 ||
		counts["go_alone"] != 1 || counts["play"] != 15 || counts["trick_won"] != 5 ||
		counts["settle"] != 1 {
		t.Fatalf("unexpected event mix: %v", counts)
	}

	for i, e := range tape.Events {
		if e.Seq != uint64(i) {
			t.Fatalf("event %d has seq %d", i, e.Seq)
		}
	}
}

func TestGenerateTape_IsDeterministic(t *testing.T) {
	tapeA, err := GenerateTape(lonerHandSpec())
	if err != nil {
		t.Fatalf("GenerateTape A failed: %v", err)
	}
	tapeB, err := GenerateTape(lonerHandSpec())
	if err != nil {
		t.Fatalf("GenerateTape B failed: %v", err)
	}
	if diff := cmp.Diff(tapeA, tapeB); diff != "" {
		t.Fatalf("tapes diverged for the same spec:\n%s", diff)
	}
}

func TestGenerateTape_DecisionMismatch(t *testing.T) {
	spec := lonerHandSpec()
	spec.Decisions[0].Seat = 2 // engine asks seat 1 first

	_, err := GenerateTape(spec)
	replayErr, ok := err.(*ReplayError)
	if !ok {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if replayErr.Reason != "decision_mismatch" || replayErr.StepIndex != 0 {
		t.Fatalf("unexpected error: %+v", replayErr)
	}
	if replayErr.Expected == nil || replayErr.Expected.Seat != 1 || replayErr.Expected.Query != "call_trump" {
		t.Fatalf("expected query not reported: %+v", replayErr.Expected)
	}
}

func TestGenerateTape_IllegalPlay(t *testing.T) {
	spec := lonerHandSpec()
	// Seat 1 does not hold the A♥; it is buried in the kitty.
	spec.Decisions[6].Card = "Ah"

	_, err := GenerateTape(spec)
	replayErr, ok := err.(*ReplayError)
	if !ok {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if replayErr.Reason != "illegal_decision" {
		t.Fatalf("unexpected reason: %s", replayErr.Reason)
	}
}

func TestGenerateTape_UnusedDecisions(t *testing.T) {
	spec := lonerHandSpec()
	spec.Decisions = append(spec.Decisions, DecisionSpec{Type: "play_card", Seat: 1, Card: "Ah"})

	_, err := GenerateTape(spec)
	replayErr, ok := err.(*ReplayError)
	if !ok {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if replayErr.Reason != "unused_decisions" {
		t.Fatalf("unexpected reason: %s", replayErr.Reason)
	}
}

func TestGenerateTape_RejectsNonEuchreDeckCard(t *testing.T) {
	spec := lonerHandSpec()
	spec.Deck[0] = "2h"

	_, err := GenerateTape(spec)
	replayErr, ok := err.(*ReplayError)
	if !ok {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if replayErr.Reason != "invalid_deck_card" {
		t.Fatalf("unexpected reason: %s", replayErr.Reason)
	}
}

func TestGenerateTape_BuildsDeckFromHandConstraints(t *testing.T) {
	spec := HandSpec{
		DealerSeat: 0,
		Seats: []SeatSpec{
			{Seat: 0, Hand: []string{"9s", "Ts", "Js", "Qs", "Ks"}},
		},
		Lead: "As",
		Decisions: []DecisionSpec{
			{Type: "call_trump", Seat: 1},
			{Type: "call_trump", Seat: 2},
			{Type: "call_trump", Seat: 3},
			{Type: "call_trump", Seat: 0, Call: true},
			{Type: "replace_card", Seat: 0, Card: "9s"},
			{Type: "go_alone", Seat: 0, Call: true},
		},
		RNG: &RNGSpec{Seed: 11},
	}
	// The script covers bidding only, so generation stops at the first
	// unscripted play; the deck itself must already have honored the
	// constraints for the dealer to order up and discard legally.
	_, err := GenerateTape(spec)
	replayErr, ok := err.(*ReplayError)
	if !ok {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if replayErr.Reason != "script_exhausted" {
		t.Fatalf("unexpected reason: %s", replayErr.Reason)
	}
}

func TestToWireTape(t *testing.T) {
	tape, err := GenerateTape(lonerHandSpec())
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}
	wire := ToWireTape(tape)
	if wire.TapeVersion != tape.TapeVersion || wire.GameID != tape.GameID {
		t.Fatalf("wire header mismatch")
	}
	if len(wire.Events) != len(tape.Events) {
		t.Fatalf("wire events mismatch: %d vs %d", len(wire.Events), len(tape.Events))
	}
	if wire.Settlement == nil || wire.Settlement.Points != tape.Settlement.Points {
		t.Fatalf("wire settlement mismatch")
	}
	if ToWireTape(nil) != nil {
		t.Fatalf("nil tape must map to nil wire tape")
	}
}
