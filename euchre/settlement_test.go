package euchre

import "testing"

func settledHand(t *testing.T, callingTricks int, loner bool) (*Seating, *Hand) {
	t.Helper()
	s := testSeating()
	calling := s.teams[TeamNorthSouth]
	defending := s.teams[TeamEastWest]
	calling.tricks = callingTricks
	defending.tricks = HandSize - callingTricks

	h := &Hand{seating: s, trumpTeam: calling}
	if loner {
		h.loner = calling.players[0]
	}
	return s, h
}

func TestSettle_ThreeOrFourTricksScoresOne(t *testing.T) {
	for _, tricks := range []int{3, 4} {
		s, h := settledHand(t, tricks, false)
		result, err := settle(s, h)
		if err != nil {
			t.Fatalf("settle err: %v", err)
		}
		if result.WinningTeam != TeamNorthSouth || result.Points != 1 {
			t.Fatalf("tricks=%d: got %+v", tricks, result)
		}
		if result.March || result.Euchred {
			t.Fatalf("tricks=%d: unexpected flags %+v", tricks, result)
		}
	}
}

func TestSettle_MarchScoresTwo(t *testing.T) {
	s, h := settledHand(t, HandSize, false)
	result, err := settle(s, h)
	if err != nil {
		t.Fatalf("settle err: %v", err)
	}
	if !result.March || result.Points != 2 || result.WinningTeam != TeamNorthSouth {
		t.Fatalf("got %+v", result)
	}
}

func TestSettle_LonerMarchScoresFour(t *testing.T) {
	s, h := settledHand(t, HandSize, true)
	result, err := settle(s, h)
	if err != nil {
		t.Fatalf("settle err: %v", err)
	}
	if !result.March || !result.Loner || result.Points != 4 {
		t.Fatalf("got %+v", result)
	}
}

func TestSettle_LonerWithoutMarchScoresNormally(t *testing.T) {
	s, h := settledHand(t, 4, true)
	result, err := settle(s, h)
	if err != nil {
		t.Fatalf("settle err: %v", err)
	}
	if result.Points != 1 || result.March {
		t.Fatalf("got %+v", result)
	}
}

func TestSettle_EuchredGivesDefendersTwo(t *testing.T) {
	for _, tricks := range []int{0, 1, 2} {
		s, h := settledHand(t, tricks, false)
		result, err := settle(s, h)
		if err != nil {
			t.Fatalf("settle err: %v", err)
		}
		if !result.Euchred || result.WinningTeam != TeamEastWest || result.Points != 2 {
			t.Fatalf("tricks=%d: got %+v", tricks, result)
		}
	}
}

func TestSettle_RejectsBadTrickArithmetic(t *testing.T) {
	s, h := settledHand(t, 3, false)
	s.teams[TeamEastWest].tricks = 3 // 3+3 != 5
	if _, err := settle(s, h); err == nil {
		t.Fatalf("expected error for bad trick totals")
	}
}
