package euchre

import "testing"

func testSeating() *Seating {
	return newSeating([NumSeats]string{"North", "East", "South", "West"})
}

func TestSeating_SeatOrderAlternatesTeams(t *testing.T) {
	s := testSeating()
	for seat, p := range s.players {
		want := TeamID(seat % 2)
		if p.Team != want {
			t.Fatalf("seat %d: expected team %d, got %d", seat, want, p.Team)
		}
	}
}

func TestSeating_PartnersSitOpposite(t *testing.T) {
	s := testSeating()
	for seat, p := range s.players {
		partner, err := s.PartnerOf(p)
		if err != nil {
			t.Fatalf("PartnerOf err: %v", err)
		}
		if partner.Seat != (seat+2)%NumSeats {
			t.Fatalf("seat %d: partner at %d, expected %d", seat, partner.Seat, (seat+2)%NumSeats)
		}
	}
}

func TestSeating_StartPlayerIsLeftOfDealer(t *testing.T) {
	s := testSeating()
	for i := 0; i < NumSeats; i++ {
		if s.StartPlayer().Seat != (s.Dealer().Seat+1)%NumSeats {
			t.Fatalf("start player %d not left of dealer %d", s.StartPlayer().Seat, s.Dealer().Seat)
		}
		s.rotateDealer()
	}
}

func TestSeating_RotateDealerModArithmetic(t *testing.T) {
	s := testSeating()
	start := s.Dealer().Seat
	for k := 1; k <= 9; k++ {
		s.rotateDealer()
		if got, want := s.Dealer().Seat, (start+k)%NumSeats; got != want {
			t.Fatalf("after %d rotations: dealer %d, expected %d", k, got, want)
		}
	}
}

func TestSeating_OrderedWrapsOnce(t *testing.T) {
	s := testSeating()
	order, err := s.Ordered(s.players[2])
	if err != nil {
		t.Fatalf("Ordered err: %v", err)
	}
	wantSeats := []int{2, 3, 0, 1}
	if len(order) != NumSeats {
		t.Fatalf("expected %d players, got %d", NumSeats, len(order))
	}
	for i, p := range order {
		if p.Seat != wantSeats[i] {
			t.Fatalf("position %d: seat %d, expected %d", i, p.Seat, wantSeats[i])
		}
	}

	// Recomputed fresh: a second call returns an independent slice.
	again, _ := s.Ordered(s.players[2])
	again[0] = nil
	if order[0] == nil {
		t.Fatalf("Ordered slices must not share backing storage")
	}
}

func TestSeating_LookupsRejectUnseatedPlayer(t *testing.T) {
	s := testSeating()
	stranger := &Player{Name: "Drifter", Seat: 0}
	if _, err := s.TeamOf(stranger); err != ErrPlayerNotFound {
		t.Fatalf("TeamOf: expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := s.PartnerOf(stranger); err != ErrPlayerNotFound {
		t.Fatalf("PartnerOf: expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := s.Ordered(stranger); err != ErrPlayerNotFound {
		t.Fatalf("Ordered: expected ErrPlayerNotFound, got %v", err)
	}
}
