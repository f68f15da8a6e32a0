package euchre

type Team struct {
	ID      TeamID
	players [2]*Player

	score  int
	tricks int
}

func (t *Team) Score() int  { return t.score }
func (t *Team) Tricks() int { return t.tricks }

func (t *Team) Players() [2]*Player { return t.players }

func (t *Team) String() string {
	return t.players[0].Name + " and " + t.players[1].Name
}

func (t *Team) addScore(points int) { t.score += points }
func (t *Team) addTrick()           { t.tricks++ }
func (t *Team) resetTricks()        { t.tricks = 0 }

// Seating is the fixed 4-seat arrangement: two partnerships seated so that
// iterating the seats alternates teams (partners sit opposite). It owns the
// dealer pointer; the Game rotates it once per completed hand.
type Seating struct {
	players     [NumSeats]*Player
	teams       [2]*Team
	dealerIndex int
}

// newSeating seats team north-south in seats 0/2 and team east-west in
// seats 1/3.
func newSeating(names [NumSeats]string) *Seating {
	s := &Seating{}
	s.teams[TeamNorthSouth] = &Team{ID: TeamNorthSouth}
	s.teams[TeamEastWest] = &Team{ID: TeamEastWest}
	for seat, name := range names {
		team := s.teams[seat%2]
		p := &Player{Name: name, Seat: seat, Team: team.ID}
		s.players[seat] = p
		team.players[seat/2] = p
	}
	return s
}

func (s *Seating) Players() []*Player {
	out := make([]*Player, NumSeats)
	copy(out, s.players[:])
	return out
}

func (s *Seating) Teams() [2]*Team { return s.teams }

func (s *Seating) Team(id TeamID) *Team { return s.teams[id] }

// Dealer 当前庄家
func (s *Seating) Dealer() *Player {
	return s.players[s.dealerIndex%NumSeats]
}

// StartPlayer is the player left of the dealer; bidding and the first trick
// of a hand start there.
func (s *Seating) StartPlayer() *Player {
	return s.players[(s.dealerIndex+1)%NumSeats]
}

// Ordered returns all four players beginning at first and wrapping once
// through the fixed rotation. The slice is computed fresh on every call.
func (s *Seating) Ordered(first *Player) ([]*Player, error) {
	start := InvalidSeat
	for i, p := range s.players {
		if p == first {
			start = i
			break
		}
	}
	if start == InvalidSeat {
		return nil, ErrPlayerNotFound
	}
	out := make([]*Player, 0, NumSeats)
	for j := 0; j < NumSeats; j++ {
		out = append(out, s.players[(start+j)%NumSeats])
	}
	return out, nil
}

func (s *Seating) TeamOf(p *Player) (*Team, error) {
	for _, team := range s.teams {
		for _, member := range team.players {
			if member == p {
				return team, nil
			}
		}
	}
	return nil, ErrPlayerNotFound
}

func (s *Seating) PartnerOf(p *Player) (*Player, error) {
	team, err := s.TeamOf(p)
	if err != nil {
		return nil, err
	}
	if team.players[0] == p {
		return team.players[1], nil
	}
	return team.players[0], nil
}

// rotateDealer 庄家指针 +1 (mod 4)，每手牌结算后由 Game 调用一次
func (s *Seating) rotateDealer() {
	s.dealerIndex = (s.dealerIndex + 1) % NumSeats
}

func (s *Seating) setDealer(seat int) {
	s.dealerIndex = seat % NumSeats
}
