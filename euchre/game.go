package euchre

import (
	"fmt"
	"math/rand"
	"time"
)

// Game is the root engine object: two teams, the seating rotation and the
// hand in progress. It is owned by a single goroutine; agent queries block
// that goroutine until answered. No internal locking, no timeouts; a
// fronting layer supplies those if it needs them.
type Game struct {
	cfg Config
	rng *rand.Rand

	seating *Seating
	agents  [NumSeats]Agent

	hand           *Hand
	dealerChosen   bool
	handsPlayed    int
	lastSettlement *SettlementResult
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.WinningScore == 0 {
		cfg.WinningScore = DefaultWinningScore
	}
	if cfg.MaxSolicits == 0 {
		cfg.MaxSolicits = DefaultMaxSolicits
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		seating: newSeating([NumSeats]string{}),
	}, nil
}

// SitDown seats a named player with its decision agent. Seats 0/2 form one
// partnership, 1/3 the other.
func (g *Game) SitDown(seat int, name string, agent Agent) error {
	if seat < 0 || seat >= NumSeats {
		return fmt.Errorf("invalid seat %d", seat)
	}
	if agent == nil {
		return fmt.Errorf("nil agent for seat %d", seat)
	}
	if g.agents[seat] != nil {
		return fmt.Errorf("seat %d already occupied", seat)
	}
	g.agents[seat] = agent
	g.seating.players[seat].Name = name
	return nil
}

func (g *Game) seatedCount() int {
	n := 0
	for _, a := range g.agents {
		if a != nil {
			n++
		}
	}
	return n
}

// Active 任一队伍到达目标分前都为 true
func (g *Game) Active() bool {
	for _, team := range g.seating.teams {
		if team.score >= g.cfg.WinningScore {
			return false
		}
	}
	return true
}

func (g *Game) Seating() *Seating { return g.seating }

func (g *Game) Hand() *Hand { return g.hand }

func (g *Game) WinningScore() int { return g.cfg.WinningScore }

func (g *Game) HandsPlayed() int { return g.handsPlayed }

func (g *Game) LastSettlement() *SettlementResult { return g.lastSettlement }

// Winner returns the winning team once the game has ended.
func (g *Game) Winner() (*Team, bool) {
	for _, team := range g.seating.teams {
		if team.score >= g.cfg.WinningScore {
			return team, true
		}
	}
	return nil, false
}

// DealHand starts the next hand: fresh deck, shuffle, five cards per seat,
// lead card and kitty. Fails with ErrNotActive once a team has reached the
// winning score.
func (g *Game) DealHand() error {
	if !g.Active() {
		return ErrNotActive
	}
	if g.seatedCount() != NumSeats {
		return ErrInvalidState(fmt.Sprintf("need %d seated players, have %d", NumSeats, g.seatedCount()))
	}
	if g.hand != nil && g.hand.Active() {
		return ErrInvalidState("previous hand still in progress")
	}

	if !g.dealerChosen {
		// 首局庄家：随机切牌，测试可用 ForcedDealerSeat 固定
		if g.cfg.ForcedDealerSeat != nil {
			g.seating.setDealer(*g.cfg.ForcedDealerSeat)
		} else {
			g.seating.setDealer(g.rng.Intn(NumSeats))
		}
		g.dealerChosen = true
	}

	hand, err := newHand(g.seating, g.agents, g.rng, g.cfg)
	if err != nil {
		return err
	}
	g.hand = hand
	return nil
}

// SettleHand scores the completed hand, rotates the dealer and clears the
// hand pointer. Exactly one settlement per hand.
func (g *Game) SettleHand() (*SettlementResult, error) {
	h := g.hand
	if h == nil {
		return nil, ErrInvalidState("no hand to settle")
	}
	if h.Active() {
		return nil, ErrInvalidState("hand still in progress")
	}
	if h.trumpTeam == nil {
		return nil, ErrInvalidState("hand has no calling team")
	}

	result, err := settle(g.seating, h)
	if err != nil {
		return nil, err
	}
	g.seating.teams[result.WinningTeam].addScore(result.Points)
	h.record(HandEvent{
		Type:   EventSettle,
		Seat:   InvalidSeat,
		Team:   result.WinningTeam,
		Points: result.Points,
		Tricks: result.winnerTricks(),
	})

	g.seating.rotateDealer()
	g.handsPlayed++
	g.lastSettlement = result
	g.hand = nil
	return result, nil
}

// PlayHand drives one complete hand lifecycle: deal, bidding, five tricks,
// settlement. The between hook (may be nil) runs after every completed
// trick, for rendering.
func (g *Game) PlayHand(between func(Play)) (*SettlementResult, error) {
	if err := g.DealHand(); err != nil {
		return nil, err
	}
	if err := g.hand.ProcessCallTrump(); err != nil {
		return nil, err
	}
	for g.hand.Active() {
		win, err := g.hand.PlayTrick()
		if err != nil {
			return nil, err
		}
		if between != nil {
			between(win)
		}
	}
	return g.SettleHand()
}
