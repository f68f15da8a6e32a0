package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"euchre-lite/euchre"
)

const defaultRecentLimit = 200

var ErrNotFound = errors.New("not found")

// Service is the append-only results store: one row per settled hand and
// one per finished game. Results are facts, never updated once written.
type Service interface {
	Close() error
	AppendHand(ctx context.Context, rec HandRecord) error
	AppendGame(ctx context.Context, rec GameRecord) error
	ListRecentGames(ctx context.Context, limit int) ([]GameRecord, error)
	GameHands(ctx context.Context, gameID string) ([]HandRecord, error)
}

type GameRecord struct {
	GameID      string    `json:"game_id"`
	PlayedAt    time.Time `json:"played_at"`
	WinningTeam int       `json:"winning_team"`
	Scores      [2]int    `json:"scores"`
	HandsPlayed int       `json:"hands_played"`
	Seats       [4]string `json:"seats"`
}

type HandRecord struct {
	GameID      string    `json:"game_id"`
	HandNo      int       `json:"hand_no"`
	DealerSeat  int       `json:"dealer_seat"`
	TrumpSuit   string    `json:"trump_suit"`
	CallingTeam int       `json:"calling_team"`
	WinningTeam int       `json:"winning_team"`
	Points      int       `json:"points"`
	March       bool      `json:"march"`
	Euchred     bool      `json:"euchred"`
	Loner       bool      `json:"loner"`
	PlayedAt    time.Time `json:"played_at"`
}

// HandRecordOf projects one settlement into a ledger row.
func HandRecordOf(gameID string, handNo, dealerSeat int, trump string, res *euchre.SettlementResult) HandRecord {
	return HandRecord{
		GameID:      gameID,
		HandNo:      handNo,
		DealerSeat:  dealerSeat,
		TrumpSuit:   trump,
		CallingTeam: int(res.CallingTeam),
		WinningTeam: int(res.WinningTeam),
		Points:      res.Points,
		March:       res.March,
		Euchred:     res.Euchred,
		Loner:       res.Loner,
		PlayedAt:    time.Now().UTC(),
	}
}

// MemoryService keeps results in process memory; the default for casual
// CLI play where nothing needs to survive the process.
type MemoryService struct {
	mu    sync.RWMutex
	games []GameRecord
	hands map[string][]HandRecord
}

func NewMemoryService() *MemoryService {
	return &MemoryService{hands: make(map[string][]HandRecord)}
}

func (m *MemoryService) Close() error { return nil }

func (m *MemoryService) AppendHand(_ context.Context, rec HandRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands[rec.GameID] = append(m.hands[rec.GameID], rec)
	return nil
}

func (m *MemoryService) AppendGame(_ context.Context, rec GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games = append(m.games, rec)
	return nil
}

func (m *MemoryService) ListRecentGames(_ context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GameRecord, len(m.games))
	copy(out, m.games)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayedAt.After(out[j].PlayedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryService) GameHands(_ context.Context, gameID string) ([]HandRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hands, ok := m.hands[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]HandRecord, len(hands))
	copy(out, hands)
	return out, nil
}
