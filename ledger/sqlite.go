package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLocalDBName = "euchre_local.db"

type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath, err := localDatabasePathFromEnv()
	if err != nil {
		return nil, err
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// modernc sqlite: 单连接即可，避免并发写冲突
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteService{db: db}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) AppendHand(ctx context.Context, rec HandRecord) error {
	if strings.TrimSpace(rec.GameID) == "" {
		return fmt.Errorf("empty game id")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO ledger_hand_results (
    game_id, hand_no, dealer_seat, trump_suit,
    calling_team, winning_team, points, march, euchred, loner,
    played_at_ms
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (game_id, hand_no) DO NOTHING
`, rec.GameID, rec.HandNo, rec.DealerSeat, rec.TrumpSuit,
		rec.CallingTeam, rec.WinningTeam, rec.Points,
		boolInt(rec.March), boolInt(rec.Euchred), boolInt(rec.Loner),
		timeMs(rec.PlayedAt))
	return err
}

func (s *SQLiteService) AppendGame(ctx context.Context, rec GameRecord) error {
	if strings.TrimSpace(rec.GameID) == "" {
		return fmt.Errorf("empty game id")
	}
	seatsRaw, err := json.Marshal(rec.Seats)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO ledger_game_results (
    game_id, played_at_ms, winning_team, score_ns, score_ew,
    hands_played, seats_json
)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (game_id) DO NOTHING
`, rec.GameID, timeMs(rec.PlayedAt), rec.WinningTeam,
		rec.Scores[0], rec.Scores[1], rec.HandsPlayed, string(seatsRaw))
	return err
}

func (s *SQLiteService) ListRecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT game_id, played_at_ms, winning_team, score_ns, score_ew, hands_played, seats_json
FROM ledger_game_results
ORDER BY played_at_ms DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameRecord, 0, limit)
	for rows.Next() {
		var rec GameRecord
		var playedAtMs int64
		var seatsRaw string
		if err := rows.Scan(&rec.GameID, &playedAtMs, &rec.WinningTeam,
			&rec.Scores[0], &rec.Scores[1], &rec.HandsPlayed, &seatsRaw); err != nil {
			return nil, err
		}
		rec.PlayedAt = msTime(playedAtMs)
		if err := json.Unmarshal([]byte(seatsRaw), &rec.Seats); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteService) GameHands(ctx context.Context, gameID string) ([]HandRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT game_id, hand_no, dealer_seat, trump_suit,
       calling_team, winning_team, points, march, euchred, loner, played_at_ms
FROM ledger_hand_results
WHERE game_id = ?
ORDER BY hand_no ASC
`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HandRecord
	for rows.Next() {
		var rec HandRecord
		var march, euchred, loner int
		var playedAtMs int64
		if err := rows.Scan(&rec.GameID, &rec.HandNo, &rec.DealerSeat, &rec.TrumpSuit,
			&rec.CallingTeam, &rec.WinningTeam, &rec.Points,
			&march, &euchred, &loner, &playedAtMs); err != nil {
			return nil, err
		}
		rec.March = march != 0
		rec.Euchred = euchred != 0
		rec.Loner = loner != 0
		rec.PlayedAt = msTime(playedAtMs)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS ledger_game_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id TEXT NOT NULL UNIQUE,
    played_at_ms INTEGER NOT NULL,
    winning_team INTEGER NOT NULL,
    score_ns INTEGER NOT NULL,
    score_ew INTEGER NOT NULL,
    hands_played INTEGER NOT NULL,
    seats_json TEXT NOT NULL DEFAULT '[]'
)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_game_results_recent ON ledger_game_results(played_at_ms DESC)`,
		`
CREATE TABLE IF NOT EXISTS ledger_hand_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id TEXT NOT NULL,
    hand_no INTEGER NOT NULL,
    dealer_seat INTEGER NOT NULL,
    trump_suit TEXT NOT NULL,
    calling_team INTEGER NOT NULL,
    winning_team INTEGER NOT NULL,
    points INTEGER NOT NULL,
    march INTEGER NOT NULL DEFAULT 0,
    euchred INTEGER NOT NULL DEFAULT 0,
    loner INTEGER NOT NULL DEFAULT 0,
    played_at_ms INTEGER NOT NULL,
    UNIQUE (game_id, hand_no)
)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_hand_results_game ON ledger_hand_results(game_id, hand_no)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func localDatabasePathFromEnv() (string, error) {
	if p := strings.TrimSpace(os.Getenv("LEDGER_LOCAL_DATABASE_PATH")); p != "" {
		return filepath.Clean(p), nil
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "EuchreLite", defaultLocalDBName), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timeMs(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.UnixMilli()
}

func msTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
