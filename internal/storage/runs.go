package storage

import (
	"fmt"
	"time"
)

// Run records one finished play session.
type Run struct {
	ID           int64
	GameID       string
	LevelID      string // Empty for games without levels
	Score        int
	Won          bool
	Ticks        int    // Simulation ticks played
	DroppedTicks uint64 // Ticks the clock discarded under load
	Seed         int64
	CreatedAt    time.Time
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, level_id, score, won, ticks, dropped_ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.LevelID, r.Score, r.Won, r.Ticks, int64(r.DroppedTicks), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, score, won, ticks, dropped_ticks, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var dropped int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.LevelID, &r.Score, &r.Won,
			&r.Ticks, &dropped, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.DroppedTicks = uint64(dropped)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// WinCount returns how many runs of a game (and level, if not empty) were won.
func (s *Store) WinCount(gameID, levelID string) (int, error) {
	query := "SELECT COUNT(*) FROM runs WHERE game_id = ? AND won = 1"
	args := []any{gameID}
	if levelID != "" {
		query += " AND level_id = ?"
		args = append(args, levelID)
	}

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return n, nil
}
