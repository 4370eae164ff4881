package okr

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryEntry is one stored run.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	Period     string    `json:"period"`
	Score      float64   `json:"score"`
	Objectives int       `json:"objectives"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store persists run history in a local SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and migrates) the history database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS okr_runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		period      TEXT NOT NULL,
		score       REAL NOT NULL,
		objectives  INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a scored plan to the history.
func (s *Store) Record(p *Plan) error {
	_, err := s.db.Exec(
		`INSERT INTO okr_runs (period, score, objectives, recorded_at) VALUES (?, ?, ?, ?)`,
		p.Period, p.OverallScore, len(p.Objectives), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// History returns up to limit entries, newest first.
func (s *Store) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, period, score, objectives, recorded_at FROM okr_runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ts string
		if err := rows.Scan(&e.ID, &e.Period, &e.Score, &e.Objectives, &ts); err != nil {
			return nil, err
		}
		e.RecordedAt, _ = time.Parse(time.RFC3339, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
