package store

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ts INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    total INTEGER NOT NULL,
    accuracy REAL NOT NULL
);
`

// SQLiteStore persists quiz results in a single append-only table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveResult validates and appends one quiz outcome, returning the row
// as saved. A correct count above total (or below zero) is accepted
// as-is; only a non-positive total is rejected.
func (s *SQLiteStore) SaveResult(correct, total int) (Result, error) {
	if total <= 0 {
		return Result{}, fmt.Errorf("%w: total must be a positive integer", ErrInvalidResult)
	}

	res := Result{
		TS:       s.now().Unix(),
		Correct:  correct,
		Total:    total,
		Accuracy: math.Round(float64(correct)/float64(total)*10000) / 10000,
	}

	_, err := s.db.Exec(
		"INSERT INTO results (ts, correct, total, accuracy) VALUES (?, ?, ?, ?)",
		res.TS, res.Correct, res.Total, res.Accuracy,
	)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// ListResults returns up to limit results, newest first. The limit is
// clamped to [1, 1000] regardless of input. Rows sharing a timestamp
// come back in reverse insertion order, which keeps ties stable.
func (s *SQLiteStore) ListResults(limit int) ([]Result, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := s.db.Query(
		"SELECT ts, correct, total, accuracy FROM results ORDER BY ts DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.TS, &r.Correct, &r.Total, &r.Accuracy); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
