package stats

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// SQLiteStore keeps the record and the round history in a SQLite database
type SQLiteStore struct {
	db       *sql.DB
	defaults Record
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(path string, defaults Record) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	s := &SQLiteStore{
		db:       db,
		defaults: defaults,
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			rounds INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			ties INTEGER NOT NULL DEFAULT 0,
			chips INTEGER NOT NULL,
			player_blackjacks INTEGER NOT NULL DEFAULT 0,
			dealer_blackjacks INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS rounds (
			round_id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			bet INTEGER NOT NULL,
			outcome INTEGER NOT NULL,
			chip_delta INTEGER NOT NULL,
			player_value INTEGER NOT NULL,
			dealer_value INTEGER NOT NULL,
			played_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// Defaults returns the record used when nothing has been saved
func (s *SQLiteStore) Defaults() Record {
	return s.defaults
}

// Load reads the record
func (s *SQLiteStore) Load() (Record, error) {
	var r Record
	err := s.db.QueryRow(`
		SELECT rounds, wins, losses, ties, chips, player_blackjacks, dealer_blackjacks
		FROM stats
		WHERE id = 1`).Scan(&r.Rounds, &r.Wins, &r.Losses, &r.Ties, &r.Chips, &r.PlayerBlackjacks, &r.DealerBlackjacks)
	if errors.Is(err, sql.ErrNoRows) {
		return s.defaults, nil
	} else if err != nil {
		return s.defaults, fmt.Errorf("could not load stats: %w", err)
	}

	return r, nil
}

// Save overwrites the record
func (s *SQLiteStore) Save(r Record) error {
	_, err := s.db.Exec(`
		INSERT INTO stats (id, rounds, wins, losses, ties, chips, player_blackjacks, dealer_blackjacks)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			rounds = excluded.rounds,
			wins = excluded.wins,
			losses = excluded.losses,
			ties = excluded.ties,
			chips = excluded.chips,
			player_blackjacks = excluded.player_blackjacks,
			dealer_blackjacks = excluded.dealer_blackjacks`,
		r.Rounds, r.Wins, r.Losses, r.Ties, r.Chips, r.PlayerBlackjacks, r.DealerBlackjacks)
	return err
}

// AppendHistory records a settled round
func (s *SQLiteStore) AppendHistory(e HistoryEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO rounds (round_id, difficulty, bet, outcome, chip_delta, player_value, dealer_value, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RoundID, e.Difficulty, e.Bet, e.Outcome, e.ChipDelta, e.PlayerValue, e.DealerValue, e.PlayedAt.UTC())
	return err
}

// History returns the most recent rounds, newest first
func (s *SQLiteStore) History(limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT round_id, difficulty, bet, outcome, chip_delta, player_value, dealer_value, played_at
		FROM rounds
		ORDER BY played_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0, limit)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.RoundID, &e.Difficulty, &e.Bet, &e.Outcome, &e.ChipDelta, &e.PlayerValue, &e.DealerValue, &e.PlayedAt); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ClearHistory removes every recorded round
func (s *SQLiteStore) ClearHistory() error {
	_, err := s.db.Exec(`DELETE FROM rounds`)
	return err
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
