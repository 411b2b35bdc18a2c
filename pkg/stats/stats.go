package stats

import (
	"fmt"
	"strings"
	"time"
)

// DefaultChips is the starting balance for a new record
const DefaultChips = 500

// Record is the persisted statistics for the player
type Record struct {
	Rounds           int `json:"rounds"`
	Wins             int `json:"wins"`
	Losses           int `json:"losses"`
	Ties             int `json:"ties"`
	Chips            int `json:"chips"`
	PlayerBlackjacks int `json:"player_blackjacks"`
	DealerBlackjacks int `json:"dealer_blackjacks"`
}

// DefaultRecord returns an empty record with the starting chips
func DefaultRecord(chips int) Record {
	return Record{Chips: chips}
}

// WinRate returns the percentage of rounds won
func (r Record) WinRate() float64 {
	if r.Rounds == 0 {
		return 0.0
	}

	return float64(r.Wins) / float64(r.Rounds) * 100.0
}

// Store loads and saves the record
type Store interface {
	// Load returns the saved record
	// If the record could not be read, the defaults are returned along with the error.
	Load() (Record, error)

	// Save overwrites the saved record
	Save(record Record) error

	// Defaults returns the record used when nothing has been saved
	Defaults() Record

	// Close releases the store
	Close() error
}

// HistoryEntry is one settled round
type HistoryEntry struct {
	RoundID     string    `json:"roundId"`
	Difficulty  string    `json:"difficulty"`
	Bet         int       `json:"bet"`
	Outcome     int       `json:"outcome"`
	ChipDelta   int       `json:"chipDelta"`
	PlayerValue int       `json:"playerValue"`
	DealerValue int       `json:"dealerValue"`
	PlayedAt    time.Time `json:"playedAt"`
}

// HistoryRecorder is implemented by stores that keep a per-round history
type HistoryRecorder interface {
	AppendHistory(entry HistoryEntry) error
	History(limit int) ([]HistoryEntry, error)
	ClearHistory() error
}

// Driver names
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Open returns the store for the driver
func Open(driver, path string, defaults Record) (Store, error) {
	switch strings.ToLower(driver) {
	case "", DriverJSON:
		return NewFileStore(path, defaults), nil
	case DriverSQLite:
		return OpenSQLite(path, defaults)
	}

	return nil, fmt.Errorf("unknown stats driver: %s", driver)
}
