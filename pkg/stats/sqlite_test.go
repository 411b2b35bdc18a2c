package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "stats.db"), DefaultRecord(DefaultChips))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_roundTrip(t *testing.T) {
	a := assert.New(t)
	store := openTestSQLite(t)

	record, err := store.Load()
	a.NoError(err)
	a.Equal(DefaultRecord(500), record)

	saved := Record{Rounds: 5, Wins: 2, Losses: 2, Ties: 1, Chips: 480, PlayerBlackjacks: 1}
	a.NoError(store.Save(saved))

	record, err = store.Load()
	a.NoError(err)
	a.Equal(saved, record)

	// saving again updates the single row
	saved.Chips = 300
	a.NoError(store.Save(saved))
	record, err = store.Load()
	a.NoError(err)
	a.Equal(300, record.Chips)
}

func TestSQLiteStore_history(t *testing.T) {
	a := assert.New(t)
	store := openTestSQLite(t)

	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	for i, outcome := range []int{1, -1, 0} {
		a.NoError(store.AppendHistory(HistoryEntry{
			RoundID:     []string{"r1", "r2", "r3"}[i],
			Difficulty:  "easy",
			Bet:         10,
			Outcome:     outcome,
			ChipDelta:   outcome * 10,
			PlayerValue: 20,
			DealerValue: 19,
			PlayedAt:    start.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.History(2)
	a.NoError(err)
	a.Equal(2, len(entries))
	a.Equal("r3", entries[0].RoundID)
	a.Equal("r2", entries[1].RoundID)
	a.Equal(-10, entries[1].ChipDelta)
	a.True(entries[1].PlayedAt.Equal(start.Add(time.Minute)))

	a.NoError(store.ClearHistory())
	entries, err = store.History(10)
	a.NoError(err)
	a.Equal(0, len(entries))
}
