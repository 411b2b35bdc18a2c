package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/deck"
	"blackjack-terminal/pkg/stats"
)

// stackedShoes hands out one shoe per round with the cards on top
func stackedShoes(t *testing.T, rounds ...string) blackjack.Options {
	t.Helper()

	i := 0
	return blackjack.Options{
		NewShoe: func() *deck.Shoe {
			if i >= len(rounds) {
				t.Fatal("no more shoes")
			}

			shoe := deck.New()
			if err := shoe.Stack(deck.CardsFromString(rounds[i])...); err != nil {
				t.Fatal(err)
			}

			i++
			return shoe
		},
	}
}

func createTestConsole(t *testing.T, store stats.Store, input string, session blackjack.Options) (*Console, *bytes.Buffer) {
	t.Helper()

	opts := DefaultOptions()
	opts.Session = session

	out := &bytes.Buffer{}
	return New(logrus.StandardLogger(), strings.NewReader(input), out, store, opts), out
}

func tempStore(t *testing.T) *stats.FileStore {
	t.Helper()
	return stats.NewFileStore(filepath.Join(t.TempDir(), "stats.json"), stats.DefaultRecord(stats.DefaultChips))
}

func TestConsole_Run_play(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)

	input := strings.Join([]string{
		"7",     // invalid menu option
		"1",     // play
		"9",     // not a difficulty
		"1",     // easy
		"0",     // not positive
		"two",   // not a number
		"2",     // rounds
		"abc",   // bad bet
		"1000",  // too large
		"100",   // bet
		"x",     // bad action
		"stand", // player 10,9 vs dealer 10,8
		"10",    // natural A,K vs 9,7
		"3",     // view stats
		"5",     // exit
	}, "\n") + "\n"

	c, out := createTestConsole(t, store, input, stackedShoes(t, "10s,10h,9s,8h", "As,9h,Kd,7c"))
	a.NoError(c.Run())

	output := out.String()
	a.Contains(output, "=== BLACKJACK MENU ===")
	a.Contains(output, "Invalid option.")
	a.Contains(output, "Please choose 1 (Easy) or 2 (Hard).")
	a.Contains(output, "Enter a positive integer.")
	a.Contains(output, "--- ROUND 1 ---")
	a.Contains(output, "--- ROUND 2 ---")
	a.Contains(output, "You have 500 chips. Place your bet (1 - 500): ")
	a.Contains(output, "Please enter a valid integer.")
	a.Contains(output, "Invalid bet amount.")
	a.Contains(output, "Please enter H or S.")
	a.Contains(output, "You win!")
	a.Contains(output, "You have 600 chips. Place your bet (1 - 600): ")
	a.Contains(output, "Blackjack! You win 1.5x the bet.")
	a.Contains(output, "Chips: 615 | Rounds: 2 Wins: 2 Losses: 0 Ties: 0")
	a.Contains(output, "=== SAVED STATS ===")
	a.Contains(output, "Blackjacks: You 1 | Dealer 0")
	a.Contains(output, "Saving stats and exiting...")

	record, err := store.Load()
	a.NoError(err)
	a.Equal(stats.Record{Rounds: 2, Wins: 2, Chips: 615, PlayerBlackjacks: 1}, record)
}

func TestConsole_Run_hard(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)

	// dealer A,6 hits soft 17 and makes 21
	c, out := createTestConsole(t, store, "1\nhard\n1\n50\ns\n5\n", stackedShoes(t, "10s,As,9d,6c,4h"))
	a.NoError(c.Run())
	a.Contains(out.String(), "Dealer wins.")
	a.Contains(out.String(), "Dealer value: 21")
	a.Equal(450, c.Session().Record().Chips)
}

func TestConsole_Run_defaultDifficulty(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)

	c, out := createTestConsole(t, store, "1\n\n1\n50\ns\n", stackedShoes(t, "10s,As,9d,6c,4h"))
	a.NoError(c.Run())
	a.Contains(out.String(), "Choose difficulty: 1) Easy  2) Hard [easy]: ")
	a.Contains(out.String(), "You win!")
	a.Equal(550, c.Session().Record().Chips)

	// input ran out at the menu, the record is still saved
	record, err := store.Load()
	a.NoError(err)
	a.Equal(550, record.Chips)
}

func TestConsole_Run_rules(t *testing.T) {
	c, out := createTestConsole(t, tempStore(t), "2\n5\n", blackjack.DefaultOptions())
	assert.NoError(t, c.Run())
	assert.Contains(t, out.String(), "- Dealer hits until 17 (Hard difficulty hits soft 17).\n- Blackjack pays 1.5x.")
}

func TestConsole_Run_reset(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)
	a.NoError(store.Save(stats.Record{Rounds: 5, Wins: 2, Losses: 2, Ties: 1, Chips: 480}))

	c, out := createTestConsole(t, store, "4\nreset\n3\n4\nRESET\n5\n", blackjack.DefaultOptions())
	a.Equal(480, c.Session().Record().Chips)
	a.NoError(c.Run())

	output := out.String()
	a.Contains(output, "Cancelled.")
	a.Contains(output, "Chips: 480")
	a.Contains(output, "Stats reset.")

	// exiting after a reset keeps the reset numbers
	record, err := store.Load()
	a.NoError(err)
	a.Equal(stats.DefaultRecord(500), record)
}

func TestConsole_Run_outOfChips(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)
	a.NoError(store.Save(stats.Record{Rounds: 10, Losses: 10}))

	c, out := createTestConsole(t, store, "1\n1\n3\n5\n", blackjack.DefaultOptions())
	a.NoError(c.Run())
	a.Contains(out.String(), "You're out of chips! Session ended.")
	a.NotContains(out.String(), "Place your bet")
}

func TestConsole_Run_bustEndsSession(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)
	a.NoError(store.Save(stats.Record{Chips: 20}))

	c, out := createTestConsole(t, store, "1\n1\n3\n20\nh\n5\n", stackedShoes(t, "10s,10h,6d,6c,9s"))
	a.NoError(c.Run())

	output := out.String()
	a.Contains(output, "You busted!")
	a.Contains(output, "You're out of chips! Session ended.")
	a.NotContains(output, "--- ROUND 2 ---")

	record, err := store.Load()
	a.NoError(err)
	a.Equal(stats.Record{Rounds: 1, Losses: 1, Chips: 0}, record)
}

func TestConsole_Run_depletedShoe(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)

	session := blackjack.Options{
		NewShoe: func() *deck.Shoe {
			shoe := deck.New()
			shoe.Cards = shoe.Cards[:3]
			return shoe
		},
	}

	c, out := createTestConsole(t, store, "1\n1\n1\n10\n5\n", session)
	a.NoError(c.Run())
	a.Contains(out.String(), "The shoe ran out of cards. Round aborted.")
	a.Equal(stats.DefaultRecord(500), c.Session().Record())
}

func TestConsole_Run_saveFailure(t *testing.T) {
	a := assert.New(t)

	dir := filepath.Join(t.TempDir(), "missing")
	store := stats.NewFileStore(filepath.Join(dir, "stats.json"), stats.DefaultRecord(stats.DefaultChips))

	c, out := createTestConsole(t, store, "1\n1\n1\n100\ns\n5\n", stackedShoes(t, "10s,10h,9s,8h"))
	a.NoError(c.Run())
	a.Contains(out.String(), "Could not save stats: ")
	a.Equal(600, c.Session().Record().Chips)

	_, err := os.Stat(dir)
	a.True(os.IsNotExist(err))
}

func TestConsole_Run_eof(t *testing.T) {
	a := assert.New(t)
	store := tempStore(t)

	c, out := createTestConsole(t, store, "", blackjack.DefaultOptions())
	a.NoError(c.Run())
	a.Contains(out.String(), "Saving stats and exiting...")

	_, err := os.Stat(store.Path())
	a.NoError(err)

	// input ends while betting, nothing was wagered
	c, _ = createTestConsole(t, store, "1\n1\n3\n", blackjack.DefaultOptions())
	a.NoError(c.Run())

	record, err := store.Load()
	a.NoError(err)
	a.Equal(stats.DefaultRecord(500), record)

	// input ends at the hit/stand prompt, the player stands on 10,6 against 20
	c, out = createTestConsole(t, store, "1\n1\n1\n100\n", stackedShoes(t, "10s,10h,6s,10d"))
	a.NoError(c.Run())
	a.Contains(out.String(), "Dealer wins.")
	a.Contains(out.String(), "Dealer value: 20")

	record, err = store.Load()
	a.NoError(err)
	a.Equal(stats.Record{Rounds: 1, Losses: 1, Chips: 400}, record)
}

func TestConsole_showStats_history(t *testing.T) {
	a := assert.New(t)

	store, err := stats.OpenSQLite(filepath.Join(t.TempDir(), "stats.db"), stats.DefaultRecord(stats.DefaultChips))
	a.NoError(err)
	defer store.Close()

	c, out := createTestConsole(t, store, "1\n2\n1\n25\ns\n3\n5\n", stackedShoes(t, "10s,10h,9s,8h"))
	a.NoError(c.Run())

	output := out.String()
	a.Contains(output, "=== RECENT ROUNDS ===")
	a.Contains(output, "hard  bet 25       +25  (19 vs 18)")
}

func Test_capitalize(t *testing.T) {
	a := assert.New(t)
	a.Equal("Could not save stats: x", capitalize("could not save stats: x"))
	a.Equal("", capitalize(""))
}
