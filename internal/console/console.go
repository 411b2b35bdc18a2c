package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"blackjack-terminal/internal/render"
	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/stats"
)

// historyLimit is how many recorded rounds the stats screen shows
const historyLimit = 10

const rules = `Blackjack Rules:
- Get as close to 21 without going over.
- Aces count as 11 or 1 automatically.
- Dealer hits until 17 (Hard difficulty hits soft 17).
- Blackjack pays 1.5x.`

// Options contains options for the console
type Options struct {
	// Color enables ANSI colours and the title banner
	Color bool

	// Animate shows the loading spinner for LoadingDelay before a session
	Animate      bool
	LoadingDelay time.Duration

	// Difficulty is used when the player presses enter at the difficulty prompt
	Difficulty blackjack.DealerStrategy

	Session blackjack.Options
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		LoadingDelay: 600 * time.Millisecond,
		Difficulty:   blackjack.EasyDealer{},
		Session:      blackjack.DefaultOptions(),
	}
}

// Console is the menu-driven terminal front end
// It is also the session's blackjack.Table, so bets and actions are read from the same input.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	render  render.Renderer
	logger  logrus.FieldLogger
	store   stats.Store
	session *blackjack.Session
	opts    Options

	roundNo int
}

var _ blackjack.Table = &Console{}

// New returns a console reading from in and writing to out
func New(logger logrus.FieldLogger, in io.Reader, out io.Writer, store stats.Store, opts Options) *Console {
	if opts.Difficulty == nil {
		opts.Difficulty = blackjack.EasyDealer{}
	}

	c := &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		render: render.Renderer{Color: opts.Color},
		logger: logger,
		store:  store,
		opts:   opts,
	}

	c.session = blackjack.NewSession(logger, store, c, opts.Session)
	return c
}

// Session returns the session backing the console
func (c *Console) Session() *blackjack.Session {
	return c.session
}

// Run shows the menu until the player exits or the input ends
func (c *Console) Run() error {
	c.title()

	for {
		choice, err := c.prompt("\nChoose an option (1-5): ", c.menu)
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.exit()
				return nil
			}

			return err
		}

		switch choice {
		case "1":
			err = c.play()
		case "2":
			c.println("\n" + rules)
		case "3":
			c.showStats()
		case "4":
			err = c.reset()
		case "5":
			c.exit()
			return nil
		default:
			c.warn("Invalid option.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (c *Console) title() {
	if !c.opts.Color {
		return
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err != nil {
		c.logger.WithError(err).Debug("could not render title")
		return
	}

	c.print(title)
}

func (c *Console) menu() {
	c.println("\n=== BLACKJACK MENU ===")
	c.println("1) Play")
	c.println("2) Rules")
	c.println("3) View saved Stats")
	c.println("4) Reset saved Stats")
	c.println("5) Exit")
}

func (c *Console) play() error {
	strategy, err := c.chooseDifficulty()
	if err != nil {
		return err
	}

	rounds, err := c.chooseRounds()
	if err != nil {
		return err
	}

	c.loading()

	c.roundNo = 0
	err = c.session.Play(rounds, strategy)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return err
	case blackjack.IsDepleted(err):
		c.warn("The shoe ran out of cards. Round aborted.")
	default:
		c.warn(capitalize(err.Error()))
	}

	return nil
}

func (c *Console) chooseDifficulty() (blackjack.DealerStrategy, error) {
	for {
		answer, err := c.prompt(fmt.Sprintf("Choose difficulty: 1) Easy  2) Hard [%s]: ", c.opts.Difficulty.Name()), nil)
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(answer) {
		case "":
			return c.opts.Difficulty, nil
		case "1":
			return blackjack.EasyDealer{}, nil
		case "2":
			return blackjack.HardDealer{}, nil
		}

		if strategy, err := blackjack.StrategyFromString(answer); err == nil {
			return strategy, nil
		}

		c.warn("Please choose 1 (Easy) or 2 (Hard).")
	}
}

func (c *Console) chooseRounds() (int, error) {
	for {
		answer, err := c.prompt("How many rounds do you want to play? ", nil)
		if err != nil {
			return 0, err
		}

		rounds, err := parseInt(answer)
		if err == nil && rounds > 0 {
			return rounds, nil
		}

		c.warn("Enter a positive integer.")
	}
}

// loading shows the suit spinner, mirroring the pause before cards come out
func (c *Console) loading() {
	if !c.opts.Animate || c.opts.LoadingDelay <= 0 {
		return
	}

	spinner, err := pterm.DefaultSpinner.
		WithSequence("♠", "♥", "♦", "♣").
		WithDelay(120 * time.Millisecond).
		WithRemoveWhenDone(true).
		WithWriter(c.out).
		Start("Loading")
	if err != nil {
		c.logger.WithError(err).Debug("could not start spinner")
		return
	}

	time.Sleep(c.opts.LoadingDelay)
	_ = spinner.Stop()
}

func (c *Console) showStats() {
	record, err := c.store.Load()
	if err != nil {
		c.logger.WithError(err).Warn("could not load saved stats")
		record = c.session.Record()
	}

	c.println("")
	c.print(c.render.Stats(record))

	history, ok := c.store.(stats.HistoryRecorder)
	if !ok {
		return
	}

	entries, err := history.History(historyLimit)
	if err != nil {
		c.logger.WithError(err).Warn("could not load round history")
		return
	}

	c.print(c.render.History(entries))
}

func (c *Console) reset() error {
	confirm, err := c.prompt(`Type "RESET" to reset saved stats: `, nil)
	if err != nil {
		return err
	}

	if confirm != "RESET" {
		c.println("Cancelled.")
		return nil
	}

	if err := c.session.Reset(); err != nil {
		c.warn(capitalize(err.Error()))
		return nil
	}

	c.success("Stats reset.")
	return nil
}

func (c *Console) exit() {
	c.println("Saving stats and exiting...")
	if err := c.session.Save(); err != nil {
		c.warn(capitalize(err.Error()))
	}
}
