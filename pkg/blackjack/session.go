package blackjack

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-terminal/internal/rng"
	"blackjack-terminal/pkg/deck"
	"blackjack-terminal/pkg/stats"
)

// Options contains options for creating a new session
type Options struct {
	// NewShoe returns the shoe for each round. Defaults to a freshly shuffled 52-card shoe.
	NewShoe func() *deck.Shoe

	// Generator shuffles the default shoe. Defaults to rng.Crypto.
	Generator rng.Generator
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Generator: rng.Crypto{},
	}
}

// Session runs consecutive rounds against one persisted record
type Session struct {
	ID string

	store  stats.Store
	table  Table
	record stats.Record
	logger logrus.FieldLogger

	newShoe func() *deck.Shoe
}

// NewSession returns a new session and loads the record from the store
// A record that cannot be loaded is replaced by the store defaults.
func NewSession(logger logrus.FieldLogger, store stats.Store, table Table, opts Options) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:      id,
		store:   store,
		table:   table,
		logger:  logger.WithField("session", id),
		newShoe: opts.NewShoe,
	}

	if s.newShoe == nil {
		gen := opts.Generator
		if gen == nil {
			gen = rng.Crypto{}
		}

		s.newShoe = func() *deck.Shoe {
			shoe := deck.New()
			shoe.Shuffle(gen)
			return shoe
		}
	}

	record, err := store.Load()
	if err != nil {
		s.logger.WithError(err).Warn("could not load stats, using defaults")
	}

	s.record = record
	return s
}

// Record returns a copy of the current record
func (s *Session) Record() stats.Record {
	return s.record
}

// Play runs up to rounds rounds with the strategy, then saves the record
// The session stops early when the player runs out of chips. Shoe depletion aborts
// the current round without touching the record. If the table fails while the player
// is deciding, the player stands and the round is settled before the error is returned. A failed save is returned only when
// the rounds themselves completed.
func (s *Session) Play(rounds int, strategy DealerStrategy) error {
	if rounds <= 0 {
		return UserError("Enter a positive integer.")
	}

	if strategy == nil {
		strategy = EasyDealer{}
	}

	logger := s.logger.WithFields(logrus.Fields{
		"rounds":   rounds,
		"strategy": strategy.Name(),
	})
	logger.Info("session started")

	err := s.playRounds(logger, rounds, strategy)
	if saveErr := s.Save(); err == nil {
		err = saveErr
	}

	return err
}

func (s *Session) playRounds(logger logrus.FieldLogger, rounds int, strategy DealerStrategy) error {
	if s.record.Chips <= 0 {
		s.table.OutOfChips(s.record)
		return nil
	}

	for i := 0; i < rounds; i++ {
		bet, err := s.table.PlaceBet(s.record.Chips)
		if err != nil {
			return err
		}

		if err := ValidateBet(bet, s.record.Chips); err != nil {
			return err
		}

		round, err := s.playRound(logger, bet, strategy)
		if round != nil && round.IsResolved() {
			result, _ := round.Result()
			s.apply(strategy, result)
			s.table.RoundResolved(round, result, s.record)
		}

		if err != nil {
			if round == nil || !round.IsResolved() {
				logger.WithError(err).Error("round aborted")
			}

			return err
		}

		if s.record.Chips <= 0 {
			logger.Info("out of chips")
			s.table.OutOfChips(s.record)
			break
		}
	}

	return nil
}

func (s *Session) playRound(logger logrus.FieldLogger, bet int, strategy DealerStrategy) (*Round, error) {
	round, err := NewRound(logger, s.newShoe(), bet, strategy)
	if err != nil {
		return nil, err
	}

	if err := round.Deal(); err != nil {
		return nil, err
	}

	s.table.ShowRound(round)

	for round.State == RoundStatePlayerTurn {
		action, err := s.table.ChooseAction(round)
		if err != nil {
			// the bet is already down, so the player stands on what they hold
			logger.WithError(err).Info("player left mid-round, standing")
			if standErr := round.Stand(); standErr != nil {
				return round, standErr
			}

			s.table.ShowRound(round)
			return round, err
		}

		switch action {
		case ActionHit:
			err = round.Hit()
		case ActionStand:
			err = round.Stand()
		default:
			err = fmt.Errorf("unknown action: %d", action)
		}

		if err != nil {
			return nil, err
		}

		s.table.ShowRound(round)
	}

	return round, nil
}

// apply updates the record with a settled round
func (s *Session) apply(strategy DealerStrategy, result *Result) {
	s.record.Rounds++
	s.record.Chips += result.ChipDelta

	switch result.Outcome {
	case OutcomeWin:
		s.record.Wins++
	case OutcomeLoss:
		s.record.Losses++
	case OutcomePush:
		s.record.Ties++
	}

	if result.PlayerBlackjack {
		s.record.PlayerBlackjacks++
	}

	if result.DealerBlackjack {
		s.record.DealerBlackjacks++
	}

	s.logger.WithFields(logrus.Fields{
		"round":   result.RoundID,
		"bet":     result.Bet,
		"outcome": result.Outcome.String(),
		"delta":   result.ChipDelta,
		"chips":   s.record.Chips,
	}).Info("round settled")

	history, ok := s.store.(stats.HistoryRecorder)
	if !ok {
		return
	}

	entry := stats.HistoryEntry{
		RoundID:     result.RoundID,
		Difficulty:  strategy.Name(),
		Bet:         result.Bet,
		Outcome:     int(result.Outcome),
		ChipDelta:   result.ChipDelta,
		PlayerValue: result.PlayerValue,
		DealerValue: result.DealerValue,
		PlayedAt:    time.Now(),
	}

	if err := history.AppendHistory(entry); err != nil {
		s.logger.WithError(err).Warn("could not record round history")
	}
}

// Save persists the record
// Failure is logged and returned, the in-memory record is kept either way.
func (s *Session) Save() error {
	if err := s.store.Save(s.record); err != nil {
		s.logger.WithError(err).Error("could not save stats")
		return fmt.Errorf("could not save stats: %w", err)
	}

	return nil
}

// Reset overwrites the saved record with the defaults
func (s *Session) Reset() error {
	record := s.store.Defaults()
	if err := s.store.Save(record); err != nil {
		s.logger.WithError(err).Error("could not reset stats")
		return fmt.Errorf("could not reset stats: %w", err)
	}

	s.record = record

	if history, ok := s.store.(stats.HistoryRecorder); ok {
		if err := history.ClearHistory(); err != nil {
			s.logger.WithError(err).Warn("could not clear round history")
		}
	}

	return nil
}

// IsDepleted returns true if err came from an empty shoe
func IsDepleted(err error) bool {
	return errors.Is(err, deck.ErrDepletedShoe)
}
