package blackjack

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-terminal/pkg/deck"
)

// ErrRoundNotResolved is returned when a result is requested before the round ends
var ErrRoundNotResolved = errors.New("round is not resolved")

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateDealing is before any cards have been dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means the player may hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the player stood and the dealer is drawing
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateResolved means the bet has been settled
	RoundStateResolved RoundState = "resolved"
)

// Round is a single hand of blackjack between the player and the dealer
// The round owns its shoe and both hands until it is resolved.
type Round struct {
	ID     string     `json:"id"`
	Bet    int        `json:"bet"`
	State  RoundState `json:"state"`
	Player *Hand      `json:"player"`
	Dealer *Hand      `json:"dealer"`

	shoe     *deck.Shoe
	strategy DealerStrategy
	result   *Result
	logger   logrus.FieldLogger
}

// NewRound returns a new round waiting to be dealt
func NewRound(logger logrus.FieldLogger, shoe *deck.Shoe, bet int, strategy DealerStrategy) (*Round, error) {
	if bet <= 0 {
		return nil, errors.New("bet must be > 0")
	}

	if strategy == nil {
		return nil, errors.New("a dealer strategy is required")
	}

	if shoe == nil {
		return nil, errors.New("a shoe is required")
	}

	id := uuid.New().String()
	return &Round{
		ID:     id,
		Bet:    bet,
		State:  RoundStateDealing,
		Player: NewHand(RolePlayer),
		Dealer: NewHand(RoleDealer),

		shoe:     shoe,
		strategy: strategy,
		logger: logger.WithFields(logrus.Fields{
			"round":    id,
			"strategy": strategy.Name(),
		}),
	}, nil
}

// Deal gives two cards to each party, alternating player and dealer
// A natural on either side settles the round right away.
func (r *Round) Deal() error {
	if r.State != RoundStateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	r.logger.WithField("shoe", r.shoe.HashCode()).Debug("dealing")

	cards, err := r.shoe.Deal(4)
	if err != nil {
		return fmt.Errorf("could not deal the opening hands: %w", err)
	}

	r.Player.AddCard(cards[0], cards[2])
	r.Dealer.AddCard(cards[1], cards[3])

	if r.Player.IsBlackjack() || r.Dealer.IsBlackjack() {
		r.resolve()
		return nil
	}

	r.State = RoundStatePlayerTurn
	return nil
}

// Hit deals one card to the player
func (r *Round) Hit() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot hit from state: %s", r.State)
	}

	card, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("could not deal to the player: %w", err)
	}

	r.Player.AddCard(card)
	r.logger.WithFields(logrus.Fields{
		"card":  card.String(),
		"value": r.Player.Value(),
	}).Debug("player hit")

	if r.Player.IsBust() {
		r.resolve()
	}

	return nil
}

// Stand ends the player's turn, plays out the dealer and settles the round
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.State = RoundStateDealerTurn
	if err := r.playDealer(); err != nil {
		return err
	}

	r.resolve()
	return nil
}

// playDealer must only be called from Stand()
func (r *Round) playDealer() error {
	for !r.Dealer.IsBust() && r.strategy.ShouldHit(r.Dealer) {
		card, err := r.shoe.Draw()
		if err != nil {
			return fmt.Errorf("could not deal to the dealer: %w", err)
		}

		r.Dealer.AddCard(card)
		r.logger.WithFields(logrus.Fields{
			"card":  card.String(),
			"value": r.Dealer.Value(),
		}).Debug("dealer hit")
	}

	return nil
}

func (r *Round) resolve() {
	r.result = settle(r.ID, r.Bet, r.Player, r.Dealer)
	r.State = RoundStateResolved

	r.logger.WithFields(logrus.Fields{
		"player":  r.Player.String(),
		"dealer":  r.Dealer.String(),
		"outcome": r.result.Outcome.String(),
		"reason":  r.result.Reason,
		"delta":   r.result.ChipDelta,
	}).Debug("round resolved")
}

// IsResolved returns true once the bet has been settled
func (r *Round) IsResolved() bool {
	return r.State == RoundStateResolved
}

// Result returns the settled result
func (r *Round) Result() (*Result, error) {
	if r.result == nil {
		return nil, ErrRoundNotResolved
	}

	return r.result, nil
}

// HoleCardHidden returns true if the dealer's first card should be face down
// It stays hidden only while the player is deciding, and never for a natural.
func (r *Round) HoleCardHidden() bool {
	return r.State == RoundStatePlayerTurn && !r.Dealer.IsBlackjack()
}

// Strategy returns the dealer strategy for the round
func (r *Round) Strategy() DealerStrategy {
	return r.strategy
}

// CardsLeft returns how many cards are still in the shoe
func (r *Round) CardsLeft() int {
	return r.shoe.CardsLeft()
}
