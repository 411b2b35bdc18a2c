package blackjack

import (
	"encoding/json"
	"fmt"
)

// Outcome is the signed result of a round from the player's point of view
type Outcome int

// Outcome constants
const (
	OutcomeLoss Outcome = -1
	OutcomePush Outcome = 0
	OutcomeWin  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// MarshalJSON encodes the JSON
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(o),
		Name: o.String(),
	})
}

// Reason explains how a round was settled
type Reason string

// Reason constants
const (
	ReasonBothBlackjack   Reason = "both-blackjack"
	ReasonPlayerBlackjack Reason = "player-blackjack"
	ReasonDealerBlackjack Reason = "dealer-blackjack"
	ReasonPlayerBust      Reason = "player-bust"
	ReasonDealerBust      Reason = "dealer-bust"
	ReasonHigherTotal     Reason = "higher-total"
	ReasonLowerTotal      Reason = "lower-total"
	ReasonEqualTotal      Reason = "equal-total"
)

// Message returns the line shown to the player
func (r Reason) Message() string {
	switch r {
	case ReasonBothBlackjack:
		return "Both have Blackjack! Push."
	case ReasonPlayerBlackjack:
		return "Blackjack! You win 1.5x the bet."
	case ReasonDealerBlackjack:
		return "Dealer has Blackjack. You lose."
	case ReasonPlayerBust:
		return "You busted!"
	case ReasonDealerBust:
		return "Dealer busted. You win!"
	case ReasonHigherTotal:
		return "You win!"
	case ReasonLowerTotal:
		return "Dealer wins."
	case ReasonEqualTotal:
		return "Push (tie)."
	}

	return string(r)
}

// Result is a settled round
type Result struct {
	RoundID         string  `json:"roundId"`
	Outcome         Outcome `json:"outcome"`
	Reason          Reason  `json:"reason"`
	Bet             int     `json:"bet"`
	ChipDelta       int     `json:"chipDelta"`
	PlayerValue     int     `json:"playerValue"`
	DealerValue     int     `json:"dealerValue"`
	PlayerBlackjack bool    `json:"playerBlackjack"`
	DealerBlackjack bool    `json:"dealerBlackjack"`
}

// blackjackPayout is 3:2, truncated toward zero
func blackjackPayout(bet int) int {
	return bet * 3 / 2
}

// settle compares both hands and builds the result
// The player's hand is checked for bust first, so the dealer never plays against a busted player.
func settle(roundID string, bet int, player, dealer *Hand) *Result {
	res := &Result{
		RoundID:         roundID,
		Bet:             bet,
		PlayerValue:     player.Value(),
		DealerValue:     dealer.Value(),
		PlayerBlackjack: player.IsBlackjack(),
		DealerBlackjack: dealer.IsBlackjack(),
	}

	switch {
	case res.PlayerBlackjack && res.DealerBlackjack:
		res.Outcome, res.Reason = OutcomePush, ReasonBothBlackjack
	case res.PlayerBlackjack:
		res.Outcome, res.Reason = OutcomeWin, ReasonPlayerBlackjack
		res.ChipDelta = blackjackPayout(bet)
		return res
	case res.DealerBlackjack:
		res.Outcome, res.Reason = OutcomeLoss, ReasonDealerBlackjack
	case player.IsBust():
		res.Outcome, res.Reason = OutcomeLoss, ReasonPlayerBust
	case dealer.IsBust():
		res.Outcome, res.Reason = OutcomeWin, ReasonDealerBust
	case res.PlayerValue > res.DealerValue:
		res.Outcome, res.Reason = OutcomeWin, ReasonHigherTotal
	case res.PlayerValue < res.DealerValue:
		res.Outcome, res.Reason = OutcomeLoss, ReasonLowerTotal
	default:
		res.Outcome, res.Reason = OutcomePush, ReasonEqualTotal
	}

	res.ChipDelta = int(res.Outcome) * bet
	return res
}
