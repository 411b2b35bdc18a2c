package blackjack

import "fmt"

// UserError is an error that is safe to show to the player
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// BetRangeError is returned when a bet is outside [1, chips]
type BetRangeError struct {
	Bet   int
	Chips int
}

func (b BetRangeError) Error() string {
	return fmt.Sprintf("bet of %d must be between 1 and %d", b.Bet, b.Chips)
}

// ValidateBet ensures the bet is within [1, chips]
func ValidateBet(bet, chips int) error {
	if chips < 1 || bet < 1 || bet > chips {
		return BetRangeError{Bet: bet, Chips: chips}
	}

	return nil
}
