package blackjack

import (
	"fmt"
	"sort"
	"strings"
)

// DealerStrategy decides whether the dealer draws another card
type DealerStrategy interface {
	// Name is the difficulty name, i.e., "easy"
	Name() string

	// ShouldHit returns true if the dealer must take another card
	ShouldHit(dealer *Hand) bool
}

// dealerStandsOn is the total the dealer stops drawing at
const dealerStandsOn = 17

// EasyDealer hits until 17 and stands on every 17
type EasyDealer struct{}

// Name returns the difficulty name
func (EasyDealer) Name() string {
	return "easy"
}

// ShouldHit returns true below 17
func (EasyDealer) ShouldHit(dealer *Hand) bool {
	return dealer.Value() < dealerStandsOn
}

// HardDealer hits soft 17 and stands on hard 17 or better
type HardDealer struct{}

// Name returns the difficulty name
func (HardDealer) Name() string {
	return "hard"
}

// ShouldHit returns true below 17 and on a soft 17
func (HardDealer) ShouldHit(dealer *Hand) bool {
	value := dealer.Value()
	if value < dealerStandsOn {
		return true
	}

	return value == dealerStandsOn && dealer.IsSoft()
}

var strategies = map[string]DealerStrategy{
	EasyDealer{}.Name(): EasyDealer{},
	HardDealer{}.Name(): HardDealer{},
}

// StrategyFromString returns the dealer strategy by name
func StrategyFromString(s string) (DealerStrategy, error) {
	if strategy, ok := strategies[strings.ToLower(strings.TrimSpace(s))]; ok {
		return strategy, nil
	}

	return nil, fmt.Errorf("unknown difficulty: %s", s)
}

// StrategyNames returns the known difficulty names, sorted
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
