package blackjack

import (
	"fmt"
	"strings"
)

// Action is a decision the player makes on their turn
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString parses player input
// Anything starting with "h" is a hit and anything starting with "s" is a stand.
func ActionFromString(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "h"):
		return ActionHit, nil
	case strings.HasPrefix(s, "s"):
		return ActionStand, nil
	}

	return -1, UserError("Please enter H or S.")
}
