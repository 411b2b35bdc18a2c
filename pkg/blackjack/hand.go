package blackjack

import (
	"fmt"

	"blackjack-terminal/pkg/deck"
)

// Role tags who owns a hand
type Role int

// Role constants
const (
	RolePlayer Role = iota
	RoleDealer
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "Player"
	case RoleDealer:
		return "Dealer"
	}

	panic(fmt.Sprintf("unknown role: %d", r))
}

// Hand is the ordered set of cards held by one party
// Value and bust logic is the same for both roles.
type Hand struct {
	Role  Role         `json:"role"`
	Cards []*deck.Card `json:"cards"`
}

// NewHand returns an empty hand
func NewHand(role Role) *Hand {
	return &Hand{
		Role:  role,
		Cards: make([]*deck.Card, 0, 5),
	}
}

// AddCard appends the cards in deal order
func (h *Hand) AddCard(cards ...*deck.Card) {
	h.Cards = append(h.Cards, cards...)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// RawValue is the total with every Ace counted as 11
func (h *Hand) RawValue() int {
	total := 0
	for _, c := range h.Cards {
		total += c.Rank.Value()
	}

	return total
}

// Aces returns the number of aces in the hand
func (h *Hand) Aces() int {
	aces := 0
	for _, c := range h.Cards {
		if c.Rank == deck.Ace {
			aces++
		}
	}

	return aces
}

// value returns the best total and how many aces still count as 11
func (h *Hand) value() (total int, softAces int) {
	total = h.RawValue()
	softAces = h.Aces()
	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// Value returns the best total <= 21 if one exists, otherwise the total with every Ace as 1
func (h *Hand) Value() int {
	total, _ := h.value()
	return total
}

// IsSoft returns true if at least one ace is still counted as 11
func (h *Hand) IsSoft() bool {
	_, softAces := h.value()
	return softAces > 0
}

// IsBlackjack returns true for a natural: two cards worth 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

func (h *Hand) String() string {
	return deck.CardsToString(h.Cards)
}
