package blackjack

import (
	"testing"

	"github.com/sirupsen/logrus"

	"blackjack-terminal/pkg/deck"
)

// handFromString returns a hand holding the cards, i.e., "As,Kd"
func handFromString(role Role, cards string) *Hand {
	h := NewHand(role)
	h.AddCard(deck.CardsFromString(cards)...)
	return h
}

// stackedShoe returns an unshuffled shoe with the cards on top
// Opening deals alternate player, dealer, player, dealer.
func stackedShoe(t *testing.T, cards string) *deck.Shoe {
	t.Helper()

	shoe := deck.New()
	if err := shoe.Stack(deck.CardsFromString(cards)...); err != nil {
		t.Fatal(err)
	}

	return shoe
}

func createTestRound(t *testing.T, bet int, strategy DealerStrategy, cards string) *Round {
	t.Helper()

	r, err := NewRound(logrus.StandardLogger(), stackedShoe(t, cards), bet, strategy)
	if err != nil {
		t.Fatal(err)
	}

	return r
}
