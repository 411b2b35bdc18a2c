package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"blackjack-terminal/internal/rng"
)

// ErrDepletedShoe is matched by every DepletedShoeError
var ErrDepletedShoe = errors.New("shoe is depleted")

// DepletedShoeError is returned when more cards are requested than the shoe holds
type DepletedShoeError struct {
	Want int
	Left int
}

func (d *DepletedShoeError) Error() string {
	return fmt.Sprintf("cannot deal %d card(s), %d left in the shoe", d.Want, d.Left)
}

// Is allows errors.Is(err, ErrDepletedShoe)
func (d *DepletedShoeError) Is(target error) bool {
	return target == ErrDepletedShoe
}

// ShoeSize is the number of cards in a fresh shoe
const ShoeSize = 52

// Shoe is the single deck of cards in play for one round
type Shoe struct {
	Cards []*Card `json:"cards"`
}

// New returns a new shoe of cards.
// Important! this shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Shoe {
	s := &Shoe{}
	s.build()
	return s
}

func (s *Shoe) build() {
	cards := make([]*Card, 0, ShoeSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	s.Cards = cards
}

// Shuffle will shuffle all 52 cards using a Fisher-Yates shuffle
// The shoe is always rebuilt first, so cards already dealt come back.
func (s *Shoe) Shuffle(gen rng.Generator) {
	s.build()

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// Stack moves the cards to the top of the shoe, in order
// The first card supplied is the next one dealt. Every card must still be in the shoe.
func (s *Shoe) Stack(cards ...*Card) error {
	top := make([]*Card, 0, len(cards))
	rest := make([]*Card, len(s.Cards))
	copy(rest, s.Cards)

	for _, card := range cards {
		idx := -1
		for i, c := range rest {
			if c.Equal(card) {
				idx = i
				break
			}
		}

		if idx < 0 {
			return fmt.Errorf("cannot stack %s: not in the shoe", card.String())
		}

		top = append(top, rest[idx])
		rest = append(rest[:idx], rest[idx+1:]...)
	}

	s.Cards = append(top, rest...)
	return nil
}

// HashCode returns a SHA1 hash code of the shoe order.
func (s *Shoe) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range s.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Deal removes and returns the next n cards
// If there are not enough cards, a *DepletedShoeError is returned and nothing is dealt.
func (s *Shoe) Deal(n int) ([]*Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !s.CanDraw(n) {
		return nil, &DepletedShoeError{Want: n, Left: len(s.Cards)}
	}

	cards := make([]*Card, n)
	copy(cards, s.Cards[:n])
	s.Cards = s.Cards[n:]

	return cards, nil
}

// Draw will draw the next card
func (s *Shoe) Draw() (*Card, error) {
	cards, err := s.Deal(1)
	if err != nil {
		return nil, err
	}

	return cards[0], nil
}

// CanDraw returns true if there are {want} cards left in the shoe
func (s *Shoe) CanDraw(want int) bool {
	return len(s.Cards) >= want
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}
