package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

// Suits returns the suits in canonical shoe order
func Suits() []Suit {
	return []Suit{Spades, Clubs, Hearts, Diamonds}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// Rank is the rank of a card, Ace through King
type Rank int

// rank constants
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Ranks returns the thirteen ranks in canonical shoe order (A, 2..10, J, Q, K)
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// Value returns the blackjack value of the rank
// An Ace is worth 11 here. Dropping it to 1 is up to the hand.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	}

	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}

	return strconv.Itoa(int(r))
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c *Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Name returns a long form name, i.e., "A of spades"
func (c *Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.String(), c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^(a|[2-9]|10|j|q|k)([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is one of A,2-10,J,Q,K and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}
		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return card.Rank.String() + string(card.Suit)[:1]
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
