package render

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/deck"
	"blackjack-terminal/pkg/stats"
)

// CardHeight is the number of lines in a card's art
const CardHeight = 7

const (
	cardTop    = "┌───────┐"
	cardBottom = "└───────┘"
	cardBlank  = "|       |"
	cardHidden = "|░░░░░░░|"
)

// rule is the separator printed around the chip panel
var rule = strings.Repeat("-", 54)

// Renderer draws cards, hands and stats as text
// Color turns on ANSI colouring through pterm. Without it the output is plain text.
type Renderer struct {
	Color bool
}

// Card returns the seven lines of art for a face-up card
func (r Renderer) Card(card *deck.Card) []string {
	rank := card.Rank.String()
	return []string{
		cardTop,
		fmt.Sprintf("|%-2s     |", rank),
		cardBlank,
		fmt.Sprintf("|   %s   |", r.suit(card.Suit)),
		cardBlank,
		fmt.Sprintf("|     %2s|", rank),
		cardBottom,
	}
}

// HiddenCard returns the art for a face-down card
func HiddenCard() []string {
	return []string{
		cardTop,
		cardHidden,
		cardHidden,
		cardHidden,
		cardHidden,
		cardHidden,
		cardBottom,
	}
}

func (r Renderer) suit(s deck.Suit) string {
	symbol := s.Symbol()
	if !r.Color {
		return symbol
	}

	if s.IsRed() {
		return pterm.LightRed(symbol)
	}

	return pterm.LightWhite(symbol)
}

// Hand returns the hand as seven rows with the cards side by side
// The first card is drawn face down when hideFirst is set, unless the hand is a natural.
func (r Renderer) Hand(hand *blackjack.Hand, hideFirst bool) []string {
	hideFirst = hideFirst && !hand.IsBlackjack()

	rows := make([][]string, CardHeight)
	for i, card := range hand.Cards {
		art := r.Card(card)
		if i == 0 && hideFirst {
			art = HiddenCard()
		}

		for line := range art {
			rows[line] = append(rows[line], art[line])
		}
	}

	joined := make([]string, CardHeight)
	for i, row := range rows {
		joined[i] = strings.Join(row, " ")
	}

	return joined
}

// Round draws both hands as they currently stand
// The dealer's hole card follows the round, the player's value is always shown.
func (r Renderer) Round(round *blackjack.Round) string {
	var sb strings.Builder

	sb.WriteString(r.label("Dealer:"))
	sb.WriteByte('\n')
	writeRows(&sb, r.Hand(round.Dealer, round.HoleCardHidden()))
	if !round.HoleCardHidden() {
		fmt.Fprintf(&sb, "Dealer value: %d\n", round.Dealer.Value())
	}

	sb.WriteByte('\n')
	sb.WriteString(r.label("Player:"))
	sb.WriteByte('\n')
	writeRows(&sb, r.Hand(round.Player, false))
	fmt.Fprintf(&sb, "Player value: %d\n", round.Player.Value())

	return sb.String()
}

func writeRows(sb *strings.Builder, rows []string) {
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
}

func (r Renderer) label(s string) string {
	if !r.Color {
		return s
	}

	return pterm.Bold.Sprint(s)
}

// Result returns the line describing how the round was settled
func (r Renderer) Result(result *blackjack.Result) string {
	msg := result.Reason.Message()
	if !r.Color {
		return msg
	}

	switch result.Outcome {
	case blackjack.OutcomeWin:
		return pterm.LightGreen(msg)
	case blackjack.OutcomeLoss:
		return pterm.LightRed(msg)
	}

	return pterm.LightYellow(msg)
}

// Panel returns the chip and round summary shown after each round
func (r Renderer) Panel(record stats.Record) string {
	line := fmt.Sprintf("Chips: %d | Rounds: %d Wins: %d Losses: %d Ties: %d",
		record.Chips, record.Rounds, record.Wins, record.Losses, record.Ties)

	if r.Color {
		return pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).Sprint(line) + "\n"
	}

	return rule + "\n" + line + "\n" + rule + "\n"
}

// Stats returns the saved stats screen
func (r Renderer) Stats(record stats.Record) string {
	body := fmt.Sprintf("Rounds: %d Wins: %d Losses: %d Ties: %d\nChips: %d\nBlackjacks: You %d | Dealer %d\nWin rate: %.1f%%",
		record.Rounds, record.Wins, record.Losses, record.Ties,
		record.Chips,
		record.PlayerBlackjacks, record.DealerBlackjacks,
		record.WinRate())

	if r.Color {
		return pterm.DefaultBox.
			WithTitle(pterm.LightCyan("SAVED STATS")).
			WithTitleTopCenter().
			WithLeftPadding(4).WithRightPadding(4).
			Sprint(body) + "\n"
	}

	return "=== SAVED STATS ===\n" + body + "\n"
}

// History returns one line per recorded round, newest first
func (r Renderer) History(entries []stats.HistoryEntry) string {
	if len(entries) == 0 {
		return "No rounds recorded.\n"
	}

	var sb strings.Builder
	sb.WriteString("=== RECENT ROUNDS ===\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s  %-4s  bet %-5d %+6d  (%d vs %d)\n",
			e.PlayedAt.Format("2006-01-02 15:04"),
			e.Difficulty,
			e.Bet,
			e.ChipDelta,
			e.PlayerValue,
			e.DealerValue)
	}

	return sb.String()
}
