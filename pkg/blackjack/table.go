package blackjack

import "blackjack-terminal/pkg/stats"

// Table is the player's side of a session
// Implementations are responsible for re-prompting on bad input. An error returned
// from PlaceBet or ChooseAction ends the session.
type Table interface {
	// PlaceBet asks for a bet between 1 and chips
	PlaceBet(chips int) (int, error)

	// ChooseAction asks the player to hit or stand
	ChooseAction(round *Round) (Action, error)

	// ShowRound displays the hands after cards are dealt
	ShowRound(round *Round)

	// RoundResolved is called once the record has been updated for the round
	RoundResolved(round *Round, result *Result, record stats.Record)

	// OutOfChips is called when the session ends because the player is broke
	OutOfChips(record stats.Record)
}
