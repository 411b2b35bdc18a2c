package console

import (
	"fmt"

	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/stats"
)

// PlaceBet asks for a bet until a number between 1 and chips is entered
func (c *Console) PlaceBet(chips int) (int, error) {
	c.roundNo++
	c.println(fmt.Sprintf("\n--- ROUND %d ---", c.roundNo))

	for {
		answer, err := c.prompt(fmt.Sprintf("You have %d chips. Place your bet (1 - %d): ", chips, chips), nil)
		if err != nil {
			return 0, err
		}

		bet, err := parseInt(answer)
		if err != nil {
			c.warn("Please enter a valid integer.")
			continue
		}

		if err := blackjack.ValidateBet(bet, chips); err != nil {
			c.warn("Invalid bet amount.")
			continue
		}

		return bet, nil
	}
}

// ChooseAction asks the player to hit or stand
func (c *Console) ChooseAction(round *blackjack.Round) (blackjack.Action, error) {
	for {
		answer, err := c.prompt("Hit or Stand? (H/S): ", nil)
		if err != nil {
			return 0, err
		}

		action, err := blackjack.ActionFromString(answer)
		if err != nil {
			c.warn(err.Error())
			continue
		}

		return action, nil
	}
}

// ShowRound draws the table
func (c *Console) ShowRound(round *blackjack.Round) {
	c.println("")
	c.print(c.render.Round(round))
}

// RoundResolved prints the outcome and the chip panel
func (c *Console) RoundResolved(round *blackjack.Round, result *blackjack.Result, record stats.Record) {
	c.println(c.render.Result(result))
	c.print(c.render.Panel(record))
}

// OutOfChips ends the session
func (c *Console) OutOfChips(record stats.Record) {
	c.warn("You're out of chips! Session ended.")
}
