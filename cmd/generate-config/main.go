package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"blackjack-terminal/internal/config"
)

// prints a blackjack.yaml holding the defaults
func main() {
	if err := config.DefaultConfig().WriteYAML(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("could not write configuration")
	}
}
