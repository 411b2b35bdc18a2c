package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"blackjack-terminal/internal/config"
	"blackjack-terminal/internal/console"
	"blackjack-terminal/pkg/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	setupLogger(cfg)

	statsPath := cfg.StatsPath(programDir())
	logrus.WithField("path", statsPath).Debug("opening stats")

	store, err := stats.Open(cfg.StatsDriver, statsPath, stats.DefaultRecord(cfg.StartingChips))
	if err != nil {
		logrus.WithError(err).Fatal("could not open stats store")
	}
	defer store.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive {
		pterm.DisableColor()
	}

	opts := console.DefaultOptions()
	opts.Color = interactive
	opts.Animate = interactive
	opts.LoadingDelay = cfg.LoadingDelay
	opts.Difficulty = cfg.DefaultStrategy()

	c := console.New(logrus.StandardLogger(), os.Stdin, os.Stdout, store, opts)
	if err := c.Run(); err != nil {
		logrus.WithError(err).Error("console stopped")
	}
}

// programDir returns the directory holding the executable, or "" if it cannot be found
func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		logrus.WithError(err).Warn("could not locate the executable, using the working directory")
		return ""
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}

func setupLogger(cfg config.Config) {
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
