package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-terminal/internal/util"
	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/stats"
)

// FileEnv names the variable that overrides the config file path
const FileEnv = "BLACKJACK_CONFIG_FILE"

const defaultFile = "blackjack.yaml"

// Config provides configuration for the blackjack game
type Config struct {
	StatsFile     string        `yaml:"statsFile" envconfig:"stats_file"`
	StatsDriver   string        `yaml:"statsDriver" envconfig:"stats_driver"`
	StartingChips int           `yaml:"startingChips" envconfig:"starting_chips"`
	Difficulty    string        `yaml:"difficulty"`
	LoadingDelay  time.Duration `yaml:"loadingDelay" envconfig:"loading_delay"`
	Log           struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		StatsFile:     "stats.json",
		StatsDriver:   stats.DriverJSON,
		StartingChips: stats.DefaultChips,
		Difficulty:    blackjack.EasyDealer{}.Name(),
		LoadingDelay:  600 * time.Millisecond,
	}

	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	return cfg
}

// Load will load the configuration
// Values in .env are exported first. The YAML file is optional unless its path is set
// through BLACKJACK_CONFIG_FILE. Environment variables prefixed with BLACKJACK_ win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env: %w", err)
	}

	cfg := DefaultConfig()

	_, explicit := os.LookupEnv(FileEnv)
	configFile := util.Getenv(FileEnv, defaultFile)
	if err := decodeFile(configFile, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := envconfig.Process("blackjack", &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("could not parse %s: %w", path, err)
	}

	return nil
}

// Validate ensures the values can be used to start a game
func (c Config) Validate() error {
	if c.StatsFile == "" {
		return errors.New("statsFile is required")
	}

	switch strings.ToLower(c.StatsDriver) {
	case stats.DriverJSON, stats.DriverSQLite:
	default:
		return fmt.Errorf("unknown stats driver: %s", c.StatsDriver)
	}

	if c.StartingChips < 1 {
		return fmt.Errorf("startingChips must be > 0, got %d", c.StartingChips)
	}

	if _, err := blackjack.StrategyFromString(c.Difficulty); err != nil {
		return err
	}

	if c.LoadingDelay < 0 {
		return fmt.Errorf("loadingDelay must not be negative, got %s", c.LoadingDelay)
	}

	return nil
}

// WriteYAML writes the configuration as a blackjack.yaml file
func (c Config) WriteYAML(w io.Writer) error {
	header := fmt.Sprintf("# %s, the path can be overridden with %s\n# relative statsFile paths are resolved next to the program\n", defaultFile, FileEnv)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	return yaml.NewEncoder(w).Encode(c)
}

// StatsPath returns the stats file location
// A relative statsFile is resolved against dir, the directory holding the program, so the
// record does not depend on where the game was started from. An empty dir leaves it as is.
func (c Config) StatsPath(dir string) string {
	if dir == "" || filepath.IsAbs(c.StatsFile) {
		return c.StatsFile
	}

	return filepath.Join(dir, c.StatsFile)
}

// DefaultStrategy returns the dealer strategy suggested by the configured difficulty
func (c Config) DefaultStrategy() blackjack.DealerStrategy {
	strategy, err := blackjack.StrategyFromString(c.Difficulty)
	if err != nil {
		return blackjack.EasyDealer{}
	}

	return strategy
}
