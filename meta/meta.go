package meta

import (
	"errors"
	"fmt"
	"os"

	"jungle/game"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables shared by sessions, self-play and experiments.
type Config struct {
	Depth      int    `yaml:"depth"`
	Goroutines int    `yaml:"goroutines"`
	Seed       uint64 `yaml:"seed"` // 0 seeds from the clock
	HumanSide  string `yaml:"human_side"`
	Games      int    `yaml:"games"` // Per matchup
	MaxTurns   int    `yaml:"max_turns"`
	LogLevel   string `yaml:"log_level"`
	OutputDir  string `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		Depth:      3,
		Goroutines: 1,
		HumanSide:  "red",
		Games:      10,
		MaxTurns:   300,
		LogLevel:   "info",
		OutputDir:  "experiments",
	}
}

// Load overlays the YAML file at path on the defaults and validates the result.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth must be non-negative, got %d", c.Depth))
	}
	if c.Goroutines < 1 {
		errs = append(errs, fmt.Errorf("goroutines must be at least 1, got %d", c.Goroutines))
	}
	if _, err := c.Human(); err != nil {
		errs = append(errs, err)
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be at least 1, got %d", c.Games))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns must be at least 1, got %d", c.MaxTurns))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Human() (game.Side, error) {
	return game.ParseSide(c.HumanSide)
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
