// Package config holds the tunable puzzle parameters for the gridpath CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Maze  MazeConfig  `yaml:"maze"`
	Bytes BytesConfig `yaml:"bytes"`
	Race  RaceConfig  `yaml:"race"`
}

// MazeConfig sets the move costs of the facing maze.
type MazeConfig struct {
	TurnCost uint64 `yaml:"turn_cost"`
	StepCost uint64 `yaml:"step_cost"`
}

// BytesConfig sets the falling-bytes memory space.
type BytesConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Fallen is how many bytes have landed for part 1.
	Fallen int `yaml:"fallen"`
}

// RaceConfig sets the cheat lengths and the saving threshold.
type RaceConfig struct {
	MaxCheat  int `yaml:"max_cheat"`
	LongCheat int `yaml:"long_cheat"`
	MinSaving int `yaml:"min_saving"`
}

// Default returns the full-size puzzle parameters.
func Default() *Config {
	return &Config{
		Maze:  MazeConfig{TurnCost: 1000, StepCost: 1},
		Bytes: BytesConfig{Width: 71, Height: 71, Fallen: 1024},
		Race:  RaceConfig{MaxCheat: 2, LongCheat: 20, MinSaving: 100},
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing file
// yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Maze.StepCost == 0 && c.Maze.TurnCost == 0 {
		errs = append(errs, fmt.Errorf("%w: maze costs are both zero", ErrInvalidConfig))
	}
	if c.Bytes.Width <= 0 || c.Bytes.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: bytes space %dx%d", ErrInvalidConfig, c.Bytes.Width, c.Bytes.Height))
	}
	if c.Bytes.Fallen < 0 {
		errs = append(errs, fmt.Errorf("%w: bytes.fallen %d", ErrInvalidConfig, c.Bytes.Fallen))
	}
	if c.Race.MaxCheat < 2 || c.Race.LongCheat < 2 {
		errs = append(errs, fmt.Errorf("%w: cheat lengths %d/%d (min 2)", ErrInvalidConfig, c.Race.MaxCheat, c.Race.LongCheat))
	}
	if c.Race.MinSaving < 0 {
		errs = append(errs, fmt.Errorf("%w: race.min_saving %d", ErrInvalidConfig, c.Race.MinSaving))
	}
	return errors.Join(errs...)
}
