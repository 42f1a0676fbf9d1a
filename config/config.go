// Package config provides Viper-based configuration loading for the gridkit CLI.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gridkit/errkind"
)

// EnvPrefix prefixes environment overrides, e.g. GRIDKIT_MAZE_TURN_COST.
const EnvPrefix = "GRIDKIT"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format" yaml:"format"`
}

// MazeConfig describes how a character grid is read as a maze.
type MazeConfig struct {
	// Wall, Start and End are single characters.
	Wall  string `mapstructure:"wall" yaml:"wall"`
	Start string `mapstructure:"start" yaml:"start"`
	End   string `mapstructure:"end" yaml:"end"`
	// Diagonals allows diagonal steps between open cells.
	Diagonals bool `mapstructure:"diagonals" yaml:"diagonals"`
	// StepCost is the cost of moving one cell; at least 1.
	StepCost int64 `mapstructure:"step_cost" yaml:"step_cost"`
	// TurnCost is the cost of a 90° turn in place; 0 disables facing.
	TurnCost int64 `mapstructure:"turn_cost" yaml:"turn_cost"`
}

// WallRune returns Wall as a rune. Valid only after Validate.
func (m MazeConfig) WallRune() rune { return firstRune(m.Wall) }

// StartRune returns Start as a rune. Valid only after Validate.
func (m MazeConfig) StartRune() rune { return firstRune(m.Start) }

// EndRune returns End as a rune. Valid only after Validate.
func (m MazeConfig) EndRune() rune { return firstRune(m.End) }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// OutputConfig selects how reports are rendered.
type OutputConfig struct {
	// Format is "text" or "yaml".
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Maze    MazeConfig    `mapstructure:"maze" yaml:"maze"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an
// errkind.ErrConfiguration error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMaze(c.Maze); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s: %w", strings.Join(errs, "; "), errkind.ErrConfiguration)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateMaze(m MazeConfig) error {
	var errs []string
	chars := map[string]string{"maze.wall": m.Wall, "maze.start": m.Start, "maze.end": m.End}
	for _, key := range []string{"maze.wall", "maze.start", "maze.end"} {
		if n := utf8.RuneCountInString(chars[key]); n != 1 {
			errs = append(errs, fmt.Sprintf("%s must be a single character, got %q", key, chars[key]))
		}
	}
	if m.Wall == m.Start || m.Wall == m.End || m.Start == m.End {
		errs = append(errs, "maze.wall, maze.start and maze.end must differ")
	}
	if m.StepCost < 1 {
		errs = append(errs, fmt.Sprintf("maze.step_cost must be >= 1, got %d", m.StepCost))
	}
	if m.TurnCost < 0 {
		errs = append(errs, fmt.Sprintf("maze.turn_cost must be >= 0, got %d", m.TurnCost))
	}
	if m.TurnCost > 0 && m.Diagonals {
		errs = append(errs, "maze.turn_cost cannot be combined with maze.diagonals")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	if o.Format != "text" && o.Format != "yaml" {
		return fmt.Errorf("output.format must be one of [text, yaml], got %q", o.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the
// file and uses defaults plus environment.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults, GRIDKIT_* environment
// overrides and, when path is non-empty, the file at path. Callers may bind
// command-line flags on it before LoadFromViper.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	// Environment variable overrides with GRIDKIT_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return v, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(err) // defaults are static
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("maze.wall", "#")
	v.SetDefault("maze.start", "S")
	v.SetDefault("maze.end", "E")
	v.SetDefault("maze.diagonals", false)
	v.SetDefault("maze.step_cost", 1)
	v.SetDefault("maze.turn_cost", 0)

	v.SetDefault("output.format", "text")
}
