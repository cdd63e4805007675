// Package config loads keychain settings from TOML.
//
// Example:
//
//	depth = 26
//	workers = 4
//	max_encode_depth = 5
//	log_level = "debug"
//
//	[keypads]
//	gap = "#"
//	numeric = ["789", "456", "123", "#0A"]
//	directional = ["#^A", "<v>"]
//
// Missing keys keep their Default value; unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/keychain/keypad"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds solver and CLI settings.
type Config struct {
	// Depth is the chain depth: directional keypads including the operator's.
	Depth int `toml:"depth"`
	// Workers bounds parallel code evaluation; 0 means one per code.
	Workers int `toml:"workers"`
	// MaxEncodeDepth bounds the depth accepted by encode.
	MaxEncodeDepth int `toml:"max_encode_depth"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Keypads overrides the keypad layouts.
	Keypads Keypads `toml:"keypads"`
}

// Keypads holds layout rows; Gap is the single rune marking the gap.
type Keypads struct {
	Gap         string   `toml:"gap"`
	Numeric     []string `toml:"numeric"`
	Directional []string `toml:"directional"`
}

// Default returns the puzzle defaults: depth 3 (two robots), one worker per
// CPU and the standard layouts.
func Default() Config {
	return Config{
		Depth:          3,
		Workers:        runtime.NumCPU(),
		MaxEncodeDepth: 5,
		LogLevel:       "info",
		Keypads: Keypads{
			Gap:         string(keypad.DefaultGap),
			Numeric:     append([]string(nil), keypad.NumericRows...),
			Directional: append([]string(nil), keypad.DirectionalRows...),
		},
	}
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, finish(cfg, md)
}

// Load reads the TOML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks ranges and that both layouts build.
func (c Config) Validate() error {
	switch {
	case c.Depth < 1:
		return fmt.Errorf("%w: depth must be at least 1 (%d)", ErrInvalidConfig, c.Depth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	case c.MaxEncodeDepth < 1:
		return fmt.Errorf("%w: max_encode_depth must be at least 1 (%d)", ErrInvalidConfig, c.MaxEncodeDepth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if _, _, err := c.Build(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Build constructs the numeric and directional keypads.
func (c Config) Build() (numeric, directional *keypad.Keypad, err error) {
	if utf8.RuneCountInString(c.Keypads.Gap) != 1 {
		return nil, nil, fmt.Errorf("keypads.gap must be a single rune, got %q", c.Keypads.Gap)
	}
	gap, _ := utf8.DecodeRuneInString(c.Keypads.Gap)

	numeric, err = keypad.New(c.Keypads.Numeric, keypad.WithGap(gap), keypad.WithName("numeric"))
	if err != nil {
		return nil, nil, fmt.Errorf("keypads.numeric: %w", err)
	}
	directional, err = keypad.New(c.Keypads.Directional, keypad.WithGap(gap), keypad.WithName("directional"))
	if err != nil {
		return nil, nil, fmt.Errorf("keypads.directional: %w", err)
	}
	return numeric, directional, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
