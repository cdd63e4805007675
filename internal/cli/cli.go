// Package cli implements the keychain command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Settings
// come from config.Default, an optional TOML file (--config/-c) and then
// command flags, in that order of precedence from lowest to highest.
//
// # Commands
//
//   - solve:  per-code complexity table and total for a list of door codes
//   - encode: one optimal operator press string for a code, replay-checked
//   - paths:  every shortest move sequence between two keys
//   - costs:  pair cost matrix of the directional keypad at one level
//   - graph:  keypad adjacency graph as DOT or SVG
//   - config: the effective configuration as TOML
//
// --verbose (-v) switches logging to debug level.
package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/config"
	"github.com/katalvlaran/keychain/keypad"
)

const appName = "keychain"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Chain depths of the two puzzle parts.
const (
	depthPart1 = 3
	depthPart2 = 26
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	cfg     config.Config
	cfgPath string
	verbose bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: config.Default()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Keychain counts button presses through chains of keypad robots",
		Long: `Keychain computes the fewest button presses an operator needs to make a
robot type door codes on a numeric keypad, when that robot is driven from a
chain of directional keypads each operated by another robot.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.cfgPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.costsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.configCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.cfgPath != "" {
		cfg, err := config.Load(c.cfgPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	level := c.cfg.Level()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Shared Helpers
// =============================================================================

// newSolver builds a solver over the configured keypads.
func (c *CLI) newSolver(l *log.Logger) (*chain.Solver, error) {
	numeric, directional, err := c.cfg.Build()
	if err != nil {
		return nil, err
	}
	return chain.New(
		chain.WithTarget(numeric),
		chain.WithController(directional),
		chain.WithLogger(l),
		chain.WithMaxEncodeDepth(c.cfg.MaxEncodeDepth),
	)
}

// pad returns the configured keypad called name.
func (c *CLI) pad(name string) (*keypad.Keypad, error) {
	numeric, directional, err := c.cfg.Build()
	if err != nil {
		return nil, err
	}
	switch name {
	case "numeric":
		return numeric, nil
	case "directional":
		return directional, nil
	}
	return nil, fmt.Errorf("unknown keypad %q (want numeric or directional)", name)
}

// depthFlags resolves --depth and --part against the configured depth.
func (c *CLI) depthFlags(cmd *cobra.Command, depth, part int) (int, error) {
	switch {
	case cmd.Flags().Changed("part"):
		switch part {
		case 1:
			return depthPart1, nil
		case 2:
			return depthPart2, nil
		}
		return 0, fmt.Errorf("--part must be 1 or 2, got %d", part)
	case cmd.Flags().Changed("depth"):
		return depth, nil
	}
	return c.cfg.Depth, nil
}

// singleKey parses a one-rune command argument.
func singleKey(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("key must be a single character, got %q", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}
