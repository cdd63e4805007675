package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/input"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var depth, part, workers int

	cmd := &cobra.Command{
		Use:   "solve [codes.txt]",
		Short: "Sum the complexities of door codes",
		Long: `Solve reads door codes, one per line, from a file or standard input and
prints, for each code, the fewest operator presses, its numeric value and its
complexity (presses × value), followed by the total.

--depth counts every directional keypad in the chain, the operator's own
included: 1 means the operator drives the numeric robot directly. --part 1
and --part 2 are shorthands for depths 3 and 26.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.depthFlags(cmd, depth, part)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = c.cfg.Workers
			}

			var codes []string
			if len(args) == 1 {
				codes, err = input.ReadFile(args[0])
			} else {
				codes, err = input.Parse(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), codes, d, workers)
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "directional keypads in the chain (default from config)")
	cmd.Flags().IntVarP(&part, "part", "p", 1, "puzzle part: 1 (depth 3) or 2 (depth 26)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "codes solved in parallel; 0 means one goroutine per code")
	cmd.MarkFlagsMutuallyExclusive("depth", "part")

	return cmd
}

// runSolve costs every code and prints the breakdown and total.
func (c *CLI) runSolve(ctx context.Context, w io.Writer, codes []string, depth, workers int) error {
	logger := loggerFromContext(ctx).With("run", uuid.NewString())
	solver, err := c.newSolver(logger)
	if err != nil {
		return err
	}

	logger.Debug("solving", "codes", len(codes), "depth", depth, "workers", workers)
	prog := newProgress(logger)
	results, err := solver.BreakdownParallel(ctx, codes, depth, workers)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	prog.done(fmt.Sprintf("Solved %d codes at depth %d", len(codes), depth))

	stats := solver.Resolver().Stats()
	logger.Debug("memo", "entries", stats.Entries, "expansions", stats.Expansions, "hits", stats.Hits)

	total, err := chain.Sum(results)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	fmt.Fprintln(w, resultsTable(results))
	printKeyValue(w, "Total", strconv.Itoa(total))
	return nil
}
