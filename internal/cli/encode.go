package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	var depth, part int

	cmd := &cobra.Command{
		Use:   "encode <code>",
		Short: "Print one optimal operator press string for a code",
		Long: `Encode prints one shortest sequence of operator presses that makes the last
robot type code, then replays it down the chain to confirm the result.

Press strings grow quickly with depth; depths above max_encode_depth are
refused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.depthFlags(cmd, depth, part)
			if err != nil {
				return err
			}
			code := args[0]
			w := cmd.OutOrStdout()

			solver, err := c.newSolver(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			presses, err := solver.Encode(code, d)
			if err != nil {
				return err
			}
			typed, err := solver.Simulate(presses, d)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			if typed != code {
				printError(w, "replay typed %q", typed)
				return fmt.Errorf("replay typed %q, want %q", typed, code)
			}

			printTitle(w, code)
			fmt.Fprintln(w, presses)
			printKeyValue(w, "Depth", strconv.Itoa(d))
			printKeyValue(w, "Presses", strconv.Itoa(len(presses)))
			printSuccess(w, "replay types %s", typed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "directional keypads in the chain (default from config)")
	cmd.Flags().IntVarP(&part, "part", "p", 1, "puzzle part: 1 (depth 3) or 2 (depth 26)")
	cmd.MarkFlagsMutuallyExclusive("depth", "part")

	return cmd
}
