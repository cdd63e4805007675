package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keychain/bfs"
	"github.com/katalvlaran/keychain/paths"
)

// pathsCommand creates the paths command.
func (c *CLI) pathsCommand() *cobra.Command {
	var pad string

	cmd := &cobra.Command{
		Use:   "paths <from> <to>",
		Short: "List every shortest move sequence between two keys",
		Long: `Paths lists the move sequences (each ending with an A press) that take an
arm from one key to another in the fewest moves without crossing the gap,
followed by the route a breadth-first search picks among them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := singleKey(args[0])
			if err != nil {
				return err
			}
			to, err := singleKey(args[1])
			if err != nil {
				return err
			}
			kp, err := c.pad(pad)
			if err != nil {
				return err
			}
			table, err := paths.NewTable(kp)
			if err != nil {
				return err
			}
			seqs, err := table.Candidates(from, to)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			route, err := paths.Route(kp, from, to, bfs.WithOnVisit(func(key rune, depth int) error {
				logger.Debug("bfs visit", "key", string(key), "depth", depth)
				return nil
			}))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("%s %c %s %c", kp.Name(), from, iconArrow, to))
			for _, s := range seqs {
				fmt.Fprintf(w, "  %s %s\n", styleValue.Render(string(s)), styleDim.Render(fmt.Sprintf("(%d)", s.Len())))
			}
			printKeyValue(w, "BFS route", string(route))
			return nil
		},
	}

	cmd.Flags().StringVar(&pad, "pad", "numeric", "keypad: numeric or directional")

	return cmd
}
