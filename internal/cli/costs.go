package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
)

// costsCommand creates the costs command.
func (c *CLI) costsCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Print the directional pair cost matrix at one level",
		Long: `Costs prints PairCost(from, to, level) for every pair of directional keys:
the operator presses needed to move an arm from one key to another and press
it, with level robots between that arm and the operator. Level 0 is the
operator's own keypad.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := c.pad("directional")
			if err != nil {
				return err
			}
			r, err := cost.NewResolver(kp)
			if err != nil {
				return err
			}

			matrix := make(map[[2]rune]int, len(keypad.ControlAlphabet)*len(keypad.ControlAlphabet))
			for _, from := range keypad.ControlAlphabet {
				for _, to := range keypad.ControlAlphabet {
					n, err := r.PairCost(from, to, level)
					if err != nil {
						return err
					}
					matrix[[2]rune{from, to}] = n
				}
			}

			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("%s pair costs at level %d", kp.Name(), level))
			fmt.Fprintln(w, matrixTable(keypad.ControlAlphabet, func(from, to rune) string {
				return strconv.Itoa(matrix[[2]rune{from, to}])
			}))
			loggerFromContext(cmd.Context()).Debug("memo", "entries", r.Stats().Entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "robots between the arm and the operator")

	return cmd
}
