package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keychain/render"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		pad    string
		format string
		output string
		opts   render.Options
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw a keypad as a Graphviz graph",
		Long: `Graph writes the adjacency graph of a keypad as DOT source or as SVG
rendered in-process by Graphviz. Without --output the result goes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := c.pad(pad)
			if err != nil {
				return err
			}

			dot := render.ToDOT(kp, opts)
			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				prog := newProgress(loggerFromContext(cmd.Context()))
				if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
				prog.done("Rendered " + kp.Name())
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "Wrote %s graph", kp.Name())
			printFile(w, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&pad, "pad", "numeric", "keypad: numeric or directional")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label keys with their row and column")
	cmd.Flags().BoolVar(&opts.ShowGap, "gap", false, "draw the gap cell")

	return cmd
}
