package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/keychain/keypad"
)

// gapID is the node id used for the gap when Options.ShowGap is set.
const gapID = "gap"

// Options configures keypad rendering.
type Options struct {
	// Detailed adds the row/column of each key to its label.
	Detailed bool
	// ShowGap draws the gap as a dashed, unconnected node labeled with the
	// layout's gap rune (blank for a space).
	ShowGap bool
}

// ToDOT converts a keypad to an undirected Graphviz graph.
// Nodes are emitted in row-major order, then one edge per adjacent pair
// (rightward and downward neighbors only, so each edge appears once).
func ToDOT(kp *keypad.Keypad, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", kp.Name())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for r := 0; r < kp.Height; r++ {
		for c := 0; c < kp.Width; c++ {
			p := keypad.Position{Row: r, Col: c}
			key, ok := kp.At(p)
			switch {
			case ok:
				fmt.Fprintf(&buf, "  %q [label=%q];\n", string(key), fmtLabel(key, p, opts.Detailed))
			case opts.ShowGap && p == kp.Gap():
				fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
					gapID, strings.TrimSpace(string(kp.GapRune())))
			}
		}
	}

	buf.WriteString("\n")
	for r := 0; r < kp.Height; r++ {
		ids := rowIDs(kp, r, opts.ShowGap)
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	for _, key := range kp.Keys() {
		steps, _ := kp.Neighbors(key)
		for _, s := range steps {
			if s.Dir == keypad.Right || s.Dir == keypad.Down {
				fmt.Fprintf(&buf, "  %q -- %q;\n", string(key), string(s.Key))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(key rune, p keypad.Position, detailed bool) string {
	if !detailed {
		return string(key)
	}
	return fmt.Sprintf("%c\n%s", key, p)
}

func rowIDs(kp *keypad.Keypad, row int, showGap bool) []string {
	ids := make([]string, 0, kp.Width)
	for c := 0; c < kp.Width; c++ {
		p := keypad.Position{Row: row, Col: c}
		if key, ok := kp.At(p); ok {
			ids = append(ids, fmt.Sprintf("%q", string(key)))
		} else if showGap && p == kp.Gap() {
			ids = append(ids, fmt.Sprintf("%q", gapID))
		}
	}
	return ids
}

// RenderSVG renders DOT source to SVG with the in-process Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
