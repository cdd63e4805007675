// Package render draws keypads as Graphviz graphs.
//
// Every key is a node and every pair of 4-adjacent keys an undirected edge;
// the gap contributes no edges. Rows are pinned with rank=same so the
// drawing keeps the physical layout:
//
//	dot := render.ToDOT(keypad.Numeric(), render.Options{ShowGap: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// RenderSVG runs Graphviz in-process through github.com/goccy/go-graphviz,
// so no dot binary is required.
package render
