package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/render"
)

//-------------------------------------------------------------------------//
// ToDOT
//-------------------------------------------------------------------------//

func TestToDOT_Directional(t *testing.T) {
	dot := render.ToDOT(keypad.Directional(), render.Options{})

	assert.True(t, strings.HasPrefix(dot, `graph "directional" {`))
	for _, key := range keypad.Directional().Keys() {
		assert.Contains(t, dot, `"`+string(key)+`" [label=`)
	}
	assert.Equal(t, 5, strings.Count(dot, " -- "))
	assert.Contains(t, dot, `"^" -- "A";`)
	assert.Contains(t, dot, `"^" -- "v";`)
	assert.Contains(t, dot, `"A" -- ">";`)
	assert.Contains(t, dot, `"<" -- "v";`)
	assert.Contains(t, dot, `"v" -- ">";`)
	assert.Contains(t, dot, `{ rank=same; "<"; "v"; ">"; }`)
	assert.NotContains(t, dot, "gap")
}

func TestToDOT_NumericEdges(t *testing.T) {
	dot := render.ToDOT(keypad.Numeric(), render.Options{})

	// 17 grid edges minus the two touching the gap.
	assert.Equal(t, 15, strings.Count(dot, " -- "))
	assert.NotContains(t, dot, `"1" -- "0"`)
	assert.Contains(t, dot, `"2" -- "0";`)
	assert.Contains(t, dot, `"0" -- "A";`)
}

func TestToDOT_Options(t *testing.T) {
	dot := render.ToDOT(keypad.Numeric(), render.Options{Detailed: true, ShowGap: true})

	assert.Contains(t, dot, `"7" [label="7\n0,0"];`)
	assert.Contains(t, dot, `"gap" [label="", style="rounded,filled,dashed", fillcolor=lightgrey];`)
	assert.Contains(t, dot, `{ rank=same; "gap"; "0"; "A"; }`)
	assert.NotContains(t, dot, `"gap" --`)
}

func TestToDOT_GapRuneLabel(t *testing.T) {
	kp, err := keypad.New([]string{"#^A", "<v>"}, keypad.WithGap('#'), keypad.WithName("directional"))
	require.NoError(t, err)
	require.Equal(t, '#', kp.GapRune())

	dot := render.ToDOT(kp, render.Options{ShowGap: true})
	assert.Contains(t, dot, `"gap" [label="#", style="rounded,filled,dashed", fillcolor=lightgrey];`)
}

//-------------------------------------------------------------------------//
// RenderSVG
//-------------------------------------------------------------------------//

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in -short mode")
	}
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(keypad.Directional(), render.Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
