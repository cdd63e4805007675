package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/render"
)

// ExampleToDOT prints the adjacency edges of the directional keypad.
func ExampleToDOT() {
	dot := render.ToDOT(keypad.Directional(), render.Options{})
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, " -- ") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "^" -- "A";
	// "^" -- "v";
	// "A" -- ">";
	// "<" -- "v";
	// "v" -- ">";
}
