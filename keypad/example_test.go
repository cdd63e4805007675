package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// ExampleKeypad_Neighbors lists the keys an arm resting on 'A' can reach in
// one move on the numeric pad.
func ExampleKeypad_Neighbors() {
	steps, _ := keypad.Numeric().Neighbors('A')
	for _, s := range steps {
		fmt.Printf("%s -> %c\n", s.Dir, s.Key)
	}

	// Output:
	// ^ -> 3
	// < -> 0
}
