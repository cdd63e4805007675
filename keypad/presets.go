package keypad

// NumericRows is the door keypad layout; the gap sits bottom-left.
//
//	+---+---+---+
//	| 7 | 8 | 9 |
//	+---+---+---+
//	| 4 | 5 | 6 |
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
var NumericRows = []string{"789", "456", "123", " 0A"}

// DirectionalRows is the controller keypad layout; the gap sits top-left.
//
//	    +---+---+
//	    | ^ | A |
//	+---+---+---+
//	| < | v | > |
//	+---+---+---+
var DirectionalRows = []string{" ^A", "<v>"}

var (
	numeric     = MustNew(NumericRows, WithName("numeric"))
	directional = MustNew(DirectionalRows, WithName("directional"))
)

// Numeric returns the shared numeric keypad. Keypads are immutable.
func Numeric() *Keypad { return numeric }

// Directional returns the shared directional keypad.
func Directional() *Keypad { return directional }
