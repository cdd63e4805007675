package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad construction and lookups.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing width.
	ErrNonRectangular = errors.New("keypad: all rows must have the same width")

	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must contain exactly one gap")

	// ErrDuplicateKey indicates a key rune appears more than once.
	ErrDuplicateKey = errors.New("keypad: duplicate key")

	// ErrUnknownKey indicates a symbol that is not part of the keypad alphabet.
	ErrUnknownKey = errors.New("keypad: unknown key")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("keypad: invalid option supplied")
)

// Activate is the confirm key. Every arm rests on it between presses.
const Activate rune = 'A'

// DefaultGap is the rune marking the forbidden cell in a layout.
const DefaultGap rune = ' '

// Direction is one of the four moves a controller can request.
type Direction rune

// The four directions, spelled the way they appear on the direction pad.
const (
	Up    Direction = '^'
	Down  Direction = 'v'
	Left  Direction = '<'
	Right Direction = '>'
)

// Directions lists the moves in neighbor-scan order.
var Directions = []Direction{Up, Right, Down, Left}

// Offset returns the (dRow, dCol) step of d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// String returns the single-rune spelling of d.
func (d Direction) String() string { return string(rune(d)) }

// ControlAlphabet is the closed alphabet every controller keypad must carry:
// the four directions plus Activate.
var ControlAlphabet = []rune{rune(Up), rune(Down), rune(Left), rune(Right), Activate}

// Position is a cell coordinate. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// Add returns p moved one step in direction d.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "row,col".
func (p Position) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// Step is one edge out of a key: the direction taken and the key reached.
type Step struct {
	Dir Direction
	Key rune
}

// Option configures keypad construction.
type Option func(*Options)

// Options holds keypad construction parameters.
type Options struct {
	// Gap is the rune that marks the forbidden cell.
	Gap rune

	// Name labels the keypad in errors and rendered output.
	Name string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Gap = DefaultGap and no name.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap}
}

// WithGap sets the rune used for the forbidden cell.
// The Activate rune cannot be the gap.
func WithGap(r rune) Option {
	return func(o *Options) {
		if r == Activate || Direction(r).Valid() {
			o.err = fmt.Errorf("%w: gap rune %q collides with a control key", ErrOptionViolation, r)
			return
		}
		o.Gap = r
	}
}

// WithName labels the keypad.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}
