package keypad

import (
	"fmt"
)

// Keypad is an immutable rectangular layout of keys with one gap cell.
// Width and Height define dimensions; cells[row][col] holds the key rune
// (or the gap rune). positions maps every key to its cell.
type Keypad struct {
	Width, Height int
	name          string
	gap           rune
	gapPos        Position
	cells         [][]rune
	keys          []rune
	positions     map[rune]Position
}

// New builds a Keypad from row strings. Each rune is one cell; the gap rune
// (DefaultGap unless WithGap is given) marks the forbidden cell.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrGapCount, ErrDuplicateKey or
// ErrOptionViolation for malformed input.
// Complexity: O(W×H).
func New(rows []string, opts ...Option) (*Keypad, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len([]rune(rows[0]))

	kp := &Keypad{
		Width:     w,
		Height:    h,
		name:      o.Name,
		gap:       o.Gap,
		cells:     make([][]rune, h),
		keys:      make([]rune, 0, w*h-1),
		positions: make(map[rune]Position, w*h-1),
	}

	gaps := 0
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrNonRectangular, r, len(cells), w)
		}
		kp.cells[r] = cells
		for c, key := range cells {
			if key == o.Gap {
				gaps++
				kp.gapPos = Position{Row: r, Col: c}
				continue
			}
			if _, dup := kp.positions[key]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			kp.positions[key] = Position{Row: r, Col: c}
			kp.keys = append(kp.keys, key)
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}

	return kp, nil
}

// MustNew is New for layouts known to be valid; it panics on error.
func MustNew(rows []string, opts ...Option) *Keypad {
	kp, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}
	return kp
}

// Name returns the keypad label, or "keypad" when none was set.
func (kp *Keypad) Name() string {
	if kp.name == "" {
		return "keypad"
	}
	return kp.name
}

// Gap returns the position of the forbidden cell.
func (kp *Keypad) Gap() Position { return kp.gapPos }

// GapRune returns the rune that marks the forbidden cell in Rows.
func (kp *Keypad) GapRune() rune { return kp.gap }

// Keys returns the key runes in row-major order. The slice is a copy.
func (kp *Keypad) Keys() []rune {
	out := make([]rune, len(kp.keys))
	copy(out, kp.keys)
	return out
}

// Rows returns the layout as row strings, gap included.
func (kp *Keypad) Rows() []string {
	out := make([]string, kp.Height)
	for r, cells := range kp.cells {
		out[r] = string(cells)
	}
	return out
}

// Contains reports whether key is on the keypad.
func (kp *Keypad) Contains(key rune) bool {
	_, ok := kp.positions[key]
	return ok
}

// InBounds reports whether p lies within the grid.
func (kp *Keypad) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < kp.Height && p.Col >= 0 && p.Col < kp.Width
}

// Walkable reports whether an arm may hover over p: in bounds and not the gap.
func (kp *Keypad) Walkable(p Position) bool {
	return kp.InBounds(p) && p != kp.gapPos
}

// Position returns the cell of key, or ErrUnknownKey.
func (kp *Keypad) Position(key rune) (Position, error) {
	p, ok := kp.positions[key]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s", ErrUnknownKey, key, kp.Name())
	}
	return p, nil
}

// At returns the key at p. ok is false for the gap and out-of-bounds cells.
func (kp *Keypad) At(p Position) (key rune, ok bool) {
	if !kp.Walkable(p) {
		return 0, false
	}
	return kp.cells[p.Row][p.Col], true
}

// Neighbors returns the keys 4-adjacent to key, in Directions order,
// skipping out-of-bounds cells and the gap.
// Complexity: O(1).
func (kp *Keypad) Neighbors(key rune) ([]Step, error) {
	p, err := kp.Position(key)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(Directions))
	for _, d := range Directions {
		if next, ok := kp.At(p.Add(d)); ok {
			steps = append(steps, Step{Dir: d, Key: next})
		}
	}
	return steps, nil
}

// Manhattan returns |Δrow| + |Δcol| between two keys.
func (kp *Keypad) Manhattan(a, b rune) (int, error) {
	pa, err := kp.Position(a)
	if err != nil {
		return 0, err
	}
	pb, err := kp.Position(b)
	if err != nil {
		return 0, err
	}
	return abs(pa.Row-pb.Row) + abs(pa.Col-pb.Col), nil
}

// RequireAlphabet returns ErrUnknownKey naming the first rune of alphabet
// that is missing from the keypad.
func (kp *Keypad) RequireAlphabet(alphabet []rune) error {
	for _, r := range alphabet {
		if !kp.Contains(r) {
			return fmt.Errorf("%w: %s lacks %q", ErrUnknownKey, kp.Name(), r)
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
