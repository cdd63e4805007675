// Package keypad models a rectangular grid of labeled keys with exactly one
// forbidden cell (the gap) as a small 4-connected graph.
//
// What:
//
//   - Keypad wraps a rectangular layout of runes, one rune per key.
//   - Position maps a key to its (row, col) cell.
//   - Neighbors lists the 4-directionally adjacent keys, never the gap.
//   - Numeric and Directional return the two fixed layouts used by the
//     door-code chain: the 4×3 numeric pad and the 2×3 direction pad.
//
// Why:
//
//   - Every robot arm in a controller chain moves over one of these grids;
//     the gap is the cell an arm must never hover over.
//
// Complexity:
//
//   - New:       O(W×H), Memory: O(W×H).
//   - Position:  O(1).
//   - Neighbors: O(1) (at most 4 entries).
//
// Errors:
//
//   - ErrEmptyLayout: no rows or no columns.
//   - ErrNonRectangular: rows of differing width.
//   - ErrGapCount: the layout does not contain exactly one gap cell.
//   - ErrDuplicateKey: a key rune appears twice.
//   - ErrUnknownKey: a requested symbol is not on the keypad.
//   - ErrOptionViolation: an invalid Option was supplied.
package keypad
