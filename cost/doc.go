// Package cost computes how many presses an operator must make, at the
// outermost keypad of a controller chain, to move an arm on a deeper
// directional keypad from one key to another and press it.
//
// PairCost(a, b, level)
//
//	level 0: the keypad holding a and b is driven by the operator's own
//	         keypad: shortest move count + 1 confirm press (BaseTable).
//	level n: min over every shortest move sequence s from a to b of
//	         Σ PairCost(prev, s_i, n-1), prev starting on 'A'.
//
// The sum is separable per consecutive pair because every controller arm
// rests on 'A' after each press it causes. Results are memoized on
// (a, b, level), so a chain of depth n touches at most |alphabet|² × n
// distinct subproblems.
//
// Concurrency
//
//	A Resolver may be shared by goroutines. The memo is guarded by an
//	RWMutex and concurrent misses on one key are collapsed with
//	golang.org/x/sync/singleflight, so both callers receive one value.
//
// Errors
//
//   - ErrInvalidLevel: negative level or chain depth.
//   - keypad.ErrUnknownKey: a symbol outside the control alphabet.
package cost
