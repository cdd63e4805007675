// Package paths enumerates every shortest move sequence between two keys on
// a keypad.
//
// A move sequence is a string of direction runes ('^', 'v', '<', '>')
// followed by the confirm rune 'A'. On a gap-convex keypad every shortest
// route is monotone: it only ever steps toward the target along each axis.
// Enumerate therefore generates every interleaving of the |Δrow| vertical and
// |Δcol| horizontal moves and drops the ones that cross the gap.
//
// Ordering
//
//	At each step the horizontal move is tried before the vertical one, so
//	candidates come out in a fixed order and the first one groups horizontal
//	moves first ("<<^A" before "^<<A"). Cost code that must pick one of
//	several equally cheap candidates picks the earliest.
//
// Complexity
//
//   - Enumerate: O(C(d, dr) × d) with d = Manhattan distance.
//   - NewTable:  O(K² × C) for K keys; K ≤ 11 on the presets.
package paths
