// Package bfs provides breadth-first search over a keypad-like graph,
// returning unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore keys in non-decreasing distance (moves) from a start key.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from key → distance (moves) from start
//   - Parent: map from key → its predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error), neighbor filtering
//     via WithFilterNeighbor and a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The path enumerator only emits monotone move sequences. That is sound
//     only when the true shortest distance between every pair of keys equals
//     their Manhattan distance; BFS gives the true distance to compare against.
//   - Reachability: a keypad whose gap cuts the grid in two is rejected.
//   - Routing: with a filter that only closes the distance to a target and a
//     MaxDepth equal to it, PathTo yields one shortest gap-free route.
//
// Determinism
//
//	Neighbors are enqueued in keypad.Directions order, so the visit sequence
//	is fully reproducible.
//
// Complexity (V = keys, E = adjacent pairs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
