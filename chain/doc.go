// Package chain computes door-code costs through a chain of directional
// keypads.
//
// The chain: an operator presses keys on directional keypad N, which
// drives a robot arm over directional keypad N-1, and so on down to
// keypad 1, whose robot types the code on the numeric keypad. Chain depth
// N counts every directional keypad, the operator's included:
//
//	depth 1:  operator → numeric           ("029A" costs 12)
//	depth 3:  operator → robot → robot → numeric   ("379A" costs 64)
//	depth 26: operator → 25 robots → numeric
//
// For each consecutive key pair of "A"+code the Solver evaluates every
// shortest numeric move sequence, costs it through the shared
// cost.Resolver and keeps the cheapest. Complexity multiplies that total
// by the numeric part of the code.
package chain
