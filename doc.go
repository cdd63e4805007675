// Package keychain counts the button presses an operator needs to make a
// robot type door codes through a chain of keypad-driven robots.
//
// What is keychain?
//
//	A numeric door keypad is operated by a robot whose arm is steered from a
//	directional keypad, which is itself operated by another robot, and so on
//	until the operator's own directional keypad. keychain finds the fewest
//	operator presses for a code at any chain depth, in time linear in depth.
//
// Layout:
//
//	keypad/        - immutable keypad grids, presets and adjacency
//	bfs/           - breadth-first traversal over keypads
//	paths/         - shortest gap-avoiding move sequences between keys
//	cost/          - memoized pair costs through controller levels
//	chain/         - per-code presses, complexity, encoding and replay
//	input/         - door code parsing
//	config/        - TOML configuration
//	render/        - Graphviz drawings of keypads
//	cmd/keychain/  - command-line entry point
//
// Quick start:
//
//	s, _ := chain.New()
//	n, _ := s.MinimumPresses("029A", 3) // 68
//	total, _ := s.TotalComplexity([]string{"029A", "980A"}, 26)
package keychain
