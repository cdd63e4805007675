package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start key is absent.
	ErrStartNotFound = errors.New("bfs: start key not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Graph is the read-only view BFS needs. *keypad.Keypad satisfies it.
type Graph interface {
	Contains(key rune) bool
	Neighbors(key rune) ([]keypad.Step, error)
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a key. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(key rune, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip a move by returning false.
	FilterNeighbor func(curr rune, step keypad.Step) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(rune, int) error { return nil },
		FilterNeighbor: func(rune, keypad.Step) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(key rune, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr rune, step keypad.Step) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []rune
	Depth  map[rune]int
	Parent map[rune]keypad.Step // Parent[k].Key is the predecessor, Parent[k].Dir the move into k
}

// Reached reports whether key was visited.
func (r *Result) Reached(key rune) bool {
	_, ok := r.Depth[key]
	return ok
}

// PathTo reconstructs the moves from the start key to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest rune) ([]keypad.Direction, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	moves := make([]keypad.Direction, 0, r.Depth[dest])
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		moves = append(moves, prev.Dir)
		cur = prev.Key
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves, nil
}
