package bfs

import (
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// queueItem pairs a key with its BFS depth.
type queueItem struct {
	key   rune
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    Options
	queue   []queueItem
	visited map[rune]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any OnVisit error.
func BFS(g Graph, start rune, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[rune]bool),
		res: &Result{
			Depth:  make(map[rune]int),
			Parent: make(map[rune]keypad.Step),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks key visited at depth d and adds it to the queue.
func (w *walker) enqueue(key rune, d int) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	steps, err := w.graph.Neighbors(item.key)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.key, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, s := range steps {
		if !w.opts.FilterNeighbor(item.key, s) || w.visited[s.Key] {
			continue
		}
		w.res.Parent[s.Key] = keypad.Step{Dir: s.Dir, Key: item.key}
		w.enqueue(s.Key, next)
	}
	return nil
}
