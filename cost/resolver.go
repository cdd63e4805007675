package cost

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

// Resolver computes PairCost over one directional keypad, memoized.
// The memo lives as long as the Resolver; share one Resolver to share it.
type Resolver struct {
	kp    *keypad.Keypad
	table *paths.Table
	base  *BaseTable
	opts  Options

	mu    sync.RWMutex
	memo  map[memoKey]int
	group singleflight.Group

	expansions atomic.Int64
	hits       atomic.Int64
}

// NewResolver builds the path table and base table of kp. kp must carry
// the whole control alphabet (^ v < > A) since every controller in the
// chain is typed in it.
func NewResolver(kp *keypad.Keypad, opts ...Option) (*Resolver, error) {
	if err := kp.RequireAlphabet(keypad.ControlAlphabet); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table, err := paths.NewTable(kp)
	if err != nil {
		return nil, err
	}
	base, err := NewBaseTable(table)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		kp:    kp,
		table: table,
		base:  base,
		opts:  o,
		memo:  make(map[memoKey]int),
	}, nil
}

// Keypad returns the directional keypad the resolver works on.
func (r *Resolver) Keypad() *keypad.Keypad { return r.kp }

// Base returns the level-0 table.
func (r *Resolver) Base() *BaseTable { return r.base }

// PairCost returns the operator presses needed to move an arm from a to b
// and press b, level keypads below the operator's first controller.
// Complexity: O(|alphabet|² × level) over the lifetime of the memo.
func (r *Resolver) PairCost(from, to rune, level int) (int, error) {
	switch {
	case level < 0:
		return 0, levelError(level)
	case level == 0:
		return r.base.Cost(from, to)
	}

	key := memoKey{from: from, to: to, level: level}
	if c, ok := r.lookup(key); ok {
		r.hits.Add(1)
		return c, nil
	}

	v, err, _ := r.group.Do(key.String(), func() (interface{}, error) {
		// a flight that finished between lookup and Do already stored it
		if c, ok := r.lookup(key); ok {
			return c, nil
		}
		r.expansions.Add(1)
		r.opts.OnExpand(key.from, key.to, key.level)
		_, c, err := r.evaluate(key)
		if err != nil {
			return 0, err
		}
		r.mu.Lock()
		r.memo[key] = c
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Best returns the first shortest move sequence from a to b that achieves
// PairCost(a, b, level), together with that cost. At level 0 every
// candidate costs the same and the first one is returned.
func (r *Resolver) Best(from, to rune, level int) (paths.Sequence, int, error) {
	switch {
	case level < 0:
		return "", 0, levelError(level)
	case level == 0:
		seqs, err := r.table.Candidates(from, to)
		if err != nil {
			return "", 0, err
		}
		return seqs[0], seqs[0].Len(), nil
	}
	return r.evaluate(memoKey{from: from, to: to, level: level})
}

// SequenceCost returns Σ PairCost(prev, s_i, level) over seq, with prev
// starting on 'A': the operator cost of typing seq on a keypad level
// controllers below the operator's first one. A sum past the int range
// returns ErrOverflow.
func (r *Resolver) SequenceCost(seq string, level int) (int, error) {
	if level < 0 {
		return 0, levelError(level)
	}
	total := 0
	prev := keypad.Activate
	for _, s := range seq {
		c, err := r.PairCost(prev, s, level)
		if err != nil {
			return 0, err
		}
		var ok bool
		if total, ok = Add(total, c); !ok {
			return 0, fmt.Errorf("%w: typing %q at level %d, pair %c%c", ErrOverflow, seq, level, prev, s)
		}
		prev = s
	}
	return total, nil
}

// Presses returns the operator cost of typing seq on the first keypad of a
// chain of depth directional keypads, the operator's own keypad included.
// depth 1 means the operator types seq directly.
func (r *Resolver) Presses(seq string, depth int) (int, error) {
	if depth < 1 {
		return 0, levelError(depth)
	}
	if depth == 1 {
		for _, s := range seq {
			if !r.kp.Contains(s) {
				return 0, unknownKey(r.kp, s)
			}
		}
		return len(seq), nil
	}
	return r.SequenceCost(seq, depth-2)
}

// Stats reports memo usage since construction or the last Reset.
func (r *Resolver) Stats() Stats {
	r.mu.RLock()
	n := len(r.memo)
	r.mu.RUnlock()
	return Stats{Entries: n, Expansions: r.expansions.Load(), Hits: r.hits.Load()}
}

// Reset drops every memoized result and zeroes the counters.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.memo = make(map[memoKey]int)
	r.mu.Unlock()
	r.expansions.Store(0)
	r.hits.Store(0)
}

func (r *Resolver) lookup(key memoKey) (int, bool) {
	r.mu.RLock()
	c, ok := r.memo[key]
	r.mu.RUnlock()
	return c, ok
}

// evaluate costs every candidate of key one level down and returns the
// first cheapest one. Candidates that overflow are skipped; ErrOverflow is
// returned only when all of them do.
func (r *Resolver) evaluate(key memoKey) (paths.Sequence, int, error) {
	seqs, err := r.table.Candidates(key.from, key.to)
	if err != nil {
		return "", 0, err
	}

	best, bestCost := paths.Sequence(""), -1
	var overflow error
	for _, s := range seqs {
		c, err := r.SequenceCost(string(s), key.level-1)
		if errors.Is(err, ErrOverflow) {
			overflow = err
			continue
		}
		if err != nil {
			return "", 0, err
		}
		if bestCost < 0 || c < bestCost {
			best, bestCost = s, c
		}
	}
	if bestCost < 0 && overflow != nil {
		return "", 0, overflow
	}
	return best, bestCost, nil
}
