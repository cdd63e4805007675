package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keychain/bfs"
	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for path enumeration and replay.
var (
	// ErrUnreachableKeys indicates no shortest move sequence exists between
	// two keys of one keypad. The layout is malformed.
	ErrUnreachableKeys = errors.New("paths: keys are not reachable")

	// ErrGapStep indicates a replayed sequence moved an arm over the gap.
	ErrGapStep = errors.New("paths: move over the gap")

	// ErrOffGrid indicates a replayed sequence moved an arm off the keypad.
	ErrOffGrid = errors.New("paths: move off the keypad")

	// ErrBadMove indicates a rune that is neither a direction nor 'A'.
	ErrBadMove = errors.New("paths: not a move")
)

// Sequence is a run of direction runes ending in keypad.Activate.
type Sequence string

// Len returns the number of presses the sequence costs when typed directly.
func (s Sequence) Len() int { return len(s) }

// Moves returns the sequence without its trailing confirm press.
func (s Sequence) Moves() string { return strings.TrimSuffix(string(s), string(keypad.Activate)) }

// Enumerate returns every shortest move sequence from key from to key to on
// kp, each terminated by 'A'. from == to yields the single sequence "A".
// Returns keypad.ErrUnknownKey for symbols not on kp and ErrUnreachableKeys
// when no monotone route avoids the gap.
func Enumerate(kp *keypad.Keypad, from, to rune) ([]Sequence, error) {
	pf, err := kp.Position(from)
	if err != nil {
		return nil, err
	}
	pt, err := kp.Position(to)
	if err != nil {
		return nil, err
	}

	dr, dc := pt.Row-pf.Row, pt.Col-pf.Col
	vert, horiz := keypad.Down, keypad.Right
	if dr < 0 {
		vert, dr = keypad.Up, -dr
	}
	if dc < 0 {
		horiz, dc = keypad.Left, -dc
	}

	var out []Sequence
	buf := make([]rune, 0, dr+dc+1)
	var walk func(p keypad.Position, remH, remV int)
	walk = func(p keypad.Position, remH, remV int) {
		if remH == 0 && remV == 0 {
			out = append(out, Sequence(string(buf)+string(keypad.Activate)))
			return
		}
		if remH > 0 {
			if next := p.Add(horiz); kp.Walkable(next) {
				buf = append(buf, rune(horiz))
				walk(next, remH-1, remV)
				buf = buf[:len(buf)-1]
			}
		}
		if remV > 0 {
			if next := p.Add(vert); kp.Walkable(next) {
				buf = append(buf, rune(vert))
				walk(next, remH, remV-1)
				buf = buf[:len(buf)-1]
			}
		}
	}
	walk(pf, dc, dr)

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q -> %q on %s", ErrUnreachableKeys, from, to, kp.Name())
	}
	return out, nil
}

// Replay moves an arm resting on from through seq. Every 'A' presses the key
// under the arm. It returns the key the arm ends on and the pressed keys.
// The arm must never leave the grid or hover over the gap.
func Replay(kp *keypad.Keypad, from rune, seq string) (end rune, pressed []rune, err error) {
	p, err := kp.Position(from)
	if err != nil {
		return 0, nil, err
	}
	for i, r := range seq {
		if r == keypad.Activate {
			key, _ := kp.At(p)
			pressed = append(pressed, key)
			continue
		}
		d := keypad.Direction(r)
		if !d.Valid() {
			return 0, pressed, fmt.Errorf("%w: %q at %d", ErrBadMove, r, i)
		}
		next := p.Add(d)
		if !kp.InBounds(next) {
			return 0, pressed, fmt.Errorf("%w: %s from %s at %d on %s", ErrOffGrid, d, p, i, kp.Name())
		}
		if next == kp.Gap() {
			return 0, pressed, fmt.Errorf("%w: %s from %s at %d on %s", ErrGapStep, d, p, i, kp.Name())
		}
		p = next
	}
	end, _ = kp.At(p)
	return end, pressed, nil
}

// Route returns one shortest move sequence from from to to, found by a
// breadth-first search that only takes moves closing the Manhattan distance
// to the target and stops at that distance. The result is always one of the
// Enumerate candidates. Extra opts (an OnVisit hook, say) are applied after
// the built-in ones.
func Route(kp *keypad.Keypad, from, to rune, opts ...bfs.Option) (Sequence, error) {
	dist, err := kp.Manhattan(from, to)
	if err != nil {
		return "", err
	}
	toward := func(curr rune, s keypad.Step) bool {
		before, _ := kp.Manhattan(curr, to)
		after, _ := kp.Manhattan(s.Key, to)
		return after < before
	}
	all := append([]bfs.Option{bfs.WithFilterNeighbor(toward), bfs.WithMaxDepth(dist)}, opts...)

	res, err := bfs.BFS(kp, from, all...)
	if err != nil {
		return "", err
	}
	if !res.Reached(to) {
		return "", fmt.Errorf("%w: %q -> %q on %s: no monotone route", ErrUnreachableKeys, from, to, kp.Name())
	}
	moves, err := res.PathTo(to)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, d := range moves {
		b.WriteRune(rune(d))
	}
	b.WriteRune(keypad.Activate)
	return Sequence(b.String()), nil
}

// Table holds the shortest sequences for every ordered pair of keys of one
// keypad. It is immutable once built.
type Table struct {
	kp    *keypad.Keypad
	pairs map[[2]rune][]Sequence
}

// NewTable enumerates every ordered key pair of kp. It first checks with a
// BFS from every key that each pair is connected and that the true distance
// equals the Manhattan distance; a layout failing either check returns
// ErrUnreachableKeys.
func NewTable(kp *keypad.Keypad) (*Table, error) {
	keys := kp.Keys()
	t := &Table{kp: kp, pairs: make(map[[2]rune][]Sequence, len(keys)*len(keys))}

	for _, from := range keys {
		res, err := bfs.BFS(kp, from)
		if err != nil {
			return nil, err
		}
		for _, to := range keys {
			if !res.Reached(to) {
				return nil, fmt.Errorf("%w: %q -> %q on %s: disconnected", ErrUnreachableKeys, from, to, kp.Name())
			}
			manhattan, _ := kp.Manhattan(from, to)
			if res.Depth[to] != manhattan {
				return nil, fmt.Errorf("%w: %q -> %q on %s: gap forces a detour (%d > %d)",
					ErrUnreachableKeys, from, to, kp.Name(), res.Depth[to], manhattan)
			}
			seqs, err := Enumerate(kp, from, to)
			if err != nil {
				return nil, err
			}
			t.pairs[[2]rune{from, to}] = seqs
		}
	}
	return t, nil
}

// Keypad returns the keypad the table was built for.
func (t *Table) Keypad() *keypad.Keypad { return t.kp }

// Candidates returns the shortest sequences from a to b.
// The returned slice is shared and must not be modified.
func (t *Table) Candidates(a, b rune) ([]Sequence, error) {
	seqs, ok := t.pairs[[2]rune{a, b}]
	if !ok {
		if !t.kp.Contains(a) {
			return nil, fmt.Errorf("%w: %q on %s", keypad.ErrUnknownKey, a, t.kp.Name())
		}
		return nil, fmt.Errorf("%w: %q on %s", keypad.ErrUnknownKey, b, t.kp.Name())
	}
	return seqs, nil
}

// Shortest returns the length (presses, confirm included) of the shortest
// sequences from a to b.
func (t *Table) Shortest(a, b rune) (int, error) {
	seqs, err := t.Candidates(a, b)
	if err != nil {
		return 0, err
	}
	return seqs[0].Len(), nil
}
