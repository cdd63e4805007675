package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

// Solver turns door codes into operator press counts. It is safe for
// concurrent use; all calls share one cost.Resolver memo.
type Solver struct {
	target    *keypad.Keypad
	moves     *paths.Table
	resolver  *cost.Resolver
	logger    *log.Logger
	maxEncode int
}

// New builds a Solver. Without options it solves the numeric door keypad
// through directional controllers.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.Target.Contains(keypad.Activate) {
		return nil, fmt.Errorf("%w: %s has no resting key %q", keypad.ErrUnknownKey, o.Target.Name(), keypad.Activate)
	}

	moves, err := paths.NewTable(o.Target)
	if err != nil {
		return nil, err
	}
	r := o.Resolver
	if r == nil {
		if r, err = cost.NewResolver(o.Controller); err != nil {
			return nil, err
		}
	}

	return &Solver{
		target:    o.Target,
		moves:     moves,
		resolver:  r,
		logger:    o.Logger,
		maxEncode: o.MaxEncodeDepth,
	}, nil
}

// Resolver returns the shared cost resolver.
func (s *Solver) Resolver() *cost.Resolver { return s.resolver }

// Target returns the keypad codes are typed on.
func (s *Solver) Target() *keypad.Keypad { return s.target }

// MinimumPresses returns the fewest operator presses that make the robot
// on the target keypad type code, through depth directional keypads.
// Every shortest target-keypad candidate is evaluated; no ordering
// heuristic is assumed.
func (s *Solver) MinimumPresses(code string, depth int) (int, error) {
	if depth < 1 {
		return 0, fmt.Errorf("%w: chain depth %d", cost.ErrInvalidLevel, depth)
	}
	total := 0
	prev := keypad.Activate
	for _, next := range code {
		_, n, err := s.cheapest(prev, next, depth)
		if err != nil {
			return 0, fmt.Errorf("chain: code %q: %w", code, err)
		}
		var ok bool
		if total, ok = cost.Add(total, n); !ok {
			return 0, fmt.Errorf("%w: code %q at depth %d, pair %c%c", cost.ErrOverflow, code, depth, prev, next)
		}
		prev = next
	}
	s.logger.Debug("code costed", "code", code, "depth", depth, "presses", total)
	return total, nil
}

// cheapest returns the first target-keypad candidate from a to b with the
// lowest operator cost, skipping candidates whose cost overflows.
func (s *Solver) cheapest(a, b rune, depth int) (paths.Sequence, int, error) {
	seqs, err := s.moves.Candidates(a, b)
	if err != nil {
		return "", 0, err
	}
	best, bestCost := paths.Sequence(""), -1
	var overflow error
	for _, seq := range seqs {
		n, err := s.resolver.Presses(string(seq), depth)
		if errors.Is(err, cost.ErrOverflow) {
			overflow = err
			continue
		}
		if err != nil {
			return "", 0, err
		}
		if bestCost < 0 || n < bestCost {
			best, bestCost = seq, n
		}
	}
	if bestCost < 0 && overflow != nil {
		return "", 0, overflow
	}
	return best, bestCost, nil
}

// NumericValue strips the trailing non-digit runes of code and parses the
// rest as a base-10 integer: "029A" → 29.
func NumericValue(code string) (int, error) {
	digits := strings.TrimRightFunc(code, func(r rune) bool { return !unicode.IsDigit(r) })
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoNumericValue, code)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("chain: numeric value of %q: %w", code, err)
	}
	return v, nil
}

// Complexity returns presses × numeric value for one code.
func (s *Solver) Complexity(code string, depth int) (Result, error) {
	presses, err := s.MinimumPresses(code, depth)
	if err != nil {
		return Result{}, err
	}
	value, err := NumericValue(code)
	if err != nil {
		return Result{}, err
	}
	complexity, ok := cost.Mul(presses, value)
	if !ok {
		return Result{}, fmt.Errorf("%w: complexity of %q at depth %d (%d × %d)", cost.ErrOverflow, code, depth, presses, value)
	}
	return Result{Code: code, Presses: presses, Value: value, Complexity: complexity}, nil
}

// Breakdown returns the Result of every code, in input order.
func (s *Solver) Breakdown(codes []string, depth int) ([]Result, error) {
	out := make([]Result, 0, len(codes))
	for _, code := range codes {
		res, err := s.Complexity(code, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// TotalComplexity sums Complexity over codes.
func (s *Solver) TotalComplexity(codes []string, depth int) (int, error) {
	results, err := s.Breakdown(codes, depth)
	if err != nil {
		return 0, err
	}
	return Sum(results)
}

// BreakdownParallel is Breakdown with codes costed by up to workers
// goroutines (workers ≤ 0 means unlimited). The context is checked before
// each code.
func (s *Solver) BreakdownParallel(ctx context.Context, codes []string, depth, workers int) ([]Result, error) {
	out := make([]Result, len(codes))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, code := range codes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Complexity(code, depth)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalComplexityParallel is TotalComplexity computed with BreakdownParallel.
func (s *Solver) TotalComplexityParallel(ctx context.Context, codes []string, depth, workers int) (int, error) {
	results, err := s.BreakdownParallel(ctx, codes, depth, workers)
	if err != nil {
		return 0, err
	}
	return Sum(results)
}

// Sum adds up the complexities of results. It returns cost.ErrOverflow
// when the total does not fit in an int.
func Sum(results []Result) (int, error) {
	total := 0
	for _, r := range results {
		var ok bool
		if total, ok = cost.Add(total, r.Complexity); !ok {
			return 0, fmt.Errorf("%w: total complexity at code %q", cost.ErrOverflow, r.Code)
		}
	}
	return total, nil
}
