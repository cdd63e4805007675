package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/keychain/keypad"
)

// ErrInvalidLevel indicates a negative level (or a chain depth below 1).
var ErrInvalidLevel = errors.New("cost: invalid level")

// ErrOverflow indicates a press count that does not fit in an int. Costs
// grow about 2.5x per level; on the standard keypads chains deeper than
// about 47 reach it.
var ErrOverflow = errors.New("cost: press count overflows int")

// memoKey identifies one PairCost subproblem.
type memoKey struct {
	from, to rune
	level    int
}

func (k memoKey) String() string { return fmt.Sprintf("%c%c/%d", k.from, k.to, k.level) }

// Stats reports memo table usage.
type Stats struct {
	// Entries is the number of memoized (a, b, level>0) results.
	Entries int
	// Expansions counts real candidate evaluations, one per memo miss.
	Expansions int64
	// Hits counts lookups answered from the memo.
	Hits int64
}

// Option configures a Resolver.
type Option func(*Options)

// Options holds Resolver parameters.
type Options struct {
	// OnExpand is called once per memo miss, before the candidates of
	// (from, to, level) are evaluated.
	OnExpand func(from, to rune, level int)
}

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{OnExpand: func(rune, rune, int) {}}
}

// WithOnExpand registers an instrumentation hook for memo misses.
func WithOnExpand(fn func(from, to rune, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Add returns a + b for non-negative a and b, or false when the sum does
// not fit in an int.
func Add(a, b int) (int, bool) {
	if b > math.MaxInt-a {
		return 0, false
	}
	return a + b, true
}

// Mul returns a × b for non-negative a and b, or false when the product does
// not fit in an int.
func Mul(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

func levelError(level int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
}

func unknownKey(kp *keypad.Keypad, r rune) error {
	return fmt.Errorf("%w: %q on %s", keypad.ErrUnknownKey, r, kp.Name())
}
