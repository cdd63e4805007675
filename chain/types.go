package chain

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for chain solving.
var (
	// ErrEncodeTooDeep is returned when Encode is asked for a depth whose
	// press string would be too long to materialize.
	ErrEncodeTooDeep = errors.New("chain: depth too large to encode")

	// ErrNoNumericValue is returned when a code carries no digits.
	ErrNoNumericValue = errors.New("chain: code has no numeric part")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// DefaultMaxEncodeDepth bounds Encode; press strings grow about 2.5x per
// level.
const DefaultMaxEncodeDepth = 5

// Result is the cost breakdown of one code.
type Result struct {
	Code       string
	Presses    int
	Value      int
	Complexity int
}

// Option configures a Solver.
type Option func(*Options)

// Options holds Solver parameters.
type Options struct {
	Target         *keypad.Keypad
	Controller     *keypad.Keypad
	Resolver       *cost.Resolver
	Logger         *log.Logger
	MaxEncodeDepth int

	err error
}

// DefaultOptions returns the numeric target, the directional controller,
// a silent logger and DefaultMaxEncodeDepth.
func DefaultOptions() Options {
	return Options{
		Target:         keypad.Numeric(),
		Controller:     keypad.Directional(),
		Logger:         log.New(io.Discard),
		MaxEncodeDepth: DefaultMaxEncodeDepth,
	}
}

// WithTarget sets the keypad the codes are typed on.
func WithTarget(kp *keypad.Keypad) Option {
	return func(o *Options) {
		if kp == nil {
			o.err = fmt.Errorf("%w: nil target keypad", ErrOptionViolation)
			return
		}
		o.Target = kp
	}
}

// WithController sets the directional keypad used by every controller.
// Ignored when WithResolver is given.
func WithController(kp *keypad.Keypad) Option {
	return func(o *Options) {
		if kp == nil {
			o.err = fmt.Errorf("%w: nil controller keypad", ErrOptionViolation)
			return
		}
		o.Controller = kp
	}
}

// WithResolver shares an existing resolver and its memo.
func WithResolver(r *cost.Resolver) Option {
	return func(o *Options) {
		if r != nil {
			o.Resolver = r
			o.Controller = r.Keypad()
		}
	}
}

// WithLogger sets the logger used for per-code debug lines.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxEncodeDepth bounds the depth accepted by Encode (d ≥ 1).
func WithMaxEncodeDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxEncodeDepth must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxEncodeDepth = d
	}
}
