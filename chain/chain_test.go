package chain_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

var sampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

func newSolver(t testing.TB, opts ...chain.Option) *chain.Solver {
	t.Helper()
	s, err := chain.New(opts...)
	require.NoError(t, err)
	return s
}

//----------------------------------------------------------------------------//
// MinimumPresses / Complexity
//----------------------------------------------------------------------------//

func TestMinimumPresses_SingleController(t *testing.T) {
	s := newSolver(t)
	n, err := s.MinimumPresses("029A", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	res, err := s.Complexity("029A", 1)
	require.NoError(t, err)
	assert.Equal(t, chain.Result{Code: "029A", Presses: 12, Value: 29, Complexity: 348}, res)
}

func TestMinimumPresses_TwoRobots(t *testing.T) {
	s := newSolver(t)
	res, err := s.Complexity("379A", 3)
	require.NoError(t, err)
	assert.Equal(t, 64, res.Presses)
	assert.Equal(t, 24256, res.Complexity)
}

func TestMinimumPresses_Sample(t *testing.T) {
	s := newSolver(t)
	want := map[string]int{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for code, presses := range want {
		n, err := s.MinimumPresses(code, 3)
		require.NoError(t, err)
		assert.Equal(t, presses, n, code)
	}

	n, err := s.MinimumPresses("029A", 2)
	require.NoError(t, err)
	assert.Equal(t, 28, n)
}

// TestMinimumPresses_Deep: depth 26 costs more than depth 2, finishes fast
// and keeps the memo within |alphabet|² × depth entries.
func TestMinimumPresses_Deep(t *testing.T) {
	s := newSolver(t)
	const depth = 26
	for _, code := range sampleCodes {
		start := time.Now()
		deep, err := s.MinimumPresses(code, depth)
		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)

		shallow, err := s.MinimumPresses(code, 2)
		require.NoError(t, err)
		assert.Greater(t, deep, shallow, code)
	}
	n := len(keypad.ControlAlphabet)
	assert.LessOrEqual(t, s.Resolver().Stats().Entries, n*n*depth)
}

func TestMinimumPresses_Errors(t *testing.T) {
	s := newSolver(t)
	_, err := s.MinimumPresses("029A", 0)
	assert.ErrorIs(t, err, cost.ErrInvalidLevel)

	_, err = s.MinimumPresses("02B", 2)
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)

	_, err = s.Complexity("A", 2)
	assert.ErrorIs(t, err, chain.ErrNoNumericValue)
}

// TestMinimumPresses_Overflow: deep chains report cost.ErrOverflow instead of
// a wrapped count; below that point counts keep growing with depth.
func TestMinimumPresses_Overflow(t *testing.T) {
	s := newSolver(t)
	prev := 0
	for depth := 1; depth <= 42; depth++ {
		n, err := s.MinimumPresses("029A", depth)
		require.NoError(t, err, "depth %d", depth)
		assert.Greater(t, n, prev, "depth %d", depth)
		prev = n
	}
	for _, depth := range []int{60, 80, 200} {
		_, err := s.MinimumPresses("029A", depth)
		assert.ErrorIs(t, err, cost.ErrOverflow, "depth %d", depth)
	}

	_, err := s.TotalComplexity(sampleCodes, 100)
	assert.ErrorIs(t, err, cost.ErrOverflow)
}

// TestComplexity_Overflow: presses fit at depth 42 but presses × 980 does not.
func TestComplexity_Overflow(t *testing.T) {
	s := newSolver(t)
	n, err := s.MinimumPresses("980A", 42)
	require.NoError(t, err)
	require.Greater(t, n, math.MaxInt/980)

	_, err = s.Complexity("980A", 42)
	assert.ErrorIs(t, err, cost.ErrOverflow)
}

func TestSum_Overflow(t *testing.T) {
	_, err := chain.Sum([]chain.Result{{Code: "1A", Complexity: math.MaxInt}, {Code: "2A", Complexity: 1}})
	assert.ErrorIs(t, err, cost.ErrOverflow)

	total, err := chain.Sum(nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestNumericValue(t *testing.T) {
	cases := map[string]int{"029A": 29, "980A": 980, "0A": 0, "7A": 7, "123": 123}
	for code, want := range cases {
		got, err := chain.NumericValue(code)
		require.NoError(t, err)
		assert.Equal(t, want, got, code)
	}

	_, err := chain.NumericValue("A")
	assert.ErrorIs(t, err, chain.ErrNoNumericValue)
	_, err = chain.NumericValue("1x2A")
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Batch
//----------------------------------------------------------------------------//

func TestTotalComplexity_Sample(t *testing.T) {
	s := newSolver(t)
	total, err := s.TotalComplexity(sampleCodes, 3)
	require.NoError(t, err)
	assert.Equal(t, 126384, total)

	sum := 0
	for _, code := range sampleCodes {
		n, err := s.MinimumPresses(code, 3)
		require.NoError(t, err)
		v, err := chain.NumericValue(code)
		require.NoError(t, err)
		sum += n * v
	}
	assert.Equal(t, sum, total)
}

func TestTotalComplexity_DeepSample(t *testing.T) {
	s := newSolver(t)
	total, err := s.TotalComplexity(sampleCodes, 26)
	require.NoError(t, err)
	assert.Equal(t, 154115708116294, total)
}

func TestBreakdown_Order(t *testing.T) {
	s := newSolver(t)
	results, err := s.Breakdown(sampleCodes, 3)
	require.NoError(t, err)
	require.Len(t, results, len(sampleCodes))
	for i, r := range results {
		assert.Equal(t, sampleCodes[i], r.Code)
	}
	total, err := chain.Sum(results)
	require.NoError(t, err)
	assert.Equal(t, 126384, total)
}

func TestTotalComplexityParallel_MatchesSequential(t *testing.T) {
	s := newSolver(t)
	for _, depth := range []int{1, 3, 26} {
		want, err := s.TotalComplexity(sampleCodes, depth)
		require.NoError(t, err)
		for _, workers := range []int{0, 1, 3} {
			fresh := newSolver(t)
			got, err := fresh.TotalComplexityParallel(context.Background(), sampleCodes, depth, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got, "depth %d workers %d", depth, workers)
		}
	}
}

func TestTotalComplexityParallel_Errors(t *testing.T) {
	s := newSolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.TotalComplexityParallel(ctx, sampleCodes, 3, 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.TotalComplexityParallel(context.Background(), []string{"029A", "9X9A"}, 3, 2)
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
}

// TestSharedResolver: solvers built on one resolver share its memo.
func TestSharedResolver(t *testing.T) {
	r, err := cost.NewResolver(keypad.Directional())
	require.NoError(t, err)
	a := newSolver(t, chain.WithResolver(r))
	b := newSolver(t, chain.WithResolver(r))

	_, err = a.MinimumPresses("179A", 10)
	require.NoError(t, err)
	before := r.Stats().Expansions

	_, err = b.MinimumPresses("179A", 10)
	require.NoError(t, err)
	assert.Equal(t, before, r.Stats().Expansions)
	assert.Same(t, r, b.Resolver())
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestNew_Options(t *testing.T) {
	_, err := chain.New(chain.WithMaxEncodeDepth(0))
	assert.ErrorIs(t, err, chain.ErrOptionViolation)

	_, err = chain.New(chain.WithTarget(nil))
	assert.ErrorIs(t, err, chain.ErrOptionViolation)

	noRest, err := keypad.New([]string{"12", " 3"})
	require.NoError(t, err)
	_, err = chain.New(chain.WithTarget(noRest))
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)

	_, err = chain.New(chain.WithController(keypad.Numeric()))
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)

	// the direction pad can itself be the target
	s := newSolver(t, chain.WithTarget(keypad.Directional()))
	n, err := s.MinimumPresses("<A", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Same(t, keypad.Directional(), s.Target())
}

//----------------------------------------------------------------------------//
// Encode / Simulate
//----------------------------------------------------------------------------//

// TestEncode_RoundTrip: the encoded presses have minimal length and replay
// to the code without any arm crossing a gap.
func TestEncode_RoundTrip(t *testing.T) {
	s := newSolver(t)
	for depth := 1; depth <= chain.DefaultMaxEncodeDepth; depth++ {
		for _, code := range sampleCodes {
			presses, err := s.Encode(code, depth)
			require.NoError(t, err)

			n, err := s.MinimumPresses(code, depth)
			require.NoError(t, err)
			assert.Len(t, presses, n, "%s depth %d", code, depth)

			typed, err := s.Simulate(presses, depth)
			require.NoError(t, err)
			assert.Equal(t, code, typed)
		}
	}
}

func TestEncode_Limits(t *testing.T) {
	s := newSolver(t, chain.WithMaxEncodeDepth(2))
	_, err := s.Encode("029A", 3)
	assert.ErrorIs(t, err, chain.ErrEncodeTooDeep)
	_, err = s.Encode("029A", 0)
	assert.ErrorIs(t, err, cost.ErrInvalidLevel)
}

func TestSimulate(t *testing.T) {
	s := newSolver(t)
	typed, err := s.Simulate("<A^A>^^AvvvA", 1)
	require.NoError(t, err)
	assert.Equal(t, "029A", typed)

	typed, err = s.Simulate("<vA<AA>>^AvAA<^A>A<v<A>>^AvA^A<vA>^A<v<A>^A>AAvA^A<v<A>A>^AAAvA<^A>A", 3)
	require.NoError(t, err)
	assert.Equal(t, "029A", typed)

	_, err = s.Simulate("<<A", 1)
	assert.ErrorIs(t, err, paths.ErrGapStep)

	_, err = s.Simulate("^A", 2)
	assert.ErrorIs(t, err, paths.ErrOffGrid)

	_, err = s.Simulate("A", 0)
	assert.ErrorIs(t, err, cost.ErrInvalidLevel)
}
