package induct_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/induction/induct"
)

// appendLevel appends the level number to every element and keeps one copy
// per element, so each level is a deterministic function of the previous one.
func appendLevel(k int, prev []int) []int {
	out := make([]int, 0, 2*len(prev))
	for _, v := range prev {
		out = append(out, v*10+k, v*10+k+1)
	}
	return out
}

// TestUnfold_Errors verifies that invalid inputs and options are rejected.
func TestUnfold_Errors(t *testing.T) {
	_, err := induct.Unfold[int]([]int{1}, 0, 2, nil)
	assert.ErrorIs(t, err, induct.ErrNilStep, "nil step must error")

	_, err = induct.Unfold([]int{1}, 3, 2, appendLevel)
	assert.ErrorIs(t, err, induct.ErrLevelRange, "to < from must error")

	_, err = induct.Unfold([]int{1}, 0, 2, appendLevel, induct.WithStrategy(induct.Strategy(7)))
	assert.ErrorIs(t, err, induct.ErrOptionViolation, "unknown strategy must error")

	_, err = induct.Unfold([]int{1}, 0, 2, appendLevel, induct.WithMaxSize(-1))
	assert.ErrorIs(t, err, induct.ErrOptionViolation, "negative MaxSize must error")
}

// TestUnfold_BaseLevel checks that to == from returns the base unchanged.
func TestUnfold_BaseLevel(t *testing.T) {
	base := []int{4, 5}
	got, err := induct.Unfold(base, 2, 2, appendLevel)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

// TestUnfold_StrategiesAgree confirms both walks produce the same order.
func TestUnfold_StrategiesAgree(t *testing.T) {
	for to := 0; to <= 6; to++ {
		it, err := induct.Unfold([]int{1}, 0, to, appendLevel, induct.WithStrategy(induct.Iterative))
		require.NoError(t, err)
		rec, err := induct.Unfold([]int{1}, 0, to, appendLevel, induct.WithStrategy(induct.Recursive))
		require.NoError(t, err)

		if diff := cmp.Diff(it, rec); diff != "" {
			t.Fatalf("level %d: iterative vs recursive (-it +rec):\n%s", to, diff)
		}
		assert.Len(t, it, 1<<to)
	}
}

// TestUnfold_OnLevelOrder verifies the hook sees every level once, ascending.
func TestUnfold_OnLevelOrder(t *testing.T) {
	for _, s := range []induct.Strategy{induct.Iterative, induct.Recursive} {
		var levels, sizes []int
		hook := func(level, size int) {
			levels = append(levels, level)
			sizes = append(sizes, size)
		}
		_, err := induct.Unfold([]int{1}, 1, 4, appendLevel, induct.WithStrategy(s), induct.WithOnLevel(hook))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, levels, "strategy %s", s)
		assert.Equal(t, []int{1, 2, 4, 8}, sizes, "strategy %s", s)
	}
}

// TestRun_NilHook makes sure hand-built Options without a hook still work.
func TestRun_NilHook(t *testing.T) {
	got, err := induct.Run(induct.Options{Strategy: induct.Recursive}, []int{1}, 0, 1, appendLevel)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, got)
}

// TestStrategy_Parse covers the name round-trip and rejection of unknown names.
func TestStrategy_Parse(t *testing.T) {
	for _, s := range []induct.Strategy{induct.Iterative, induct.Recursive} {
		got, err := induct.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := induct.ParseStrategy("sideways")
	assert.ErrorIs(t, err, induct.ErrOptionViolation)
	assert.Equal(t, "strategy(9)", induct.Strategy(9).String())
}

// TestOptions_CheckSize covers the size bound edges.
func TestOptions_CheckSize(t *testing.T) {
	o, err := induct.Resolve(induct.WithMaxSize(8))
	require.NoError(t, err)

	assert.NoError(t, o.CheckSize(big.NewInt(8)), "equal to bound is allowed")
	assert.ErrorIs(t, o.CheckSize(big.NewInt(9)), induct.ErrSizeLimit)
	assert.NoError(t, o.CheckSize(nil))

	unlimited := induct.DefaultOptions()
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	assert.NoError(t, unlimited.CheckSize(huge), "zero MaxSize means no limit")
}
