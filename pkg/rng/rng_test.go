package rng

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	src := New(42)
	items := make([]int, 52)
	for i := range items {
		items[i] = i
	}

	for trial := 0; trial < 100; trial++ {
		Shuffle(src, items)
		sorted := append([]int(nil), items...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v)
		}
	}
}

func TestShuffle_PositionsRoughlyUniform(t *testing.T) {
	src := New(7)
	const n, trials = 5, 50000
	counts := [n][n]int{}

	for trial := 0; trial < trials; trial++ {
		items := []int{0, 1, 2, 3, 4}
		Shuffle(src, items)
		for pos, v := range items {
			counts[v][pos]++
		}
	}

	expected := float64(trials) / n
	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			assert.InDelta(t, expected, float64(counts[v][pos]), expected*0.05, "value %d at position %d", v, pos)
		}
	}
}

func TestWeightedPick_CumulativeIntervals(t *testing.T) {
	table := []Weighted[string]{
		{Value: "a", Probability: 0.2},
		{Value: "b", Probability: 0.3},
		{Value: "c", Probability: 0.5},
	}

	cases := []struct {
		u    float64
		want string
	}{
		{0, "a"},
		{0.2, "a"},
		{0.2001, "b"},
		{0.49, "b"},
		{0.75, "c"},
		{0.9999999, "c"},
	}
	for _, tc := range cases {
		got := WeightedPick[string](NewSequence([]float64{tc.u}, nil), table)
		assert.Equal(t, tc.want, got, "u=%v", tc.u)
	}
}

func TestWeightedPick_FallsBackToLastEntry(t *testing.T) {
	table := []Weighted[int]{
		{Value: 1, Probability: 0.3},
		{Value: 2, Probability: 0.3},
		{Value: 3, Probability: 0.3},
	}
	got := WeightedPick[int](NewSequence([]float64{0.95}, nil), table)
	assert.Equal(t, 3, got)
}

func TestSample_Distinct(t *testing.T) {
	src := New(1)
	for trial := 0; trial < 200; trial++ {
		picks := Sample(src, 80, 20)
		require.Len(t, picks, 20)
		seen := map[int]bool{}
		for _, p := range picks {
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, 80)
			require.False(t, seen[p])
			seen[p] = true
		}
	}
}

func TestSequence_Wraps(t *testing.T) {
	s := NewSequence([]float64{0.1, 0.9}, []int{5, -1})
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 2, s.Intn(3))
	assert.Equal(t, 2, s.Intn(3))
}
