package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extkit/pkg/query"
)

func greaterThan(n int) func(int) bool {
	return func(v int) bool { return v > n }
}

func TestWhereIf(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{4, 5}, query.WhereIf(source, true, greaterThan(3)))
	assert.Equal(t, source, query.WhereIf(source, false, greaterThan(3)))
	assert.Empty(t, query.WhereIf(source, true, greaterThan(10)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, source)
}

func TestSkipIf(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		cond     bool
		n        int
		expected []int
	}{
		{name: "skips when true", cond: true, n: 2, expected: []int{3, 4, 5}},
		{name: "untouched when false", cond: false, n: 2, expected: []int{1, 2, 3, 4, 5}},
		{name: "negative skips nothing", cond: true, n: -1, expected: []int{1, 2, 3, 4, 5}},
		{name: "past the end", cond: true, n: 10, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, query.SkipIf(source, tt.cond, tt.n))
		})
	}
}

func TestTakeIf(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		cond     bool
		n        int
		expected []int
	}{
		{name: "takes when true", cond: true, n: 3, expected: []int{1, 2, 3}},
		{name: "untouched when false", cond: false, n: 3, expected: []int{1, 2, 3, 4, 5}},
		{name: "zero takes nothing", cond: true, n: 0, expected: []int{}},
		{name: "more than available", cond: true, n: 10, expected: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, query.TakeIf(source, tt.cond, tt.n))
		})
	}
}

func TestSelectIf(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5}
	double := func(v int) int { return v * 2 }
	triple := func(v int) int { return v * 3 }

	assert.Equal(t, []int{2, 4, 6, 8, 10}, query.SelectIf(source, true, double, triple))
	assert.Equal(t, []int{3, 6, 9, 12, 15}, query.SelectIf(source, false, double, triple))
}

func TestOrderByIf(t *testing.T) {
	t.Parallel()

	source := []int{3, 1, 4, 2, 5}
	identity := func(v int) int { return v }

	assert.Equal(t, []int{1, 2, 3, 4, 5}, query.OrderByIf(source, true, identity, true).Items())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, query.OrderByIf(source, true, identity, false).Items())
	assert.Equal(t, []int{3, 1, 4, 2, 5}, query.OrderByIf(source, false, identity, true).Items())
	assert.Equal(t, []int{3, 1, 4, 2, 5}, source)
}

type pair struct {
	A, B int
}

func TestThenByIf(t *testing.T) {
	t.Parallel()

	source := []pair{{A: 1, B: 3}, {A: 1, B: 1}, {A: 2, B: 2}}
	byA := func(p pair) int { return p.A }
	byB := func(p pair) int { return p.B }

	t.Run("applies secondary key", func(t *testing.T) {
		t.Parallel()
		got := query.ThenByIf(query.OrderBy(source, byA, true), true, byB, true).Items()
		require.Len(t, got, 3)
		assert.Equal(t, pair{A: 1, B: 1}, got[0])
		assert.Equal(t, pair{A: 1, B: 3}, got[1])
		assert.Equal(t, pair{A: 2, B: 2}, got[2])
	})

	t.Run("keeps original order on ties when false", func(t *testing.T) {
		t.Parallel()
		got := query.ThenByIf(query.OrderBy(source, byA, true), false, byB, true).Items()
		assert.Equal(t, pair{A: 1, B: 3}, got[0])
		assert.Equal(t, pair{A: 1, B: 1}, got[1])
	})

	t.Run("descending secondary key", func(t *testing.T) {
		t.Parallel()
		got := query.ThenBy(query.OrderBy(source, byA, false), byB, false).Items()
		assert.Equal(t, []pair{{A: 2, B: 2}, {A: 1, B: 3}, {A: 1, B: 1}}, got)
	})

	t.Run("orderings do not share keys", func(t *testing.T) {
		t.Parallel()
		base := query.OrderBy(source, byA, true)
		asc := query.ThenBy(base, byB, true)
		desc := query.ThenBy(base, byB, false)
		assert.Equal(t, 1, asc.Items()[0].B)
		assert.Equal(t, 3, desc.Items()[0].B)
		assert.Equal(t, 3, base.Items()[0].B)
	})
}
