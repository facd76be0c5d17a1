package strutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extkit/pkg/strutil"
)

func TestSplitInParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		length   int
		expected []string
	}{
		{name: "with remainder", input: "1234567890", length: 4, expected: []string{"1234", "5678", "90"}},
		{name: "exact multiple", input: "abcdef", length: 3, expected: []string{"abc", "def"}},
		{name: "longer than input", input: "ab", length: 10, expected: []string{"ab"}},
		{name: "runes not bytes", input: "çğüşöı", length: 2, expected: []string{"çğ", "üş", "öı"}},
		{name: "empty input", input: "", length: 3, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parts, err := strutil.SplitInParts(tt.input, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parts)
		})
	}
}

func TestSplitInPartsErrors(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, -1} {
		_, err := strutil.SplitInParts("1234567890", length)
		require.Error(t, err)
		assert.ErrorIs(t, err, strutil.ErrInvalidPartLength)
		assert.NotErrorIs(t, err, strutil.ErrNilInput)
	}

	_, err := strutil.SplitInPartsPtr(nil, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, strutil.ErrNilInput)
	assert.NotErrorIs(t, err, strutil.ErrInvalidPartLength)

	s := "1234567890"
	parts, err := strutil.SplitInPartsPtr(&s, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"1234", "5678", "90"}, parts)

	_, err = strutil.SplitInPartsPtr(&s, 0)
	assert.ErrorIs(t, err, strutil.ErrInvalidPartLength)
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, strutil.ContainsFold("Hello World", "Hello"))
	assert.True(t, strutil.ContainsFold("Hello World", "HELLO"))
	assert.True(t, strutil.ContainsFold("STRASSE", "straße"))
	assert.False(t, strutil.ContainsFold("Hello World", "Test"))
	assert.False(t, strutil.ContainsFold("", "Test"))
}

func TestRandomID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := strutil.RandomID()
		assert.Len(t, id, 22)
		assert.Regexp(t, `^[A-Za-z0-9_-]+$`, id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestParseUUID(t *testing.T) {
	t.Parallel()

	want := uuid.New()
	got, ok := strutil.ParseUUID(want.String())
	assert.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = strutil.ParseUUID("not-a-guid")
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
}
