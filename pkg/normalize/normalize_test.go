package normalize_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/extkit/pkg/normalize"
)

func TestValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "french diacritics", input: "café", expected: "CAFE"},
		{name: "accented word", input: "résumé", expected: "RESUME"},
		{name: "turkish dotted capital i", input: "İstanbul", expected: "ISTANBUL"},
		{name: "turkish dotless i", input: "ılık", expected: "ILIK"},
		{name: "lowercase ascii", input: "hello world", expected: "HELLO WORLD"},
		{name: "mixed case", input: "Hello WoRLd", expected: "HELLO WORLD"},
		{name: "symbols preserved", input: "Test123!@#", expected: "TEST123!@#"},
		{name: "decomposed input", input: "été", expected: "ETE"},
		{name: "ogonek and acute", input: "gęślą", expected: "GESLA"},
		{name: "cyrillic with breve", input: "й", expected: "И"},
		{name: "sharp s kept", input: "straße", expected: "STRAßE"},
		{name: "ligature kept", input: "ﬁne", expected: "ﬁNE"},
		{name: "no single rune uppercase", input: "ŉ", expected: "ŉ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalize.Value(tt.input))
		})
	}
}

func TestValueIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Crème brûlée", "Ärger über Öl", "Ağaç", "plain"} {
		once := normalize.Value(s)
		assert.Equal(t, once, normalize.Value(once), s)
	}
}

func TestStripMarks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Creme brulee", normalize.StripMarks("Crème brûlée"))
	assert.Equal(t, "", normalize.StripMarks(""))
	assert.Equal(t, "Łodz", normalize.StripMarks("Łódź"), "stroke is not a combining mark")
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Straße", "Strasse"},
		{"Łódź", "Lodz"},
		{"Zażółć gęślą jaźń", "Zazolc gesla jazn"},
		{"Ærøskøbing", "AEroskobing"},
		{"œuvre", "oeuvre"},
		{"Þórr", "Thorr"},
		{"ılık", "ilik"},
		{"Москва", "Москва"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalize.Fold(tt.input))
		})
	}
}

func TestReplaceToLatin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "istanbul", input: "İstanbul", expected: "Istanbul"},
		{name: "all turkish letters", input: "İıĞğÖöÜüŞşÇç", expected: "IiGgOoUuSsCc"},
		{name: "empty", input: "", expected: ""},
		{name: "non turkish diacritics untouched", input: "café Şişli", expected: "café Sisli"},
		{name: "ascii untouched", input: "Hello", expected: "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalize.ReplaceToLatin(tt.input))
		})
	}
}

func TestValueConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "RESUME", normalize.Value("résumé"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkValue(b *testing.B) {
	input := strings.Repeat("Crème brûlée à la façon İstanbul ", 8)

	b.ReportAllocs()
	for b.Loop() {
		_ = normalize.Value(input)
	}
}
