package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/extkit/pkg/sanitizer"
)

func TestRemoveHTMLTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		replacement []string
		expected    string
	}{
		{name: "nested tags", input: "<p>Hello <b>World</b></p>", expected: "Hello World"},
		{name: "custom replacement", input: "<p>Hello</p>", replacement: []string{" "}, expected: " Hello "},
		{name: "self closing", input: "Hello<br/>world", expected: "Helloworld"},
		{name: "attributes", input: `<a href="https://example.com">link</a>`, expected: "link"},
		{name: "entities kept", input: "<i>&amp;</i>", expected: "&amp;"},
		{name: "replacement is literal", input: "<b>x</b>", replacement: []string{"$1"}, expected: "$1x$1"},
		{name: "empty", input: "", expected: ""},
		{name: "no tags", input: "plain text", expected: "plain text"},
		{name: "unclosed bracket", input: "a < b", expected: "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.RemoveHTMLTags(tt.input, tt.replacement...))
		})
	}
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello & goodbye", sanitizer.StripHTML("<p>Hello &amp; goodbye</p>"))
	assert.Equal(t, `Hello "world"`, sanitizer.StripHTML("<div>Hello &quot;world&quot;</div>"))
	assert.Equal(t, "", sanitizer.StripHTML(""))
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;b&gt;", sanitizer.EscapeHTML("<b>"))
}

func TestToTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"élan vital", "Élan Vital"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.ToTitleCase(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		suffix   []string
		expected string
	}{
		{name: "long string", input: "This is a very long string that needs to be truncated", maxLen: 10, expected: "This is a ..."},
		{name: "short string", input: "Short", maxLen: 10, expected: "Short"},
		{name: "exact length", input: "0123456789", maxLen: 10, expected: "0123456789"},
		{name: "custom suffix", input: "This is a very long string", maxLen: 10, suffix: []string{"---"}, expected: "This is a ---"},
		{name: "empty suffix", input: "abcdef", maxLen: 3, suffix: []string{""}, expected: "abc"},
		{name: "rune aware", input: "héllo wörld", maxLen: 5, expected: "héllo..."},
		{name: "zero length", input: "abc", maxLen: 0, expected: ""},
		{name: "negative length", input: "abc", maxLen: -1, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Truncate(tt.input, tt.maxLen, tt.suffix...))
		})
	}
}

func TestStripNonAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello123World", sanitizer.StripNonAlphanumeric("Hello123!@#World", false))
	assert.Equal(t, "Hello 123 World", sanitizer.StripNonAlphanumeric("Hello 123 World!", true))
	assert.Equal(t, "HelloWorld", sanitizer.StripNonAlphanumeric("Hello\tWorld", true))
	assert.Equal(t, "Größe", sanitizer.StripNonAlphanumeric("Größe!", false))
	assert.Equal(t, "", sanitizer.StripNonAlphanumeric("", true))
}

func TestWhitespaceHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", sanitizer.Trim("  hello world \n"))
	assert.Equal(t, "a b c", sanitizer.RemoveExtraWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "line one line two", sanitizer.SingleLine("line one\r\nline two\n"))
	assert.Equal(t, "ab\n", sanitizer.RemoveControlChars("a\x00b\x07\n"))
	assert.Equal(t, "12345", sanitizer.KeepDigits("+1 (234) 5"))
	assert.Equal(t, "abc", sanitizer.ToLower("ABC"))
	assert.Equal(t, "ABC", sanitizer.ToUpper("abc"))
}
