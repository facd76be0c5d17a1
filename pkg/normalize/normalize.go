package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Value removes diacritical marks and converts s to uppercase using
// locale-invariant simple case mapping: every rune maps to exactly one rune,
// so letters without a single-rune uppercase (ß, ﬁ) are kept.
// Empty input is returned unchanged.
func Value(s string) string {
	if s == "" {
		return s
	}

	stripped := StripMarks(s)
	return strings.ToUpper(stripped)
}

// StripMarks decomposes s, drops non-spacing marks and recomposes the rest.
// Case is preserved. On a transformer failure the input is returned as is.
func StripMarks(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// foldReplacer covers Latin letters without a canonical decomposition,
// which StripMarks cannot reduce on its own.
var foldReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ħ", "h", "Ħ", "H",
	"ı", "i",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"þ", "th", "Þ", "TH",
)

// Fold strips diacritics and transliterates the remaining special Latin letters
// to ASCII, preserving case. Non-Latin scripts pass through untouched.
func Fold(s string) string {
	if s == "" {
		return s
	}
	return foldReplacer.Replace(StripMarks(s))
}
