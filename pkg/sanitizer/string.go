package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitleCase capitalizes the first letter of every word and lowercases the rest,
// using locale-independent rules. Empty input yields "".
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

// Truncate shortens s to at most maxLen runes and appends suffix when anything
// was cut. The suffix defaults to "..." and is not counted against maxLen.
func Truncate(s string, maxLen int, suffix ...string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	tail := "..."
	if len(suffix) > 0 {
		tail = suffix[0]
	}
	return string(runes[:maxLen]) + tail
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters but keeps \n, \r and \t.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine joins a multi-line string into one line with normalized spacing.
func SingleLine(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return RemoveExtraWhitespace(s)
}

// StripNonAlphanumeric keeps only Unicode letters and digits, plus spaces when
// allowSpace is set.
func StripNonAlphanumeric(s string, allowSpace bool) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || (allowSpace && r == ' ') {
			return r
		}
		return -1
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
