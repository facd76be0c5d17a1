package slug

import (
	"cmp"
	"crypto/rand"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrymomot/extkit/pkg/normalize"
)

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		maxLength:     0, // no limit
		separator:     "-",
		lowercase:     true,
		stripChars:    "",
		customReplace: nil,
		suffixLength:  0, // no suffix by default
	}
}

// MaxLength sets the maximum length of the generated slug.
// If the slug exceeds this length, it will be truncated.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator character for the slug.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug should be converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars sets additional characters to strip from the slug.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace sets custom string replacements to apply before slugification.
// For example: {"&": "and", "@": "at"}
// Replacements run in a single pass: longer keys win over their prefixes and
// replaced text is never replaced again.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix adds a random alphanumeric suffix to reduce collision possibility.
// The suffix is separated by the configured separator.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// shouldBreakForLength checks if adding a separator would exceed the max length.
func shouldBreakForLength(cfg *config, currentRuneCount int) bool {
	return cfg.maxLength > 0 && currentRuneCount+len(cfg.separator) > cfg.maxLength
}

// Make creates a URL-safe slug from the input string.
// Diacritics are folded to their base Latin letters, every run of characters
// outside [a-zA-Z0-9] becomes one separator (default "-"), and leading and
// trailing separators are trimmed. Whitespace-only input yields "".
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Apply custom replacements first
	if len(cfg.customReplace) > 0 {
		s = replacerFor(cfg.customReplace).Replace(s)
	}

	// Strip specified characters
	if cfg.stripChars != "" {
		for _, char := range cfg.stripChars {
			s = strings.ReplaceAll(s, string(char), "")
		}
	}

	s = normalize.Fold(s)

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // avoids a leading separator
	runeCount := 0

	for _, r := range s {
		// Counts runes, not bytes
		if cfg.maxLength > 0 && runeCount >= cfg.maxLength {
			break
		}

		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		if isASCIIAlnum(r) {
			b.WriteRune(r)
			lastWasSep = false
			runeCount++
			continue
		}

		// Everything else collapses into a single separator
		if !lastWasSep {
			if shouldBreakForLength(cfg, runeCount) {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			runeCount += len([]rune(cfg.separator))
		}
	}

	result := strings.TrimSuffix(b.String(), cfg.separator)

	// Add random suffix for collision avoidance if requested
	if cfg.suffixLength > 0 {
		actualSuffixLen := cfg.suffixLength
		if cfg.maxLength > 0 && cfg.suffixLength > cfg.maxLength {
			actualSuffixLen = cfg.maxLength
		}

		suffix := generateSuffix(actualSuffixLen, cfg.lowercase)

		// Ensure total length doesn't exceed maxLength
		if cfg.maxLength > 0 {
			totalLen := len([]rune(result)) + len([]rune(cfg.separator)) + actualSuffixLen
			if totalLen > cfg.maxLength {
				// Truncate main slug to make room for suffix
				mainSlugMaxLen := cfg.maxLength - len([]rune(cfg.separator)) - actualSuffixLen
				if mainSlugMaxLen > 0 {
					runes := []rune(result)
					if len(runes) > mainSlugMaxLen {
						result = string(runes[:mainSlugMaxLen])
					}
				} else {
					// No room for main slug, use suffix only
					result = ""
				}
			}
		}

		if result != "" {
			result = result + cfg.separator + suffix
		} else {
			result = suffix
		}
	}

	return result
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsUpper
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Fallback to deterministic suffix on rand.Read failure
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}

	return string(b)
}

// Valid reports whether s is a non-empty slug in the default form:
// lowercase ASCII letters and digits separated by single hyphens.
func Valid(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			prevHyphen = false
		default:
			return false
		}
	}
	return true
}

// replacerFor orders keys longest first, then lexically, so the result does not
// depend on map iteration order.
func replacerFor(replacements map[string]string) *strings.Replacer {
	keys := slices.SortedFunc(maps.Keys(replacements), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...)
}
