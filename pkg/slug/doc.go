// Package slug turns arbitrary text into URL-safe identifiers.
//
// Make folds diacritics to base Latin letters (via pkg/normalize), lowercases,
// collapses every run of characters outside [a-z0-9] into one separator and trims
// separators from both ends. Whitespace-only or symbol-only input yields "".
//
//	slug.Make("Hello World")          // "hello-world"
//	slug.Make("İstanbul Büyükşehir")  // "istanbul-buyuksehir"
//	slug.Make("Straße in München")    // "strasse-in-munchen"
//
// With default options the output always matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is
// empty; Valid checks exactly that.
//
// # Options
//
//   - MaxLength: maximum slug length in runes
//   - Separator: separator string (default "-")
//   - Lowercase: lowercase conversion (default true)
//   - StripChars: characters removed before processing
//   - CustomReplace: replacements applied before processing (e.g. "&" → "and")
//   - WithSuffix: random alphanumeric suffix for collision avoidance
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
//
// Scripts without a Latin transliteration (Cyrillic, CJK) are treated as separators.
//
// All functions are safe for concurrent use. Suffixes are drawn from crypto/rand.
package slug
