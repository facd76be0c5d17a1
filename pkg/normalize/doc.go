// Package normalize folds Unicode text into comparable, ASCII-leaning forms.
//
// Value is the canonical normalizer used for lookups and comparisons: it decomposes
// the input (NFD), drops every non-spacing combining mark, recomposes (NFC) and
// uppercases with locale-invariant mapping, so "résumé" and "RESUME" compare equal.
// The decompose step must run before stripping marks, otherwise marks bound into
// precomposed glyphs survive.
//
//	normalize.Value("café")     // "CAFE"
//	normalize.Value("İstanbul") // "ISTANBUL"
//
// Fold performs the same mark removal without changing case and additionally maps
// letters that have no canonical decomposition (ß, ø, ł, æ, ...) to plain Latin.
// It is the front half of slug generation.
//
// ReplaceToLatin is a narrower, table-driven substitution for Turkish letters only;
// diacritics on other letters are left untouched:
//
//	normalize.ReplaceToLatin("Şişli Çarşı") // "Sisli Carsi"
//
// All functions are total: empty input is returned unchanged and nothing panics.
// Transformers from golang.org/x/text are stateful, so each call builds its own
// chain and the package is safe for concurrent use.
package normalize
