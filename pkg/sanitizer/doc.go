// Package sanitizer provides small, stateless helpers for cleaning user-facing text.
//
// The helpers cover trimming and case conversion (ToTitleCase uses locale-independent
// rules from golang.org/x/text/cases), whitespace and control character cleanup,
// truncation, alphanumeric filtering and HTML tag removal:
//
//	sanitizer.RemoveHTMLTags("<p>Hello <b>World</b></p>")   // "Hello World"
//	sanitizer.RemoveHTMLTags("<p>Hello</p>", " ")           // " Hello "
//	sanitizer.Truncate("This is a very long string", 10)    // "This is a ..."
//	sanitizer.ToTitleCase("hello world")                    // "Hello World"
//
// Apply and Compose build reusable pipelines out of any func(T) T:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveExtraWhitespace, sanitizer.ToLower)
//	clean("  Mixed   CASE  ") // "mixed case"
//
// # Error handling
//
// None of the helpers returns an error or panics. Empty input produces empty output.
package sanitizer
