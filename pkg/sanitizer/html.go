package sanitizer

import "html"

// RemoveHTMLTags replaces every <...> tag with replacement (default "").
// Entities are left escaped; use StripHTML to decode them as well.
func RemoveHTMLTags(s string, replacement ...string) string {
	if s == "" {
		return ""
	}

	repl := ""
	if len(replacement) > 0 {
		repl = replacement[0]
	}
	return htmlTagRegex.ReplaceAllLiteralString(s, repl)
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(RemoveHTMLTags(s))
}

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
