package validator

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// webSchemes are the schemes accepted by IsURL and ValidURL.
var webSchemes = []string{"http", "https"}

// IsEmail reports whether value is a bare RFC 5322 address whose domain has at
// least one dot. Display names ("Bob <bob@example.com>") are rejected.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsURL reports whether value is an absolute http or https URL with a host.
func IsURL(value string) bool {
	return IsURLWithScheme(value, webSchemes...)
}

// IsURLWithScheme reports whether value is an absolute URL with a host and one of schemes.
func IsURLWithScheme(value string, schemes ...string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" {
		return false
	}
	return slices.Contains(schemes, strings.ToLower(u.Scheme))
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: newError(field, "must be a valid email address", "validation.email"),
	}
}

// ValidURL validates that a string is an absolute http(s) URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsURL(value) },
		Error: newError(field, "must be a valid URL", "validation.url"),
	}
}

// Required fails on empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "field is required", "validation.required"),
	}
}
