// Package validate holds the pure input validation rules shared by the link
// and credential stores.
package validate

import (
	"regexp"
	"strings"
)

// MaxURLLength caps accepted target URLs.
const MaxURLLength = 1000

// urlPattern matches absolute http(s) URLs: a dotted hostname with a
// multi-letter top-level label, the literal "localhost", or a dotted-quad
// IPv4 address, with an optional port and an optional path/query remainder.
var urlPattern = regexp.MustCompile(`(?i)^https?://` +
	`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}\.?|localhost|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
	`(?::\d+)?` +
	`(?:/?|[/?]\S+)$`)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{5,}$`)

// URL reports whether s is an acceptable target URL. Overlong strings and
// anything containing angle brackets are rejected before the grammar check;
// the brackets would otherwise survive into rendered listings.
func URL(s string) bool {
	if len(s) > MaxURLLength {
		return false
	}

	if strings.ContainsAny(s, "<>") {
		return false
	}

	return urlPattern.MatchString(s)
}

// Username reports whether s is at least five characters of alphanumerics
// and underscores.
func Username(s string) bool {
	return usernamePattern.MatchString(s)
}

// Password reports whether s is at least eight characters and contains an
// uppercase letter, a lowercase letter, and a digit.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, lower, digit bool

	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}

	return upper && lower && digit
}
