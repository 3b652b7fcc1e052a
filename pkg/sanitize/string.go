package sanitize

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Alphanumeric strips all whitespace and uppercases the remainder. Identifier
// validators (IBAN, ISIN) call this before any structural or checksum rule so
// that "gb82 west ..." and "GB82WEST..." are the same code.
func Alphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Digits keeps decimal digits only, dropping every other character. GS1 codes
// are validated on their digits regardless of grouping punctuation.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneSeparators strips the separator characters commonly typed into phone
// numbers: spaces, dashes, dots, parentheses and brackets. The leading plus
// and the digits are preserved untouched.
func PhoneSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '-', '.', '(', ')', '[', ']':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
