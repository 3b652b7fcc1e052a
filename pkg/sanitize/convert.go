package sanitize

import "strconv"

// LetterToDigit maps an uppercase letter to its ISO 7064 numeric value
// (A=10 … Z=35). Decimal digits map to themselves. The second return value
// reports whether the rune belongs to either class.
func LetterToDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// LettersToDigits converts an uppercase alphanumeric string into a pure digit
// string by replacing every letter with its ISO 7064 value, character by
// character. IBAN and ISIN checksums operate on the resulting digit string.
// The second return value is false when the input contains a rune outside
// [0-9A-Z]; the partial conversion is not returned in that case.
func LettersToDigits(s string) (string, bool) {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		n, ok := LetterToDigit(r)
		if !ok {
			return "", false
		}
		out = strconv.AppendInt(out, int64(n), 10)
	}
	return string(out), true
}
