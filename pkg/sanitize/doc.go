// Package sanitize provides small, focused normalization helpers used by the
// validators to bring raw user input into a canonical form before any rule or
// checksum is applied.
//
// The helpers fall into three groups:
//
//   - Whitespace and case – Trim, Alphanumeric (strip all whitespace and
//     uppercase, the common first step for checksum-based identifiers).
//
//   - Character extraction – Digits (GS1 codes), PhoneSeparators (strip the
//     punctuation commonly typed into phone numbers).
//
//   - Letter-to-digit conversion – LetterToDigit and LettersToDigits implement
//     the ISO 7064 mapping (A=10 … Z=35) that turns alphanumeric codes such as
//     IBANs and ISINs into pure digit strings for modular arithmetic.
//
// The package is completely stateless and depends only on the Go standard
// library. All helpers are pure functions that can be freely combined; the
// higher-order Apply and Compose helpers allow the creation of reusable
// normalization pipelines:
//
//	canonical := sanitize.Compose(
//	    sanitize.Trim,
//	    sanitize.Alphanumeric,
//	)
//
//	iban := canonical(" gb82 west 1234 5698 7654 32 ") // "GB82WEST12345698765432"
package sanitize
