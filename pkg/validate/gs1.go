package validate

import (
	"fmt"

	"github.com/fieldcheck/fieldcheck/pkg/sanitize"
)

// gs1CheckDigit computes the GS1 Modulo-10 check digit for the data digits
// (everything but the trailing check digit): right to left, alternating
// weights 3 and 1 starting with 3 on the rightmost data digit.
func gs1CheckDigit(data string) int {
	sum := 0
	weight := 3
	for i := len(data) - 1; i >= 0; i-- {
		sum += int(data[i]-'0') * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	return (10 - sum%10) % 10
}

// gs1Code is the shared engine behind GLN, GTIN and SSCC, which differ only
// in their accepted lengths.
func gs1Code(value any, cfg *Config, name string, lengthMsg string, lengths ...int) Result {
	if isEmpty(value) {
		return invalid(cfg, name+" is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, name+" must be text")
	}
	s := sanitize.Digits(raw)

	accepted := false
	for _, l := range lengths {
		if len(s) == l {
			accepted = true
			break
		}
	}
	if !accepted {
		return invalid(cfg, lengthMsg)
	}

	if gs1CheckDigit(s[:len(s)-1]) != int(s[len(s)-1]-'0') {
		return invalid(cfg, fmt.Sprintf("Invalid %s check digit", name))
	}

	return valid(s)
}

// GLN validates a GS1 Global Location Number: exactly 13 digits satisfying
// the Modulo-10 relation. Normalized is the digits-only code.
func GLN(value any, cfg *Config) Result {
	return gs1Code(value, cfg, "GLN", "GLN must be exactly 13 digits", 13)
}

// GTIN validates a GS1 Global Trade Item Number in any of its four lengths
// (GTIN-8, -12, -13, -14). Normalized is the digits-only code.
func GTIN(value any, cfg *Config) Result {
	return gs1Code(value, cfg, "GTIN", "GTIN must be 8, 12, 13 or 14 digits", 8, 12, 13, 14)
}

// SSCC validates a GS1 Serial Shipping Container Code: exactly 18 digits
// satisfying the Modulo-10 relation. Normalized is the digits-only code.
func SSCC(value any, cfg *Config) Result {
	return gs1Code(value, cfg, "SSCC", "SSCC must be exactly 18 digits", 18)
}
