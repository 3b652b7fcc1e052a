package validate

import (
	"math"
	"strconv"
	"strings"
)

// isEmpty treats nil and the empty string uniformly as "absent". Whitespace
// handling is left to the individual validators, which trim first.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

// coerceString accepts only string input. Validators that operate on textual
// values use this as their explicit coercion step instead of stringifying
// arbitrary types.
func coerceString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// parseNumber coerces string or numeric input to a float64. Thousands
// separators (commas) are stripped from strings before parsing. NaN signals
// non-numeric input; it is a value, not an error, so callers short-circuit on
// math.IsNaN rather than handling a second return.
func parseNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// countDecimals derives the fractional precision of a numeric input,
// including exponential notation: the mantissa's decimal count is adjusted by
// the exponent, so "1.23e-2" has 4 decimal places and "1.2e3" has 0.
// Integers and non-numeric input yield 0.
func countDecimals(value any) int {
	var s string
	switch v := value.(type) {
	case string:
		s = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		// Integer kinds carry no fractional digits.
		return 0
	}

	mantissa := s
	exponent := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		if e, err := strconv.Atoi(s[i+1:]); err == nil {
			exponent = e
		}
	}

	decimals := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		decimals = len(mantissa) - i - 1
	}

	decimals -= exponent
	if decimals < 0 {
		decimals = 0
	}
	return decimals
}
