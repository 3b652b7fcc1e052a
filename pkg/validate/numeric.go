package validate

import (
	"fmt"
	"math"
)

// Numeric validates a number given as a numeric type or a string (thousands
// separators allowed). Min/Max and decimal-place bounds are inclusive.
// Normalized is the parsed float64.
func Numeric(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Value is required")
	}

	n := parseNumber(value)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return invalid(cfg, "Value must be a number")
	}

	if cfg != nil {
		if cfg.Min != nil && n < *cfg.Min {
			return invalid(cfg, fmt.Sprintf("Value must be at least %v", *cfg.Min))
		}
		if cfg.Max != nil && n > *cfg.Max {
			return invalid(cfg, fmt.Sprintf("Value must be at most %v", *cfg.Max))
		}
		if cfg.Decimals != nil {
			// Precision is derived from the original input, not the parsed
			// float, so "1.10" counts two places.
			d := countDecimals(value)
			if cfg.Decimals.Min != nil && d < *cfg.Decimals.Min {
				return invalid(cfg, fmt.Sprintf("Value must have at least %d decimal places", *cfg.Decimals.Min))
			}
			if cfg.Decimals.Max != nil && d > *cfg.Decimals.Max {
				return invalid(cfg, fmt.Sprintf("Value must have at most %d decimal places", *cfg.Decimals.Max))
			}
		}
	}

	return valid(n)
}
