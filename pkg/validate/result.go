package validate

import "time"

// Result is the terminal outcome of a single validation call. Exactly one of
// two shapes occurs: success with Valid set and an optional Normalized value,
// or failure with a non-empty Message. A Result is never both valid and
// carrying a message.
type Result struct {
	// Valid reports whether the value passed every applicable rule.
	Valid bool

	// Normalized holds the canonicalized value on success. Its dynamic type
	// is validator-specific: float64 for Numeric, int for Age, string for
	// everything else. It is nil on failure.
	Normalized any

	// Message is the human-readable failure reason. Empty on success,
	// non-empty on failure.
	Message string
}

// DecimalBounds constrains the number of fractional digits of a numeric
// value. Both bounds are inclusive; a nil bound is unconstrained.
type DecimalBounds struct {
	Min *int
	Max *int
}

// Config carries the per-call validation options. It is constructed fresh for
// each call, never mutated by the validators, and a nil *Config means "no
// constraints". Fields irrelevant to a given validator are ignored by it.
type Config struct {
	// Min and Max are inclusive numeric bounds (Numeric) or inclusive age
	// bounds in whole years (Age).
	Min *float64
	Max *float64

	// MinLength, MaxLength and FixLength bound the byte length of textual
	// values. FixLength demands an exact length and is checked first.
	MinLength *int
	MaxLength *int
	FixLength *int

	// Decimals bounds the fractional precision of numeric values.
	Decimals *DecimalBounds

	// AllowSpecialChars, when explicitly false, restricts Text to letters,
	// digits and spaces. Unset means special characters are permitted.
	AllowSpecialChars *bool

	// AcceptedFileExtensions, when non-empty, is the closed set of file
	// extensions FileName accepts. Entries are matched case-insensitively
	// and may be given with or without the leading dot.
	AcceptedFileExtensions []string

	// CustomErrorMessage, when non-empty, replaces the generated message on
	// every failure path. It never flips a failing check into a passing one.
	CustomErrorMessage string

	// BirthDate is the reference date Age computes against. Nil means the
	// current time.
	BirthDate *time.Time
}

// Float returns a pointer to v, for concise Config literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for concise Config literals.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for concise Config literals.
func Bool(v bool) *bool { return &v }

// valid builds a success result carrying the canonical value.
func valid(normalized any) Result {
	return Result{Valid: true, Normalized: normalized}
}

// invalid builds a failure result, applying the custom-message override.
func invalid(cfg *Config, msg string) Result {
	if cfg != nil && cfg.CustomErrorMessage != "" {
		msg = cfg.CustomErrorMessage
	}
	return Result{Message: msg}
}
