package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Letters, digits and spaces only - the restriction applied when special
	// characters are explicitly disallowed.
	noSpecialCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)

	// Letters and spaces only.
	alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z ]*$`)
)

// Text validates free-form text. The value is trimmed first; FixLength,
// MinLength and MaxLength apply to the trimmed string, in that order. When
// AllowSpecialChars is explicitly false the text is restricted to letters,
// digits and spaces. Normalized is the trimmed string.
func Text(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Value is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "Value must be text")
	}
	s := strings.TrimSpace(raw)

	if cfg != nil {
		if cfg.FixLength != nil && len(s) != *cfg.FixLength {
			return invalid(cfg, fmt.Sprintf("Value must be exactly %d characters long", *cfg.FixLength))
		}
		if cfg.MinLength != nil && len(s) < *cfg.MinLength {
			return invalid(cfg, fmt.Sprintf("Value must be at least %d characters long", *cfg.MinLength))
		}
		if cfg.MaxLength != nil && len(s) > *cfg.MaxLength {
			return invalid(cfg, fmt.Sprintf("Value must be at most %d characters long", *cfg.MaxLength))
		}
		if cfg.AllowSpecialChars != nil && !*cfg.AllowSpecialChars && !noSpecialCharsRegex.MatchString(s) {
			return invalid(cfg, "Value must not contain special characters")
		}
	}

	return valid(s)
}

// Alpha restricts the trimmed value to letters and spaces, then delegates the
// length rules to Text.
func Alpha(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Value is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "Value must be text")
	}
	if !alphaSpaceRegex.MatchString(strings.TrimSpace(raw)) {
		return invalid(cfg, "Value must contain only letters")
	}

	return Text(value, cfg)
}

// Alphanumeric is Text with special characters forcibly disallowed,
// regardless of what the caller's config says.
func Alphanumeric(value any, cfg *Config) Result {
	var forced Config
	if cfg != nil {
		forced = *cfg
	}
	forced.AllowSpecialChars = Bool(false)
	return Text(value, &forced)
}
