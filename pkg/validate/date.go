package validate

import (
	"fmt"
	"strings"
	"time"
)

// Layouts tried in order when a date arrives as a string. First match wins,
// so the more specific timestamp layouts precede the bare date forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
}

// parseDate coerces time.Time, string and numeric (Unix seconds) input into a
// time.Time. The boolean reports whether the coercion succeeded.
func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// Date validates a calendar date given as a time.Time, a string in one of the
// supported layouts, or a Unix timestamp. Normalized is the ISO date string
// ("2006-01-02"); any time-of-day component is discarded.
func Date(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Date is required")
	}

	t, ok := parseDate(value)
	if !ok {
		return invalid(cfg, "Invalid date")
	}

	return valid(t.Format("2006-01-02"))
}

// Age validates a birth date by the whole-year age it implies. The reference
// date is Config.BirthDate when set, otherwise the current time; the naive
// year difference is decremented when the birthday has not yet occurred in
// the reference year. Min/Max bound the computed age inclusively. Normalized
// is the age in whole years.
func Age(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Birth date is required")
	}

	birth, ok := parseDate(value)
	if !ok {
		return invalid(cfg, "Invalid date")
	}

	ref := time.Now()
	if cfg != nil && cfg.BirthDate != nil {
		ref = *cfg.BirthDate
	}

	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}

	if age < 0 {
		return invalid(cfg, "Birth date must not be in the future")
	}

	if cfg != nil {
		if cfg.Min != nil && float64(age) < *cfg.Min {
			return invalid(cfg, fmt.Sprintf("Age must be at least %v years", *cfg.Min))
		}
		if cfg.Max != nil && float64(age) > *cfg.Max {
			return invalid(cfg, fmt.Sprintf("Age must be at most %v years", *cfg.Max))
		}
	}

	return valid(age)
}
