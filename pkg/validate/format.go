package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fieldcheck/fieldcheck/pkg/sanitize"
)

const (
	maxEmailLength    = 254
	maxEmailLocalPart = 64
	maxURLLength      = 2048
	minPhoneDigits    = 7
)

var (
	// Simplified RFC 5322 address pattern, applied after lowercasing.
	emailRegex = regexp.MustCompile(`^[a-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)+$`)

	// Strict URL pattern: optional http(s) scheme, then a dotted domain with
	// a TLD, localhost, or a dotted-quad IPv4 host, optional port, optional
	// path. Applied in addition to the parse pass, never instead of it.
	urlRegex = regexp.MustCompile(`^(?:https?://)?(?:(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}|localhost|(?:\d{1,3}\.){3}\d{1,3})(?::\d{1,5})?(?:/[^\s]*)?$`)

	// E.164: a plus, then 1-15 digits with a non-zero lead.
	phoneRegex = regexp.MustCompile(`^\+[1-9]\d{0,14}$`)
)

// Email validates an email address. The value is trimmed and lowercased, the
// total and local-part lengths are bounded, the domain must contain a dot,
// and the whole address must match a simplified RFC 5322 pattern. Normalized
// is the trimmed, lowercased address.
func Email(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Email address is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "Email address must be text")
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	if len(s) > maxEmailLength {
		return invalid(cfg, fmt.Sprintf("Email address must not exceed %d characters", maxEmailLength))
	}

	at := strings.Index(s, "@")
	if at < 0 {
		return invalid(cfg, "Email address must contain an @ sign")
	}
	if len(s[:at]) > maxEmailLocalPart {
		return invalid(cfg, fmt.Sprintf("Email local part must not exceed %d characters", maxEmailLocalPart))
	}
	if !strings.Contains(s[at+1:], ".") {
		return invalid(cfg, "Email domain must contain a dot")
	}

	if !emailRegex.MatchString(s) {
		return invalid(cfg, "Invalid email address format")
	}

	return valid(s)
}

// URL validates a web address with two conjunct passes: an absolute-URL parse
// (defaulting the scheme to https when none is present) must yield a host,
// and the stricter host pattern must match. A value failing either pass is
// invalid. Normalized is the trimmed URL.
func URL(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "URL is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "URL must be text")
	}
	s := strings.TrimSpace(raw)

	if len(s) > maxURLLength {
		return invalid(cfg, fmt.Sprintf("URL must not exceed %d characters", maxURLLength))
	}

	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.ParseRequestURI(candidate)
	if err != nil || u.Host == "" {
		return invalid(cfg, "Invalid URL")
	}

	if !urlRegex.MatchString(s) {
		return invalid(cfg, "Invalid URL format")
	}

	return valid(s)
}

// Phone validates an international phone number. A leading plus is required;
// separators (spaces, dashes, dots, parentheses, brackets) are stripped; the
// remainder must be E.164 (1-15 digits, non-zero lead) with at least 7 digits
// total. Normalized is the separator-stripped form.
func Phone(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "Phone number is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "Phone number must be text")
	}
	s := strings.TrimSpace(raw)

	if !strings.HasPrefix(s, "+") {
		return invalid(cfg, "Phone number must start with +")
	}

	cleaned := sanitize.PhoneSeparators(s)
	if !phoneRegex.MatchString(cleaned) {
		return invalid(cfg, "Invalid phone number format")
	}
	if len(cleaned)-1 < minPhoneDigits {
		return invalid(cfg, fmt.Sprintf("Phone number must have at least %d digits", minPhoneDigits))
	}

	return valid(cleaned)
}
