package validate

import (
	"fmt"
	"strings"
)

const (
	defaultMaxFileNameLength = 255

	// Characters rejected by at least one mainstream filesystem.
	forbiddenFileNameChars = `<>:"/\|?*`
)

// Windows reserved device names, compared case-insensitively against the
// extension-stripped name.
var reservedFileNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// FileName validates a file name for cross-platform safety: length bounds
// (default maximum 255), forbidden characters, ASCII control characters,
// trailing spaces or periods, Windows reserved device names, and - when
// configured - an accepted-extension allowlist. Normalized is the trimmed
// name.
func FileName(value any, cfg *Config) Result {
	if isEmpty(value) {
		return invalid(cfg, "File name is required")
	}

	raw, ok := coerceString(value)
	if !ok {
		return invalid(cfg, "File name must be text")
	}
	s := strings.TrimSpace(raw)

	if s == "" {
		return invalid(cfg, "File name is required")
	}

	maxLen := defaultMaxFileNameLength
	if cfg != nil && cfg.MaxLength != nil {
		maxLen = *cfg.MaxLength
	}
	if len(s) > maxLen {
		return invalid(cfg, fmt.Sprintf("File name must not exceed %d characters", maxLen))
	}
	if cfg != nil && cfg.MinLength != nil && len(s) < *cfg.MinLength {
		return invalid(cfg, fmt.Sprintf("File name must be at least %d characters long", *cfg.MinLength))
	}

	if strings.ContainsAny(s, forbiddenFileNameChars) {
		return invalid(cfg, `File name contains forbidden characters: < > : " / \ | ? *`)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return invalid(cfg, "File name contains control characters")
		}
	}

	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, ".") {
		return invalid(cfg, "File name must not end with a space or period")
	}

	stem := s
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		stem = s[:i]
	}
	upperStem := strings.ToUpper(stem)
	if _, reserved := reservedFileNames[upperStem]; reserved {
		return invalid(cfg, fmt.Sprintf("File name uses reserved Windows name: %s", upperStem))
	}

	if cfg != nil && len(cfg.AcceptedFileExtensions) > 0 {
		ext := ""
		if i := strings.LastIndexByte(s, '.'); i >= 0 {
			ext = strings.ToLower(s[i:])
		}
		matched := false
		for _, accepted := range cfg.AcceptedFileExtensions {
			a := strings.ToLower(strings.TrimSpace(accepted))
			if !strings.HasPrefix(a, ".") {
				a = "." + a
			}
			if ext == a {
				matched = true
				break
			}
		}
		if !matched {
			return invalid(cfg, fmt.Sprintf("File extension must be one of: %s", strings.Join(cfg.AcceptedFileExtensions, ", ")))
		}
	}

	return valid(s)
}
