package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldcheck/fieldcheck/pkg/sanitize"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sanitize.Trim("  abc\t\n"))
	assert.Equal(t, "", sanitize.Trim("   "))
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	t.Run("strips whitespace and uppercases", func(t *testing.T) {
		cases := map[string]string{
			"gb82 west 1234 5698 7654 32": "GB82WEST12345698765432",
			"  us0378331005  ":            "US0378331005",
			"a b\tc\nd":                   "ABCD",
			"":                            "",
		}
		for in, want := range cases {
			assert.Equal(t, want, sanitize.Alphanumeric(in), "input %q", in)
		}
	})

	t.Run("preserves non-space punctuation", func(t *testing.T) {
		assert.Equal(t, "A-B", sanitize.Alphanumeric("a - b"))
	})
}

func TestDigits(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"5901234123457":   "5901234123457",
		"5901234-123457":  "5901234123457",
		" 59 01 23 41 23": "5901234123",
		"abc":             "",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitize.Digits(in), "input %q", in)
	}
}

func TestPhoneSeparators(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"+33-1-23-45-67-89":  "+33123456789",
		"+1 (555) 123.4567":  "+15551234567",
		"+49 [30] 901820":    "+4930901820",
		"+7":                 "+7",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitize.PhoneSeparators(in), "input %q", in)
	}
}
