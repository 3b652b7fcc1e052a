package validate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcheck/fieldcheck/pkg/validate"
)

// Re-validating an already-normalized value must reproduce the same
// normalized form.
func TestNormalizationIdempotence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ   validate.InputType
		value string
	}{
		{validate.TypeEmail, "  A@B.com "},
		{validate.TypePhone, "+33-1-23-45-67-89"},
		{validate.TypeIBAN, "gb82 west 1234 5698 7654 32"},
		{validate.TypeISIN, "us 0378331005"},
		{validate.TypeGTIN, "5 901234 123457"},
		{validate.TypeText, "  padded  "},
		{validate.TypeFileName, " report.pdf "},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			first := validate.Input(tc.value, tc.typ, nil)
			require.True(t, first.Valid, "seed %q: %s", tc.value, first.Message)

			second := validate.Input(first.Normalized, tc.typ, nil)
			require.True(t, second.Valid)
			assert.Equal(t, first.Normalized, second.Normalized)
		})
	}
}

// Mod 97-10 detects every single-digit substitution: changing one digit d to
// d' shifts the value by (d'-d)*10^k, and neither factor is divisible by 97.
func TestIBANSingleDigitTamperDetection(t *testing.T) {
	t.Parallel()

	const iban = "GB82WEST12345698765432"
	require.True(t, validate.IBAN(iban, nil).Valid)

	for i := 0; i < len(iban); i++ {
		c := iban[i]
		if c < '0' || c > '9' {
			continue
		}
		tampered := iban[:i] + string('0'+(c-'0'+1)%10) + iban[i+1:]
		res := validate.IBAN(tampered, nil)
		assert.False(t, res.Valid, "digit flip at position %d (%s) went undetected", i, tampered)
	}
}

// For every accepted code, recomputing the check digit from the normalized
// data-digit prefix reproduces the trailing digit. The recomputation here is
// an independent left-to-right implementation of the GS1 relation.
func TestGS1CheckDigitProperty(t *testing.T) {
	t.Parallel()

	recompute := func(data string) int {
		sum := 0
		for i := 0; i < len(data); i++ {
			d := int(data[len(data)-1-i] - '0')
			if i%2 == 0 {
				d *= 3
			}
			sum += d
		}
		return (10 - sum%10) % 10
	}

	codes := map[validate.InputType][]string{
		validate.TypeGTIN: {"96385074", "036000291452", "5901234123457", "15901234123454"},
		validate.TypeGLN:  {"4012345678901", "5901234123457"},
		validate.TypeSSCC: {"006141411234567890"},
	}

	for typ, list := range codes {
		for _, code := range list {
			res := validate.Input(code, typ, nil)
			require.True(t, res.Valid, "%s %q: %s", typ, code, res.Message)

			normalized := res.Normalized.(string)
			want := int(normalized[len(normalized)-1] - '0')
			assert.Equal(t, want, recompute(normalized[:len(normalized)-1]), "%s %q", typ, code)
		}
	}
}

// The literal end-to-end scenarios of the validation contract.
func TestContractScenarios(t *testing.T) {
	t.Parallel()

	t.Run("IBAN success", func(t *testing.T) {
		res := validate.IBAN("GB82 WEST 1234 5698 7654 32", nil)
		require.True(t, res.Valid)
		assert.Equal(t, "GB82WEST12345698765432", res.Normalized)
	})

	t.Run("IBAN checksum failure", func(t *testing.T) {
		res := validate.IBAN("GB82WEST12345698765433", nil)
		require.False(t, res.Valid)
		assert.Equal(t, "Invalid IBAN checksum", res.Message)
	})

	t.Run("ISIN", func(t *testing.T) {
		res := validate.ISIN("US0378331005", nil)
		require.True(t, res.Valid)
		assert.Equal(t, "US0378331005", res.Normalized)
	})

	t.Run("GTIN", func(t *testing.T) {
		res := validate.GTIN("5901234123457", nil)
		require.True(t, res.Valid)
		assert.Equal(t, "5901234123457", res.Normalized)
	})

	t.Run("phone", func(t *testing.T) {
		res := validate.Phone("+33-1-23-45-67-89", nil)
		require.True(t, res.Valid)
		assert.Equal(t, "+33123456789", res.Normalized)
	})

	t.Run("reserved file name", func(t *testing.T) {
		res := validate.FileName("CON.txt", nil)
		require.False(t, res.Valid)
		assert.Equal(t, "File name uses reserved Windows name: CON", res.Message)
	})
}

// Results are one of exactly two shapes: valid with no message, or invalid
// with a non-empty message.
func TestResultShapeInvariant(t *testing.T) {
	t.Parallel()

	values := []any{
		"GB82WEST12345698765432", "US0378331005", "5901234123457",
		"a@b.com", "+33123456789", "https://example.com", "2026-01-01",
		"report.pdf", "42", "", nil, "garbage", 3.14,
	}

	for _, typ := range validate.Types() {
		for _, v := range values {
			res := validate.Input(v, typ, nil)
			if res.Valid {
				assert.Empty(t, res.Message, "type %s value %v", typ, v)
			} else {
				assert.NotEmpty(t, res.Message, "type %s value %v", typ, v)
				assert.Nil(t, res.Normalized, "type %s value %v", typ, v)
			}
		}
	}
}

// Identical inputs always produce identical results.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	cfg := &validate.Config{MinLength: validate.Int(2)}
	for i := 0; i < 100; i++ {
		res := validate.Input(fmt.Sprintf("user%d@example.com", i%3), validate.TypeEmail, cfg)
		again := validate.Input(fmt.Sprintf("user%d@example.com", i%3), validate.TypeEmail, cfg)
		require.Equal(t, res, again)
	}

	// Config is never mutated by a call.
	assert.Equal(t, 2, *cfg.MinLength)
	assert.Equal(t, "", cfg.CustomErrorMessage)
}
