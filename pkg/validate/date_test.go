package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcheck/fieldcheck/pkg/validate"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("accepted input kinds", func(t *testing.T) {
		unix := time.Date(2025, 8, 28, 15, 30, 0, 0, time.UTC).Unix()
		cases := []struct {
			value any
			want  string
		}{
			{"2026-08-28", "2026-08-28"},
			{"2026-08-28T10:15:00Z", "2026-08-28"},
			{"2026-08-28 10:15:00", "2026-08-28"},
			{"03/15/2000", "2000-03-15"},
			{"15.03.2000", "2000-03-15"},
			{time.Date(1999, 12, 31, 23, 0, 0, 0, time.UTC), "1999-12-31"},
			{unix, "2025-08-28"},
			{int(unix), "2025-08-28"},
			{float64(unix), "2025-08-28"},
		}
		for _, tc := range cases {
			res := validate.Date(tc.value, nil)
			require.True(t, res.Valid, "value %v: %s", tc.value, res.Message)
			assert.Equal(t, tc.want, res.Normalized, "value %v", tc.value)
		}
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		for _, v := range []any{"not-a-date", "2026-13-45", "", nil, true} {
			res := validate.Date(v, nil)
			assert.False(t, res.Valid, "value %v", v)
		}
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	ref := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
		return &t
	}

	t.Run("birthday-occurred rule", func(t *testing.T) {
		birth := "2000-03-15"

		res := validate.Age(birth, &validate.Config{BirthDate: ref(2026, time.March, 14)})
		require.True(t, res.Valid, res.Message)
		assert.Equal(t, 25, res.Normalized, "day before the birthday")

		res = validate.Age(birth, &validate.Config{BirthDate: ref(2026, time.March, 15)})
		require.True(t, res.Valid, res.Message)
		assert.Equal(t, 26, res.Normalized, "on the birthday")

		res = validate.Age(birth, &validate.Config{BirthDate: ref(2026, time.August, 28)})
		require.True(t, res.Valid, res.Message)
		assert.Equal(t, 26, res.Normalized, "after the birthday")
	})

	t.Run("inclusive age bounds", func(t *testing.T) {
		cfg := &validate.Config{
			BirthDate: ref(2026, time.June, 1),
			Min:       validate.Float(18),
		}
		assert.True(t, validate.Age("2008-06-01", cfg).Valid, "turns 18 on the reference day")
		assert.False(t, validate.Age("2008-06-02", cfg).Valid, "still 17")

		cfg = &validate.Config{
			BirthDate: ref(2026, time.June, 1),
			Max:       validate.Float(65),
		}
		assert.True(t, validate.Age("1961-06-01", cfg).Valid)
		assert.False(t, validate.Age("1960-06-01", cfg).Valid)
	})

	t.Run("future birth date", func(t *testing.T) {
		cfg := &validate.Config{BirthDate: ref(2026, time.January, 1)}
		res := validate.Age("2030-01-01", cfg)
		require.False(t, res.Valid)
		assert.Contains(t, res.Message, "future")
	})

	t.Run("defaults the reference to now", func(t *testing.T) {
		res := validate.Age("1990-01-01", nil)
		require.True(t, res.Valid, res.Message)
		age, ok := res.Normalized.(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, age, 36)
	})
}
