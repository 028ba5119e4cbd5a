// backend/src/utils/date_utils_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate_DayFirstPreferred(t *testing.T) {
	// 01-02-2025 is the 1st of February under the day-first convention, not
	// January 2nd.
	parsed, ok := ParseFlexibleDate("01-02-2025")
	require.True(t, ok)
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, 2025, parsed.Year())
}

func TestParseFlexibleDate_ISOFallback(t *testing.T) {
	parsed, ok := ParseFlexibleDate("2025-02-01")
	require.True(t, ok)
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestParseFlexibleDate_SlashSeparators(t *testing.T) {
	parsed, ok := ParseFlexibleDate("15/08/2024")
	require.True(t, ok)
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
}

func TestParseFlexibleDate_Unparseable(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-date", "32-13-2025", "sometime soon"} {
		_, ok := ParseFlexibleDate(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestMonthEnd(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		MonthEnd(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	// Leap year February.
	assert.Equal(t,
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		MonthEnd(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthEnd(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}
