package perdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJalali(t *testing.T) {
	// 15 Mordad 1403
	want := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"1403/05/15", "1403-05-15", " 1403/05/15 "} {
		got, ok := Parse(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}
}

func TestParseGregorian(t *testing.T) {
	want := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-08-05",
		"2024/08/05",
		"2024-08-05T13:45:00Z",
		"2024-08-05 13:45:00",
	} {
		got, ok := Parse(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"not-a-date",
		"1403/13/01", // month out of range
		"1402/12/30", // 30 Esfand in a common year
		"1403/05",    // missing day
		"99/05/15",   // year in neither calendar
	} {
		_, ok := Parse(raw)
		assert.False(t, ok, "input %q", raw)
	}
}

func TestYearMonth(t *testing.T) {
	assert.Equal(t, "140305", YearMonth(time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)))

	// Jalali new year: late March belongs to month 01 of the next year
	assert.Equal(t, "140301", YearMonth(time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)))
}

func TestParseRoundTripsIntoSameSeries(t *testing.T) {
	d, ok := Parse("1403/05/15")
	require.True(t, ok)
	assert.Equal(t, "140305", YearMonth(d))
}
