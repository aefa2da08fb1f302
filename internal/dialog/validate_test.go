package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsFutureDay(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	date, err := ParseDate("15.06", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateRejectsPast(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	_, err := ParseDate("15.06", now)
	assert.ErrorIs(t, err, ErrDatePast)

	// The current day counts as past: the date must be strictly later.
	_, err = ParseDate("20.06", now)
	assert.ErrorIs(t, err, ErrDatePast)
}

func TestParseDateFormat(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "1.6", "15.06.", "15062", "ab.cd", "00.06", "15.13", "31.02"} {
		_, err := ParseDate(input, now)
		assert.ErrorIs(t, err, ErrDateFormat, "input %q", input)
	}

	// Alternative separators from the original format are fine.
	for _, input := range []string{"15/06", "15-06"} {
		_, err := ParseDate(input, now)
		assert.NoError(t, err, "input %q", input)
	}
}

func TestParseClockWindow(t *testing.T) {
	hour, minute, err := ParseClock("08:00")
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
	assert.Equal(t, 0, minute)

	hour, minute, err = ParseClock("1745")
	require.NoError(t, err)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 45, minute)

	_, _, err = ParseClock("18:00")
	assert.ErrorIs(t, err, ErrTimeTooLate)

	_, _, err = ParseClock("1830")
	assert.ErrorIs(t, err, ErrTimeTooLate)

	_, _, err = ParseClock("07:59")
	assert.ErrorIs(t, err, ErrTimeTooEarly)

	for _, input := range []string{"24:00", "9:30", "09:60", "abc", ""} {
		_, _, err = ParseClock(input)
		assert.ErrorIs(t, err, ErrTimeFormat, "input %q", input)
	}
}

func TestDateExample(t *testing.T) {
	now := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "01.01", DateExample(now))
}
