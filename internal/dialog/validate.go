package dialog

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// Business hours for appointments: [08:00, 18:00).
const (
	EarliestHour = 8
	LatestHour   = 18
)

var (
	ErrDateFormat   = errors.New("date not in DD.MM format")
	ErrDatePast     = errors.New("date is today or in the past")
	ErrTimeFormat   = errors.New("time not in HH:MM format")
	ErrTimeTooLate  = errors.New("time is after business hours")
	ErrTimeTooEarly = errors.New("time is before business hours")
)

var (
	dateRegex = regexp.MustCompile(`^(0?[1-9]|[12][0-9]|3[01])[/\-.](0?[1-9]|1[012])$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):?([0-5]\d)$`)
)

// ParseDate validates a DD.MM input (separator '.', '/' or '-') and returns
// the matching calendar day of the current year. The input must be exactly
// five characters and the resulting day must lie strictly after today.
func ParseDate(input string, now time.Time) (time.Time, error) {
	match := dateRegex.FindStringSubmatch(input)
	if len(input) != 5 || match == nil {
		return time.Time{}, ErrDateFormat
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])

	entered := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())

	// time.Date normalizes impossible dates (31.02 becomes 02.03 or 03.03);
	// such inputs are format errors, not valid future dates.
	if entered.Day() != day || entered.Month() != time.Month(month) {
		return time.Time{}, ErrDateFormat
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !entered.After(today) {
		return time.Time{}, ErrDatePast
	}

	return entered, nil
}

// ParseClock validates a 24h HH:MM input (the colon is optional) against the
// business-hours window.
func ParseClock(input string) (hour, minute int, err error) {
	match := timeRegex.FindStringSubmatch(input)
	if match == nil {
		return 0, 0, ErrTimeFormat
	}

	hour, _ = strconv.Atoi(match[1])
	minute, _ = strconv.Atoi(match[2])

	if hour >= LatestHour {
		return 0, 0, ErrTimeTooLate
	}
	if hour < EarliestHour {
		return 0, 0, ErrTimeTooEarly
	}

	return hour, minute, nil
}

// DateExample formats tomorrow's date as the DD.MM example shown in the date
// prompt.
func DateExample(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("02.01")
}
