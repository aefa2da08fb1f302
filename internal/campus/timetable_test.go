package campus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const icsFixture = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//campus//timetable//DE
BEGIN:VEVENT
UID:lecture-1
DTSTAMP:20240601T000000Z
DTSTART:20240617T080000Z
DTEND:20240617T093000Z
SUMMARY:Software Engineering
END:VEVENT
BEGIN:VEVENT
UID:lecture-2
DTSTAMP:20240601T000000Z
DTSTART:20240617T110000Z
DTEND:20240617T123000Z
SUMMARY:Mathematik 2
END:VEVENT
BEGIN:VEVENT
UID:lecture-3
DTSTAMP:20240601T000000Z
DTSTART:20240618T090000Z
DTEND:20240618T103000Z
SUMMARY:Datenbanken
END:VEVENT
END:VCALENDAR
`

func TestEventsForDateFiltersAndLabelsBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(icsFixture))
	}))
	t.Cleanup(server.Close)

	timetable := NewTimetable(0)
	date := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	events, err := timetable.EventsForDate(context.Background(), server.URL, date)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Software Engineering", events[0].Summary)
	assert.Equal(t, "1. Block", events[0].Block)
	assert.Equal(t, "Mathematik 2", events[1].Summary)
	assert.Equal(t, "3. Block", events[1].Block)
}

func TestEventsForDateAppliesClockOffset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(icsFixture))
	}))
	t.Cleanup(server.Close)

	// With a 2h offset the 09:00 UTC lecture lands in the 11:00 block.
	timetable := NewTimetable(2)
	date := time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)

	events, err := timetable.EventsForDate(context.Background(), server.URL, date)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "3. Block", events[0].Block)
}

func TestEventsForDateEmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(icsFixture))
	}))
	t.Cleanup(server.Close)

	timetable := NewTimetable(0)
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	events, err := timetable.EventsForDate(context.Background(), server.URL, date)
	require.NoError(t, err)
	assert.Empty(t, events)
}
