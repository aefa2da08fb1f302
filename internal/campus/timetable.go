package campus

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/apognu/gocal"
)

// Lecture blocks by starting hour (campus local time).
var blockByHour = map[int]string{
	8:  "1. Block",
	9:  "2. Block",
	11: "3. Block",
	14: "4. Block",
	15: "5. Block",
}

// TimetableEvent is one lecture of a user's personal timetable.
type TimetableEvent struct {
	Summary string
	Start   time.Time
	End     time.Time
	Block   string
}

// Timetable loads and parses the per-user iCal timetable links delivered by
// the campus broker.
type Timetable struct {
	httpClient *http.Client

	// clockOffsetHours shifts event hours to campus local time when the
	// server clock runs behind (production).
	clockOffsetHours int
}

func NewTimetable(clockOffsetHours int) *Timetable {
	return &Timetable{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		clockOffsetHours: clockOffsetHours,
	}
}

// EventsForDate returns the lectures of the given calendar day, ordered by
// start time and annotated with their lecture block.
func (t *Timetable) EventsForDate(ctx context.Context, icalURL string, date time.Time) ([]TimetableEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, icalURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build timetable request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timetable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timetable: unexpected status %d", resp.StatusCode)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	parser := gocal.NewParser(resp.Body)
	parser.Start, parser.End = &dayStart, &dayEnd
	if err := parser.Parse(); err != nil {
		return nil, fmt.Errorf("parse timetable: %w", err)
	}

	var events []TimetableEvent
	for _, event := range parser.Events {
		if event.Start == nil || event.End == nil {
			continue
		}
		if event.Start.In(date.Location()).Format("2006-01-02") != dayStart.Format("2006-01-02") {
			continue
		}
		events = append(events, TimetableEvent{
			Summary: event.Summary,
			Start:   *event.Start,
			End:     *event.End,
			Block:   blockByHour[event.Start.Hour()+t.clockOffsetHours],
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events, nil
}
