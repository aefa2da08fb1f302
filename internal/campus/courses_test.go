package campus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCourseCatalog(t *testing.T) {
	semesters := []Semester{
		{ID: 1, Name: "INFB 1", SemesterNumber: 1, ICalFileHTTPLink: "https://example.org/INFB1.ics",
			Course: &Course{Name: "Informatik", Faculty: &Faculty{ID: "IWI"}}},
		{ID: 2, Name: "INFB 3", SemesterNumber: 3, ICalFileHTTPLink: "https://example.org/INFB3.ics",
			Course: &Course{Name: "Informatik", Faculty: &Faculty{ID: "IWI"}}},
		// Duplicate semester number within the same course is ignored.
		{ID: 3, Name: "INFB 3 alt", SemesterNumber: 3, ICalFileHTTPLink: "https://example.org/INFB3b.ics",
			Course: &Course{Name: "Informatik", Faculty: &Faculty{ID: "IWI"}}},
		// Renamed via the iCal link.
		{ID: 4, Name: "WIIM 1", SemesterNumber: 1, ICalFileHTTPLink: "https://example.org/WIIM1.ics",
			Course: &Course{Name: "Wirtschaftsinformatik", Faculty: &Faculty{ID: "IWI"}}},
		// Dropped entirely.
		{ID: 5, Name: "DSCB 1", SemesterNumber: 1, ICalFileHTTPLink: "https://example.org/DSCB1.ics",
			Course: &Course{Name: "Data Science", Faculty: &Faculty{ID: "IWI"}}},
		// No faculty: skipped.
		{ID: 6, Name: "???", SemesterNumber: 1, Course: &Course{Name: "Unbekannt"}},
		{ID: 7, Name: "MB 2", SemesterNumber: 2, ICalFileHTTPLink: "https://example.org/MB2.ics",
			Course: &Course{Name: "Maschinenbau", Faculty: &Faculty{ID: "MMT"}}},
	}

	catalog := BuildCourseCatalog(semesters)

	assert.Equal(t, []string{"IWI", "MMT"}, catalog.Faculties)

	iwi := catalog.CoursesByFaculty["IWI"]
	require.NotNil(t, iwi)
	require.Len(t, iwi["Informatik"], 2)
	assert.Equal(t, int64(2), iwi["Informatik"][1].ID)

	require.Len(t, iwi["Wirtschaftsinformatik (Master)"], 1)
	assert.NotContains(t, iwi, "Wirtschaftsinformatik")
	assert.NotContains(t, iwi, "Data Science")

	tt, ok := catalog.FindTimetable(7)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/MB2.ics", tt.ICalLink)

	_, ok = catalog.FindTimetable(99)
	assert.False(t, ok)
}

func TestBuildCourseCatalogTruncatesLongNames(t *testing.T) {
	longName := strings.Repeat("x", 60)
	catalog := BuildCourseCatalog([]Semester{
		{ID: 1, Name: "S1", SemesterNumber: 1, ICalFileHTTPLink: "https://example.org/S1.ics",
			Course: &Course{Name: longName, Faculty: &Faculty{ID: "AB"}}},
	})

	for name := range catalog.CoursesByFaculty["AB"] {
		assert.Len(t, name, maxCourseNameLength)
	}
}
