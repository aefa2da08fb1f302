package campus

import (
	"strings"

	"github.com/studentai/campus_bot/internal/model"
)

// Course names in inline-keyboard buttons must stay short enough for the
// Telegram button label limit.
const maxCourseNameLength = 45

// CourseCatalog is the faculty → course → semesters tree built from the
// broker's semester catalog, used by the default-timetable settings menu.
type CourseCatalog struct {
	// Faculties in first-encountered order.
	Faculties []string
	// CoursesByFaculty maps faculty id → course name → selectable semesters.
	CoursesByFaculty map[string]map[string][]model.Timetable
}

// BuildCourseCatalog groups the semester catalog by faculty and course.
// Broker quirks handled here: entries without a faculty are skipped, the
// Wirtschaftsinformatik and International IT Business courses are renamed
// based on their iCal link, DSCB entries are dropped and duplicate semester
// numbers within a course are ignored.
func BuildCourseCatalog(semesters []Semester) *CourseCatalog {
	catalog := &CourseCatalog{
		CoursesByFaculty: make(map[string]map[string][]model.Timetable),
	}

	for _, entry := range semesters {
		if entry.Course == nil || entry.Course.Faculty == nil || entry.Course.Faculty.ID == "" {
			continue
		}

		courseName := entry.Course.Name
		switch {
		case strings.Contains(entry.ICalFileHTTPLink, "WIIM"):
			courseName = "Wirtschaftsinformatik (Master)"
		case strings.Contains(entry.ICalFileHTTPLink, "WIIB"):
			courseName = "Wirtschaftsinformatik (Bachelor)"
		case strings.Contains(entry.ICalFileHTTPLink, "IIBB"):
			courseName = "International IT Business (Bachelor)"
		case strings.Contains(entry.ICalFileHTTPLink, "DSCB"):
			continue
		}
		if len(courseName) > maxCourseNameLength {
			courseName = courseName[:maxCourseNameLength]
		}

		facultyID := entry.Course.Faculty.ID
		courses, exists := catalog.CoursesByFaculty[facultyID]
		if !exists {
			courses = make(map[string][]model.Timetable)
			catalog.CoursesByFaculty[facultyID] = courses
			catalog.Faculties = append(catalog.Faculties, facultyID)
		}

		if hasSemester(courses[courseName], entry.SemesterNumber) {
			continue
		}

		courses[courseName] = append(courses[courseName], model.Timetable{
			ID:       entry.ID,
			Name:     entry.Name,
			Semester: entry.SemesterNumber,
			ICalLink: entry.ICalFileHTTPLink,
		})
	}

	return catalog
}

// FindTimetable looks a timetable up by its broker id.
func (c *CourseCatalog) FindTimetable(id int64) (*model.Timetable, bool) {
	for _, courses := range c.CoursesByFaculty {
		for _, semesters := range courses {
			for i := range semesters {
				if semesters[i].ID == id {
					return &semesters[i], true
				}
			}
		}
	}
	return nil, false
}

func hasSemester(semesters []model.Timetable, number int) bool {
	for _, semester := range semesters {
		if semester.Semester == number {
			return true
		}
	}
	return false
}
