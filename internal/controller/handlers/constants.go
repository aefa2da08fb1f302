package handlers

// Reply-keyboard labels of the main menu.
const (
	MenuTimetableToday    = "Stundenplan heute"
	MenuTimetableTomorrow = "Stundenplan morgen"
	MenuTimetableDayAfter = "Stundenplan übermorgen"
	MenuNews              = "News"
	MenuCanteen           = "Mensa"
	MenuAppointments      = "Vereinbarte Termine"
	MenuNewAppointment    = "Erstellen von Termin"
	MenuSettings          = "Einstellungen"
)

// Callback data patterns.
const (
	SelectProfessor = "appointment_prof:" // appointment_prof:<person_id>

	OpenCanteenSettings   = "settings_canteens"
	OpenTimetableSettings = "settings_faculties"
	SettingsHelp          = "settings_help"

	SelectCanteen   = "set_canteen:"      // set_canteen:<canteen_id>
	SelectFaculty   = "settings_faculty:" // settings_faculty:<faculty_id>
	SelectCourse    = "settings_course:"  // settings_course:<faculty_id>:<course_index>
	SelectTimetable = "set_timetable:"    // set_timetable:<timetable_id>
)

// Number of news entries shown per request.
const newsLimit = 3
