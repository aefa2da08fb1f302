package model

import "time"

// AppointmentRequest is the validated outcome of a completed appointment
// dialog. It only ever exists with a future date inside business hours and a
// subject that passed the profanity screen.
type AppointmentRequest struct {
	Professor Person
	Date      time.Time
	Subject   string
}

// Appointment is a persisted appointment request of a user.
type Appointment struct {
	ID              string    `json:"id"`
	TelegramChatID  int64     `json:"telegram_chat_id"`
	ProfessorID     int64     `json:"professor_id"`
	ProfessorName   string    `json:"professor_name"`
	ProfessorDegree string    `json:"professor_degree"`
	Date            time.Time `json:"date"`
	Subject         string    `json:"subject"`
	CreatedAt       time.Time `json:"created_at"`
}
