package model

import "time"

// Timetable is the user's default timetable selection (one semester of one
// course, as delivered by the campus broker).
type Timetable struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Semester int    `json:"semester"`
	ICalLink string `json:"ical_link"`
}

type User struct {
	ID             int64      `json:"id"`
	TelegramChatID int64      `json:"telegram_chat_id"`
	GivenName      string     `json:"given_name"`
	LastName       string     `json:"last_name"`
	CanteenID      *int64     `json:"canteen_id,omitempty"`
	Timetable      *Timetable `json:"timetable,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
