// Package dialog implements the multi-step appointment conversation as an
// explicit state machine. The package is transport-agnostic: handlers feed it
// Inputs and render the returned Outputs, so the whole flow is testable
// without a Telegram connection.
package dialog

import (
	"time"

	"github.com/studentai/campus_bot/internal/model"
)

// Step identifies the currently active step of an appointment dialog.
type Step string

const (
	StepAskName       Step = "ask_name"
	StepDisambiguate  Step = "disambiguate"
	StepConfirmSingle Step = "confirm_single"
	StepAskDate       Step = "ask_date"
	StepAskTime       Step = "ask_time"
	StepAskSubject    Step = "ask_subject"
)

// Status describes whether a dialog is still running and, if not, how it
// ended. All terminated statuses are absorbing: the session is discarded.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
	StatusExpired   Status = "expired"
)

// InputKind makes the input type explicit instead of inferring it from which
// update fields happen to be set.
type InputKind string

const (
	InputText   InputKind = "text"
	InputButton InputKind = "button"
)

// Input is a single user interaction: either a free-text message or the id
// of a pressed inline button.
type Input struct {
	Kind     InputKind
	Text     string
	ButtonID string
}

func TextInput(text string) Input {
	return Input{Kind: InputText, Text: text}
}

func ButtonInput(id string) Input {
	return Input{Kind: InputButton, ButtonID: id}
}

// Option is one selectable button offered to the user.
type Option struct {
	Label string
	ID    string
}

// Output is one message the dialog wants sent to the user. When Options is
// non-empty the message carries an inline keyboard; PhotoURL is an extra
// image link sent along with the text.
type Output struct {
	Text     string
	Options  []Option
	PhotoURL string
}

// Result is the outcome of one transition. Request is non-nil exactly once,
// when the dialog completes; the caller persists it and only then confirms
// to the user.
type Result struct {
	Outputs []Output
	Status  Status
	Request *model.AppointmentRequest
}

// Session is the per-user in-flight state of one appointment dialog. It is
// created on dialog entry, mutated only by Machine.Advance and discarded on
// completion, abort or expiry. It never survives a process restart.
type Session struct {
	ChatID     int64
	Step       Step
	Query      string
	Candidates []model.Person
	Professor  *model.Person
	Date       time.Time
	Subject    string
	UpdatedAt  time.Time
}
