package dialog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/studentai/campus_bot/internal/directory"
	"github.com/studentai/campus_bot/internal/model"
)

// AbortKeyword cancels the dialog at any step. The trimmed input must equal
// the keyword (with or without the slash), case-insensitively.
const AbortKeyword = "stop"

const (
	promptAskName = "Wie ist der Nachname von dem Professor? (Schreibe /stop, um den Vorgang abzubrechen.)"
	promptAskTime = "Zu welcher Uhrzeit möchtest du den Termin vereinbaren? Verwende bitte das folgende Format 13:45 (HH:MM)."

	msgAborted      = "Alles klar, ich habe die Termin Anlegung abgebrochen."
	msgAskNameAgain = "Alles klar, dann sag mir bitte nochmal den Nachnamen."
	msgUseButtons   = "Bitte benutze die Schaltflächen, um einen Professor auszuwählen."
	msgNoProfessors = "Aktuell sind keine Professoren hinterlegt. Versuche es bitte später nochmal."
	msgDatePast     = "Das Datum liegt in der Vergangenheit oder ist am heutigen Tag. Bitte verwende ein Datum in der Zukunft."
	msgTimeFormat   = "Die Uhrzeit ist nicht im richtigen Format. Versuche doch mal 08:30."
	msgTimeTooLate  = "Ich würde sagen, dass ist schon etwas zu spät für einen Termin. Versuche bitte einen Termin vor 18:00 zu vereinbaren."
	msgSubjectRude  = "Das ist aber nicht sehr nett. Bitte verwende einen Betreff ohne Beleidigungen."
	msgPhotoFollows = "Hier kommt noch ein Foto:"

	// MsgExpired is sent when the janitor discards an idle session.
	MsgExpired = "Deine Terminanfrage ist wegen Inaktivität abgelaufen. Starte bei Bedarf einfach eine neue über 'Erstellen von Termin'."

	// MsgPersistFailed is sent when the appointment could not be stored; it
	// must be distinguishable from the success confirmation.
	MsgPersistFailed = "Leider konnte ich die Terminanfrage gerade nicht speichern. Bitte versuche es später nochmal."
)

// Screener decides whether free text contains deny-listed words.
type Screener interface {
	Screen(text string) bool
}

// Machine drives appointment dialog sessions. It holds no per-user state
// itself; everything mutable lives in the Session passed to Advance.
type Machine struct {
	index            *directory.Index
	screen           Screener
	clockOffsetHours int
	now              func() time.Time
}

// NewMachine creates a dialog machine. clockOffsetHours is subtracted from
// the entered hour when date and time are combined, compensating the server
// clock in production.
func NewMachine(index *directory.Index, screen Screener, clockOffsetHours int) *Machine {
	return &Machine{
		index:            index,
		screen:           screen,
		clockOffsetHours: clockOffsetHours,
		now:              time.Now,
	}
}

// Start puts a fresh session on the first step and returns the opening
// prompt.
func (m *Machine) Start(sess *Session) Result {
	sess.Step = StepAskName
	sess.UpdatedAt = m.now()
	return active(reply(promptAskName))
}

// Advance applies one user input to the session and returns what should be
// sent back. The abort keyword is honored at every step before any per-step
// logic runs. Empty text and stray button presses are no-ops: the session
// waits for the next usable input.
func (m *Machine) Advance(sess *Session, in Input) Result {
	sess.UpdatedAt = m.now()

	if in.Kind == InputText {
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return active()
		}
		if isAbort(text) {
			return Result{Status: StatusAborted, Outputs: []Output{reply(msgAborted)}}
		}
		in.Text = text
	}

	switch sess.Step {
	case StepAskName:
		return m.advanceAskName(sess, in)
	case StepDisambiguate:
		return m.advanceDisambiguate(sess, in)
	case StepConfirmSingle:
		return m.advanceConfirmSingle(sess, in)
	case StepAskDate:
		return m.advanceAskDate(sess, in)
	case StepAskTime:
		return m.advanceAskTime(sess, in)
	case StepAskSubject:
		return m.advanceAskSubject(sess, in)
	}

	return active()
}

func (m *Machine) advanceAskName(sess *Session, in Input) Result {
	if in.Kind != InputText {
		return active()
	}

	sess.Query = in.Text

	candidates, err := m.index.Resolve(in.Text)
	if err != nil {
		return Result{Status: StatusAborted, Outputs: []Output{reply(msgNoProfessors)}}
	}
	sess.Candidates = candidates

	if len(candidates) > 1 {
		sess.Step = StepDisambiguate
		options := make([]Option, 0, len(candidates))
		for _, prof := range candidates {
			options = append(options, Option{
				Label: prof.DisplayName(),
				ID:    strconv.FormatInt(prof.ID, 10),
			})
		}
		return active(Output{
			Text:    fmt.Sprintf("Zu dem Namen %s habe ich mehrere Möglichkeiten gefunden.", in.Text),
			Options: options,
		})
	}

	sess.Step = StepConfirmSingle
	sess.Professor = &candidates[0]

	outputs := []Output{reply(fmt.Sprintf("Meinst du %s?", candidates[0].DisplayName()))}
	if candidates[0].HasPhoto() {
		outputs = append(outputs, Output{Text: msgPhotoFollows, PhotoURL: candidates[0].ImageURL})
	}
	return active(outputs...)
}

func (m *Machine) advanceDisambiguate(sess *Session, in Input) Result {
	// A button press is required here; free text cannot pick a candidate.
	if in.Kind != InputButton {
		return active(reply(msgUseButtons))
	}

	prof, ok := findCandidate(sess.Candidates, in.ButtonID)
	if !ok {
		return active(reply(msgUseButtons))
	}

	sess.Professor = prof
	sess.Step = StepAskDate
	return active(reply(m.askDatePrompt()))
}

func (m *Machine) advanceConfirmSingle(sess *Session, in Input) Result {
	if in.Kind == InputButton {
		// The button under the single-match prompt is a direct selection.
		if prof, ok := findCandidate(sess.Candidates, in.ButtonID); ok {
			sess.Professor = prof
		}
		sess.Step = StepAskDate
		return active(reply(m.askDatePrompt()))
	}

	if in.Text == "ja" || in.Text == "Ja" {
		sess.Step = StepAskDate
		return active(reply(m.askDatePrompt()))
	}

	// Anything else means the guess was wrong: drop it and re-ask the name.
	sess.Professor = nil
	sess.Candidates = nil
	sess.Step = StepAskName
	return active(reply(msgAskNameAgain))
}

func (m *Machine) advanceAskDate(sess *Session, in Input) Result {
	if in.Kind != InputText {
		return active()
	}

	date, err := ParseDate(in.Text, m.now())
	switch err {
	case nil:
	case ErrDatePast:
		return active(reply(msgDatePast))
	default:
		return active(reply(fmt.Sprintf(
			"Das Datum ist nicht im richtigen Format. Wenn du für morgen einen Termin vereinbaren möchtest, versuche doch mal %s.",
			DateExample(m.now()))))
	}

	sess.Date = date
	sess.Step = StepAskTime
	return active(reply(promptAskTime))
}

func (m *Machine) advanceAskTime(sess *Session, in Input) Result {
	if in.Kind != InputText {
		return active()
	}

	hour, minute, err := ParseClock(in.Text)
	switch err {
	case nil:
	case ErrTimeTooLate:
		return active(reply(msgTimeTooLate))
	case ErrTimeTooEarly:
		return active(reply(fmt.Sprintf(
			"Um diese Uhrzeit schläft %s %s bestimmt noch. Versuche bitte einen Termin nach 08:00 zu vereinbaren.",
			sess.Professor.FirstName, sess.Professor.LastName)))
	default:
		return active(reply(msgTimeFormat))
	}

	sess.Date = time.Date(
		sess.Date.Year(), sess.Date.Month(), sess.Date.Day(),
		hour-m.clockOffsetHours, minute, 0, 0, sess.Date.Location(),
	)
	sess.Step = StepAskSubject
	return active(reply(fmt.Sprintf(
		"Bitte wähle noch einen Betreff, damit %s %s auch weiß worum es geht.",
		sess.Professor.FirstName, sess.Professor.LastName)))
}

func (m *Machine) advanceAskSubject(sess *Session, in Input) Result {
	if in.Kind != InputText {
		return active()
	}

	if m.screen.Screen(in.Text) {
		return active(reply(msgSubjectRude))
	}

	sess.Subject = in.Text
	return Result{
		Status: StatusCompleted,
		Request: &model.AppointmentRequest{
			Professor: *sess.Professor,
			Date:      sess.Date,
			Subject:   sess.Subject,
		},
	}
}

// FormatConfirmation renders the success message for a persisted request.
// The displayed time re-adds the clock offset so the user sees the hour they
// typed in.
func FormatConfirmation(req *model.AppointmentRequest, clockOffsetHours int) string {
	shown := req.Date.Add(time.Duration(clockOffsetHours) * time.Hour)
	return fmt.Sprintf(
		"Perfekt, ich habe eine Terminanfrage an %s für den %s um %s gesendet. "+
			"Ich werde dich hier im Chat benachrichtigen, sobald der Professor auf die Anfrage geantwortet hat.",
		req.Professor.DisplayName(), shown.Format("2.1."), shown.Format("15:04"))
}

func isAbort(trimmed string) bool {
	return strings.EqualFold(trimmed, AbortKeyword) || strings.EqualFold(trimmed, "/"+AbortKeyword)
}

func findCandidate(candidates []model.Person, buttonID string) (*model.Person, bool) {
	for i := range candidates {
		if strconv.FormatInt(candidates[i].ID, 10) == buttonID {
			return &candidates[i], true
		}
	}
	return nil, false
}

func (m *Machine) askDatePrompt() string {
	return fmt.Sprintf(
		"An welchem Tag möchtest du den Termin ausmachen? Bitte benutze das Format %s (TT.MM).",
		DateExample(m.now()))
}

func reply(text string) Output {
	return Output{Text: text}
}

func active(outputs ...Output) Result {
	return Result{Status: StatusActive, Outputs: outputs}
}
