package handlers

import (
	"github.com/studentai/campus_bot/internal/campus"
	"github.com/studentai/campus_bot/internal/dialog"
	"github.com/studentai/campus_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers bundles all dependencies of the bot's update handlers.
type Handlers struct {
	userService        *service.UserService
	appointmentService *service.AppointmentService

	campusClient  *campus.Client
	newsFeed      *campus.NewsFeed
	timetable     *campus.Timetable
	courseCatalog *campus.CourseCatalog
	canteens      []campus.Canteen

	sessions *dialog.Manager
	machine  *dialog.Machine

	clockOffsetHours int
	logger           *zap.Logger
}

func NewHandlers(
	userService *service.UserService,
	appointmentService *service.AppointmentService,
	campusClient *campus.Client,
	newsFeed *campus.NewsFeed,
	timetable *campus.Timetable,
	courseCatalog *campus.CourseCatalog,
	canteens []campus.Canteen,
	sessions *dialog.Manager,
	machine *dialog.Machine,
	clockOffsetHours int,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:        userService,
		appointmentService: appointmentService,
		campusClient:       campusClient,
		newsFeed:           newsFeed,
		timetable:          timetable,
		courseCatalog:      courseCatalog,
		canteens:           canteens,
		sessions:           sessions,
		machine:            machine,
		clockOffsetHours:   clockOffsetHours,
		logger:             logger,
	}
}

// Sessions exposes the dialog session store, used by the janitor wiring.
func (h *Handlers) Sessions() *dialog.Manager {
	return h.sessions
}
