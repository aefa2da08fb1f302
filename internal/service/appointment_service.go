package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studentai/campus_bot/internal/model"
	"github.com/studentai/campus_bot/internal/repository"
	"go.uber.org/zap"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	logger          *zap.Logger
}

func NewAppointmentService(appointmentRepo *repository.AppointmentRepository, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Save persists a completed appointment request for the chat. It is called
// exactly once per dialog, at the terminal step, before the confirmation is
// sent.
func (s *AppointmentService) Save(ctx context.Context, chatID int64, request *model.AppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		ID:              uuid.NewString(),
		TelegramChatID:  chatID,
		ProfessorID:     request.Professor.ID,
		ProfessorName:   request.Professor.FirstName + " " + request.Professor.LastName,
		ProfessorDegree: request.Professor.AcademicDegree,
		Date:            request.Date,
		Subject:         request.Subject,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("save appointment: %w", err)
	}

	s.logger.Info("Appointment saved",
		zap.String("appointment_id", appointment.ID),
		zap.Int64("chat_id", chatID),
		zap.Int64("professor_id", request.Professor.ID),
		zap.Time("date", request.Date),
	)

	return appointment, nil
}

// List fetches all appointment requests of the chat.
func (s *AppointmentService) List(ctx context.Context, chatID int64) ([]*model.Appointment, error) {
	return s.appointmentRepo.GetByChatID(ctx, chatID)
}
