package service

import (
	"context"
	"fmt"

	"github.com/studentai/campus_bot/internal/model"
	"github.com/studentai/campus_bot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureUser registers the chat on first contact. It returns the user and
// whether they already existed.
func (s *UserService) EnsureUser(ctx context.Context, chatID int64, givenName, lastName string) (*model.User, bool, error) {
	user, err := s.userRepo.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	if user != nil {
		return user, true, nil
	}

	user = &model.User{
		TelegramChatID: chatID,
		GivenName:      givenName,
		LastName:       lastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("chat_id", chatID),
		zap.String("given_name", givenName))

	return user, false, nil
}

// GetByChatID fetches a user, nil when unknown.
func (s *UserService) GetByChatID(ctx context.Context, chatID int64) (*model.User, error) {
	return s.userRepo.GetByChatID(ctx, chatID)
}

// SetDefaultCanteen stores the user's default canteen choice.
func (s *UserService) SetDefaultCanteen(ctx context.Context, chatID, canteenID int64) error {
	if err := s.userRepo.SetCanteen(ctx, chatID, canteenID); err != nil {
		return fmt.Errorf("set default canteen: %w", err)
	}

	s.logger.Info("Default canteen set",
		zap.Int64("chat_id", chatID),
		zap.Int64("canteen_id", canteenID))

	return nil
}

// SetDefaultTimetable stores the user's default timetable choice.
func (s *UserService) SetDefaultTimetable(ctx context.Context, chatID int64, timetable *model.Timetable) error {
	if err := s.userRepo.SetTimetable(ctx, chatID, timetable); err != nil {
		return fmt.Errorf("set default timetable: %w", err)
	}

	s.logger.Info("Default timetable set",
		zap.Int64("chat_id", chatID),
		zap.Int64("timetable_id", timetable.ID),
		zap.Int("semester", timetable.Semester))

	return nil
}
