package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studentai/campus_bot/internal/model"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create stores a new user.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (telegram_chat_id, given_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.TelegramChatID,
		user.GivenName,
		user.LastName,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByChatID fetches a user by Telegram chat id. Returns nil when the user
// is unknown.
func (r *UserRepository) GetByChatID(ctx context.Context, chatID int64) (*model.User, error) {
	query := `
		SELECT id, telegram_chat_id, given_name, last_name, canteen_id,
		       timetable_id, timetable_name, timetable_semester, timetable_ical_link,
		       created_at
		FROM users
		WHERE telegram_chat_id = $1
	`

	var (
		user          model.User
		timetableID   *int64
		timetableName *string
		semester      *int
		icalLink      *string
	)
	err := r.pool.QueryRow(ctx, query, chatID).Scan(
		&user.ID,
		&user.TelegramChatID,
		&user.GivenName,
		&user.LastName,
		&user.CanteenID,
		&timetableID,
		&timetableName,
		&semester,
		&icalLink,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by chat id: %w", err)
	}

	if timetableID != nil {
		user.Timetable = &model.Timetable{
			ID:       *timetableID,
			Name:     derefString(timetableName),
			Semester: derefInt(semester),
			ICalLink: derefString(icalLink),
		}
	}

	return &user, nil
}

// SetCanteen stores the user's default canteen.
func (r *UserRepository) SetCanteen(ctx context.Context, chatID, canteenID int64) error {
	query := `
		UPDATE users
		SET canteen_id = $1
		WHERE telegram_chat_id = $2
	`

	result, err := r.pool.Exec(ctx, query, canteenID, chatID)
	if err != nil {
		return fmt.Errorf("set canteen: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// SetTimetable stores the user's default timetable.
func (r *UserRepository) SetTimetable(ctx context.Context, chatID int64, timetable *model.Timetable) error {
	query := `
		UPDATE users
		SET timetable_id = $1, timetable_name = $2, timetable_semester = $3, timetable_ical_link = $4
		WHERE telegram_chat_id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		timetable.ID,
		timetable.Name,
		timetable.Semester,
		timetable.ICalLink,
		chatID,
	)
	if err != nil {
		return fmt.Errorf("set timetable: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
