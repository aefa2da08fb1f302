package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studentai/campus_bot/internal/model"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

// Create stores a new appointment request.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, telegram_chat_id, professor_id, professor_name, professor_degree, date, subject)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		appointment.ID,
		appointment.TelegramChatID,
		appointment.ProfessorID,
		appointment.ProfessorName,
		appointment.ProfessorDegree,
		appointment.Date,
		appointment.Subject,
	).Scan(&appointment.CreatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByChatID fetches all appointment requests of a user, oldest first.
func (r *AppointmentRepository) GetByChatID(ctx context.Context, chatID int64) ([]*model.Appointment, error) {
	query := `
		SELECT id, telegram_chat_id, professor_id, professor_name, professor_degree, date, subject, created_at
		FROM appointments
		WHERE telegram_chat_id = $1
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("get appointments by chat id: %w", err)
	}
	defer rows.Close()

	var appointments []*model.Appointment
	for rows.Next() {
		var appointment model.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.TelegramChatID,
			&appointment.ProfessorID,
			&appointment.ProfessorName,
			&appointment.ProfessorDegree,
			&appointment.Date,
			&appointment.Subject,
			&appointment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return appointments, nil
}
