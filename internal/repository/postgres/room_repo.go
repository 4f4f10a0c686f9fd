package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"roomscheduler/internal/domain"
)

type roomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{DB: db}
}

// Create inserts the room and sets its ID. A taken code yields domain.ErrDuplicateCode.
func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (code, title, dates, date_only, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		room.Code, room.Title, pq.Array(room.Dates), room.DateOnly,
		nullString(room.StartTime), nullString(room.EndTime),
		room.CreatedAt, room.UpdatedAt,
	).Scan(&room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	query := `
		SELECT id, code, title, dates, date_only, start_time, end_time, created_at, updated_at
		FROM rooms
		WHERE code = $1
	`
	room := &domain.Room{}
	var startTime, endTime sql.NullString
	err := r.DB.QueryRowContext(ctx, query, strings.TrimSpace(code)).Scan(
		&room.ID, &room.Code, &room.Title, pq.Array(&room.Dates), &room.DateOnly,
		&startTime, &endTime, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if startTime.Valid {
		room.StartTime = &startTime.String
	}
	if endTime.Valid {
		room.EndTime = &endTime.String
	}
	if room.Dates == nil {
		room.Dates = []string{}
	}
	return room, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
