package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"roomscheduler/internal/domain"
)

const participantColumns = `id, room_id, name, password_hash, salt, enable_times, created_at, updated_at`

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

// Create inserts p with its pre-assigned ID. A name already taken in the room
// yields domain.ErrDuplicateName.
func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (id, room_id, name, password_hash, salt, enable_times, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	enableTimes := p.EnableTimes
	if enableTimes == nil {
		enableTimes = []string{}
	}
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.RoomID, p.Name, p.PasswordHash, p.Salt, pq.Array(enableTimes), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return scanParticipant(r.DB.QueryRowContext(ctx, query, id))
}

func (r *participantRepository) GetByRoomAndName(ctx context.Context, roomID, name string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE room_id = $1 AND name = $2`
	return scanParticipant(r.DB.QueryRowContext(ctx, query, roomID, name))
}

// ListByRoomID returns every participant of the room with their submissions.
func (r *participantRepository) ListByRoomID(ctx context.Context, roomID string) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE room_id = $1 ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParticipants(rows)
}

func (r *participantRepository) ListByRoomIDPaginated(ctx context.Context, roomID string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE room_id = $1`, roomID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + participantColumns + ` FROM participants WHERE room_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, roomID, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	list, err := scanParticipants(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// UpdateEnableTimes replaces the participant's submission. Last write wins.
func (r *participantRepository) UpdateEnableTimes(ctx context.Context, id string, enableTimes []string, updatedAt time.Time) error {
	if enableTimes == nil {
		enableTimes = []string{}
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE participants SET enable_times = $1, updated_at = $2 WHERE id = $3`,
		pq.Array(enableTimes), updatedAt, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInto(row rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	if err := row.Scan(&p.ID, &p.RoomID, &p.Name, &p.PasswordHash, &p.Salt, pq.Array(&p.EnableTimes), &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.EnableTimes == nil {
		p.EnableTimes = []string{}
	}
	return p, nil
}

func scanParticipant(row *sql.Row) (*domain.Participant, error) {
	p, err := scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanParticipants(rows *sql.Rows) ([]*domain.Participant, error) {
	list := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
