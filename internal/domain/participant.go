package domain

import (
	"context"
	"time"
)

// Participant is one person's availability inside a room. EnableTimes holds
// bare dates (YYYY-MM-DD) in date-only rooms and "YYYY-MM-DD HH:MM" slots in
// timed rooms.
// swagger:model Participant
type Participant struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"roomId"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	EnableTimes  []string  `json:"enableTimes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewParticipant returns a Participant with no availability yet.
func NewParticipant(id, roomID, name string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		ID:          id,
		RoomID:      roomID,
		Name:        name,
		EnableTimes: []string{},
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenClaims is what a participant token proves.
type TokenClaims struct {
	ParticipantID string
	RoomCode      string
}

// TokenIssuer issues tokens (e.g. JWT) for a participant of a room.
type TokenIssuer interface {
	Issue(participantID, roomCode string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// ParticipantRepository defines the interface for participant storage.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	GetByRoomAndName(ctx context.Context, roomID, name string) (*Participant, error)
	ListByRoomID(ctx context.Context, roomID string) ([]*Participant, error)
	ListByRoomIDPaginated(ctx context.Context, roomID string, params PaginationParams) ([]*Participant, int, error)
	UpdateEnableTimes(ctx context.Context, id string, enableTimes []string, updatedAt time.Time) error
}

// ParticipantService defines joining a room and submitting availability.
type ParticipantService interface {
	Join(ctx context.Context, roomCode, name, password string) (token string, p *Participant, err error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	UpdateAvailability(ctx context.Context, participantID, roomCode string, enableTimes []string) (*Participant, error)
}
