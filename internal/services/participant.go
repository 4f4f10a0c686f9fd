package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomscheduler/internal/availability"
	"roomscheduler/internal/domain"
)

type participantService struct {
	roomRepo        domain.RoomRepository
	participantRepo domain.ParticipantRepository
	hasher          domain.PasswordHasher
	tokenIssuer     domain.TokenIssuer
	tokenExpiry     time.Duration
	newID           func() string
	now             func() time.Time
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService with the given repositories and auth ports.
func NewParticipantService(roomRepo domain.RoomRepository, participantRepo domain.ParticipantRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		hasher:          hasher,
		tokenIssuer:     tokenIssuer,
		tokenExpiry:     tokenExpiry,
		newID:           uuid.NewString,
		now:             time.Now,
		contextTimeout:  timeout,
	}
}

// Join signs a participant into a room. A name seen for the first time
// creates the participant; a known name must present the same password.
func (s *participantService) Join(ctx context.Context, roomCode, name, password string) (string, *domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	room, err := s.roomRepo.GetByCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrNotFound
		}
		return "", nil, fmt.Errorf("get room: %w", err)
	}

	p, err := s.participantRepo.GetByRoomAndName(ctx, room.ID, name)
	switch {
	case err == nil:
		if err := s.hasher.Compare(p.PasswordHash, p.Salt, password); err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return "", nil, domain.ErrInvalidCredentials
			}
			return "", nil, fmt.Errorf("compare password: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		p, err = s.create(ctx, room.ID, name, password)
		if err != nil {
			return "", nil, err
		}
	default:
		return "", nil, fmt.Errorf("get participant: %w", err)
	}

	token, err := s.tokenIssuer.Issue(p.ID, room.Code, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, p, nil
}

func (s *participantService) create(ctx context.Context, roomID, name, password string) (*domain.Participant, error) {
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}
	now := s.now()
	p := domain.NewParticipant(s.newID(), roomID, name, now, now)
	p.Salt = salt
	p.PasswordHash = hash
	if err := s.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			// Lost a race with another join under the same name.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return p, nil
}

func (s *participantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}

// UpdateAvailability replaces the participant's submitted slots. The
// participant must belong to the room named by roomCode and every slot must
// match the room's mode.
func (s *participantService) UpdateAvailability(ctx context.Context, participantID, roomCode string, enableTimes []string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	room, err := s.roomRepo.GetByCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	p, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if p.RoomID != room.ID {
		return nil, domain.ErrForbidden
	}
	if err := availability.ValidateSlots(room.DateOnly, enableTimes); err != nil {
		return nil, err
	}

	if enableTimes == nil {
		enableTimes = []string{}
	}
	now := s.now()
	if err := s.participantRepo.UpdateEnableTimes(ctx, p.ID, enableTimes, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update availability: %w", err)
	}
	p.EnableTimes = enableTimes
	p.UpdatedAt = now
	return p, nil
}
