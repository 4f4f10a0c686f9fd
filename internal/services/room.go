package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roomscheduler/internal/availability"
	"roomscheduler/internal/domain"
)

const maxCodeAttempts = 5

type roomService struct {
	roomRepo        domain.RoomRepository
	participantRepo domain.ParticipantRepository
	validator       *availability.RangeValidator
	codes           domain.CodeGenerator
	emailService    domain.EmailService
	publicURL       string
	logger          *slog.Logger
	now             func() time.Time
	contextTimeout  time.Duration
}

// RoomServiceConfig groups the room service's collaborators.
type RoomServiceConfig struct {
	RoomRepo        domain.RoomRepository
	ParticipantRepo domain.ParticipantRepository
	Validator       *availability.RangeValidator
	Codes           domain.CodeGenerator
	EmailService    domain.EmailService // optional
	PublicURL       string
	Logger          *slog.Logger
	Timeout         time.Duration
}

func NewRoomService(cfg RoomServiceConfig) domain.RoomService {
	return &roomService{
		roomRepo:        cfg.RoomRepo,
		participantRepo: cfg.ParticipantRepo,
		validator:       cfg.Validator,
		codes:           cfg.Codes,
		emailService:    cfg.EmailService,
		publicURL:       strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:          cfg.Logger,
		now:             time.Now,
		contextTimeout:  cfg.Timeout,
	}
}

// CreateRoom validates the scheduling window and persists the room under a
// freshly generated code. Nothing is stored when any rule is violated.
func (s *roomService) CreateRoom(ctx context.Context, in domain.CreateRoomInput) (*domain.Room, error) {
	if err := s.validator.Validate(availability.RangeRequest{
		Dates:     in.Dates,
		DateOnly:  in.DateOnly,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	room := domain.NewRoom(strings.TrimSpace(in.Title), in.Dates, in.DateOnly, in.StartTime, in.EndTime, now, now)

	var err error
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		room.Code, err = s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate room code: %w", err)
		}
		err = s.roomRepo.Create(ctx, room)
		if !errors.Is(err, domain.ErrDuplicateCode) {
			break
		}
		s.logger.WarnContext(ctx, "room code collision", "attempt", attempt)
	}
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	if in.NotifyEmail != "" && s.emailService != nil {
		if err := s.emailService.SendRoomCreated(ctx, s.roomCreatedEmail(in.NotifyEmail, room)); err != nil {
			s.logger.ErrorContext(ctx, "room created email failed", "code", room.Code, "err", err)
		}
	}
	return room, nil
}

func (s *roomService) roomCreatedEmail(to string, room *domain.Room) *domain.RoomCreatedEmailData {
	data := &domain.RoomCreatedEmailData{
		Email:     to,
		RoomCode:  room.Code,
		RoomTitle: room.Title,
		RoomURL:   s.publicURL + "/rooms/" + room.Code,
		DateOnly:  room.DateOnly,
	}
	if len(room.Dates) > 0 {
		data.FirstDate = room.Dates[0]
		data.LastDate = room.Dates[len(room.Dates)-1]
	}
	if room.StartTime != nil {
		data.StartTime = *room.StartTime
	}
	if room.EndTime != nil {
		data.EndTime = *room.EndTime
	}
	return data
}

func (s *roomService) GetRoom(ctx context.Context, code string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	room, err := s.roomRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *roomService) IsDateOnly(ctx context.Context, code string) (bool, error) {
	room, err := s.GetRoom(ctx, code)
	if err != nil {
		return false, err
	}
	return room.DateOnly, nil
}

// GetRoomResult loads every participant of the room and aggregates their
// availability into a histogram.
func (s *roomService) GetRoomResult(ctx context.Context, code string) (*domain.RoomResult, error) {
	room, err := s.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, err := s.participantRepo.ListByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	h := availability.Aggregate(room.DateOnly, participants)
	return domain.NewRoomResult(room, len(participants), h), nil
}

func (s *roomService) ListParticipants(ctx context.Context, code string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	room, err := s.GetRoom(ctx, code)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.participantRepo.ListByRoomIDPaginated(ctx, room.ID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	return list, total, nil
}
