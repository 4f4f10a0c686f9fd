package domain

import (
	"context"
	"time"
)

// Room is a scheduling event: candidate dates, an optional time-of-day window
// and the short code participants use to find it.
// swagger:model Room
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Dates     []string  `json:"dates"`
	DateOnly  bool      `json:"dateOnly"`
	StartTime *string   `json:"startTime"`
	EndTime   *string   `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRoom returns a new Room with the given fields. ID and Code are set on create.
func NewRoom(title string, dates []string, dateOnly bool, startTime, endTime *string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		Title:     title,
		Dates:     dates,
		DateOnly:  dateOnly,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// RoomResult is a room together with the aggregated availability of its
// participants. The raw per-participant submissions are not included.
// swagger:model RoomResult
type RoomResult struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Title            string     `json:"title"`
	Dates            []string   `json:"dates"`
	DateOnly         bool       `json:"dateOnly"`
	StartTime        *string    `json:"startTime"`
	EndTime          *string    `json:"endTime"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	ParticipantCount int        `json:"participantCount"`
	EnableTimes      *Histogram `json:"enableTimes"`
}

// NewRoomResult copies the room's fields next to the histogram.
func NewRoomResult(room *Room, participants int, h *Histogram) *RoomResult {
	return &RoomResult{
		ID:               room.ID,
		Code:             room.Code,
		Title:            room.Title,
		Dates:            room.Dates,
		DateOnly:         room.DateOnly,
		StartTime:        room.StartTime,
		EndTime:          room.EndTime,
		CreatedAt:        room.CreatedAt,
		UpdatedAt:        room.UpdatedAt,
		ParticipantCount: participants,
		EnableTimes:      h,
	}
}

// CreateRoomInput is the already shape-checked input for room creation.
type CreateRoomInput struct {
	Title       string
	Dates       []string
	DateOnly    bool
	StartTime   *string
	EndTime     *string
	NotifyEmail string
}

// CodeGenerator produces short room codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RoomRepository defines the interface for room storage.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByCode(ctx context.Context, code string) (*Room, error)
}

// RoomService defines room creation, lookup and result aggregation.
type RoomService interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*Room, error)
	GetRoom(ctx context.Context, code string) (*Room, error)
	IsDateOnly(ctx context.Context, code string) (bool, error)
	GetRoomResult(ctx context.Context, code string) (*RoomResult, error)
	ListParticipants(ctx context.Context, code string, params PaginationParams) ([]*Participant, int, error)
}
