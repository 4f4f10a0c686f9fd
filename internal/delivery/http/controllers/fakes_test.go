package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"roomscheduler/internal/delivery/http/helpers"
	"roomscheduler/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRoomService implements domain.RoomService for handler tests.
type fakeRoomService struct {
	room         *domain.Room
	result       *domain.RoomResult
	participants []*domain.Participant
	total        int
	err          error

	lastInput  domain.CreateRoomInput
	lastCode   string
	lastParams domain.PaginationParams
	createCall int
}

func (f *fakeRoomService) CreateRoom(_ context.Context, in domain.CreateRoomInput) (*domain.Room, error) {
	f.createCall++
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

func (f *fakeRoomService) GetRoom(_ context.Context, code string) (*domain.Room, error) {
	f.lastCode = code
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

func (f *fakeRoomService) IsDateOnly(_ context.Context, code string) (bool, error) {
	f.lastCode = code
	if f.err != nil {
		return false, f.err
	}
	return f.room.DateOnly, nil
}

func (f *fakeRoomService) GetRoomResult(_ context.Context, code string) (*domain.RoomResult, error) {
	f.lastCode = code
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeRoomService) ListParticipants(_ context.Context, code string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	f.lastCode = code
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.participants, f.total, nil
}

// fakeParticipantService implements domain.ParticipantService for handler tests.
type fakeParticipantService struct {
	token       string
	participant *domain.Participant
	err         error

	lastRoomCode      string
	lastName          string
	lastPassword      string
	lastParticipantID string
	lastEnableTimes   []string
}

func (f *fakeParticipantService) Join(_ context.Context, roomCode, name, password string) (string, *domain.Participant, error) {
	f.lastRoomCode, f.lastName, f.lastPassword = roomCode, name, password
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.participant, nil
}

func (f *fakeParticipantService) GetByID(_ context.Context, id string) (*domain.Participant, error) {
	f.lastParticipantID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.participant, nil
}

func (f *fakeParticipantService) UpdateAvailability(_ context.Context, participantID, roomCode string, enableTimes []string) (*domain.Participant, error) {
	f.lastParticipantID, f.lastRoomCode, f.lastEnableTimes = participantID, roomCode, enableTimes
	if f.err != nil {
		return nil, f.err
	}
	p := *f.participant
	p.EnableTimes = enableTimes
	return &p, nil
}

// prefixTranslator marks translated messages so tests can see the translator ran.
type prefixTranslator struct {
	lastAcceptLanguage string
}

func (t *prefixTranslator) Translate(acceptLanguage string, v domain.Violation) string {
	t.lastAcceptLanguage = acceptLanguage
	return "[" + v.Code + "] " + v.Message
}

func (t *prefixTranslator) Messages(acceptLanguage string, e *domain.ValidationError) []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = t.Translate(acceptLanguage, v)
	}
	return out
}

// decodeEnvelope decodes the recorder body into the API envelope with data left raw.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var body struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Data, body.Error
}
