package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"roomscheduler/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRoomRepo implements domain.RoomRepository for tests.
type fakeRoomRepo struct {
	byCode      map[string]*domain.Room
	createErrs  []error // consumed one per Create call
	getErr      error
	createCalls int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byCode: make(map[string]*domain.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	room.ID = "room-" + room.Code
	f.byCode[room.Code] = room
	return nil
}

func (f *fakeRoomRepo) GetByCode(_ context.Context, code string) (*domain.Room, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if r, ok := f.byCode[code]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

// fakeParticipantRepo implements domain.ParticipantRepository for tests.
type fakeParticipantRepo struct {
	byID      map[string]*domain.Participant
	createErr error
	listErr   error
	updateErr error
	lastPage  domain.PaginationParams
}

func newFakeParticipantRepo(ps ...*domain.Participant) *fakeParticipantRepo {
	f := &fakeParticipantRepo{byID: make(map[string]*domain.Participant)}
	for _, p := range ps {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *domain.Participant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id string) (*domain.Participant, error) {
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) GetByRoomAndName(_ context.Context, roomID, name string) (*domain.Participant, error) {
	for _, p := range f.byID {
		if p.RoomID == roomID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) ListByRoomID(_ context.Context, roomID string) ([]*domain.Participant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Participant
	for _, p := range f.byID {
		if p.RoomID == roomID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByRoomIDPaginated(ctx context.Context, roomID string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	f.lastPage = params
	all, err := f.ListByRoomID(ctx, roomID)
	if err != nil {
		return nil, 0, err
	}
	return all, len(all), nil
}

func (f *fakeParticipantRepo) UpdateEnableTimes(_ context.Context, id string, enableTimes []string, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.EnableTimes = enableTimes
	p.UpdatedAt = updatedAt
	return nil
}

// fakeCodes returns the queued codes in order.
type fakeCodes struct {
	codes []string
	err   error
}

func (f *fakeCodes) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.codes) == 0 {
		return "", errors.New("no more codes")
	}
	c := f.codes[0]
	f.codes = f.codes[1:]
	return c, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(participantID, roomCode string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + participantID + "-" + roomCode, nil
}

// fakeEmailService records sent room emails.
type fakeEmailService struct {
	sent []*domain.RoomCreatedEmailData
	err  error
}

func (f *fakeEmailService) SendRoomCreated(_ context.Context, data *domain.RoomCreatedEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// fakeMailer records the last message.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

// fakeRenderer implements domain.EmailTemplateRenderer.
type fakeRenderer struct {
	lastName string
	err      error
}

func (f *fakeRenderer) Render(name string, _ any) (string, string, string, error) {
	f.lastName = name
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}
