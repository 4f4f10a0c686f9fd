package services

import (
	"context"
	"fmt"
	"log/slog"

	"roomscheduler/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRoomCreated sends the room code and link to the organiser using the "room_created" template.
func (s *emailService) SendRoomCreated(ctx context.Context, data *domain.RoomCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("room created data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("room_created", data)
	if err != nil {
		return fmt.Errorf("failed to render room_created template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send room created email: %w", err)
	}
	s.logger.InfoContext(ctx, "room created email sent", "code", data.RoomCode)
	return nil
}
