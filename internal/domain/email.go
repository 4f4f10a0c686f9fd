package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RoomCreatedEmailData holds data for the email sent to a room's organiser.
type RoomCreatedEmailData struct {
	Email     string
	RoomCode  string
	RoomTitle string
	RoomURL   string
	FirstDate string
	LastDate  string
	DateOnly  bool
	StartTime string
	EndTime   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRoomCreated(ctx context.Context, data *RoomCreatedEmailData) error
}
