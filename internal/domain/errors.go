package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateCode      = errors.New("room code already in use")
	ErrDuplicateName      = errors.New("participant name already in use")
	ErrValidation         = errors.New("validation failed")
)

// Violation is a single broken business rule. Code identifies the rule for
// translation; Message is the default English text.
type Violation struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"-"`
}

// ValidationError carries every violation found for one request.
type ValidationError struct {
	Violations []Violation
}

// Add appends a violation.
func (e *ValidationError) Add(code, message string) {
	e.Violations = append(e.Violations, Violation{Code: code, Message: message})
}

// AddWithData appends a violation whose message is parameterised.
func (e *ValidationError) AddWithData(code, message string, data map[string]any) {
	e.Violations = append(e.Violations, Violation{Code: code, Message: message, Data: data})
}

// Messages returns the default messages in the order they were collected.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Has reports whether a violation with the given code was collected.
func (e *ValidationError) Has(code string) bool {
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// Err returns e when at least one violation was collected, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Translator renders a violation in the caller's language. acceptLanguage is
// an Accept-Language header value and may be empty.
type Translator interface {
	Translate(acceptLanguage string, v Violation) string
	// Messages translates every violation of e, keeping their order.
	Messages(acceptLanguage string, e *ValidationError) []string
}
