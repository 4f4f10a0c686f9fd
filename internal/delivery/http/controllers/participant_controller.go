package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"roomscheduler/internal/delivery/http/helpers"
	"roomscheduler/internal/delivery/http/middleware"
	"roomscheduler/internal/domain"
)

const (
	maxNameLength     = 50
	maxPasswordLength = 128
)

// JoinRequest is the request body for POST /users. Password may be empty.
type JoinRequest struct {
	RoomCode string `json:"roomCode"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (j JoinRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(j.RoomCode) == "" {
		errs = append(errs, "roomCode is required")
	}
	name := strings.TrimSpace(j.Name)
	switch {
	case name == "":
		errs = append(errs, "name is required")
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if len(j.Password) > maxPasswordLength {
		errs = append(errs, fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}
	return errs
}

// JoinResponse is the data payload of POST /users.
type JoinResponse struct {
	Token       string              `json:"token"`
	TokenType   string              `json:"token_type"`
	Participant *domain.Participant `json:"participant"`
}

// JoinSuccessResponse is the success response envelope for POST /users (201).
type JoinSuccessResponse struct {
	Data  JoinResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateAvailabilityRequest is the request body for PATCH /users/{roomCode}.
type UpdateAvailabilityRequest struct {
	EnableTimes []string `json:"enableTimes"`
}

// Validate implements helpers.Validator.
func (u UpdateAvailabilityRequest) Validate() []string {
	if u.EnableTimes == nil {
		return []string{"enableTimes is required"}
	}
	return nil
}

// ParticipantSuccessResponse is the success response envelope for participant endpoints.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type ParticipantController struct {
	Logger     *slog.Logger
	Service    domain.ParticipantService
	Translator domain.Translator
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService, tr domain.Translator) *ParticipantController {
	return &ParticipantController{
		Logger:     logger,
		Service:    svc,
		Translator: tr,
	}
}

// Join godoc
// @Summary Join a room
// @Description Signs a participant into a room by name. An unknown name is registered with the given password; a known name must present the same password. Returns a bearer token scoped to the room.
// @Tags users
// @Accept json
// @Produce json
// @Param body body JoinRequest true "Room code, name and optional password"
// @Success 201 {object} controllers.JoinSuccessResponse "data contains token, token_type and participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *ParticipantController) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, p, err := c.Service.Join(r.Context(), strings.TrimSpace(req.RoomCode), req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, JoinResponse{Token: token, TokenType: "Bearer", Participant: p})
}

// GetMe godoc
// @Summary Get the current participant
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me [get]
func (c *ParticipantController) GetMe(w http.ResponseWriter, r *http.Request) {
	participantID, ok := middleware.ParticipantIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	p, err := c.Service.GetByID(r.Context(), participantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "participant not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// UpdateAvailability godoc
// @Summary Replace the current participant's available slots
// @Description Slots are YYYY-MM-DD in date-only rooms and "YYYY-MM-DD HH:MM" otherwise. The token must belong to a participant of roomCode. Last write wins.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomCode path string true "Room code"
// @Param body body UpdateAvailabilityRequest true "Available slots"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{roomCode} [patch]
func (c *ParticipantController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	roomCode, ok := roomCodeParam(w, r, "roomCode")
	if !ok {
		return
	}
	var req UpdateAvailabilityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participantID, ok := middleware.ParticipantIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	p, err := c.Service.UpdateAvailability(r.Context(), participantID, roomCode, req.EnableTimes)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room or participant not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}
