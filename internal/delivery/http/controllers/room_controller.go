package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"roomscheduler/internal/availability"
	"roomscheduler/internal/delivery/http/helpers"
	"roomscheduler/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const maxTitleLength = 100

// CreateRoomRequest is the request body for POST /rooms.
type CreateRoomRequest struct {
	Title     string   `json:"title"`
	Dates     []string `json:"dates"`
	DateOnly  *bool    `json:"dateOnly"`
	StartTime *string  `json:"startTime"`
	EndTime   *string  `json:"endTime"`
	Email     string   `json:"email"`
}

// Validate implements helpers.Validator. It checks field shapes only; the
// date range rules are applied by the room service.
func (c CreateRoomRequest) Validate() []string {
	var errs []string
	if utf8.RuneCountInString(c.Title) > maxTitleLength {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	if c.Dates == nil {
		errs = append(errs, "dates is required")
	}
	for i, d := range c.Dates {
		if !availability.IsDate(d) {
			errs = append(errs, fmt.Sprintf("dates[%d] must be a YYYY-MM-DD date", i))
		}
	}
	errs = appendTimeError(errs, "startTime", c.StartTime)
	errs = appendTimeError(errs, "endTime", c.EndTime)
	if c.Email != "" && !emailRegex.MatchString(c.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

func appendTimeError(errs []string, field string, v *string) []string {
	if v == nil || *v == "" {
		return errs
	}
	if !availability.IsClockTime(*v) {
		return append(errs, field+" must be an HH:MM time")
	}
	return errs
}

func (c CreateRoomRequest) input() domain.CreateRoomInput {
	return domain.CreateRoomInput{
		Title:       strings.TrimSpace(c.Title),
		Dates:       c.Dates,
		DateOnly:    c.DateOnly != nil && *c.DateOnly,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		NotifyEmail: c.Email,
	}
}

// RoomSuccessResponse is the success response envelope for room endpoints.
type RoomSuccessResponse struct {
	Data  *domain.Room      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DateOnlyResponse is the data payload of GET /rooms/{code}/date-only.
type DateOnlyResponse struct {
	DateOnly bool `json:"dateOnly"`
}

// DateOnlySuccessResponse is the success response envelope for GET /rooms/{code}/date-only.
type DateOnlySuccessResponse struct {
	Data  DateOnlyResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RoomResultSuccessResponse is the success response envelope for GET /rooms/{code}/result.
type RoomResultSuccessResponse struct {
	Data  *domain.RoomResult `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ParticipantPageSuccessResponse is the success response envelope for GET /rooms/{code}/participants.
type ParticipantPageSuccessResponse struct {
	Data  helpers.Page[*domain.Participant] `json:"data"`
	Error *helpers.APIError                 `json:"error"`
}

type RoomController struct {
	Logger     *slog.Logger
	Service    domain.RoomService
	Translator domain.Translator
}

func NewRoomController(logger *slog.Logger, svc domain.RoomService, tr domain.Translator) *RoomController {
	return &RoomController{
		Logger:     logger,
		Service:    svc,
		Translator: tr,
	}
}

// CreateRoom godoc
// @Summary Create a room
// @Description Creates a scheduling room over the candidate dates. Every broken date rule is reported in error.details, translated per Accept-Language. When email is set the organiser receives the room link.
// @Tags rooms
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language for validation messages (en, ko)"
// @Param room body CreateRoomRequest true "Room data"
// @Success 201 {object} controllers.RoomSuccessResponse "data contains the created room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	room, err := c.Service.CreateRoom(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, room)
}

// GetRoom godoc
// @Summary Get a room by code
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} controllers.RoomSuccessResponse "data contains the room"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{code} [get]
func (c *RoomController) GetRoom(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCodeParam(w, r, "code")
	if !ok {
		return
	}
	room, err := c.Service.GetRoom(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, room)
}

// GetDateOnly godoc
// @Summary Report whether a room collects dates only
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} controllers.DateOnlySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{code}/date-only [get]
func (c *RoomController) GetDateOnly(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCodeParam(w, r, "code")
	if !ok {
		return
	}
	dateOnly, err := c.Service.IsDateOnly(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DateOnlyResponse{DateOnly: dateOnly})
}

// GetRoomResult godoc
// @Summary Get the aggregated availability of a room
// @Description enableTimes maps each slot (a date in date-only rooms, otherwise the date part of each submitted slot) to the number of participants available, in ascending slot order.
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} controllers.RoomResultSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{code}/result [get]
func (c *RoomController) GetRoomResult(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCodeParam(w, r, "code")
	if !ok {
		return
	}
	result, err := c.Service.GetRoomResult(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// ListParticipants godoc
// @Summary List a room's participants
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ParticipantPageSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{code}/participants [get]
func (c *RoomController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCodeParam(w, r, "code")
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	participants, total, err := c.Service.ListParticipants(r.Context(), code, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.Translator, "room not found", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(participants, params, total))
}

func roomCodeParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	code := strings.TrimSpace(r.PathValue(name))
	if code == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	return code, true
}
