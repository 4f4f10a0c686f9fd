package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"roomscheduler/internal/delivery/http/controllers"
	"roomscheduler/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards the participant endpoints.
func NewRouter(rooms *controllers.RoomController, participants *controllers.ParticipantController, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Rooms
	mux.HandleFunc("POST /rooms", rooms.CreateRoom)
	mux.HandleFunc("GET /rooms/{code}", rooms.GetRoom)
	mux.HandleFunc("GET /rooms/{code}/date-only", rooms.GetDateOnly)
	mux.HandleFunc("GET /rooms/{code}/result", rooms.GetRoomResult)
	mux.HandleFunc("GET /rooms/{code}/participants", rooms.ListParticipants)

	// Participants
	mux.HandleFunc("POST /users", participants.Join)
	mux.HandleFunc("GET /users/me", requireAuth(participants.GetMe))
	mux.HandleFunc("PATCH /users/{roomCode}", requireAuth(participants.UpdateAvailability))

	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// Wrap applies the request-scoped middleware shared by every route, outermost first.
func Wrap(handler http.Handler, logger *slog.Logger, corsOrigins []string) http.Handler {
	handler = middleware.CORS(corsOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	return middleware.RequestID(handler)
}
