package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"roomscheduler/internal/delivery/http/helpers"
	"roomscheduler/internal/domain"
)

// writeServiceError maps a service error onto the API envelope. Unknown
// errors are logged and answered with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, tr domain.Translator, notFoundMsg string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if tr == nil {
			helpers.WriteValidationError(w, verr.Messages())
			return
		}
		helpers.WriteValidationError(w, tr.Messages(r.Header.Get("Accept-Language"), verr))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid name or password")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
