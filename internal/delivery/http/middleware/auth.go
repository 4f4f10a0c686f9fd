package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"roomscheduler/internal/delivery/http/helpers"
	"roomscheduler/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the authenticated participant's claims.
func SetClaims(ctx context.Context, claims *domain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated participant's claims, if present.
func ClaimsFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.TokenClaims)
	return c, ok && c != nil
}

// ParticipantIDFromContext returns the authenticated participant ID, if present.
func ParticipantIDFromContext(ctx context.Context) (string, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return c.ParticipantID, true
}

// RequireAuth returns a wrapper that validates the Bearer token and stores its
// claims in the request context. A missing or invalid token is answered with
// 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r.Header.Get("Authorization"))
			if msg != "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, msg)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "err", err)
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}

func bearerToken(header string) (token, problem string) {
	const prefix = "Bearer "
	switch {
	case header == "":
		return "", "missing authorization header"
	case !strings.HasPrefix(header, prefix):
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}
