package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.Authorize] and stores the resulting
// [models.Session] in the request context with [utils.WithSession].
//
// Requests are rejected with 401 Unauthorized when:
//   - the header is absent ("No token provided");
//   - the header is not a bearer token, or the token is empty, malformed,
//     foreign or expired ("Invalid token").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authorize(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", session.UserID)
		})
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
