package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth resolves the caller from a bearer token or, failing that, from the
// session cookie. A bad bearer token is rejected with 401. A bad cookie is
// ignored so that a stale session never blocks login or registration.
// Requests without credentials pass through anonymously.
func Auth(validator tokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				userID, err := validator.ValidateToken(r.Context(), token)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
				return
			}

			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				if userID, err := validator.ValidateToken(r.Context(), c.Value); err == nil {
					r = r.WithContext(ctxutil.WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
