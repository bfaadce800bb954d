package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/arcade-go/internal/services/auth"
	"github.com/mcoot/arcade-go/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "session"

// GetSession retrieves the authenticated session from the request context
// Returns nil if no user is authenticated
func GetSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// OptionalAuth resolves the session cookie if present but doesn't require it.
// Pages use the session only to shape the nav and authorize nothing.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFromCookie(r, authService)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromCookie(r *http.Request, authService *auth.Service) *session.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	sess, err := authService.SessionUser(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return sess
}
