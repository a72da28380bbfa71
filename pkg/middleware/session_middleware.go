package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/portal"
)

type contextKey string

const sessionKey contextKey = "auth.session"

// SessionMiddleware resolves the session cookie into the request context.
// Anonymous visitors pass through with no session; a cookie that no longer
// resolves (tampered, expired or revoked) is cleared and treated as anonymous.
type SessionMiddleware struct {
	sessions *auth.Sessions
}

func MakeSessionMiddleware(sessions *auth.Sessions) SessionMiddleware {
	return SessionMiddleware{sessions: sessions}
}

func (s SessionMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if s.sessions == nil {
			return endpoint.InternalError("session store is not configured")
		}

		session, err := s.sessions.Resolve(r)
		if err != nil {
			slog.Info("discarding session cookie", "error", err, "request_id", portal.RequestIDFrom(r))

			s.sessions.Forget(w)
			session = nil
		}

		return next(w, r.WithContext(WithSession(r.Context(), session)))
	}
}

func WithSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFrom returns the session stored by SessionMiddleware, or nil.
func SessionFrom(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey).(*auth.Session)

	return session
}
