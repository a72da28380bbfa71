package handler

import (
	"log/slog"
	"net/http"

	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/middleware"
)

// SessionTerminator ends the caller's session.
type SessionTerminator interface {
	Revoke(w http.ResponseWriter, session *auth.Session)
}

type LogoutHandler struct {
	sessions SessionTerminator
}

func MakeLogoutHandler(sessions SessionTerminator) LogoutHandler {
	return LogoutHandler{sessions: sessions}
}

func (h LogoutHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if h.sessions == nil {
		return endpoint.InternalError("session store is not configured")
	}

	session := middleware.SessionFrom(r.Context())
	h.sessions.Revoke(w, session)

	if session != nil {
		slog.Info("user signed out", "user_id", session.UserID)
	}

	endpoint.NewHTMLResponse(w, r).RedirectTo("/")

	return nil
}
