package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skillpath/handler/payload"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/limiter"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/portal"
	"github.com/skillpath/pkg/toast"
)

// SessionIssuer starts a session for a user.
type SessionIssuer interface {
	Issue(w http.ResponseWriter, userID string) (*auth.Session, error)
}

type LandingHandler struct {
	env      *env.Environment
	renderer *web.Renderer
}

func MakeLandingHandler(e *env.Environment, renderer *web.Renderer) LandingHandler {
	return LandingHandler{env: e, renderer: renderer}
}

func (h LandingHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if middleware.SessionFrom(r.Context()) != nil {
		endpoint.NewHTMLResponse(w, r).RedirectTo("/dashboard")

		return nil
	}

	return render(w, r, h.renderer, web.LandingPage, web.LandingView{
		Meta:           makeMeta(h.env, web.LandingPage, "Sign in", false),
		SignInDisabled: h.env.App.IsProduction(),
	})
}

type LoginHandler struct {
	env       *env.Environment
	sessions  SessionIssuer
	renderer  *web.Renderer
	validator *portal.Validator
	limiter   *limiter.MemoryLimiter
}

func MakeLoginHandler(
	e *env.Environment,
	sessions SessionIssuer,
	renderer *web.Renderer,
	validator *portal.Validator,
	limiter *limiter.MemoryLimiter,
) LoginHandler {
	return LoginHandler{
		env:       e,
		sessions:  sessions,
		renderer:  renderer,
		validator: validator,
		limiter:   limiter,
	}
}

// Handle trusts the submitted user_id as-is, so it only runs outside production.
// Every attempt counts against the client's limit, successful or not.
func (h LoginHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if h.env.App.IsProduction() {
		return endpoint.Forbidden("sign in by user id is disabled in production")
	}

	clientIP := portal.ParseClientIP(r)

	if h.limiter.TooMany(clientIP) {
		return endpoint.TooManyRequests("too many sign in attempts, try again later")
	}

	h.limiter.Hit(clientIP)

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := r.ParseForm(); err != nil {
		return endpoint.BadRequestError("could not read the sign in form")
	}

	request := payload.LoginRequest{UserID: strings.TrimSpace(r.PostForm.Get("user_id"))}

	validate := h.validator.Fork()

	if rejects, _ := validate.Rejects(request); rejects {
		slog.Info("rejected sign in", "ip", clientIP, "errors", validate.GetErrorsAsJson())

		return render(w, r, h.renderer, web.LandingPage, web.LandingView{
			Meta:   makeMeta(h.env, web.LandingPage, "Sign in", false),
			UserID: request.UserID,
			Toasts: []toast.Toast{toast.Error(payload.LoginInvalidMessage)},
		})
	}

	if _, err := h.sessions.Issue(w, request.UserID); err != nil {
		return endpoint.LogInternalError("could not start a session", err)
	}

	endpoint.NewHTMLResponse(w, r).RedirectTo("/dashboard")

	return nil
}
