package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/skillpath/handler/payload"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/reconcile"
	"github.com/skillpath/pkg/toast"
)

type DashboardHandler struct {
	env      *env.Environment
	backend  Backend
	renderer *web.Renderer
}

func MakeDashboardHandler(e *env.Environment, backend Backend, renderer *web.Renderer) DashboardHandler {
	return DashboardHandler{
		env:      e,
		backend:  backend,
		renderer: renderer,
	}
}

func (h DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	session := middleware.SessionFrom(ctx)
	tray := toast.NewTray()

	request := payload.SkillsRequest{Dream: h.dream(ctx, session)}

	view := reconcile.NewView[[]payload.Skill]()
	token := view.Mount()
	defer view.Unmount()

	reconcile.Await(ctx, h.backend.Skills.Start(ctx, view, token, request, tray))

	if ctx.Err() != nil {
		slog.Info("dashboard request ended before the skills arrived", "error", ctx.Err())

		return nil
	}

	skills, _ := view.Snapshot()

	return render(w, r, h.renderer, web.DashboardPage, web.DashboardView{
		Meta:         makeMeta(h.env, web.DashboardPage, "Dashboard", session != nil),
		Stats:        web.SampleStats(),
		Skills:       skills,
		Achievements: web.SampleAchievements(),
		Toasts:       tray.All(),
	})
}

// dream reads the signed-in user's dream career. Lookup failures are not shown
// to the user; the configured default is used instead.
func (h DashboardHandler) dream(ctx context.Context, session *auth.Session) string {
	fallback := h.env.Backend.DefaultDream

	if session == nil {
		return fallback
	}

	view := reconcile.NewView[*payload.UserDetails]()
	token := view.Mount()
	defer view.Unmount()

	h.backend.UserDetails.Run(ctx, view, token, payload.MakeUserDetailsRequest(session.UserID), nil)

	details, status := view.Snapshot()
	if status != reconcile.Loaded || details == nil || strings.TrimSpace(details.Dream) == "" {
		slog.Debug("using the default dream", "user_id", session.UserID, "status", status.String())

		return fallback
	}

	return details.Dream
}
