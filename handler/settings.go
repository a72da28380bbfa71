package handler

import (
	"log/slog"
	"net/http"

	"github.com/skillpath/handler/payload"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/reconcile"
	"github.com/skillpath/pkg/toast"
)

type SettingsHandler struct {
	env      *env.Environment
	backend  Backend
	renderer *web.Renderer
}

func MakeSettingsHandler(e *env.Environment, backend Backend, renderer *web.Renderer) SettingsHandler {
	return SettingsHandler{
		env:      e,
		backend:  backend,
		renderer: renderer,
	}
}

func (h SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	session := middleware.SessionFrom(ctx)
	tray := toast.NewTray()

	userID := ""
	if session != nil {
		userID = session.UserID
	}

	view := reconcile.NewView[*payload.UserDetails]()
	token := view.Mount()
	defer view.Unmount()

	reconcile.Await(ctx, h.backend.UserDetails.Start(ctx, view, token, payload.MakeUserDetailsRequest(userID), tray))

	if ctx.Err() != nil {
		slog.Info("settings request ended before the details arrived", "error", ctx.Err())

		return nil
	}

	details, _ := view.Snapshot()

	return render(w, r, h.renderer, web.SettingsPage, web.SettingsView{
		Meta:    makeMeta(h.env, web.SettingsPage, "Profile Settings", session != nil),
		Details: details,
		Toasts:  tray.All(),
	})
}
