package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/portal"
)

func makeMeta(e *env.Environment, page, title string, signedIn bool) web.Meta {
	return web.Meta{
		Page:     page,
		Title:    title,
		SiteName: e.App.Name,
		Lang:     strings.ReplaceAll(e.App.Lang(), "_", "-"),
		SignedIn: signedIn,
	}
}

func render(w http.ResponseWriter, r *http.Request, renderer *web.Renderer, page string, data any) *endpoint.ApiError {
	body, err := renderer.Bytes(page, data)
	if err != nil {
		return endpoint.LogInternalError("could not render the "+page+" page", err)
	}

	if err := endpoint.NewHTMLResponse(w, r).RespondHTML(body); err != nil {
		slog.Warn("could not write page", "page", page, "error", err, "request_id", portal.RequestIDFrom(r))
	}

	return nil
}
