package kernel

import (
	baseHttp "net/http"

	"github.com/skillpath/handler"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/limiter"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/portal"
)

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Backend   handler.Backend
	Renderer  *web.Renderer
	Sessions  *auth.Sessions
	Validator *portal.Validator
	Limiter   *limiter.MemoryLimiter
}

func (r *Router) PagePipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Page(apiHandler),
	)
}

func (r *Router) Landing() {
	abstract := handler.MakeLandingHandler(r.Env, r.Renderer)

	r.Mux.HandleFunc("GET /{$}", r.PagePipelineFor(abstract.Handle))
}

func (r *Router) Login() {
	abstract := handler.MakeLoginHandler(r.Env, r.Sessions, r.Renderer, r.Validator, r.Limiter)

	r.Mux.HandleFunc("POST /login", r.PagePipelineFor(abstract.Handle))
}

func (r *Router) Dashboard() {
	abstract := handler.MakeDashboardHandler(r.Env, r.Backend, r.Renderer)

	r.Mux.HandleFunc("GET /dashboard", r.PagePipelineFor(abstract.Handle))
}

func (r *Router) Settings() {
	abstract := handler.MakeSettingsHandler(r.Env, r.Backend, r.Renderer)

	r.Mux.HandleFunc("GET /settings", r.PagePipelineFor(abstract.Handle))
}

func (r *Router) Logout() {
	abstract := handler.MakeLogoutHandler(r.Sessions)

	r.Mux.HandleFunc("POST /logout", r.PagePipelineFor(abstract.Handle))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle, middleware.RequestIDMiddleware),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}
