package kernel

import (
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/skillpath/handler"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/cache"
	"github.com/skillpath/pkg/limiter"
	"github.com/skillpath/pkg/llogs"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/portal"
)

const loginWindow = 10 * time.Minute
const loginMaxAttempts = 10

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	sessionHandler, err := auth.MakeSessionHandler([]byte(env.Session.Secret), env.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create a session handler: %w", err)
	}

	renderer, err := web.NewRenderer(env.App.IsLocal())
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not load the page templates: %w", err)
	}

	sessions := auth.MakeSessions(
		sessionHandler,
		cache.NewTTLCache(),
		env.Session.CookieName,
		env.Session.Secure,
	)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
	}

	router := Router{
		Env:       env,
		Mux:       baseHttp.NewServeMux(),
		Backend:   handler.MakeBackend(env.Backend, MakeClient(env)),
		Renderer:  renderer,
		Sessions:  sessions,
		Validator: validator,
		Limiter:   limiter.NewMemoryLimiter(loginWindow, loginMaxAttempts),
		Pipeline: middleware.Pipeline{
			Env:      env,
			Sessions: sessions,
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Landing()
	router.Login()
	router.Dashboard()
	router.Settings()
	router.Logout()
	router.KeepAlive()
	router.Metrics()
}
