package kernel

import (
	baseHttp "net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/pkg/portal"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseSentry() {
	if a.sentry == nil {
		return
	}

	sentry.Flush(2 * time.Second)
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
