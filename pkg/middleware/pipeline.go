package middleware

import (
	"github.com/skillpath/metal/env"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
)

type Pipeline struct {
	Env      *env.Environment
	Sessions *auth.Sessions
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Page is the chain every rendered page goes through.
func (m Pipeline) Page(h endpoint.ApiHandler) endpoint.ApiHandler {
	return m.Chain(
		h,
		RequestIDMiddleware,
		MakeSessionMiddleware(m.Sessions).Handle,
	)
}
