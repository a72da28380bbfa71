package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/portal"
)

const maxRequestIDLength = 128

// RequestIDMiddleware makes sure every request carries an X-Request-ID. A
// well-formed inbound id is kept, otherwise a new uuid is generated. The id is
// echoed on the response and stored in the request context.
func RequestIDMiddleware(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" || len(id) > maxRequestIDLength || strings.ContainsAny(id, "\r\n") {
			id = uuid.NewString()
		}

		r.Header.Set(portal.RequestIDHeader, id)
		w.Header().Set(portal.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		return next(w, r.WithContext(ctx))
	}
}
