package env

import (
	"strings"
	"time"
)

const DefaultBackendURL = "http://127.0.0.1:8000"
const DefaultDream = "Doctor"

// BackendEnvironment points at the remote service the pages read from.
type BackendEnvironment struct {
	URL          string        `validate:"required,url"`
	Timeout      time.Duration `validate:"required,min=1ms"`
	UserAgent    string        `validate:"required,min=3"`
	DefaultDream string        `validate:"required,min=2"`
}

func (e BackendEnvironment) Endpoint(path string) string {
	return strings.TrimRight(e.URL, "/") + "/" + strings.TrimLeft(path, "/")
}
