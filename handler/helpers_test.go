package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/skillpath/metal/env"
	"github.com/skillpath/metal/web"
	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/cache"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/middleware"
	"github.com/skillpath/pkg/portal"
)

// fakeBackend answers the backend endpoints with canned bodies and records
// every request it receives.
type fakeBackend struct {
	mu       sync.Mutex
	server   *httptest.Server
	bodies   map[string]string
	requests map[string][]map[string]any
}

func newFakeBackend(t *testing.T, bodies map[string]string) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{
		bodies:   bodies,
		requests: make(map[string][]map[string]any),
	}

	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		fb.mu.Lock()
		fb.requests[r.URL.Path] = append(fb.requests[r.URL.Path], decoded)
		body, ok := fb.bodies[r.URL.Path]
		fb.mu.Unlock()

		if !ok {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))

	t.Cleanup(fb.server.Close)

	return fb
}

func (fb *fakeBackend) received(path string) []map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	return append([]map[string]any(nil), fb.requests[path]...)
}

func testEnv(backendURL string) *env.Environment {
	return &env.Environment{
		App: env.AppEnvironment{Name: "skillpath", URL: "http://localhost:8080", Type: "local"},
		Ping: env.PingEnvironment{
			Username: "keepalive-user-0001",
			Password: "keepalive-pass-0001",
		},
		Backend: env.BackendEnvironment{
			URL:          backendURL,
			Timeout:      2 * time.Second,
			UserAgent:    "skillpath-test",
			DefaultDream: env.DefaultDream,
		},
	}
}

type harness struct {
	env      *env.Environment
	backend  Backend
	renderer *web.Renderer
	sessions *auth.Sessions
	pipeline middleware.Pipeline
}

func newHarness(t *testing.T, backendURL string) harness {
	t.Helper()

	e := testEnv(backendURL)

	renderer, err := web.NewRenderer(false)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	sessionHandler, err := auth.MakeSessionHandler([]byte("supersecretkey-for-tests-0123456789"), time.Hour)
	if err != nil {
		t.Fatalf("session handler: %v", err)
	}

	sessions := auth.MakeSessions(sessionHandler, cache.NewTTLCache(), "skillpath_session", false)

	return harness{
		env:      e,
		backend:  MakeBackend(e.Backend, portal.NewClient(nil, e.Backend.Timeout)),
		renderer: renderer,
		sessions: sessions,
		pipeline: middleware.Pipeline{Env: e, Sessions: sessions},
	}
}

func (h harness) serve(handler endpoint.ApiHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()

	endpoint.NewApiHandler(h.pipeline.Page(handler)).ServeHTTP(rec, req)

	return rec
}

// signIn returns the cookies of a fresh session for userID.
func (h harness) signIn(t *testing.T, userID string) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if _, err := h.sessions.Issue(rec, userID); err != nil {
		t.Fatalf("issue: %v", err)
	}

	return rec.Result().Cookies()
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}
