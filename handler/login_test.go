package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/skillpath/handler/payload"
	"github.com/skillpath/pkg/limiter"
	"github.com/skillpath/pkg/portal"
)

func loginRequest(userID string) *http.Request {
	form := url.Values{"user_id": {userID}}

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.1.1.1:4321"

	return req
}

func TestLoginIssuesSession(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	login := MakeLoginHandler(h.env, h.sessions, h.renderer, portal.GetDefaultValidator(), limiter.NewMemoryLimiter(time.Minute, 3))

	rec := h.serve(login.Handle, loginRequest("user-5"))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to the dashboard, got %d", rec.Code)
	}

	req := withCookies(httptest.NewRequest("GET", "/", nil), rec.Result().Cookies())

	session, err := h.sessions.Resolve(req)
	if err != nil || session == nil || session.UserID != "user-5" {
		t.Fatalf("expected a session for user-5, got %+v %v", session, err)
	}
}

func TestLoginIsRefusedInProduction(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	h.env.App.Type = "production"

	lim := limiter.NewMemoryLimiter(time.Minute, 3)
	login := MakeLoginHandler(h.env, h.sessions, h.renderer, portal.GetDefaultValidator(), lim)

	rec := h.serve(login.Handle, loginRequest("user-5"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 in production, got %d", rec.Code)
	}

	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no session cookie, got %v", cookies)
	}

	landing := h.serve(MakeLandingHandler(h.env, h.renderer).Handle, httptest.NewRequest("GET", "/", nil))
	if landing.Code != http.StatusOK || strings.Contains(landing.Body.String(), `action="/login"`) {
		t.Fatalf("expected the landing page without a sign in form, got %d", landing.Code)
	}
}

func TestLoginCountsSuccessfulAttempts(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	login := MakeLoginHandler(h.env, h.sessions, h.renderer, portal.GetDefaultValidator(), limiter.NewMemoryLimiter(time.Minute, 2))

	for _, userID := range []string{"user-1", "user-2"} {
		if rec := h.serve(login.Handle, loginRequest(userID)); rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected redirect, got %d", userID, rec.Code)
		}
	}

	limited := h.serve(login.Handle, loginRequest("user-3"))
	if limited.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the attempt budget is spent, got %d", limited.Code)
	}
}

func TestLoginRejectsBlankAndLimits(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	login := MakeLoginHandler(h.env, h.sessions, h.renderer, portal.GetDefaultValidator(), limiter.NewMemoryLimiter(time.Minute, 2))

	first := h.serve(login.Handle, loginRequest("   "))
	if first.Code != http.StatusOK || !strings.Contains(first.Body.String(), payload.LoginInvalidMessage) {
		t.Fatalf("expected the landing page with a toast, got %d", first.Code)
	}

	h.serve(login.Handle, loginRequest(""))

	limited := h.serve(login.Handle, loginRequest("user-5"))
	if limited.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after repeated failures, got %d", limited.Code)
	}
}

func TestLandingRedirectsSignedInUsers(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	landing := MakeLandingHandler(h.env, h.renderer)

	anon := h.serve(landing.Handle, httptest.NewRequest("GET", "/", nil))
	if anon.Code != http.StatusOK || !strings.Contains(anon.Body.String(), `action="/login"`) {
		t.Fatalf("expected the sign in form, got %d", anon.Code)
	}

	signed := h.serve(landing.Handle, withCookies(httptest.NewRequest("GET", "/", nil), h.signIn(t, "user-5")))
	if signed.Code != http.StatusSeeOther || signed.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect, got %d", signed.Code)
	}
}

func TestLogoutWithoutSessionStillRedirects(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1")
	logout := MakeLogoutHandler(h.sessions)

	rec := h.serve(logout.Handle, httptest.NewRequest("POST", "/logout", nil))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d", rec.Code)
	}
}
