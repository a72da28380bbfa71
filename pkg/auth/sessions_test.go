package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillpath/pkg/cache"
)

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()

	h, err := MakeSessionHandler([]byte("supersecretkey123"), time.Hour)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	return MakeSessions(h, cache.NewTTLCache(), "skillpath_session", false)
}

func requestWith(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest("GET", "/settings", nil)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func TestSessionsIssueAndResolve(t *testing.T) {
	sessions := newTestSessions(t)
	rec := httptest.NewRecorder()

	issued, err := sessions.Issue(rec, "user-42")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].HttpOnly || cookies[0].Name != "skillpath_session" {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	resolved, err := sessions.Resolve(requestWith(cookies))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if resolved.UserID != "user-42" || resolved.TokenID != issued.TokenID {
		t.Fatalf("unexpected session %+v", resolved)
	}
}

func TestSessionsResolveAnonymous(t *testing.T) {
	sessions := newTestSessions(t)

	session, err := sessions.Resolve(requestWith(nil))
	if err != nil || session != nil {
		t.Fatalf("expected anonymous session, got %+v %v", session, err)
	}
}

func TestSessionsResolveTamperedCookie(t *testing.T) {
	sessions := newTestSessions(t)

	_, err := sessions.Resolve(requestWith([]*http.Cookie{{Name: "skillpath_session", Value: "garbage"}}))
	if err == nil {
		t.Fatalf("expected invalid cookie error")
	}
}

func TestSessionsRevoke(t *testing.T) {
	sessions := newTestSessions(t)
	rec := httptest.NewRecorder()

	issued, _ := sessions.Issue(rec, "user-42")
	cookies := rec.Result().Cookies()

	logout := httptest.NewRecorder()
	sessions.Revoke(logout, issued)

	cleared := logout.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected cookie to be cleared, got %+v", cleared)
	}

	if _, err := sessions.Resolve(requestWith(cookies)); !errors.Is(err, ErrSessionRevoked) {
		t.Fatalf("expected revoked session, got %v", err)
	}

	sessions.Revoke(httptest.NewRecorder(), nil)
}
