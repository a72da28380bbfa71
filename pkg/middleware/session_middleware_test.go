package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skillpath/pkg/auth"
	"github.com/skillpath/pkg/endpoint"
)

func TestSessionMiddleware_Anonymous(t *testing.T) {
	mw := MakeSessionMiddleware(makeSessions(t))

	called := false
	handler := mw.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		called = true

		if SessionFrom(r.Context()) != nil {
			t.Fatalf("expected no session")
		}

		return nil
	})

	if err := handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/settings", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSessionMiddleware_InvalidCookieIsCleared(t *testing.T) {
	mw := MakeSessionMiddleware(makeSessions(t))

	handler := mw.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if SessionFrom(r.Context()) != nil {
			t.Fatalf("expected invalid cookie to be treated as anonymous")
		}

		return nil
	})

	req := httptest.NewRequest("GET", "/settings", nil)
	req.AddCookie(&http.Cookie{Name: "skillpath_session", Value: "forged"})
	rec := httptest.NewRecorder()

	if err := handler(rec, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected the cookie to be cleared, got %+v", cookies)
	}
}

func TestSessionMiddleware_MissingStore(t *testing.T) {
	mw := MakeSessionMiddleware(nil)

	handler := mw.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError { return nil })

	err := handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if err == nil || err.Status != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %#v", err)
	}
}

func TestSessionFromEmptyContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if SessionFrom(req.Context()) != nil {
		t.Fatalf("expected nil session")
	}

	ctx := WithSession(req.Context(), &auth.Session{UserID: "u"})
	if SessionFrom(ctx).UserID != "u" {
		t.Fatalf("expected stored session")
	}
}
