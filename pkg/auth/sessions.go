package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/skillpath/pkg/cache"
)

var ErrSessionRevoked = errors.New("session revoked")

// Session is the authentication context a page sees: who is signed in and
// which token to revoke on logout.
type Session struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

type Sessions struct {
	handler    SessionHandler
	revoked    *cache.TTLCache
	cookieName string
	secure     bool
}

func MakeSessions(handler SessionHandler, revoked *cache.TTLCache, cookieName string, secure bool) *Sessions {
	if revoked == nil {
		revoked = cache.NewTTLCache()
	}

	return &Sessions{
		handler:    handler,
		revoked:    revoked,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Issue signs a session for userID and attaches it to the response.
func (s *Sessions) Issue(w http.ResponseWriter, userID string) (*Session, error) {
	token, claims, err := s.handler.Generate(userID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	session := sessionFrom(claims)

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return session, nil
}

// Resolve returns the session carried by the request, or nil for anonymous
// requests.
func (s *Sessions) Resolve(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read session cookie: %w", err)
	}

	claims, err := s.handler.Validate(cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}

	if s.revoked.Used(claims.ID) {
		return nil, ErrSessionRevoked
	}

	return sessionFrom(claims), nil
}

// Revoke terminates session and clears the cookie. A nil session only clears
// the cookie.
func (s *Sessions) Revoke(w http.ResponseWriter, session *Session) {
	if session != nil && session.TokenID != "" {
		if ttl := time.Until(session.ExpiresAt); ttl > 0 {
			s.revoked.Mark(session.TokenID, ttl)
		}
	}

	s.Forget(w)
}

// Forget clears the session cookie without revoking anything.
func (s *Sessions) Forget(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionFrom(claims *Claims) *Session {
	session := &Session{
		UserID:  claims.UserID,
		TokenID: claims.ID,
	}

	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session
}
