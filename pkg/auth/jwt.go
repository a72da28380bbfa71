package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionHandler manages creation and validation of session tokens.
type SessionHandler struct {
	// SecretKey is used to sign tokens.
	SecretKey []byte
	// TTL defines how long generated tokens remain valid.
	TTL time.Duration
}

// Claims represents the session claims carried by the cookie.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// MakeSessionHandler validates the provided secret and returns a configured handler.
func MakeSessionHandler(secret []byte, ttl time.Duration) (SessionHandler, error) {
	if len(secret) < 16 {
		return SessionHandler{}, errors.New("secret key too short")
	}

	if ttl <= 0 {
		return SessionHandler{}, errors.New("session ttl must be positive")
	}

	return SessionHandler{SecretKey: secret, TTL: ttl}, nil
}

// Generate creates a signed token for the provided user id.
func (j SessionHandler) Generate(userID string) (string, *Claims, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", nil, errors.New("user id is required")
	}

	now := time.Now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(j.SecretKey)
	if err != nil {
		return "", nil, err
	}

	return signed, claims, nil
}

// Validate parses the token string and returns the Claims if valid.
func (j SessionHandler) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return j.SecretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" || claims.ID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
