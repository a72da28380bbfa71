package env

import "time"

type SessionEnvironment struct {
	Secret     string        `validate:"required,min=32"`
	CookieName string        `validate:"required,min=3"`
	TTL        time.Duration `validate:"required,min=1m"`
	Secure     bool          `validate:"-"`
}
