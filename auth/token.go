package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what a client may learn from a credential without the signing key.
type Claims struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// Expired reports whether the credential carries an expiry before now.
// A credential without expiry never expires.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes a JWT credential without checking its signature.
// The server stays the only judge of validity: this is for logging and display.
// ok is false for opaque, non-JWT credentials.
func Inspect(value string) (Claims, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(value, &claims); err != nil {
		return Claims{}, false
	}
	inspected := Claims{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.ExpiresAt != nil {
		inspected.ExpiresAt = claims.ExpiresAt.Time
	}
	return inspected, true
}
