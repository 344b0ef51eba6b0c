package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the "exp" claim of a JWT bearer token without
// verifying its signature; the client has no key and only uses the value
// to avoid sending a credential that is certain to be rejected. ok is
// false for opaque (non-JWT) tokens and for tokens without "exp".
func TokenExpiry(token string) (exp time.Time, ok bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// TokenExpired reports whether token carries an "exp" claim at or before now.
func TokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && !now.Before(exp)
}
