// Package auth extracts the session identity from signed session tokens.
// The rest of the client treats the identity as an opaque string; it only
// serves to partition the collection cache per session.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates session tokens issued by the authentication provider.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for HS256-signed session tokens.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Identity verifies the token and returns the identity that partitions the
// session cache: the email claim when present, otherwise the subject.
func (v *Verifier) Identity(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	if email, ok := claims["email"].(string); ok && email != "" {
		return email, nil
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("session token has neither email nor subject")
	}
	return subject, nil
}
