// Package token implements the stateless session protocol: signed,
// time-bounded bearer tokens carrying the authenticated user's id.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: missing,
// malformed, expired, or wrongly signed tokens all look the same to the
// caller. Tokens cannot be revoked before expiry; logout is a client-side
// discard.
var ErrInvalidToken = errors.New("invalid or expired token")

// Manager issues and verifies session tokens. The signing key is
// process-wide configuration, loaded once at startup and injected here.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing with the given secret. Tokens
// expire ttl after issuance.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed HS256 token embedding the user id and an
// absolute expiry.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(m.ttl).Unix(),
		"iat": now.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// user id. Attacker-supplied garbage never panics; every failure path
// normalizes to ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrInvalidToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
