// Package token issues and verifies the HS256 JWTs returned to API clients.
// Each token is bound to a session row via the sid claim, so logout revokes
// outstanding tokens immediately.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "taskhive"

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT claim set: the registered claims plus the session ID
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Manager signs and parses tokens with a shared HMAC secret
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for a user bound to a session
func (m *Manager) Issue(userID, sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		SessionID: sessionID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a token and returns the user and session IDs it names
func (m *Manager) Parse(tokenString string) (string, string, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return "", "", err
	}

	if !parsed.Valid || claims.Subject == "" || claims.SessionID == "" {
		return "", "", ErrInvalidToken
	}

	return claims.Subject, claims.SessionID, nil
}
