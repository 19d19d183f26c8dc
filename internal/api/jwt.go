package api

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the signed-in user carried by the session cookie.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
}

type sessionClaims struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	jwt.RegisteredClaims
}

// Sessions mints and validates HS256 session tokens and owns the cookie flags.
type Sessions struct {
	secret []byte
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions uses secret to sign tokens. An empty secret gets a random
// in-memory one, so sessions do not survive a restart.
func NewSessions(secret string, secureCookie bool) (*Sessions, error) {
	key := []byte(secret)
	if secret == "" {
		key = make([]byte, 32)
		if _, err := crand.Read(key); err != nil {
			return nil, errors.New("failed to generate dev session secret")
		}
	}
	return &Sessions{secret: key, secure: secureCookie, ttl: constants.SessionTTL, now: time.Now}, nil
}

func (s *Sessions) createSessionToken(id Identity) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UID:         id.UID,
		Email:       id.Email,
		Username:    id.Username,
		DisplayName: id.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Sessions) parseAndValidateSession(token string) (*Identity, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if claims.UID == "" || claims.Email == "" {
		return nil, errors.New("session token without identity")
	}
	return &Identity{
		UID:         claims.UID,
		Email:       claims.Email,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
	}, nil
}
