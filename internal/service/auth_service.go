package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dhananjayaDev/trivity/internal/cache"
	"github.com/dhananjayaDev/trivity/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates user JWTs. Each token is backed by
// a Redis session record, so logout revokes it before the JWT expiry.
type AuthService struct {
	jwtSecret []byte
	sessions  cache.SessionCache
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, sessions cache.SessionCache) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		sessions:  sessions,
	}
}

// IssueToken creates a session for the user and returns a signed JWT
// carrying the user and session ids.
func (s *AuthService) IssueToken(ctx context.Context, userID string) (string, error) {
	session := &model.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return "", err
	}

	claims := &model.UserClaims{
		UserID:    userID,
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cache.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT and its backing session.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != claims.UserID {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke deletes the session behind a token, invalidating it.
func (s *AuthService) Revoke(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
