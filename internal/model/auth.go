package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are JWT claims for authenticated users. SessionID ties the
// token to a revocable Redis session record.
type UserClaims struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// Session is the server-side record behind a token. Deleting it from
// the session store revokes the token before its JWT expiry.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest is the request body for account creation.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Company         string `json:"company"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login or registration.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
