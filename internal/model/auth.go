package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the backend's login result
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// PortalSession is the server-side session holding the two backend
// tokens. It is resolved by the auth middleware and passed explicitly
// into services; no ambient token storage exists.
type PortalSession struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Role      UserRole  `json:"role"`
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionClaims are JWT claims for portal session tokens
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for portal login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignupRequest is the request body for account creation, forwarded to
// the backend user endpoint.
type SignupRequest struct {
	Username  string   `json:"username" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Role      UserRole `json:"role" validate:"required,oneof=student teacher"`
	Section   string   `json:"section,omitempty"`
	Course    string   `json:"course,omitempty"`
	YearLevel int      `json:"year_level,omitempty"`
}
