package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/cache"
	"github.com/VincentPrime/Survey-client/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSession    = errors.New("session not found")
)

// SessionService owns the portal session: it logs into the backend,
// keeps the returned token pair in the session cache and issues portal
// JWTs that reference the session. The backend role is trusted as-is.
type SessionService struct {
	auth      backend.AuthAPI
	sessions  cache.SessionCache
	jwtSecret []byte
	ttl       time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(auth backend.AuthAPI, sessions cache.SessionCache, jwtSecret string, ttl time.Duration) *SessionService {
	return &SessionService{
		auth:      auth,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

// Login exchanges credentials for a backend token pair, resolves the
// current user and opens a portal session.
func (s *SessionService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	pair, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	user, err := s.auth.Me(ctx, pair.Access)
	if err != nil {
		return nil, err
	}

	session := &model.PortalSession{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	claims := &model.SessionClaims{
		SessionID: session.ID,
		Role:      string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: tokenString, User: user}, nil
}

// Signup forwards account creation to the backend
func (s *SessionService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	return s.auth.Signup(ctx, req)
}

// Resolve validates a portal JWT and loads the session it references
func (s *SessionService) Resolve(ctx context.Context, tokenString string) (*model.PortalSession, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// CurrentUser re-fetches the identity behind the session
func (s *SessionService) CurrentUser(ctx context.Context, sess *model.PortalSession) (*model.User, error) {
	return s.auth.Me(ctx, sess.Access)
}

// Logout discards the session and the tokens it holds
func (s *SessionService) Logout(ctx context.Context, sess *model.PortalSession) error {
	return s.sessions.Delete(ctx, sess.ID)
}
