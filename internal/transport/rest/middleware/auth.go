package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/VincentPrime/Survey-client/internal/model"
	"github.com/VincentPrime/Survey-client/internal/service"
)

type contextKey string

const SessionKey contextKey = "session"

// AuthMiddleware resolves portal JWTs into sessions
type AuthMiddleware struct {
	sessionSvc *service.SessionService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessionSvc *service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessionSvc: sessionSvc}
}

// RequireSession validates the portal JWT from the Authorization header
// and attaches the resolved session to the request context.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header","redirect":"/login"}`, http.StatusUnauthorized)
			return
		}

		sess, err := m.sessionSvc.Resolve(r.Context(), token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired session","redirect":"/login"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subrouter to sessions carrying the given role.
// The role comes from the backend at login and is trusted as-is.
func (m *AuthMiddleware) RequireRole(role model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			if sess == nil || sess.Role != role {
				http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSession extracts the resolved session from context
func GetSession(ctx context.Context) *model.PortalSession {
	if v := ctx.Value(SessionKey); v != nil {
		return v.(*model.PortalSession)
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
