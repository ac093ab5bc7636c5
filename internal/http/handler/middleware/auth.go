package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// TokenVerifier checks a bearer token's signature and yields its claims.
type TokenVerifier interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs   *zap.SugaredLogger
	tokens TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, tokens TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:   logger,
		tokens: tokens,
	}
}

// Authenticate requires an "Authorization: Bearer <token>" header, verifies
// the token and attaches the resolved Identity to the request context.
// Anything short of a verifiable token is a 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.reject(w, r, "authorization header is required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			m.reject(w, r, "authorization header must be a bearer token")
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			m.logs.Errorw("token validation failed", "error", err, "request_id", requestID(r))
			m.reject(w, r, "invalid token")
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			m.logs.Errorw("token claims missing identity", "request_id", requestID(r))
			m.reject(w, r, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func identityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	// numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return Identity{}, false
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Identity{}, false
	}

	return Identity{
		UserID:   uint(userID),
		Username: username,
	}, true
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := map[string]string{
		"message": "Authentication required",
		"error":   detail,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode response", "error", err, "request_id", requestID(r))
	}
}

func requestID(r *http.Request) string {
	if reqIDCtx := r.Context().Value(RequestIDKey); reqIDCtx != nil {
		return reqIDCtx.(string)
	}
	return ""
}
