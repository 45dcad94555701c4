package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// identityContextKey is the context key under which the verified subject
// name is stored for the duration of a request.
const identityContextKey contextKey = "identity"

// Middleware authenticates requests via JWT bearer tokens.
type Middleware struct {
	jwt *JWTManager
}

func NewMiddleware(jwt *JWTManager) *Middleware {
	return &Middleware{jwt: jwt}
}

// RequireToken is an http.Handler middleware that extracts and validates a
// bearer token. Missing, malformed, or invalid tokens short-circuit with a
// 401 before the handler runs; on success the subject name is injected into
// the request context.
func (m *Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := TokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeUnauthorized(w)
			return
		}

		subject, err := m.jwt.Validate(token)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the subject name injected by RequireToken, or
// "" when the request was not authenticated.
func IdentityFromContext(ctx context.Context) string {
	name, _ := ctx.Value(identityContextKey).(string)
	return name
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized", "code": "UNAUTHORIZED"})
}
