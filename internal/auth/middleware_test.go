package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestMiddleware(t *testing.T) (*Middleware, *JWTManager) {
	t.Helper()
	jwt := NewJWTManager([]string{"test-secret"}, time.Hour, "fesipop")
	return NewMiddleware(jwt), jwt
}

// echoIdentity reports the identity the middleware injected.
func echoIdentity(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(IdentityFromContext(r.Context())))
}

func TestRequireToken_Valid(t *testing.T) {
	mw, jwt := newTestMiddleware(t)
	token, err := jwt.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireToken(http.HandlerFunc(echoIdentity)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "alice" {
		t.Errorf("identity = %q, want %q", rec.Body.String(), "alice")
	}
}

func TestRequireToken_Rejections(t *testing.T) {
	mw, _ := newTestMiddleware(t)
	other := NewJWTManager([]string{"other-secret"}, time.Hour, "fesipop")
	foreign, err := other.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbled token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handlerRan := false
			mw.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
			})).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if handlerRan {
				t.Error("handler ran despite rejected token")
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["code"] != "UNAUTHORIZED" {
				t.Errorf("code = %q, want UNAUTHORIZED", body["code"])
			}
		})
	}
}

func TestIdentityFromContext_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := IdentityFromContext(req.Context()); got != "" {
		t.Errorf("identity = %q, want empty", got)
	}
}
