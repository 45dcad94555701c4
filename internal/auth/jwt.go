package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// JWTManager signs and validates HS256 bearer tokens whose subject is the
// authenticated user's name.
type JWTManager struct {
	// secrets holds signing keys, newest first. Tokens are signed with
	// secrets[0]; validation accepts any listed key so that tokens issued
	// before a rotation stay valid until they expire.
	secrets [][]byte
	expiry  time.Duration
	issuer  string
}

func NewJWTManager(secrets []string, expiry time.Duration, issuer string) *JWTManager {
	m := &JWTManager{expiry: expiry, issuer: issuer}
	for _, s := range secrets {
		m.secrets = append(m.secrets, []byte(s))
	}
	return m
}

// Generate issues a token for the given subject using the newest secret.
func (m *JWTManager) Generate(subject string) (string, error) {
	if subject == "" || len(m.secrets) == 0 {
		return "", ErrInvalidToken
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secrets[0])
}

// Validate checks the token signature against every configured secret,
// requires the issuer claim to match, and returns the subject claim.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrMissingToken
	}

	for _, secret := range m.secrets {
		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return secret, nil
		}, jwt.WithIssuer(m.issuer))
		if err != nil || !parsed.Valid {
			continue
		}
		return claims.Subject, nil
	}
	return "", ErrInvalidToken
}

// TokenFromHeader extracts the bearer token from an Authorization header value.
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
