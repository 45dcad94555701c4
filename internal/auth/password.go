package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plaintext password.
// Passwords are never stored or compared in plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
