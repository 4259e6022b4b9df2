package auth

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash of the password.
// The cost parameter (14) is a good balance between security and performance.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password with a stored bcrypt hash.
// It returns true if the password matches the hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// ValidateRegistration checks self-service signup input before any user
// row is created.
func ValidateRegistration(username, email, password string) error {
	if !usernameRe.MatchString(username) {
		return errors.New("username must be 3-32 characters (letters, digits, dot, dash, underscore)")
	}
	if !strings.Contains(email, "@") || len(email) > 254 {
		return errors.New("a valid email address is required")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
