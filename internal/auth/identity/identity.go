// Package identity holds the email and password primitives behind sign-up
// and sign-in.
package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
)

// minPasswordLength matches the shortest password accepted at sign-up.
const minPasswordLength = 6

var (
	// ErrEmailInvalid indicates the address cannot be normalized.
	ErrEmailInvalid = apperrors.New(apperrors.CodeAuthEmailInvalid, "email address is invalid")
	// ErrPasswordTooShort indicates the password fails the length floor.
	ErrPasswordTooShort = apperrors.WithMetadata(
		apperrors.CodeAuthPasswordTooShort,
		"password is too short",
		map[string]string{"Min": "6"},
	)
	// ErrInvalidCredentials indicates a failed email/password check. It never
	// reveals whether the email or the password was at fault.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeAuthInvalidCredentials, "email or password is incorrect")
)

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive, and rejects shapes that cannot be an address.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(normalized, "@")
	if at <= 0 || at == len(normalized)-1 {
		return "", ErrEmailInvalid
	}
	domain := normalized[at+1:]
	if !strings.Contains(domain, ".") || strings.ContainsAny(normalized, " \t") {
		return "", ErrEmailInvalid
	}
	return normalized, nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUnknown, "hash password", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a candidate password.
func VerifyPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
