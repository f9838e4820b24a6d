package identity

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"lowercases and trims", "  Alice@Example.COM ", "alice@example.com", true},
		{"plain address", "bob@clinic.health", "bob@clinic.health", true},
		{"missing at sign", "alice.example.com", "", false},
		{"missing local part", "@example.com", "", false},
		{"missing domain", "alice@", "", false},
		{"bare host domain", "alice@localhost", "", false},
		{"inner whitespace", "alice smith@example.com", "", false},
		{"empty", "   ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeEmail(tc.in)
			if tc.valid {
				if err != nil {
					t.Fatalf("NormalizeEmail(%q) error = %v", tc.in, err)
				}
				if got != tc.want {
					t.Fatalf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
				}
				return
			}
			if !errors.Is(err, ErrEmailInvalid) {
				t.Fatalf("NormalizeEmail(%q) error = %v, want ErrEmailInvalid", tc.in, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("ValidatePassword(short) error = %v, want ErrPasswordTooShort", err)
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Fatalf("ValidatePassword(longenough) error = %v", err)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if err := VerifyPassword(hash, "correct horse battery"); err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if err := VerifyPassword(hash, "wrong password"); !apperrors.IsCode(err, apperrors.CodeAuthInvalidCredentials) {
		t.Fatalf("VerifyPassword() with wrong password error = %v, want invalid credentials", err)
	}
}
