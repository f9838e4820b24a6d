package session

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
	"time"
)

func newTestSigner(t *testing.T, now func() time.Time) *Signer {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	signer, err := NewSigner("dronline.health", "dronline.health/web", key, time.Hour, now)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	return signer
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	signer := newTestSigner(t, func() time.Time { return now })

	token, expiresAt, err := signer.Issue("session-1", "user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if want := now.Add(time.Hour); !expiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, want)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-1")
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if !claims.ExpiresAt.Equal(expiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt, expiresAt)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	signer := newTestSigner(t, func() time.Time { return now })

	token, _, err := signer.Issue("session-1", "user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := signer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() after expiry error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, time.Now)

	for _, token := range []string{"", "   ", "not.a.jwt", "a.b"} {
		if _, err := signer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	signer := newTestSigner(t, time.Now)
	other := newTestSigner(t, time.Now)

	token, _, err := other.Issue("session-1", "user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := signer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() with foreign key error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	issuing, err := NewSigner("dronline.health", "other-audience", key, time.Hour, time.Now)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	verifying, err := NewSigner("dronline.health", "dronline.health/web", key, time.Hour, time.Now)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}

	token, _, err := issuing.Issue("session-1", "user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := verifying.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() with wrong audience error = %v, want ErrTokenInvalid", err)
	}
}

func TestLoadSignerFromEnvGeneratesKey(t *testing.T) {
	t.Setenv("DRONLINE_SESSION_PRIVATE_KEY", "")
	t.Setenv("DRONLINE_SESSION_TTL", "30m")

	signer, err := LoadSignerFromEnv(time.Now)
	if err != nil {
		t.Fatalf("LoadSignerFromEnv() error = %v", err)
	}
	if got := signer.TTL(); got != 30*time.Minute {
		t.Errorf("TTL() = %v, want %v", got, 30*time.Minute)
	}

	token, _, err := signer.Issue("session-1", "user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := signer.Verify(token); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}
