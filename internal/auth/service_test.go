package auth

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/dronline.health/internal/auth/identity"
	"github.com/louisbranch/dronline.health/internal/auth/session"
	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage/sqlite"
)

type serviceFixture struct {
	service *Service
	store   *sqlite.Store
	now     *time.Time
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	signer, err := session.NewSigner("dronline.health", "dronline.health/web", key, time.Hour, clock)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}

	counter := 0
	service, err := NewService(store, signer, clock, func() (string, error) {
		counter++
		return fmt.Sprintf("id-%d", counter), nil
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return serviceFixture{service: service, store: store, now: &now}
}

func doctorSignUp() SignUpInput {
	return SignUpInput{
		Email:             "amelia@example.com",
		Password:          "hunter2hunter2",
		FullName:          "Amelia Santos",
		Role:              "doctor",
		Specialization:    "Cardiology",
		YearsOfExperience: 12,
	}
}

func TestSignUpIssuesSession(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	issued, err := fx.service.SignUp(ctx, doctorSignUp())
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if issued.Token == "" {
		t.Fatal("SignUp() returned an empty token")
	}

	resolved, err := fx.service.ResolveSession(ctx, issued.Token)
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if resolved.UserID != issued.UserID {
		t.Errorf("resolved.UserID = %q, want %q", resolved.UserID, issued.UserID)
	}

	prof, err := fx.store.GetProfile(ctx, issued.UserID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if prof.Role != profile.RoleDoctor {
		t.Errorf("Role = %q, want %q", prof.Role, profile.RoleDoctor)
	}
	if prof.Specialization != "Cardiology" {
		t.Errorf("Specialization = %q, want %q", prof.Specialization, "Cardiology")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	if _, err := fx.service.SignUp(ctx, doctorSignUp()); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	again := doctorSignUp()
	again.FullName = "Another Person"
	if _, err := fx.service.SignUp(ctx, again); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("SignUp() duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestSignUpValidatesBeforeWriting(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		mutate   func(*SignUpInput)
		wantCode apperrors.Code
	}{
		{"bad email", func(in *SignUpInput) { in.Email = "not-an-email" }, apperrors.CodeAuthEmailInvalid},
		{"short password", func(in *SignUpInput) { in.Password = "abc" }, apperrors.CodeAuthPasswordTooShort},
		{"empty name", func(in *SignUpInput) { in.FullName = "   " }, apperrors.CodeProfileNameEmpty},
		{"bad role", func(in *SignUpInput) { in.Role = "admin" }, apperrors.CodeProfileInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := doctorSignUp()
			tc.mutate(&input)
			_, err := fx.service.SignUp(ctx, input)
			if !apperrors.IsCode(err, tc.wantCode) {
				t.Fatalf("SignUp() error = %v, want code %s", err, tc.wantCode)
			}
		})
	}

	// None of the rejected attempts should have left a credential behind.
	if _, err := fx.service.SignIn(ctx, "amelia@example.com", "hunter2hunter2"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("SignIn() after rejected sign-ups error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	if _, err := fx.service.SignUp(ctx, doctorSignUp()); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, err := fx.service.SignIn(ctx, "amelia@example.com", "wrong-password"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("SignIn() error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := fx.service.SignIn(ctx, "unknown@example.com", "hunter2hunter2"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("SignIn() unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInNormalizesEmail(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	issued, err := fx.service.SignUp(ctx, doctorSignUp())
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	signedIn, err := fx.service.SignIn(ctx, "  AMELIA@Example.com ", "hunter2hunter2")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if signedIn.UserID != issued.UserID {
		t.Errorf("UserID = %q, want %q", signedIn.UserID, issued.UserID)
	}
}

func TestSignOutRevokesSession(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	issued, err := fx.service.SignUp(ctx, doctorSignUp())
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if err := fx.service.SignOut(ctx, issued.SessionID); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if _, err := fx.service.ResolveSession(ctx, issued.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("ResolveSession() after sign-out error = %v, want ErrSessionInvalid", err)
	}

	// Signing out twice is harmless.
	if err := fx.service.SignOut(ctx, issued.SessionID); err != nil {
		t.Fatalf("SignOut() twice error = %v", err)
	}
}

func TestResolveSessionRejectsExpired(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	issued, err := fx.service.SignUp(ctx, doctorSignUp())
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	*fx.now = fx.now.Add(2 * time.Hour)
	if _, err := fx.service.ResolveSession(ctx, issued.Token); !apperrors.IsCode(err, apperrors.CodeAuthSessionTokenInvalid) {
		t.Fatalf("ResolveSession() after expiry error = %v, want token invalid", err)
	}
}

func TestResolveSessionRejectsGarbage(t *testing.T) {
	fx := newServiceFixture(t)

	if _, err := fx.service.ResolveSession(context.Background(), "garbage.token.value"); !apperrors.IsCode(err, apperrors.CodeAuthSessionTokenInvalid) {
		t.Fatalf("ResolveSession() error = %v, want token invalid", err)
	}
}
