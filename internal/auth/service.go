// Package auth implements account lifecycle: sign-up, sign-in, sign-out,
// and session resolution.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/dronline.health/internal/auth/identity"
	"github.com/louisbranch/dronline.health/internal/auth/session"
	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/platform/id"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
)

var (
	// ErrEmailTaken indicates a sign-up against an already registered email.
	ErrEmailTaken = apperrors.New(apperrors.CodeAuthEmailTaken, "email is already registered")
	// ErrSessionInvalid indicates a token that no longer maps to a live session.
	ErrSessionInvalid = apperrors.New(apperrors.CodeAuthSessionInvalid, "session is invalid")
)

// Service owns the account lifecycle on top of the persistence contracts.
type Service struct {
	store  storage.Store
	signer *session.Signer
	now    func() time.Time
	newID  func() (string, error)
}

// NewService builds an auth service. Passing nil for now or idGenerator
// selects the production defaults.
func NewService(store storage.Store, signer *session.Signer, now func() time.Time, idGenerator func() (string, error)) (*Service, error) {
	if store == nil {
		return nil, errors.New("auth service requires a store")
	}
	if signer == nil {
		return nil, errors.New("auth service requires a session signer")
	}
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return &Service{
		store:  store,
		signer: signer,
		now:    now,
		newID:  idGenerator,
	}, nil
}

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	Email             string
	Password          string
	FullName          string
	Role              string
	Specialization    string
	YearsOfExperience int
	Bio               string
}

// Session is an issued browser session: the signed token plus the record
// identifiers behind it.
type Session struct {
	Token     string
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// SignUp registers a new account: credential, profile, and a first session.
//
// All input is validated before anything is written, so a rejected sign-up
// leaves no partial account behind.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (Session, error) {
	email, err := identity.NormalizeEmail(input.Email)
	if err != nil {
		return Session{}, err
	}
	if err := identity.ValidatePassword(input.Password); err != nil {
		return Session{}, err
	}

	userID, err := s.newID()
	if err != nil {
		return Session{}, fmt.Errorf("generate user id: %w", err)
	}
	prof, err := profile.NewProfile(profile.CreateProfileInput{
		UserID:            userID,
		FullName:          input.FullName,
		Role:              input.Role,
		Specialization:    input.Specialization,
		YearsOfExperience: input.YearsOfExperience,
		Bio:               input.Bio,
	}, s.now)
	if err != nil {
		return Session{}, err
	}

	hash, err := identity.HashPassword(input.Password)
	if err != nil {
		return Session{}, err
	}

	now := s.now().UTC()
	credential := storage.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.PutCredential(ctx, credential); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, fmt.Errorf("store credential: %w", err)
	}
	if err := s.store.PutProfile(ctx, prof); err != nil {
		return Session{}, fmt.Errorf("store profile: %w", err)
	}

	return s.startSession(ctx, userID)
}

// SignIn checks an email/password pair and issues a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	normalized, err := identity.NormalizeEmail(email)
	if err != nil {
		// A malformed address cannot match a credential; keep the
		// response indistinguishable from a wrong password.
		return Session{}, identity.ErrInvalidCredentials
	}

	credential, err := s.store.GetCredentialByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Session{}, identity.ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup credential: %w", err)
	}
	if err := identity.VerifyPassword(credential.PasswordHash, password); err != nil {
		return Session{}, err
	}

	return s.startSession(ctx, credential.UserID)
}

// SignOut revokes a session by id. Revoking an unknown or already revoked
// session is not an error.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	err := s.store.RevokeWebSession(ctx, sessionID, s.now().UTC())
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// ResolveSession maps a cookie token onto a live authenticated identity.
//
// The token must verify, and the session record behind it must exist,
// belong to the token's subject, be unrevoked, and be unexpired.
func (s *Service) ResolveSession(ctx context.Context, token string) (requestctx.Identity, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return requestctx.Identity{}, err
	}

	record, err := s.store.GetWebSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return requestctx.Identity{}, ErrSessionInvalid
		}
		return requestctx.Identity{}, fmt.Errorf("lookup session: %w", err)
	}
	if record.UserID != claims.UserID {
		return requestctx.Identity{}, ErrSessionInvalid
	}
	if record.RevokedAt != nil {
		return requestctx.Identity{}, ErrSessionInvalid
	}
	if !record.ExpiresAt.After(s.now().UTC()) {
		return requestctx.Identity{}, ErrSessionInvalid
	}

	return requestctx.Identity{
		UserID:    record.UserID,
		SessionID: record.ID,
	}, nil
}

// PurgeExpiredSessions removes session records past their expiry.
func (s *Service) PurgeExpiredSessions(ctx context.Context) error {
	return s.store.DeleteExpiredWebSessions(ctx, s.now().UTC())
}

func (s *Service) startSession(ctx context.Context, userID string) (Session, error) {
	sessionID, err := s.newID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}
	token, expiresAt, err := s.signer.Issue(sessionID, userID)
	if err != nil {
		return Session{}, fmt.Errorf("issue session token: %w", err)
	}

	record := storage.WebSession{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
		ExpiresAt: expiresAt,
	}
	if err := s.store.PutWebSession(ctx, record); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}

	return Session{
		Token:     token,
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}
