package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
)

// PutCredential persists a password credential keyed by user.
func (s *Store) PutCredential(ctx context.Context, credential storage.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(credential.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(credential.Email) == "" {
		return fmt.Errorf("email is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO credentials (user_id, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    email = excluded.email,
    password_hash = excluded.password_hash,
    updated_at = excluded.updated_at;
`,
		credential.UserID,
		credential.Email,
		credential.PasswordHash,
		toMillis(credential.CreatedAt),
		toMillis(credential.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "credentials.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("put credential: %w", err)
	}
	return nil
}

// GetCredentialByEmail fetches a credential by normalized email.
func (s *Store) GetCredentialByEmail(ctx context.Context, email string) (storage.Credential, error) {
	if err := ctx.Err(); err != nil {
		return storage.Credential{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT user_id, email, password_hash, created_at, updated_at
FROM credentials
WHERE email = ?;
`, email)
	return scanCredential(row)
}

// GetCredential fetches a credential by user id.
func (s *Store) GetCredential(ctx context.Context, userID string) (storage.Credential, error) {
	if err := ctx.Err(); err != nil {
		return storage.Credential{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT user_id, email, password_hash, created_at, updated_at
FROM credentials
WHERE user_id = ?;
`, userID)
	return scanCredential(row)
}

func scanCredential(row *sql.Row) (storage.Credential, error) {
	var credential storage.Credential
	var createdAt, updatedAt int64
	err := row.Scan(&credential.UserID, &credential.Email, &credential.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Credential{}, storage.ErrNotFound
		}
		return storage.Credential{}, fmt.Errorf("scan credential: %w", err)
	}
	credential.CreatedAt = fromMillis(createdAt)
	credential.UpdatedAt = fromMillis(updatedAt)
	return credential, nil
}

// PutWebSession persists a durable browser session.
func (s *Store) PutWebSession(ctx context.Context, session storage.WebSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.UserID) == "" {
		return fmt.Errorf("session user id is required")
	}

	var revokedAt any
	if session.RevokedAt != nil {
		revokedAt = toMillis(*session.RevokedAt)
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO web_sessions (id, user_id, created_at, expires_at, revoked_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    expires_at = excluded.expires_at,
    revoked_at = excluded.revoked_at;
`,
		session.ID,
		session.UserID,
		toMillis(session.CreatedAt),
		toMillis(session.ExpiresAt),
		revokedAt,
	)
	if err != nil {
		return fmt.Errorf("put web session: %w", err)
	}
	return nil
}

// GetWebSession fetches a session by id regardless of revocation state.
func (s *Store) GetWebSession(ctx context.Context, id string) (storage.WebSession, error) {
	if err := ctx.Err(); err != nil {
		return storage.WebSession{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, user_id, created_at, expires_at, revoked_at
FROM web_sessions
WHERE id = ?;
`, id)

	var session storage.WebSession
	var createdAt, expiresAt int64
	var revokedAt sql.NullInt64
	err := row.Scan(&session.ID, &session.UserID, &createdAt, &expiresAt, &revokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.WebSession{}, storage.ErrNotFound
		}
		return storage.WebSession{}, fmt.Errorf("scan web session: %w", err)
	}
	session.CreatedAt = fromMillis(createdAt)
	session.ExpiresAt = fromMillis(expiresAt)
	if revokedAt.Valid {
		revoked := fromMillis(revokedAt.Int64)
		session.RevokedAt = &revoked
	}
	return session, nil
}

// RevokeWebSession marks a session revoked. Missing sessions return ErrNotFound.
func (s *Store) RevokeWebSession(ctx context.Context, id string, revokedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE web_sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL;
`, toMillis(revokedAt), id)
	if err != nil {
		return fmt.Errorf("revoke web session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke web session rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteExpiredWebSessions purges sessions past their expiry.
func (s *Store) DeleteExpiredWebSessions(ctx context.Context, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `
DELETE FROM web_sessions WHERE expires_at <= ?;
`, toMillis(now)); err != nil {
		return fmt.Errorf("delete expired web sessions: %w", err)
	}
	return nil
}

// PutProfile persists a role-bearing profile record.
func (s *Store) PutProfile(ctx context.Context, p profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("profile user id is required")
	}
	if p.Role == profile.RoleUnknown {
		return fmt.Errorf("profile role is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO profiles (user_id, full_name, role, specialization, years_of_experience, bio, avatar_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    full_name = excluded.full_name,
    specialization = excluded.specialization,
    years_of_experience = excluded.years_of_experience,
    bio = excluded.bio,
    avatar_url = excluded.avatar_url,
    updated_at = excluded.updated_at;
`,
		p.UserID,
		p.FullName,
		p.Role.String(),
		p.Specialization,
		p.YearsOfExperience,
		p.Bio,
		p.AvatarURL,
		toMillis(p.CreatedAt),
		toMillis(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// GetProfile fetches a profile by user id.
//
// A missing profile surfaces as ErrNotFound, which callers must keep distinct
// from transient failures: an absent profile is not a patient.
func (s *Store) GetProfile(ctx context.Context, userID string) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT user_id, full_name, role, specialization, years_of_experience, bio, avatar_url, created_at, updated_at
FROM profiles
WHERE user_id = ?;
`, userID)

	var p profile.Profile
	var role string
	var createdAt, updatedAt int64
	err := row.Scan(
		&p.UserID,
		&p.FullName,
		&role,
		&p.Specialization,
		&p.YearsOfExperience,
		&p.Bio,
		&p.AvatarURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, storage.ErrNotFound
		}
		return profile.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	if parsed, ok := profile.ParseRole(role); ok {
		p.Role = parsed
	}
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}
