// Package storage defines persistence contracts for platform state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/dronline.health/internal/content"
	"github.com/louisbranch/dronline.health/internal/profile"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken indicates a credential already exists for an email address.
var ErrEmailTaken = errors.New("email already registered")

// Credential stores one password credential keyed by user.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WebSession stores one durable authenticated browser session.
type WebSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// PostScope selects which posts a list call returns.
type PostScope struct {
	// AuthorID limits the list to one author when non-empty.
	AuthorID string
}

// PostWithAuthor joins a post with its author's display attributes.
type PostWithAuthor struct {
	Post   content.Post
	Author AuthorDisplay
	// CommentCount is the number of comments attached to the post.
	CommentCount int
}

// CommentWithAuthor joins a comment with its author's display attributes.
type CommentWithAuthor struct {
	Comment content.Comment
	Author  AuthorDisplay
}

// AuthorDisplay carries the profile fields shown beside content.
type AuthorDisplay struct {
	FullName       string
	Role           profile.Role
	Specialization string
	AvatarURL      string
}

// CredentialStore persists password credentials.
type CredentialStore interface {
	PutCredential(ctx context.Context, credential Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (Credential, error)
	GetCredential(ctx context.Context, userID string) (Credential, error)
}

// WebSessionStore persists durable browser sessions.
type WebSessionStore interface {
	PutWebSession(ctx context.Context, session WebSession) error
	GetWebSession(ctx context.Context, id string) (WebSession, error)
	RevokeWebSession(ctx context.Context, id string, revokedAt time.Time) error
	DeleteExpiredWebSessions(ctx context.Context, now time.Time) error
}

// ProfileStore persists role-bearing user profiles.
type ProfileStore interface {
	PutProfile(ctx context.Context, p profile.Profile) error
	GetProfile(ctx context.Context, userID string) (profile.Profile, error)
}

// PostStore persists authored posts.
//
// Deletes are idempotent: removing a missing id is not an error.
type PostStore interface {
	PutPost(ctx context.Context, p content.Post) error
	GetPost(ctx context.Context, id string) (PostWithAuthor, error)
	// ListPosts returns posts ordered newest-first.
	ListPosts(ctx context.Context, scope PostScope) ([]PostWithAuthor, error)
	DeletePost(ctx context.Context, id string) error
}

// CommentStore persists threaded comments.
//
// Deletes are idempotent: removing a missing id is not an error.
type CommentStore interface {
	PutComment(ctx context.Context, c content.Comment) error
	GetComment(ctx context.Context, id string) (content.Comment, error)
	// ListComments returns a post's comments ordered oldest-first.
	ListComments(ctx context.Context, postID string) ([]CommentWithAuthor, error)
	DeleteComment(ctx context.Context, id string) error
}

// Store bundles every persistence contract the platform needs.
type Store interface {
	CredentialStore
	WebSessionStore
	ProfileStore
	PostStore
	CommentStore
}
