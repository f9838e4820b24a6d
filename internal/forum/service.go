// Package forum coordinates posts and discussions behind role-aware
// authorization.
package forum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/dronline.health/internal/content"
	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/platform/id"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/policy"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
)

// ErrForbidden indicates the viewer's role or ownership does not permit
// the requested action.
var ErrForbidden = apperrors.New(apperrors.CodeForbidden, "action is not permitted")

// ErrPostNotFound indicates the addressed post does not exist.
var ErrPostNotFound = apperrors.New(apperrors.CodeNotFound, "post not found")

// ErrCommentNotFound indicates the addressed comment does not exist.
var ErrCommentNotFound = apperrors.New(apperrors.CodeNotFound, "comment not found")

// Service enforces authorization on every content mutation. Handlers never
// write posts or comments except through here.
type Service struct {
	store storage.Store
	now   func() time.Time
	newID func() (string, error)
}

// NewService builds a forum service. Passing nil for now or idGenerator
// selects the production defaults.
func NewService(store storage.Store, now func() time.Time, idGenerator func() (string, error)) (*Service, error) {
	if store == nil {
		return nil, errors.New("forum service requires a store")
	}
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return &Service{store: store, now: now, newID: idGenerator}, nil
}

// Thread is one post together with its ordered discussion.
type Thread struct {
	Post     storage.PostWithAuthor
	Comments []storage.CommentWithAuthor
}

// CreatePost authors a new post as the viewer. Only doctors may post; the
// check runs here so no other surface can skip it.
func (s *Service) CreatePost(ctx context.Context, viewer requestctx.Identity, input content.CreatePostInput) (content.Post, error) {
	role, err := s.viewerRole(ctx, viewer)
	if err != nil {
		return content.Post{}, err
	}
	if !policy.CanCreatePost(role) {
		return content.Post{}, ErrForbidden
	}

	input.AuthorID = viewer.UserID
	post, err := content.NewPost(input, s.now, s.newID)
	if err != nil {
		return content.Post{}, err
	}
	if err := s.store.PutPost(ctx, post); err != nil {
		return content.Post{}, fmt.Errorf("store post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post the viewer authored, along with its comments.
func (s *Service) DeletePost(ctx context.Context, viewer requestctx.Identity, postID string) error {
	existing, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("lookup post: %w", err)
	}
	if !policy.CanDeletePost(viewer, existing.Post) {
		return ErrForbidden
	}
	if err := s.store.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// CreateComment adds a comment by the viewer to an existing post.
//
// Validation runs before the post lookup, so a blank comment never touches
// the store.
func (s *Service) CreateComment(ctx context.Context, viewer requestctx.Identity, postID, body string) (content.Comment, error) {
	comment, err := content.NewComment(content.CreateCommentInput{
		PostID:   postID,
		AuthorID: viewer.UserID,
		Content:  body,
	}, s.now, s.newID)
	if err != nil {
		return content.Comment{}, err
	}

	if _, err := s.store.GetPost(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return content.Comment{}, ErrPostNotFound
		}
		return content.Comment{}, fmt.Errorf("lookup post: %w", err)
	}
	if err := s.store.PutComment(ctx, comment); err != nil {
		return content.Comment{}, fmt.Errorf("store comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment the viewer owns, or any comment when the
// viewer is a doctor.
func (s *Service) DeleteComment(ctx context.Context, viewer requestctx.Identity, commentID string) error {
	existing, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("lookup comment: %w", err)
	}

	role, err := s.viewerRole(ctx, viewer)
	if err != nil {
		return err
	}
	if !policy.CanDeleteComment(viewer, role, existing) {
		return ErrForbidden
	}
	if err := s.store.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// ListPosts returns all posts, newest first, with author display data.
func (s *Service) ListPosts(ctx context.Context) ([]storage.PostWithAuthor, error) {
	return s.store.ListPosts(ctx, storage.PostScope{})
}

// ListPostsByAuthor returns one author's posts, newest first.
func (s *Service) ListPostsByAuthor(ctx context.Context, authorID string) ([]storage.PostWithAuthor, error) {
	return s.store.ListPosts(ctx, storage.PostScope{AuthorID: authorID})
}

// GetThread returns a post and its comments, oldest comment first.
func (s *Service) GetThread(ctx context.Context, postID string) (Thread, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Thread{}, ErrPostNotFound
		}
		return Thread{}, fmt.Errorf("lookup post: %w", err)
	}
	comments, err := s.store.ListComments(ctx, postID)
	if err != nil {
		return Thread{}, fmt.Errorf("list comments: %w", err)
	}
	return Thread{Post: post, Comments: comments}, nil
}

// viewerRole resolves the viewer's role, treating a missing profile as
// RoleUnknown rather than an error.
func (s *Service) viewerRole(ctx context.Context, viewer requestctx.Identity) (profile.Role, error) {
	if viewer.UserID == "" {
		return profile.RoleUnknown, nil
	}
	prof, err := s.store.GetProfile(ctx, viewer.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return profile.RoleUnknown, nil
		}
		return profile.RoleUnknown, fmt.Errorf("lookup profile: %w", err)
	}
	return prof.Role, nil
}
