package content

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/platform/id"
)

var (
	// ErrEmptyCommentContent indicates an empty or whitespace-only comment.
	ErrEmptyCommentContent = apperrors.New(apperrors.CodeCommentContentEmpty, "comment content is required")
	// ErrEmptyCommentPost indicates a comment detached from any post.
	ErrEmptyCommentPost = apperrors.New(apperrors.CodeCommentEmptyPost, "comment post id is required")
	// ErrEmptyCommentAuthor indicates a comment without an author identity.
	ErrEmptyCommentAuthor = apperrors.New(apperrors.CodeCommentEmptyAuthor, "comment author is required")
)

// Comment is a threaded reply attached to exactly one post.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// CreateCommentInput describes a comment before validation.
type CreateCommentInput struct {
	PostID   string
	AuthorID string
	Content  string
}

// NewComment trims and validates input and assigns identity and creation time.
//
// Whitespace-only content is rejected here, before any store call is made.
func NewComment(input CreateCommentInput, now func() time.Time, idGenerator func() (string, error)) (Comment, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	postID := strings.TrimSpace(input.PostID)
	if postID == "" {
		return Comment{}, ErrEmptyCommentPost
	}
	authorID := strings.TrimSpace(input.AuthorID)
	if authorID == "" {
		return Comment{}, ErrEmptyCommentAuthor
	}
	body := strings.TrimSpace(input.Content)
	if body == "" {
		return Comment{}, ErrEmptyCommentContent
	}

	commentID, err := idGenerator()
	if err != nil {
		return Comment{}, fmt.Errorf("generate comment id: %w", err)
	}

	return Comment{
		ID:        commentID,
		PostID:    postID,
		AuthorID:  authorID,
		Content:   body,
		CreatedAt: now().UTC(),
	}, nil
}
