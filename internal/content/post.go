// Package content validates forum posts and comments before persistence.
package content

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/platform/id"
)

var (
	// ErrEmptyTitle indicates a missing post title.
	ErrEmptyTitle = apperrors.New(apperrors.CodePostTitleEmpty, "post title is required")
	// ErrEmptyContent indicates a missing post body.
	ErrEmptyContent = apperrors.New(apperrors.CodePostContentEmpty, "post content is required")
	// ErrEmptyAuthor indicates a post without an author identity.
	ErrEmptyAuthor = apperrors.New(apperrors.CodePostEmptyAuthor, "post author is required")
)

// Post is an authored article visible to all authenticated identities.
type Post struct {
	ID              string
	AuthorID        string
	Title           string
	Content         string
	IllnessCategory string
	CreatedAt       time.Time
}

// CreatePostInput describes a post before validation.
type CreatePostInput struct {
	AuthorID        string
	Title           string
	Content         string
	IllnessCategory string
}

// NewPost trims and validates input and assigns identity and creation time.
//
// Title and content are required after trimming; the illness category is
// optional free text.
func NewPost(input CreatePostInput, now func() time.Time, idGenerator func() (string, error)) (Post, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	authorID := strings.TrimSpace(input.AuthorID)
	if authorID == "" {
		return Post{}, ErrEmptyAuthor
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Post{}, ErrEmptyTitle
	}
	body := strings.TrimSpace(input.Content)
	if body == "" {
		return Post{}, ErrEmptyContent
	}

	postID, err := idGenerator()
	if err != nil {
		return Post{}, fmt.Errorf("generate post id: %w", err)
	}

	return Post{
		ID:              postID,
		AuthorID:        authorID,
		Title:           title,
		Content:         body,
		IllnessCategory: strings.TrimSpace(input.IllnessCategory),
		CreatedAt:       now().UTC(),
	}, nil
}
