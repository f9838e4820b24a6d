package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/dronline.health/internal/content"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
)

const postWithAuthorQuery = `
SELECT
    p.id, p.author_id, p.title, p.content, p.illness_category, p.created_at,
    COALESCE(pr.full_name, ''), COALESCE(pr.role, ''), COALESCE(pr.specialization, ''), COALESCE(pr.avatar_url, ''),
    (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
FROM posts p
LEFT JOIN profiles pr ON pr.user_id = p.author_id
`

// PutPost persists an authored post.
func (s *Store) PutPost(ctx context.Context, p content.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("post id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO posts (id, author_id, title, content, illness_category, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`,
		p.ID,
		p.AuthorID,
		p.Title,
		p.Content,
		p.IllnessCategory,
		toMillis(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put post: %w", err)
	}
	return nil
}

// GetPost fetches one post joined with its author's display attributes.
func (s *Store) GetPost(ctx context.Context, id string) (storage.PostWithAuthor, error) {
	if err := ctx.Err(); err != nil {
		return storage.PostWithAuthor{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, postWithAuthorQuery+`WHERE p.id = ?;`, id)
	post, err := scanPostWithAuthor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.PostWithAuthor{}, storage.ErrNotFound
		}
		return storage.PostWithAuthor{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// ListPosts returns posts ordered newest-first, optionally scoped to one author.
func (s *Store) ListPosts(ctx context.Context, scope storage.PostScope) ([]storage.PostWithAuthor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := postWithAuthorQuery
	var args []any
	if authorID := strings.TrimSpace(scope.AuthorID); authorID != "" {
		query += `WHERE p.author_id = ? `
		args = append(args, authorID)
	}
	query += `ORDER BY p.created_at DESC, p.id DESC;`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []storage.PostWithAuthor
	for rows.Next() {
		post, err := scanPostWithAuthor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// DeletePost removes a post and, via cascade, its comments.
// Deleting a missing id is not an error.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM posts WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// PutComment persists a threaded comment.
func (s *Store) PutComment(ctx context.Context, c content.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("comment id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO comments (id, post_id, author_id, content, created_at)
VALUES (?, ?, ?, ?, ?);
`,
		c.ID,
		c.PostID,
		c.AuthorID,
		c.Content,
		toMillis(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put comment: %w", err)
	}
	return nil
}

// GetComment fetches one comment by id.
func (s *Store) GetComment(ctx context.Context, id string) (content.Comment, error) {
	if err := ctx.Err(); err != nil {
		return content.Comment{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, post_id, author_id, content, created_at
FROM comments
WHERE id = ?;
`, id)

	var c content.Comment
	var createdAt int64
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return content.Comment{}, storage.ErrNotFound
		}
		return content.Comment{}, fmt.Errorf("scan comment: %w", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

// ListComments returns a post's comments ordered oldest-first with commenter joins.
func (s *Store) ListComments(ctx context.Context, postID string) ([]storage.CommentWithAuthor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
    c.id, c.post_id, c.author_id, c.content, c.created_at,
    COALESCE(pr.full_name, ''), COALESCE(pr.role, ''), COALESCE(pr.avatar_url, '')
FROM comments c
LEFT JOIN profiles pr ON pr.user_id = c.author_id
WHERE c.post_id = ?
ORDER BY c.created_at ASC, c.id ASC;
`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []storage.CommentWithAuthor
	for rows.Next() {
		var item storage.CommentWithAuthor
		var createdAt int64
		var role string
		if err := rows.Scan(
			&item.Comment.ID,
			&item.Comment.PostID,
			&item.Comment.AuthorID,
			&item.Comment.Content,
			&createdAt,
			&item.Author.FullName,
			&role,
			&item.Author.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		item.Comment.CreatedAt = fromMillis(createdAt)
		if parsed, ok := profile.ParseRole(role); ok {
			item.Author.Role = parsed
		}
		comments = append(comments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment. Deleting a missing id is not an error.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM comments WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func scanPostWithAuthor(scan func(dest ...any) error) (storage.PostWithAuthor, error) {
	var item storage.PostWithAuthor
	var createdAt int64
	var role string
	if err := scan(
		&item.Post.ID,
		&item.Post.AuthorID,
		&item.Post.Title,
		&item.Post.Content,
		&item.Post.IllnessCategory,
		&createdAt,
		&item.Author.FullName,
		&role,
		&item.Author.Specialization,
		&item.Author.AvatarURL,
		&item.CommentCount,
	); err != nil {
		return storage.PostWithAuthor{}, err
	}
	item.Post.CreatedAt = fromMillis(createdAt)
	if parsed, ok := profile.ParseRole(role); ok {
		item.Author.Role = parsed
	}
	return item, nil
}
