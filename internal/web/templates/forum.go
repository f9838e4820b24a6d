package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

// ForumPage renders the post list for all authenticated identities.
func ForumPage(page PageContext, posts []PostView) templ.Component {
	title := T(page.Loc, "title.forum", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(page.Loc, "forum.heading"))); err != nil {
			return err
		}
		if len(posts) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(T(page.Loc, "forum.empty")))
			return err
		}
		if _, err := io.WriteString(w, `<ul class="post-list">`); err != nil {
			return err
		}
		for _, post := range posts {
			if err := forumCard(page, post, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func forumCard(page PageContext, post PostView, w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<li class="post-card"><h3><a href=%q>%s</a></h3><p class="post-meta"><span class="avatar">%s</span>%s · %s</p>`,
		routepath.ForumPost(post.ID),
		esc(post.Title),
		esc(post.AuthorInitials),
		esc(post.AuthorName),
		esc(post.CreatedAt),
	); err != nil {
		return err
	}
	if post.Category != "" {
		if _, err := fmt.Fprintf(w, `<span class="category">%s</span>`, esc(post.Category)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`<p class="comment-count">%s</p><a href=%q>%s</a></li>`,
		esc(T(page.Loc, "forum.comments", post.CommentCount)),
		routepath.ForumPost(post.ID),
		esc(T(page.Loc, "forum.read_discussion")),
	)
	return err
}

// CommentFormState carries the sticky draft and error for the comment form.
type CommentFormState struct {
	Error   string
	Content string
}

// ThreadPage renders one post with its ordered discussion.
func ThreadPage(page PageContext, post PostView, comments []CommentView, form CommentFormState) templ.Component {
	return layout(page, post.Title+" | "+page.AppName, func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<article class="post"><h1>%s</h1><p class="post-meta">%s · %s</p>`,
			esc(post.Title),
			esc(post.AuthorName),
			esc(post.CreatedAt),
		); err != nil {
			return err
		}
		if post.Category != "" {
			if _, err := fmt.Fprintf(w, `<span class="category">%s</span>`, esc(post.Category)); err != nil {
				return err
			}
		}
		// pre-wrap keeps the author's paragraph breaks without allowing markup.
		if _, err := fmt.Fprintf(w, `<p class="post-body">%s</p></article>`, esc(post.Body)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<section class="comments"><h2>%s</h2>`, esc(T(page.Loc, "thread.comments_heading"))); err != nil {
			return err
		}
		if len(comments) == 0 {
			if _, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(T(page.Loc, "thread.no_comments"))); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<ul class="comment-list">`); err != nil {
				return err
			}
			for _, comment := range comments {
				if err := commentItem(page, post.ID, comment, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul>`); err != nil {
				return err
			}
		}

		if err := commentForm(page, post.ID, form, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func commentItem(page PageContext, postID string, comment CommentView, w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<li class="comment"><p class="comment-meta"><span class="avatar">%s</span>%s · %s</p><p class="comment-body">%s</p>`,
		esc(comment.AuthorInitials),
		esc(comment.AuthorName),
		esc(comment.CreatedAt),
		esc(comment.Body),
	); err != nil {
		return err
	}
	if comment.CanDelete {
		if _, err := fmt.Fprintf(w,
			`<form method="post" action=%q class="inline"><button type="submit" class="danger">%s</button></form>`,
			routepath.ForumCommentDelete(postID, comment.ID),
			esc(T(page.Loc, "thread.comment_delete")),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</li>`)
	return err
}

func commentForm(page PageContext, postID string, form CommentFormState, w io.Writer) error {
	if _, err := fmt.Fprintf(w, `<form method="post" action=%q class="comment-form">`, routepath.ForumComments(postID)); err != nil {
		return err
	}
	if form.Error != "" {
		if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(form.Error)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`<textarea name="content" placeholder=%q required>%s</textarea><button type="submit">%s</button></form>`,
		esc(T(page.Loc, "thread.comment_placeholder")),
		esc(form.Content),
		esc(T(page.Loc, "thread.comment_submit")),
	)
	return err
}
