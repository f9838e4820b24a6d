package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

// PostFormState carries sticky values and the error for the new-post form.
type PostFormState struct {
	Error    string
	Title    string
	Content  string
	Category string
}

// DoctorDashboard renders the doctor's own posts with create and delete.
func DoctorDashboard(page PageContext, posts []PostView, form PostFormState) templ.Component {
	title := T(page.Loc, "title.dashboard", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(page.Loc, "dashboard.doctor_heading"))); err != nil {
			return err
		}
		if err := newPostForm(page, form, w); err != nil {
			return err
		}
		return postList(page, posts, w)
	})
}

// PatientDashboard renders every post for browsing into discussions.
func PatientDashboard(page PageContext, posts []PostView) templ.Component {
	title := T(page.Loc, "title.dashboard", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(page.Loc, "dashboard.patient_heading"))); err != nil {
			return err
		}
		return postList(page, posts, w)
	})
}

// UnavailableDashboard renders the fallback for an unresolved role.
func UnavailableDashboard(page PageContext) templ.Component {
	title := T(page.Loc, "title.dashboard", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="notice"><h1>%s</h1><p>%s</p></section>`,
			esc(T(page.Loc, "dashboard.unavailable_heading")),
			esc(T(page.Loc, "dashboard.unavailable_message")),
		)
		return err
	})
}

func newPostForm(page PageContext, form PostFormState, w io.Writer) error {
	if _, err := fmt.Fprintf(w, `<form method="post" action=%q class="card"><h2>%s</h2>`,
		routepath.DashboardPosts, esc(T(page.Loc, "dashboard.new_post"))); err != nil {
		return err
	}
	if form.Error != "" {
		if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(form.Error)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`<label>%s<input type="text" name="title" value=%q required></label>`+
			`<label>%s<textarea name="content" required>%s</textarea></label>`+
			`<label>%s<input type="text" name="illness_category" value=%q></label>`+
			`<button type="submit">%s</button></form>`,
		esc(T(page.Loc, "dashboard.post_title")),
		esc(form.Title),
		esc(T(page.Loc, "dashboard.post_content")),
		esc(form.Content),
		esc(T(page.Loc, "dashboard.post_category")),
		esc(form.Category),
		esc(T(page.Loc, "dashboard.post_submit")),
	)
	return err
}

func postList(page PageContext, posts []PostView, w io.Writer) error {
	if len(posts) == 0 {
		_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(T(page.Loc, "dashboard.no_posts")))
		return err
	}
	if _, err := io.WriteString(w, `<ul class="post-list">`); err != nil {
		return err
	}
	for _, post := range posts {
		if err := postCard(page, post, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}

func postCard(page PageContext, post PostView, w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<li class="post-card"><h3><a href=%q>%s</a></h3><p class="post-meta">%s · %s</p>`,
		routepath.ForumPost(post.ID),
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
	if _, err := fmt.Fprintf(w,
		`<p>%s</p><p class="comment-count">%s</p>`,
		esc(post.Body),
		esc(T(page.Loc, "forum.comments", post.CommentCount)),
	); err != nil {
		return err
	}
	if post.CanDelete {
		if _, err := fmt.Fprintf(w,
			`<form method="post" action=%q class="inline"><button type="submit" class="danger">%s</button></form>`,
			routepath.DashboardPostDelete(post.ID),
			esc(T(page.Loc, "dashboard.post_delete")),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</li>`)
	return err
}
