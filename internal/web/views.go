package web

import (
	"time"

	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/policy"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

const displayDateFormat = "Jan 2, 2006"

// authorDisplayName applies the doctor honorific to joined author fields.
func authorDisplayName(author storage.AuthorDisplay) string {
	if author.FullName == "" {
		return "?"
	}
	if author.Role == profile.RoleDoctor {
		return "Dr. " + author.FullName
	}
	return author.FullName
}

func formatDisplayDate(t time.Time) string {
	return t.UTC().Format(displayDateFormat)
}

// postView prepares one joined post for rendering, resolving the viewer's
// delete affordance through policy.
func postView(viewer requestctx.Identity, record storage.PostWithAuthor) webtemplates.PostView {
	return webtemplates.PostView{
		ID:             record.Post.ID,
		Title:          record.Post.Title,
		Body:           record.Post.Content,
		Category:       record.Post.IllnessCategory,
		AuthorName:     authorDisplayName(record.Author),
		AuthorInitials: profile.Initials(record.Author.FullName),
		AuthorRole:     record.Author.Role.String(),
		CreatedAt:      formatDisplayDate(record.Post.CreatedAt),
		CommentCount:   record.CommentCount,
		CanDelete:      policy.CanDeletePost(viewer, record.Post),
	}
}

func postViews(viewer requestctx.Identity, records []storage.PostWithAuthor) []webtemplates.PostView {
	views := make([]webtemplates.PostView, 0, len(records))
	for _, record := range records {
		views = append(views, postView(viewer, record))
	}
	return views
}

// commentView prepares one joined comment for rendering. The viewer's role
// decides the moderation affordance on comments they did not author.
func commentView(viewer requestctx.Identity, viewerRole profile.Role, record storage.CommentWithAuthor) webtemplates.CommentView {
	return webtemplates.CommentView{
		ID:             record.Comment.ID,
		Body:           record.Comment.Content,
		AuthorName:     authorDisplayName(record.Author),
		AuthorInitials: profile.Initials(record.Author.FullName),
		AuthorRole:     record.Author.Role.String(),
		CreatedAt:      formatDisplayDate(record.Comment.CreatedAt),
		CanDelete:      policy.CanDeleteComment(viewer, viewerRole, record.Comment),
	}
}

func commentViews(viewer requestctx.Identity, viewerRole profile.Role, records []storage.CommentWithAuthor) []webtemplates.CommentView {
	views := make([]webtemplates.CommentView, 0, len(records))
	for _, record := range records {
		views = append(views, commentView(viewer, viewerRole, record))
	}
	return views
}
