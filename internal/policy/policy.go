// Package policy provides authorization decisions for content actions.
package policy

import (
	"github.com/louisbranch/dronline.health/internal/content"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/profile"
)

// Dashboard identifies the role-specific dashboard surface.
type Dashboard int

const (
	// DashboardUnavailable is rendered when the viewer's role is unresolved.
	// A missing profile is not a patient; callers must handle this state.
	DashboardUnavailable Dashboard = iota
	// DashboardDoctor lists the viewer's own posts with create and delete.
	DashboardDoctor
	// DashboardPatient lists all posts with navigation into discussions.
	DashboardPatient
)

// CanCreatePost reports whether the role may author new posts.
func CanCreatePost(role profile.Role) bool {
	return role == profile.RoleDoctor
}

// CanDeletePost reports whether the viewer may delete the post.
//
// Only the author may delete a post; the doctor moderation privilege does
// not extend to posts.
func CanDeletePost(viewer requestctx.Identity, post content.Post) bool {
	return viewer.UserID != "" && viewer.UserID == post.AuthorID
}

// CanDeleteComment reports whether the viewer may delete the comment.
//
// The author may always delete their own comment. Any doctor may delete any
// comment, regardless of whose post it sits under.
func CanDeleteComment(viewer requestctx.Identity, role profile.Role, comment content.Comment) bool {
	if viewer.UserID != "" && viewer.UserID == comment.AuthorID {
		return true
	}
	return role == profile.RoleDoctor
}

// DashboardFor selects the dashboard surface for a resolved role.
func DashboardFor(role profile.Role) Dashboard {
	switch role {
	case profile.RoleDoctor:
		return DashboardDoctor
	case profile.RolePatient:
		return DashboardPatient
	default:
		return DashboardUnavailable
	}
}
