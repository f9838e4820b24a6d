// Package routepath stores canonical HTTP paths for the web server.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root     = "/"
	About    = "/about"
	Services = "/services"
	Contact  = "/contact"
	Health   = "/up"

	Auth       = "/auth"
	AuthSignUp = "/auth/signup"
	AuthLogin  = "/auth/login"
	AuthLogout = "/auth/logout"

	Dashboard            = "/dashboard"
	DashboardPosts       = "/dashboard/posts"
	DashboardPostsPrefix = "/dashboard/posts/"

	DashboardPostDeletePattern = DashboardPostsPrefix + "{postID}/delete"

	Forum       = "/forum"
	ForumPrefix = "/forum/"

	ForumPostPattern          = ForumPrefix + "{postID}"
	ForumCommentPattern       = ForumPrefix + "{postID}/comments"
	ForumCommentDeletePattern = ForumPrefix + "{postID}/comments/{commentID}/delete"
)

// ForumPost returns the discussion route for a post.
func ForumPost(postID string) string {
	return ForumPrefix + escapeSegment(postID)
}

// ForumComments returns the comment-create route for a post.
func ForumComments(postID string) string {
	return ForumPost(postID) + "/comments"
}

// ForumCommentDelete returns the comment-delete route.
func ForumCommentDelete(postID string, commentID string) string {
	return ForumComments(postID) + "/" + escapeSegment(commentID) + "/delete"
}

// DashboardPostDelete returns the post-delete route.
func DashboardPostDelete(postID string) string {
	return DashboardPostsPrefix + escapeSegment(postID) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
