package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if Auth != "/auth" {
		t.Fatalf("Auth = %q", Auth)
	}
	if AuthLogout != "/auth/logout" {
		t.Fatalf("AuthLogout = %q", AuthLogout)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if DashboardPosts != "/dashboard/posts" {
		t.Fatalf("DashboardPosts = %q", DashboardPosts)
	}
	if Forum != "/forum" {
		t.Fatalf("Forum = %q", Forum)
	}
	if ForumPrefix != "/forum/" {
		t.Fatalf("ForumPrefix = %q", ForumPrefix)
	}
}

func TestRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := ForumPost("post-1"); got != "/forum/post-1" {
		t.Fatalf("ForumPost() = %q", got)
	}
	if got := ForumComments("post-1"); got != "/forum/post-1/comments" {
		t.Fatalf("ForumComments() = %q", got)
	}
	if got := ForumCommentDelete("post-1", "comment-1"); got != "/forum/post-1/comments/comment-1/delete" {
		t.Fatalf("ForumCommentDelete() = %q", got)
	}
	if got := DashboardPostDelete("post-1"); got != "/dashboard/posts/post-1/delete" {
		t.Fatalf("DashboardPostDelete() = %q", got)
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := ForumPost("a b/c"); got != "/forum/a%20b%2Fc" {
		t.Fatalf("ForumPost() = %q", got)
	}
}
