package policy

import (
	"testing"

	"github.com/louisbranch/dronline.health/internal/content"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/profile"
)

func TestCanCreatePost(t *testing.T) {
	if !CanCreatePost(profile.RoleDoctor) {
		t.Fatal("doctors must be able to create posts")
	}
	if CanCreatePost(profile.RolePatient) {
		t.Fatal("patients must not be able to create posts")
	}
	if CanCreatePost(profile.RoleUnknown) {
		t.Fatal("unresolved roles must not be able to create posts")
	}
}

func TestCanDeletePostOwnershipOnly(t *testing.T) {
	post := content.Post{ID: "post-1", AuthorID: "doc-1"}

	if !CanDeletePost(requestctx.Identity{UserID: "doc-1"}, post) {
		t.Fatal("author must be able to delete their post")
	}
	if CanDeletePost(requestctx.Identity{UserID: "doc-2"}, post) {
		t.Fatal("non-author must not delete the post")
	}
	if CanDeletePost(requestctx.Identity{}, post) {
		t.Fatal("anonymous viewer must not delete the post")
	}
}

func TestCanDeleteCommentTruthTable(t *testing.T) {
	comment := content.Comment{ID: "c-1", PostID: "post-1", AuthorID: "user-1"}

	cases := []struct {
		name   string
		viewer string
		role   profile.Role
		want   bool
	}{
		{"own comment, doctor", "user-1", profile.RoleDoctor, true},
		{"own comment, patient", "user-1", profile.RolePatient, true},
		{"other comment, doctor", "user-2", profile.RoleDoctor, true},
		{"other comment, patient", "user-2", profile.RolePatient, false},
		{"other comment, unknown role", "user-2", profile.RoleUnknown, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanDeleteComment(requestctx.Identity{UserID: tc.viewer}, tc.role, comment)
			if got != tc.want {
				t.Fatalf("CanDeleteComment = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDoctorModerationIsGlobal(t *testing.T) {
	// The comment sits under someone else's post; the doctor is neither the
	// comment author nor the post author.
	comment := content.Comment{ID: "c-2", PostID: "post-owned-by-doc-9", AuthorID: "patient-3"}
	if !CanDeleteComment(requestctx.Identity{UserID: "doc-1"}, profile.RoleDoctor, comment) {
		t.Fatal("doctor moderation privilege must not be scoped to own posts")
	}
}

func TestDashboardFor(t *testing.T) {
	if got := DashboardFor(profile.RoleDoctor); got != DashboardDoctor {
		t.Fatalf("DashboardFor(doctor) = %v, want DashboardDoctor", got)
	}
	if got := DashboardFor(profile.RolePatient); got != DashboardPatient {
		t.Fatalf("DashboardFor(patient) = %v, want DashboardPatient", got)
	}
	if got := DashboardFor(profile.RoleUnknown); got != DashboardUnavailable {
		t.Fatalf("DashboardFor(unknown) = %v, want DashboardUnavailable", got)
	}
}
