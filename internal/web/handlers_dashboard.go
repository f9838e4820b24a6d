package web

import (
	"errors"
	"net/http"

	"github.com/louisbranch/dronline.health/internal/content"
	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/policy"
	"github.com/louisbranch/dronline.health/internal/storage"
	"github.com/louisbranch/dronline.health/internal/web/routepath"
	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

// postFormErrorKey maps post validation errors onto localized form messages.
func postFormErrorKey(err error) string {
	switch apperrors.GetCode(err) {
	case apperrors.CodePostTitleEmpty:
		return "dashboard.error.title_required"
	case apperrors.CodePostContentEmpty:
		return "dashboard.error.content_required"
	case apperrors.CodeForbidden:
		return "dashboard.error.not_allowed"
	default:
		return "error.message_server"
	}
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	viewer, prof, profErr := h.viewerProfile(r)
	if profErr != nil && !errors.Is(profErr, storage.ErrNotFound) {
		// The store failed outright; a missing profile still gets the
		// unavailable dashboard below.
		h.renderErrorPage(w, r, http.StatusServiceUnavailable)
		return
	}
	page := h.pageContext(w, r)

	switch policy.DashboardFor(prof.Role) {
	case policy.DashboardDoctor:
		posts, err := h.forumService.ListPostsByAuthor(r.Context(), viewer.UserID)
		if err != nil {
			h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
			return
		}
		h.render(w, r, webtemplates.DoctorDashboard(page, postViews(viewer, posts), webtemplates.PostFormState{}))
	case policy.DashboardPatient:
		posts, err := h.forumService.ListPosts(r.Context())
		if err != nil {
			h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
			return
		}
		h.render(w, r, webtemplates.PatientDashboard(page, postViews(viewer, posts)))
	default:
		h.render(w, r, webtemplates.UnavailableDashboard(page))
	}
}

func (h *handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest)
		return
	}

	viewer, _, _ := h.viewerProfile(r)
	input := content.CreatePostInput{
		Title:           r.PostFormValue("title"),
		Content:         r.PostFormValue("content"),
		IllnessCategory: r.PostFormValue("illness_category"),
	}

	if _, err := h.forumService.CreatePost(r.Context(), viewer, input); err != nil {
		if apperrors.IsCode(err, apperrors.CodeForbidden) {
			h.renderErrorPage(w, r, http.StatusForbidden)
			return
		}
		page := h.pageContext(w, r)
		posts, listErr := h.forumService.ListPostsByAuthor(r.Context(), viewer.UserID)
		if listErr != nil {
			h.renderErrorPage(w, r, apperrors.HTTPStatus(listErr))
			return
		}
		form := webtemplates.PostFormState{
			Error:    webtemplates.T(page.Loc, postFormErrorKey(err)),
			Title:    input.Title,
			Content:  input.Content,
			Category: input.IllnessCategory,
		}
		h.renderStatus(w, r, apperrors.HTTPStatus(err),
			webtemplates.DoctorDashboard(page, postViews(viewer, posts), form))
		return
	}

	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h *handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	viewer, _, _ := h.viewerProfile(r)
	postID := r.PathValue("postID")

	if err := h.forumService.DeletePost(r.Context(), viewer, postID); err != nil {
		h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}
