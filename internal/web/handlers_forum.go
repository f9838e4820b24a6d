package web

import (
	"net/http"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/web/routepath"
	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

func (h *handler) handleForum(w http.ResponseWriter, r *http.Request) {
	viewer, _, _ := h.viewerProfile(r)
	posts, err := h.forumService.ListPosts(r.Context())
	if err != nil {
		h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}
	h.render(w, r, webtemplates.ForumPage(h.pageContext(w, r), postViews(viewer, posts)))
}

func (h *handler) handleThread(w http.ResponseWriter, r *http.Request) {
	viewer, prof, _ := h.viewerProfile(r)
	thread, err := h.forumService.GetThread(r.Context(), r.PathValue("postID"))
	if err != nil {
		h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}

	page := h.pageContext(w, r)
	h.render(w, r, webtemplates.ThreadPage(page,
		postView(viewer, thread.Post),
		commentViews(viewer, prof.Role, thread.Comments),
		webtemplates.CommentFormState{}))
}

func (h *handler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest)
		return
	}

	viewer, prof, _ := h.viewerProfile(r)
	postID := r.PathValue("postID")
	draft := r.PostFormValue("content")

	if _, err := h.forumService.CreateComment(r.Context(), viewer, postID, draft); err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
			return
		}
		// Re-render the thread with the inline message and the submitted
		// draft, so a rejected comment is not lost.
		thread, threadErr := h.forumService.GetThread(r.Context(), postID)
		if threadErr != nil {
			h.renderErrorPage(w, r, apperrors.HTTPStatus(threadErr))
			return
		}
		page := h.pageContext(w, r)
		form := webtemplates.CommentFormState{
			Error:   webtemplates.T(page.Loc, commentFormErrorKey(err)),
			Content: draft,
		}
		h.renderStatus(w, r, apperrors.HTTPStatus(err), webtemplates.ThreadPage(page,
			postView(viewer, thread.Post),
			commentViews(viewer, prof.Role, thread.Comments),
			form))
		return
	}

	http.Redirect(w, r, routepath.ForumPost(postID), http.StatusFound)
}

// commentFormErrorKey maps comment submission errors onto localized form messages.
func commentFormErrorKey(err error) string {
	if apperrors.IsCode(err, apperrors.CodeCommentContentEmpty) {
		return "thread.error.comment_required"
	}
	return "error.message_server"
}

func (h *handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	viewer, _, _ := h.viewerProfile(r)
	postID := r.PathValue("postID")
	commentID := r.PathValue("commentID")

	if err := h.forumService.DeleteComment(r.Context(), viewer, commentID); err != nil {
		h.renderErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}
	http.Redirect(w, r, routepath.ForumPost(postID), http.StatusFound)
}
