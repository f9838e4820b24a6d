package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/dronline.health/internal/auth"
	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/web/routepath"
	"github.com/louisbranch/dronline.health/internal/web/sessioncookie"
	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

// authErrorMessage maps account errors onto localized form messages.
func authErrorMessage(loc webtemplates.Localizer, err error) string {
	switch apperrors.GetCode(err) {
	case apperrors.CodeAuthEmailInvalid:
		return webtemplates.T(loc, "auth.error.email_invalid")
	case apperrors.CodeAuthEmailTaken:
		return webtemplates.T(loc, "auth.error.email_taken")
	case apperrors.CodeAuthPasswordTooShort:
		min := "6"
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Metadata["Min"] != "" {
			min = appErr.Metadata["Min"]
		}
		return webtemplates.T(loc, "auth.error.password_too_short", min)
	case apperrors.CodeAuthInvalidCredentials:
		return webtemplates.T(loc, "auth.error.invalid_credentials")
	case apperrors.CodeProfileNameEmpty:
		return webtemplates.T(loc, "auth.error.name_required")
	case apperrors.CodeProfileInvalidRole:
		return webtemplates.T(loc, "auth.error.role_required")
	default:
		return webtemplates.T(loc, "error.message_server")
	}
}

func (h *handler) handleAuthPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestctx.IdentityFromContext(r.Context()); ok {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	h.render(w, r, webtemplates.AuthPage(h.pageContext(w, r), webtemplates.AuthFormState{}))
}

func (h *handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest)
		return
	}

	years, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("years_of_experience")))
	input := auth.SignUpInput{
		Email:             r.PostFormValue("email"),
		Password:          r.PostFormValue("password"),
		FullName:          r.PostFormValue("full_name"),
		Role:              r.PostFormValue("role"),
		Specialization:    r.PostFormValue("specialization"),
		YearsOfExperience: years,
		Bio:               r.PostFormValue("bio"),
	}

	session, err := h.authService.SignUp(r.Context(), input)
	if err != nil {
		page := h.pageContext(w, r)
		form := webtemplates.AuthFormState{
			SignUpError: authErrorMessage(page.Loc, err),
			FullName:    input.FullName,
			Email:       input.Email,
			Role:        input.Role,
		}
		h.renderStatus(w, r, apperrors.HTTPStatus(err), webtemplates.AuthPage(page, form))
		return
	}

	sessioncookie.Write(w, r, session.Token, session.ExpiresAt)
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	session, err := h.authService.SignIn(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		page := h.pageContext(w, r)
		form := webtemplates.AuthFormState{
			LoginError: authErrorMessage(page.Loc, err),
			Email:      email,
		}
		h.renderStatus(w, r, apperrors.HTTPStatus(err), webtemplates.AuthPage(page, form))
		return
	}

	sessioncookie.Write(w, r, session.Token, session.ExpiresAt)
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if viewer, ok := requestctx.IdentityFromContext(r.Context()); ok {
		if err := h.authService.SignOut(r.Context(), viewer.SessionID); err != nil {
			h.logger.Printf("sign out session %s: %v", viewer.SessionID, err)
		}
		h.profiles.invalidate(viewer.UserID)
	}
	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}
