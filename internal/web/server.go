// Package web hosts the HTTP surface: public pages, auth forms, dashboards,
// and the forum.
package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/louisbranch/dronline.health/internal/auth"
	"github.com/louisbranch/dronline.health/internal/content"
	"github.com/louisbranch/dronline.health/internal/forum"
	"github.com/louisbranch/dronline.health/internal/platform/branding"
	"github.com/louisbranch/dronline.health/internal/platform/requestctx"
	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
	"github.com/louisbranch/dronline.health/internal/web/httpx"
	webi18n "github.com/louisbranch/dronline.health/internal/web/i18n"
	"github.com/louisbranch/dronline.health/internal/web/routepath"
	"github.com/louisbranch/dronline.health/internal/web/sessioncookie"
	"github.com/louisbranch/dronline.health/internal/web/static"
	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

// Config defines the inputs for the web handler.
type Config struct {
	AppName string
}

// AuthService is the account lifecycle surface the handlers use.
type AuthService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (auth.Session, error)
	SignIn(ctx context.Context, email, password string) (auth.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (requestctx.Identity, error)
}

// ForumService is the content surface the handlers use.
type ForumService interface {
	CreatePost(ctx context.Context, viewer requestctx.Identity, input content.CreatePostInput) (content.Post, error)
	DeletePost(ctx context.Context, viewer requestctx.Identity, postID string) error
	CreateComment(ctx context.Context, viewer requestctx.Identity, postID, body string) (content.Comment, error)
	DeleteComment(ctx context.Context, viewer requestctx.Identity, commentID string) error
	ListPosts(ctx context.Context) ([]storage.PostWithAuthor, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]storage.PostWithAuthor, error)
	GetThread(ctx context.Context, postID string) (forum.Thread, error)
}

type handler struct {
	config       Config
	authService  AuthService
	forumService ForumService
	profiles     *profileCache
	logger       *log.Logger
}

// NewHandler assembles the full HTTP handler with middleware applied.
func NewHandler(config Config, authService AuthService, forumService ForumService, profiles storage.ProfileStore) (http.Handler, error) {
	if authService == nil {
		return nil, errors.New("web handler requires an auth service")
	}
	if forumService == nil {
		return nil, errors.New("web handler requires a forum service")
	}
	if profiles == nil {
		return nil, errors.New("web handler requires a profile store")
	}
	if strings.TrimSpace(config.AppName) == "" {
		config.AppName = branding.AppName
	}

	h := &handler{
		config:       config,
		authService:  authService,
		forumService: forumService,
		profiles:     newProfileCache(profiles),
		logger:       log.Default(),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)

	mux.HandleFunc("GET /{$}", h.handleLanding)
	mux.HandleFunc("GET "+routepath.About, h.handleAbout)
	mux.HandleFunc("GET "+routepath.Services, h.handleServices)
	mux.HandleFunc("GET "+routepath.Contact, h.handleContact)

	mux.HandleFunc("GET "+routepath.Auth, h.handleAuthPage)
	mux.HandleFunc("POST "+routepath.AuthSignUp, h.handleSignUp)
	mux.HandleFunc("POST "+routepath.AuthLogin, h.handleLogin)
	mux.HandleFunc("POST "+routepath.AuthLogout, h.handleLogout)

	mux.HandleFunc("GET "+routepath.Dashboard, h.requireAuth(h.handleDashboard))
	mux.HandleFunc("POST "+routepath.DashboardPosts, h.requireAuth(h.handleCreatePost))
	mux.HandleFunc("POST "+routepath.DashboardPostDeletePattern, h.requireAuth(h.handleDeletePost))

	mux.HandleFunc("GET "+routepath.Forum, h.requireAuth(h.handleForum))
	mux.HandleFunc("GET "+routepath.ForumPostPattern, h.requireAuth(h.handleThread))
	mux.HandleFunc("POST "+routepath.ForumCommentPattern, h.requireAuth(h.handleCreateComment))
	mux.HandleFunc("POST "+routepath.ForumCommentDeletePattern, h.requireAuth(h.handleDeleteComment))

	mux.HandleFunc("/", h.handleNotFound)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Trace(),
		httpx.RequestLogger(h.logger),
		h.withIdentity(),
	), nil
}

// withIdentity resolves the session cookie into a request identity. Requests
// with a broken or stale cookie continue anonymously with the cookie cleared.
func (h *handler) withIdentity() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessioncookie.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			viewer, err := h.authService.ResolveSession(r.Context(), token)
			if err != nil {
				sessioncookie.Clear(w, r)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithIdentity(r.Context(), viewer)))
		})
	}
}

// requireAuth redirects anonymous requests to the auth page.
func (h *handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestctx.IdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, routepath.Auth, http.StatusFound)
			return
		}
		next(w, r)
	}
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// pageContext assembles the shared layout context for the current request.
func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	printer, lang := localizer(w, r)
	page := webtemplates.PageContext{
		Lang:        lang,
		Loc:         printer,
		CurrentPath: r.URL.Path,
		AppName:     h.config.AppName,
	}
	if viewer, ok := requestctx.IdentityFromContext(r.Context()); ok {
		page.SignedIn = true
		// Navbar identity is best-effort; a failed lookup leaves it blank.
		if prof, err := h.profiles.get(r.Context(), viewer.UserID); err == nil {
			page.UserName = prof.DisplayName()
			page.UserRole = prof.Role.String()
		}
	}
	return page
}

// viewerProfile resolves the signed-in viewer's profile. Anonymous requests
// and deleted profiles report storage.ErrNotFound; any other error means the
// profile store itself failed.
func (h *handler) viewerProfile(r *http.Request) (requestctx.Identity, profile.Profile, error) {
	viewer, ok := requestctx.IdentityFromContext(r.Context())
	if !ok {
		return requestctx.Identity{}, profile.Profile{}, storage.ErrNotFound
	}
	prof, err := h.profiles.get(r.Context(), viewer.UserID)
	return viewer, prof, err
}

func (h *handler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int) {
	page := h.pageContext(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := webtemplates.ErrorPage(page, status).Render(r.Context(), w); err != nil {
		h.logger.Printf("render error page: %v", err)
	}
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component).ServeHTTP(w, r)
}

// renderStatus renders a page under a non-200 status, typically a form
// re-render after a rejected submission.
func (h *handler) renderStatus(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Printf("render page: %v", err)
	}
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, http.StatusNotFound)
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
