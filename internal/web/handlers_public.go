package web

import (
	"net/http"

	webtemplates "github.com/louisbranch/dronline.health/internal/web/templates"
)

func (h *handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, webtemplates.LandingPage(h.pageContext(w, r)))
}

func (h *handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, webtemplates.AboutPage(h.pageContext(w, r)))
}

func (h *handler) handleServices(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, webtemplates.ServicesPage(h.pageContext(w, r)))
}

func (h *handler) handleContact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, webtemplates.ContactPage(h.pageContext(w, r)))
}
