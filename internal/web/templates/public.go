package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

// LandingPage renders the public home page.
func LandingPage(page PageContext) templ.Component {
	title := T(page.Loc, "title.landing", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		cta := routepath.Auth
		if page.SignedIn {
			cta = routepath.Dashboard
		}
		_, err := fmt.Fprintf(w,
			`<section class="hero"><h1>%s</h1><p>%s</p><a class="button" href=%q>%s</a></section>`,
			esc(page.AppName),
			esc(T(page.Loc, "landing.tagline")),
			cta,
			esc(T(page.Loc, "landing.cta")),
		)
		return err
	})
}

// AboutPage renders the public about page.
func AboutPage(page PageContext) templ.Component {
	return staticPage(page, "title.about", "about.heading", "about.body")
}

// ServicesPage renders the public services page.
func ServicesPage(page PageContext) templ.Component {
	return staticPage(page, "title.services", "services.heading", "services.body")
}

// ContactPage renders the public contact page.
func ContactPage(page PageContext) templ.Component {
	return staticPage(page, "title.contact", "contact.heading", "contact.body")
}

func staticPage(page PageContext, titleKey, headingKey, bodyKey string) templ.Component {
	title := T(page.Loc, titleKey, page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section><h1>%s</h1><p>%s</p></section>`,
			esc(T(page.Loc, headingKey)),
			esc(T(page.Loc, bodyKey)),
		)
		return err
	})
}
