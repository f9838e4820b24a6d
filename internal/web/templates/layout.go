// Package templates renders the server-side HTML for the web service.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

func esc(value string) string {
	return html.EscapeString(value)
}

// layout wraps page content in the shared HTML chrome.
func layout(page PageContext, title string, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/app.css"></head><body>`,
			esc(page.Lang), esc(title),
		); err != nil {
			return err
		}
		if err := navbar(page).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if body != nil {
			if err := body(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func navbar(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<nav class="navbar"><a class="brand" href=%q>%s</a><div class="nav-links">`,
			routepath.Root, esc(page.AppName),
		); err != nil {
			return err
		}
		links := []struct {
			href string
			key  string
		}{
			{routepath.Root, "nav.home"},
			{routepath.About, "nav.about"},
			{routepath.Services, "nav.services"},
			{routepath.Contact, "nav.contact"},
		}
		if page.SignedIn {
			links = append(links,
				struct{ href, key string }{routepath.Dashboard, "nav.dashboard"},
				struct{ href, key string }{routepath.Forum, "nav.forum"},
			)
		}
		for _, link := range links {
			class := ""
			if link.href == page.CurrentPath {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<a%s href=%q>%s</a>`, class, link.href, esc(T(page.Loc, link.key))); err != nil {
				return err
			}
		}
		if page.SignedIn {
			if _, err := fmt.Fprintf(w,
				`<span class="user-name">%s</span><form method="post" action=%q class="inline"><button type="submit">%s</button></form>`,
				esc(page.UserName), routepath.AuthLogout, esc(T(page.Loc, "nav.sign_out")),
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, `<a href=%q>%s</a>`, routepath.Auth, esc(T(page.Loc, "nav.sign_in"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></nav>`)
		return err
	})
}
