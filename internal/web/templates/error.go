package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

// ErrorPage renders a localized error page for the given status code.
func ErrorPage(page PageContext, status int) templ.Component {
	titleKey, messageKey := errorKeys(status)
	title := T(page.Loc, titleKey)
	return layout(page, title+" | "+page.AppName, func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="error"><h1>%s</h1><p>%s</p><a href=%q>%s</a></section>`,
			esc(title),
			esc(T(page.Loc, messageKey)),
			routepath.Root,
			esc(T(page.Loc, "error.back_home")),
		)
		return err
	})
}

func errorKeys(status int) (string, string) {
	switch status {
	case http.StatusNotFound:
		return "error.title_not_found", "error.message_not_found"
	case http.StatusForbidden:
		return "error.title_forbidden", "error.message_forbidden"
	default:
		return "error.title_server", "error.message_server"
	}
}
