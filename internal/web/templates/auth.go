package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/dronline.health/internal/web/routepath"
)

// AuthFormState carries sticky values and errors for the auth page forms.
type AuthFormState struct {
	SignUpError string
	LoginError  string
	FullName    string
	Email       string
	Role        string
}

// AuthPage renders the combined sign-up and sign-in page.
func AuthPage(page PageContext, form AuthFormState) templ.Component {
	title := T(page.Loc, "title.auth", page.AppName)
	return layout(page, title, func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth">`); err != nil {
			return err
		}
		if err := signUpForm(page, form, w); err != nil {
			return err
		}
		if err := loginForm(page, form, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func signUpForm(page PageContext, form AuthFormState, w io.Writer) error {
	if _, err := fmt.Fprintf(w, `<form method="post" action=%q class="card"><h2>%s</h2>`,
		routepath.AuthSignUp, esc(T(page.Loc, "auth.signup_heading"))); err != nil {
		return err
	}
	if form.SignUpError != "" {
		if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(form.SignUpError)); err != nil {
			return err
		}
	}

	doctorChecked := ""
	patientChecked := ""
	switch form.Role {
	case "doctor":
		doctorChecked = " checked"
	case "patient":
		patientChecked = " checked"
	default:
		patientChecked = " checked"
	}

	if _, err := fmt.Fprintf(w,
		`<label>%s<input type="text" name="full_name" value=%q required></label>`+
			`<label>%s<input type="email" name="email" value=%q required></label>`+
			`<label>%s<input type="password" name="password" minlength="6" required></label>`+
			`<fieldset><legend>%s</legend>`+
			`<label><input type="radio" name="role" value="doctor"%s>%s</label>`+
			`<label><input type="radio" name="role" value="patient"%s>%s</label>`+
			`</fieldset>`,
		esc(T(page.Loc, "auth.full_name")), esc(form.FullName),
		esc(T(page.Loc, "auth.email")), esc(form.Email),
		esc(T(page.Loc, "auth.password")),
		esc(T(page.Loc, "auth.role")),
		doctorChecked, esc(T(page.Loc, "auth.role_doctor")),
		patientChecked, esc(T(page.Loc, "auth.role_patient")),
	); err != nil {
		return err
	}

	// Doctor-only fields; the server drops them for patient sign-ups.
	if _, err := fmt.Fprintf(w,
		`<div class="doctor-fields">`+
			`<label>%s<input type="text" name="specialization"></label>`+
			`<label>%s<input type="number" name="years_of_experience" min="0"></label>`+
			`</div>`+
			`<label>%s<textarea name="bio" maxlength="280"></textarea></label>`+
			`<button type="submit">%s</button></form>`,
		esc(T(page.Loc, "auth.specialization")),
		esc(T(page.Loc, "auth.years_of_experience")),
		esc(T(page.Loc, "auth.bio")),
		esc(T(page.Loc, "auth.signup_submit")),
	); err != nil {
		return err
	}
	return nil
}

func loginForm(page PageContext, form AuthFormState, w io.Writer) error {
	if _, err := fmt.Fprintf(w, `<form method="post" action=%q class="card"><h2>%s</h2>`,
		routepath.AuthLogin, esc(T(page.Loc, "auth.login_heading"))); err != nil {
		return err
	}
	if form.LoginError != "" {
		if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(form.LoginError)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`<label>%s<input type="email" name="email" required></label>`+
			`<label>%s<input type="password" name="password" required></label>`+
			`<button type="submit">%s</button></form>`,
		esc(T(page.Loc, "auth.email")),
		esc(T(page.Loc, "auth.password")),
		esc(T(page.Loc, "auth.login_submit")),
	)
	return err
}
