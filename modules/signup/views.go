package signup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/apiflowstudio/landing/handler"
)

// FormTarget is the element id patched on Datastar submissions.
const FormTarget = "signup-form"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// PageParams contains data for rendering the landing page.
type PageParams struct {
	AppName string
	Year    int
	State   State
}

// Views renders the landing page. Any field left nil falls back to the
// built-in markup.
type Views struct {
	Page      func(PageParams) templ.Component
	Form      func(State) templ.Component
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

func (v *Views) withDefaults() *Views {
	out := Views{}
	if v != nil {
		out = *v
	}
	if out.Page == nil {
		out.Page = LandingPage
	}
	if out.Form == nil {
		out.Form = SignupForm
	}
	if out.ErrorPage == nil {
		out.ErrorPage = ErrorPage
	}
	return &out
}

// SignupForm renders the form with its status message.
func SignupForm(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		buttonText := "Notify Me"
		disabled := ""
		if s.Loading() {
			buttonText = "Sending..."
			disabled = " disabled"
		}

		_, err := fmt.Fprintf(w, `<div id="%s" class="signup">
<p class="signup-lead">Be the first to know when we launch.</p>
<form method="post" action="/signup" data-indicator-sending data-on-submit__prevent="@post('/signup', {contentType: 'form'})">
<input type="email" name="email" placeholder="Enter your email" value="%s">
<button type="submit" data-attr-disabled="$sending" data-text="$sending ? 'Sending...' : 'Notify Me'"%s>%s</button>
</form>
`,
			FormTarget,
			templ.EscapeString(s.Email),
			disabled,
			buttonText,
		)
		if err != nil {
			return err
		}

		if s.Message != "" {
			class := "signup-message"
			if s.Status == StatusError {
				class += " signup-message-error"
			}
			if _, err := fmt.Fprintf(w, "<p class=\"%s\" role=\"status\">%s</p>\n", class, templ.EscapeString(s.Message)); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</div>\n")
		return err
	})
}

// LandingPage renders the full landing page around SignupForm.
func LandingPage(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(p.AppName)
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%[1]s</title>
<script type="module" src="%[2]s"></script>
</head>
<body>
<main>
<img src="/apiflowstudiologo.png" alt="Logo" width="350" height="150">
<p class="tagline">Visualize Your API Flows Like Never Before</p>
<p class="intro">A collaborative platform for devs, PMs, and analysts to design use-case diagrams, attach API endpoints, and map request-response flows, all in one place.</p>
`, name, datastarScript); err != nil {
			return err
		}

		if err := SignupForm(p.State).Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<nav class="social">
<a href="#">[Twitter]</a>
<a href="#">[GitHub]</a>
<a href="#">[LinkedIn]</a>
</nav>
</main>
<footer>&copy; %d %s</footer>
</body>
</html>
`, p.Year, name)
		return err
	})
}

// ErrorPage renders a minimal error page.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>%[1]d</title></head>
<body>
<main>
<h1>%[1]d</h1>
<p>%[2]s</p>
<p class="request-id">%[3]s</p>
<a href="/">Back to home</a>
</main>
</body>
</html>
`, p.StatusCode, templ.EscapeString(p.Error), templ.EscapeString(p.RequestID))
		return err
	})
}
