package signup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiflowstudio/landing/modules/notify"
	"github.com/apiflowstudio/landing/modules/signup"
	"github.com/apiflowstudio/landing/pkg/email"
	"github.com/apiflowstudio/landing/pkg/logger"
)

func newLanding(n signup.Notifier) http.Handler {
	r := chi.NewRouter()
	r.Mount("/", signup.Router(signup.RouterOptions{
		Landing: signup.NewPageService(n, signup.WithLogger(logger.Discard())),
	}))
	return r
}

func postSignup(h http.Handler, email string, datastar bool) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Datastar-Request", "true")
		req.Header.Set("Accept", "text/event-stream")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageService_Index(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newLanding(signup.NotifierFunc(func(context.Context, string) error { return nil })).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>API Flow Studio</title>")
	assert.Contains(t, body, `id="signup-form"`)
	assert.Contains(t, body, "Notify Me")
	assert.Contains(t, body, "Be the first to know when we launch.")
}

func TestPageService_Signup(t *testing.T) {
	t.Parallel()

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()
		called := false
		h := newLanding(signup.NotifierFunc(func(context.Context, string) error {
			called = true
			return nil
		}))

		rec := postSignup(h, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter your email address")
		assert.Contains(t, rec.Body.String(), "signup-message-error")
		assert.False(t, called)
	})

	t.Run("success renders full page", func(t *testing.T) {
		t.Parallel()
		var got string
		h := newLanding(signup.NotifierFunc(func(_ context.Context, email string) error {
			got = email
			return nil
		}))

		rec := postSignup(h, "user@example.com", false)

		assert.Equal(t, "user@example.com", got)
		body := rec.Body.String()
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "Thanks! We&#39;ll notify you when we launch.")
		assert.NotContains(t, body, `value="user@example.com"`)
	})

	t.Run("datastar gets form fragment", func(t *testing.T) {
		t.Parallel()
		h := newLanding(signup.NotifierFunc(func(context.Context, string) error {
			return &signup.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid email format"}
		}))

		rec := postSignup(h, "nope", true)

		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"))
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#signup-form")
		assert.Contains(t, body, "Invalid email format")
		assert.Contains(t, body, `value="nope"`)
		assert.NotContains(t, body, "<!DOCTYPE html>")
	})

	t.Run("unconfigured service", func(t *testing.T) {
		t.Parallel()
		svc := notify.NewService(email.NewUnconfigured(email.ProviderResend), notify.WithLogger(logger.Discard()))
		h := newLanding(signup.NewServiceNotifier(svc))

		rec := postSignup(h, "user@example.com", false)

		assert.Contains(t, rec.Body.String(), "Email service not configured")
	})
}

func TestPageService_UnknownRoutes(t *testing.T) {
	t.Parallel()

	h := newLanding(signup.NotifierFunc(func(context.Context, string) error { return nil }))

	t.Run("not found page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>404</h1>")
		assert.Contains(t, rec.Body.String(), "Not found")
	})

	t.Run("method not allowed page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/signup", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "Method not allowed")
	})
}

func TestViews_EscapeInput(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	err := signup.SignupForm(signup.State{
		Status:  signup.StatusError,
		Message: "<script>alert(1)</script>",
		Email:   `"><b>x</b>`,
	}).Render(context.Background(), &sb)
	require.NoError(t, err)

	assert.NotContains(t, sb.String(), "<script>alert(1)</script>")
	assert.NotContains(t, sb.String(), "<b>x</b>")
}

func TestViews_LoadingDisablesButton(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, signup.SignupForm(signup.State{Status: signup.StatusLoading}).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), " disabled>Sending...</button>")
}
