package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiflowstudio/landing/handler"
	"github.com/apiflowstudio/landing/pkg/binder"
	"github.com/apiflowstudio/landing/pkg/logger"
)

type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	_, err := w.Write([]byte(m.body))
	return err
}

type emailRequest struct {
	Email string `json:"email" form:"email"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("basic handler without options", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx.Request())
			assert.Equal(t, "", req)
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("render error goes to error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return nil
		})
		wrapped := handler.Wrap(h, handler.WithErrorHandler[handler.Context, string](func(ctx handler.Context, err error) {
			got = err
		}))
		wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("binder chain skips non-applicable binders", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, emailRequest](func(ctx handler.Context, req emailRequest) handler.Response {
			return handler.JSON(req)
		})
		wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, emailRequest](binder.JSONOrSkip(), binder.Form()))

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=user%40example.com"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		wrapped(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"user@example.com"}`, rec.Body.String())
	})

	t.Run("bind error with json error handler", func(t *testing.T) {
		t.Parallel()
		called := false
		h := handler.HandlerFunc[handler.Context, emailRequest](func(ctx handler.Context, req emailRequest) handler.Response {
			called = true
			return handler.JSON(req)
		})
		wrapped := handler.Wrap(h,
			handler.WithBinders[handler.Context, emailRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, emailRequest](handler.JSONErrorHandler(logger.Discard())),
		)

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		wrapped(rec, r)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mk := func(name string) handler.Decorator[handler.Context, string] {
			return func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
				return func(ctx handler.Context, req string) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			order = append(order, "handler")
			return mockResponse{statusCode: http.StatusNoContent}
		})
		wrapped := handler.Wrap(h, handler.WithDecorators(mk("first"), mk("second")))
		wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, []string{"first", "second", "handler"}, order)
	})
}

func TestLogRequests(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := handler.HandlerFunc[handler.Context, emailRequest](func(ctx handler.Context, req emailRequest) handler.Response {
		return handler.JSON(req)
	})
	wrapped := handler.Wrap(h,
		handler.WithDecorators(handler.LogRequests[handler.Context, emailRequest](log)),
	)

	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodPost, "/api/notify", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request handled", entry["msg"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, "/api/notify", entry["path"])
	assert.Contains(t, entry, "duration")
}
