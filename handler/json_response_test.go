package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiflowstudio/landing/handler"
	"github.com/apiflowstudio/landing/pkg/binder"
	"github.com/apiflowstudio/landing/pkg/validator"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	resp := handler.JSON(map[string]any{"success": true})
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "http error",
			err:        handler.NewHTTPError(http.StatusBadRequest, "Email is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email is required"}`,
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("outer: %w", handler.NewHTTPError(http.StatusTeapot, "")),
			wantStatus: http.StatusTeapot,
			wantBody:   `{"error":"I'm a teapot"}`,
		},
		{
			name:       "unsupported media type",
			err:        fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType),
			wantStatus: http.StatusUnsupportedMediaType,
			wantBody:   `{"error":"Unsupported media type"}`,
		},
		{
			name:       "validation error",
			err:        validator.First(validator.Required("email", "")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"email: is required"}`,
		},
		{
			name:       "plain error hides details",
			err:        errors.New("db password is hunter2"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred processing your request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
