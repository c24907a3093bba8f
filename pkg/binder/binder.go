// Package binder decodes HTTP request bodies into typed structs.
//
// Binders have the signature func(r *http.Request, v any) error and plug into
// handler.Wrap via handler.WithBinders. A binder that does not apply to the
// request's content type returns ErrBinderNotApplicable so the next one can
// run:
//
//	http.Handle("/signup", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SignupRequest](binder.JSON(), binder.Form()),
//	))
package binder

import (
	"errors"
	"mime"
	"net/http"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrBinderNotApplicable  = errors.New("binder not applicable")
)

// mediaType returns the request's media type without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mt
}
