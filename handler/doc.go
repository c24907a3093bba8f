// Package handler provides type-safe HTTP handlers.
//
// A HandlerFunc receives a Context and an already-bound request value and
// returns a Response; Wrap adapts it to http.HandlerFunc:
//
//	type SignupRequest struct {
//		Email string `json:"email"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, SignupRequest](
//		func(ctx handler.Context, req SignupRequest) handler.Response {
//			return handler.JSON(map[string]string{"email": req.Email})
//		},
//	)
//
//	r.Post("/signup", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SignupRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SignupRequest](handler.JSONErrorHandler(log)),
//	))
//
// Responses cover plain JSON, templ components, and Datastar SSE patches for
// requests made by the Datastar client. Errors from binding or rendering go to
// the configured ErrorHandler.
package handler
