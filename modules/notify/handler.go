package notify

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apiflowstudio/landing/handler"
	"github.com/apiflowstudio/landing/pkg/binder"
)

// Handler serves POST /api/notify.
type Handler struct {
	svc          *Service
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		svc:          svc,
		log:          log,
		errorHandler: handler.JSONErrorHandler(log),
	}
}

// Handle routes POST / to the notify operation. Other methods get a JSON
// 405 so API clients never see an HTML page.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(handler.ErrorResponder(h.errorHandler, handler.ErrMethodNotAllowed))
	r.NotFound(handler.ErrorResponder(h.errorHandler, handler.ErrNotFound))

	r.Post("/", handler.Wrap(h.notify,
		handler.WithBinders[handler.Context, Request](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
		handler.WithDecorators(handler.LogRequests[handler.Context, Request](h.log)),
	))
	return r
}

func (h *Handler) notify(ctx handler.Context, req Request) handler.Response {
	resp, err := h.svc.Notify(ctx, string(req.Email))
	if err != nil {
		return handler.JSONError(toHTTPError(err))
	}
	return handler.JSON(resp)
}

// toHTTPError converts Notify errors to the status and message sent to the
// client. Anything unexpected becomes a generic 500.
func toHTTPError(err error) error {
	var nerr *Error
	if errors.As(err, &nerr) {
		return handler.NewHTTPError(nerr.Code, nerr.Message)
	}
	return errors.Join(handler.ErrInternalServerError, err)
}
