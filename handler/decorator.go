package handler

import (
	"log/slog"
	"time"

	"github.com/apiflowstudio/landing/pkg/logger"
)

// LogRequests logs every handled request at debug level once the handler has
// produced its response. Rendering is not included in the duration.
func LogRequests[C Context, R any](log *slog.Logger) Decorator[C, R] {
	if log == nil {
		log = slog.Default()
	}
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			r := ctx.Request()
			log.DebugContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
