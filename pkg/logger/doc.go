// Package logger builds slog loggers for the landing service.
//
// New returns a *slog.Logger whose handler is wrapped with a decorator that
// pulls request-scoped values (request ID, environment) out of the context on
// every log call:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "landing"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "notification sent", logger.Component("notify"))
//
// The attribute helpers (Error, Component, Event, Email, ...) keep key names
// consistent across packages.
package logger
