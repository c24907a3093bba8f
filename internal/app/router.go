package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/apiflowstudio/landing/modules/notify"
	"github.com/apiflowstudio/landing/modules/signup"
	"github.com/apiflowstudio/landing/pkg/clientip"
	"github.com/apiflowstudio/landing/pkg/email"
	"github.com/apiflowstudio/landing/pkg/email/templates"
	"github.com/apiflowstudio/landing/pkg/environment"
	"github.com/apiflowstudio/landing/pkg/httpserver"
	"github.com/apiflowstudio/landing/pkg/requestid"
)

// NewRouter builds the HTTP handler for the whole site:
//
//	GET  /health       liveness
//	GET  /ready        readiness, fails while the email provider is unconfigured
//	POST /api/notify   notification endpoint
//	GET  /             landing page
//	POST /signup       progressive form post
func NewRouter(cfg Config, sender email.Sender, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		clientip.Middleware(),
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
		middleware.Recoverer,
	)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, httpserver.Check{
		Name: "email",
		Fn: func(context.Context) error {
			if !email.IsConfigured(sender) {
				return email.ErrNotConfigured
			}
			return nil
		},
	}))

	brand := templates.DefaultBrand()
	if cfg.AppName != "" {
		brand.Name = cfg.AppName
	}
	if cfg.SiteURL != "" {
		brand.SiteURL = cfg.SiteURL
	}

	svc := notify.NewService(sender,
		notify.WithFrom(cfg.Email.SenderEmail),
		notify.WithBrand(brand),
		notify.WithLogger(log),
	)

	r.Mount("/api", notify.Router(notify.RouterOptions{
		Notify: notify.NewHandler(svc, log),
	}))
	r.Mount("/", signup.Router(signup.RouterOptions{
		Landing: signup.NewPageService(signup.NewServiceNotifier(svc),
			signup.WithAppName(cfg.AppName),
			signup.WithLogger(log),
		),
	}))

	return r
}
