package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apiflowstudio/landing/internal/app"
	"github.com/apiflowstudio/landing/pkg/clientip"
	"github.com/apiflowstudio/landing/pkg/config"
	"github.com/apiflowstudio/landing/pkg/email"
	"github.com/apiflowstudio/landing/pkg/environment"
	"github.com/apiflowstudio/landing/pkg/httpserver"
	"github.com/apiflowstudio/landing/pkg/logger"
	"github.com/apiflowstudio/landing/pkg/requestid"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func newLogger(cfg app.Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg app.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	sender, err := email.New(cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}
	if !email.IsConfigured(sender) {
		log.Warn("email provider credential missing, signups will fail until it is set",
			logger.Provider(sender.Provider()),
		)
	} else {
		log.Info("email provider ready", logger.Provider(sender.Provider()))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := append([]httpserver.Option{httpserver.WithLogger(log)}, consoleHooks(cmd.OutOrStdout())...)
	srv := httpserver.NewFromConfig(cfg.HTTP, opts...)
	return srv.Run(ctx, app.NewRouter(cfg, sender, log))
}

// consoleHooks print the site URL once the listener is bound and a line when
// the server has drained.
func consoleHooks(w io.Writer) []httpserver.Option {
	return []httpserver.Option{
		httpserver.OnStart(func(addr string) {
			fmt.Fprintf(w, "Landing page available at %s\n", siteURL(addr))
		}),
		httpserver.OnStop(func() {
			fmt.Fprintln(w, "Server stopped")
		}),
	}
}

// siteURL turns a listen address into a browsable URL. Wildcard hosts become
// localhost.
func siteURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	switch host {
	case "", "::", "0.0.0.0":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
