// Package app wires the landing site together.
package app

import (
	"github.com/apiflowstudio/landing/pkg/email"
	"github.com/apiflowstudio/landing/pkg/httpserver"
)

// Config is the process configuration, loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"API Flow Studio"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"` // overrides the environment default when set
	SiteURL  string `env:"SITE_URL" envDefault:"https://apiflowstudio.com"`

	HTTP  httpserver.Config
	Email email.Config
}
