package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrFailedToSendEmail = errors.New("email: failed to send email")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrInvalidParams     = errors.New("email: invalid params")
	ErrNotConfigured     = errors.New("email: service not configured")
)

// Provider names accepted by Config.Provider.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Sender delivers a single email and returns the provider's response payload.
type Sender interface {
	Provider() string
	SendEmail(ctx context.Context, params SendEmailParams) (json.RawMessage, error)
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	From     string `json:"from,omitempty"` // Overrides Config.SenderEmail when set
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks the fields every provider needs. The recipient is only
// checked for presence; its format is left to the caller and the provider.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// SendError is a provider-side failure. Error returns the provider's message
// unchanged.
type SendError struct {
	Provider string
	Err      error
}

func (e *SendError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }

func (e *SendError) Is(target error) bool { return target == ErrFailedToSendEmail }

func sendError(provider string, err error) error {
	return &SendError{Provider: provider, Err: err}
}

// New builds the Sender selected by cfg.Provider. A missing credential yields
// the Unconfigured sender with a nil error.
func New(cfg Config) (Sender, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderResend:
		if cfg.ResendAPIKey == "" {
			return NewUnconfigured(ProviderResend), nil
		}
		return NewResendClient(cfg)
	case ProviderPostmark:
		if cfg.PostmarkServerToken == "" {
			return NewUnconfigured(ProviderPostmark), nil
		}
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

func validateAddress(name, addr string, required bool) error {
	if addr == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
		}
		return nil
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidConfig, name)
	}
	return nil
}
