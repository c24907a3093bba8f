package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v2"
)

type resendClient struct {
	client *resend.Client
	config Config
}

// ResendOption customises the Resend client.
type ResendOption func(*resendOptions)

type resendOptions struct {
	httpClient *http.Client
}

// WithResendHTTPClient sets the HTTP client used to reach the Resend API.
func WithResendHTTPClient(c *http.Client) ResendOption {
	return func(o *resendOptions) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// NewResendClient creates a Resend-backed sender.
func NewResendClient(cfg Config, opts ...ResendOption) (Sender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
	}
	if err := validateAddress("SenderEmail", cfg.SenderEmail, true); err != nil {
		return nil, err
	}
	if err := validateAddress("SupportEmail", cfg.SupportEmail, false); err != nil {
		return nil, err
	}

	o := &resendOptions{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(o)
	}

	return &resendClient{
		client: resend.NewCustomClient(o.httpClient, cfg.ResendAPIKey),
		config: cfg,
	}, nil
}

func (c *resendClient) Provider() string { return ProviderResend }

// SendEmail submits one message. The returned payload is Resend's response
// body, e.g. {"id":"..."}.
func (c *resendClient) SendEmail(ctx context.Context, params SendEmailParams) (json.RawMessage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	from := params.From
	if from == "" {
		from = c.config.SenderEmail
	}

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{params.SendTo},
		Subject: params.Subject,
		Html:    params.BodyHTML,
		ReplyTo: c.config.SupportEmail,
	})
	if err != nil {
		return nil, sendError(ProviderResend, err)
	}
	if sent == nil {
		return nil, sendError(ProviderResend, errors.New("empty response from resend"))
	}

	payload, err := json.Marshal(sent)
	if err != nil {
		return nil, sendError(ProviderResend, err)
	}
	return payload, nil
}
