package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// NewPostmarkClient creates a Postmark-backed sender. The account token is
// optional since only the server API is used.
func NewPostmarkClient(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if err := validateAddress("SenderEmail", cfg.SenderEmail, true); err != nil {
		return nil, err
	}
	if err := validateAddress("SupportEmail", cfg.SupportEmail, false); err != nil {
		return nil, err
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

func (c *postmarkClient) Provider() string { return ProviderPostmark }

// SendEmail tracks opens and HTML link clicks. The returned payload is
// Postmark's EmailResponse.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) (json.RawMessage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	from := params.From
	if from == "" {
		from = c.config.SenderEmail
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       from,
		ReplyTo:    c.config.SupportEmail,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return nil, sendError(ProviderPostmark, err)
	}
	if resp.ErrorCode > 0 {
		return nil, sendError(ProviderPostmark, fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, sendError(ProviderPostmark, err)
	}
	return payload, nil
}
