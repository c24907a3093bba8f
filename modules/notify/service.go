package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/apiflowstudio/landing/pkg/email"
	"github.com/apiflowstudio/landing/pkg/email/templates"
	"github.com/apiflowstudio/landing/pkg/logger"
	"github.com/apiflowstudio/landing/pkg/validator"
)

// Request is a signup request. It is never stored.
type Request struct {
	Email Address `json:"email"`
}

// Address is the email field of a Request. JSON numbers and booleans are
// kept as their literal text so they fail the format check instead of the
// body parse. Arrays and objects are rejected.
type Address string

func (a *Address) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*a = ""
	case string:
		*a = Address(t)
	case float64, bool:
		*a = Address(bytes.TrimSpace(data))
	default:
		return fmt.Errorf("email must be a string, got %T", t)
	}
	return nil
}

// Response is the success body of POST /api/notify.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Service validates signup requests and sends the launch notification.
// It holds no per-request state.
type Service struct {
	sender  email.Sender
	from    string
	subject string
	brand   templates.Brand
	log     *slog.Logger
}

// ServiceOption configures Service.
type ServiceOption func(*Service)

// WithFrom overrides the sender address. Empty keeps the provider default.
func WithFrom(from string) ServiceOption {
	return func(s *Service) {
		s.from = from
	}
}

func WithSubject(subject string) ServiceOption {
	return func(s *Service) {
		if subject != "" {
			s.subject = subject
		}
	}
}

func WithBrand(b templates.Brand) ServiceOption {
	return func(s *Service) {
		s.brand = b
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a Service. A nil sender is treated as unconfigured.
func NewService(sender email.Sender, opts ...ServiceOption) *Service {
	if sender == nil {
		sender = email.NewUnconfigured("")
	}
	s := &Service{
		sender:  sender,
		subject: DefaultSubject,
		brand:   templates.DefaultBrand(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("notify"), logger.Provider(sender.Provider()))
	return s
}

// Notify sends the launch notification to addr.
//
// Checks run in a fixed order: presence, service configuration, format.
// An unconfigured sender is reported before the address format is looked at
// and the provider is never contacted.
func (s *Service) Notify(ctx context.Context, addr string) (Response, error) {
	s.log.DebugContext(ctx, "notify request received", logger.Email(addr))

	if err := validator.First(validator.Required("email", addr)); err != nil {
		s.log.WarnContext(ctx, "notify request rejected", logger.Event("email_missing"))
		return Response{}, validationError(MsgEmailRequired, err)
	}

	if !email.IsConfigured(s.sender) {
		s.log.ErrorContext(ctx, "email service not configured", logger.Event("sender_unconfigured"))
		return Response{}, configurationError(email.ErrNotConfigured)
	}

	if err := validator.First(validator.BasicEmail("email", addr)); err != nil {
		s.log.WarnContext(ctx, "notify request rejected", logger.Event("email_invalid"), logger.Email(addr))
		return Response{}, validationError(MsgInvalidEmail, err)
	}

	body, err := templates.Render(ctx, templates.LaunchNotification(s.brand))
	if err != nil {
		return Response{}, fmt.Errorf("notify: render launch notification: %w", err)
	}

	start := time.Now()
	payload, err := s.sender.SendEmail(ctx, email.SendEmailParams{
		From:     s.from,
		SendTo:   addr,
		Subject:  s.subject,
		BodyHTML: body,
		Tag:      launchNotificationTag,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send launch notification",
			logger.Error(err),
			logger.Email(addr),
			logger.Duration(time.Since(start)),
		)
		return Response{}, providerError(err)
	}

	s.log.InfoContext(ctx, "launch notification sent",
		logger.Email(addr),
		logger.Duration(time.Since(start)),
	)

	return Response{
		Success: true,
		Message: MsgAddedToWaitlist,
		Data:    payload,
	}, nil
}
