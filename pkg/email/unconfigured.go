package email

import (
	"context"
	"encoding/json"
)

// Unconfigured stands in for a provider whose credential is absent.
// It never contacts the network; every send fails with ErrNotConfigured.
type Unconfigured struct {
	provider string
}

func NewUnconfigured(provider string) Unconfigured {
	return Unconfigured{provider: provider}
}

func (u Unconfigured) Provider() string { return u.provider }

func (u Unconfigured) SendEmail(context.Context, SendEmailParams) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

// IsConfigured reports whether s can actually deliver email.
func IsConfigured(s Sender) bool {
	if s == nil {
		return false
	}
	_, unconfigured := s.(Unconfigured)
	return !unconfigured
}
