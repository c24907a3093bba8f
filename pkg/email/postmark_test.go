package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apiflowstudio/landing/pkg/email"
)

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config email.Config
		errMsg string
	}{
		{
			name:   "valid without account token",
			config: email.Config{PostmarkServerToken: "server", SenderEmail: "sender@example.com"},
		},
		{
			name:   "missing server token",
			config: email.Config{SenderEmail: "sender@example.com"},
			errMsg: "PostmarkServerToken is required",
		},
		{
			name:   "missing sender",
			config: email.Config{PostmarkServerToken: "server"},
			errMsg: "SenderEmail is required",
		},
		{
			name:   "invalid sender",
			config: email.Config{PostmarkServerToken: "server", SenderEmail: "invalid-email"},
			errMsg: "SenderEmail must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := email.NewPostmarkClient(tt.config)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				assert.Equal(t, email.ProviderPostmark, client.Provider())
				return
			}
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
