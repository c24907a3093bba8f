// Package email sends transactional emails through a pluggable provider.
//
// Every provider implements Sender. SendEmail returns the provider's response
// as raw JSON so callers can pass it through without knowing its shape.
//
// Supported providers:
//   - Resend (default), authenticated with RESEND_API_KEY
//   - Postmark, authenticated with POSTMARK_SERVER_TOKEN
//   - DevSender, which writes each message to disk for local development
//
// New selects a provider from Config. When the provider's credential is
// missing it returns the Unconfigured sender instead of failing, so the
// application still starts and callers can branch on IsConfigured:
//
//	sender, err := email.New(cfg)
//	if err != nil {
//		// invalid configuration (unknown provider, bad sender address)
//	}
//	if !email.IsConfigured(sender) {
//		// report "service not configured" without calling the provider
//	}
//
//	payload, err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome!",
//		BodyHTML: html,
//	})
//
// Provider failures are returned as *SendError, which matches
// ErrFailedToSendEmail with errors.Is and keeps the provider's own message.
package email
