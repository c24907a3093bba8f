package email

// Config holds email service configuration.
// Provider credentials are optional: without one, New returns the
// Unconfigured sender so the endpoint can report the misconfiguration.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"API Flow Studio <onboarding@apiflowstudio.com>"`
	SupportEmail         string `env:"SUPPORT_EMAIL"` // Reply-To, optional
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

