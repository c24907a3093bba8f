package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Brand holds the values interpolated into the launch notification.
type Brand struct {
	Name        string
	SiteURL     string
	LogoURL     string
	TwitterURL  string
	LinkedInURL string
	GitHubURL   string
	Year        int
}

// DefaultBrand returns the API Flow Studio brand.
func DefaultBrand() Brand {
	return Brand{
		Name:        "API Flow Studio",
		SiteURL:     "https://apiflowstudio.com",
		LogoURL:     "https://apiflowstudio.com/apiflowstudiologo.png",
		TwitterURL:  "https://twitter.com/apiflowstudio",
		LinkedInURL: "https://linkedin.com/company/apiflowstudio",
		GitHubURL:   "https://github.com/apiflowstudio",
		Year:        2023,
	}
}

const launchStyles = `body, html { margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; }
.header { text-align: center; padding: 20px 0; background: linear-gradient(135deg, #6366F1, #8B5CF6); border-radius: 8px 8px 0 0; }
.header img { max-width: 180px; height: auto; }
.content { padding: 30px 20px; background-color: #f9fafb; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
h1 { color: #4F46E5; font-size: 24px; margin-bottom: 20px; text-align: center; }
p { margin-bottom: 16px; font-size: 16px; }
.footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6B7280; font-size: 14px; }
.social-links { margin: 20px 0; text-align: center; }
.social-links a { display: inline-block; margin: 0 10px; color: #4F46E5; text-decoration: none; }
.button { display: inline-block; background-color: #4F46E5; color: white; text-decoration: none; padding: 12px 24px; border-radius: 4px; font-weight: 500; margin: 20px 0; }
.button-container { text-align: center; }`

// LaunchNotification is the confirmation sent to everyone who signs up for
// launch news. Apart from the brand it is static.
func LaunchNotification(b Brand) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(b.Name)
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%[1]s</title>
<style>
%[2]s
</style>
</head>
<body>
<div class="container">
<div class="header"><img src="%[3]s" alt="%[1]s Logo"></div>
<div class="content">
<h1>Thanks for your interest in %[1]s!</h1>
<p>We're working hard to build something amazing and we're excited to have you join us on this journey.</p>
<p>We'll notify you as soon as we launch so you can be one of the first to experience %[1]s.</p>
<div class="button-container"><a href="%[4]s" class="button">Learn More</a></div>
<p>In the meantime, feel free to follow our journey on social media for updates and behind-the-scenes content.</p>
<div class="social-links">
<a href="%[5]s">Twitter</a> &bull;
<a href="%[6]s">LinkedIn</a> &bull;
<a href="%[7]s">GitHub</a>
</div>
<div class="footer">
<p>&copy; %[8]d %[1]s. All rights reserved.</p>
<p>If you didn't sign up for notifications, please ignore this email.</p>
</div>
</div>
</div>
</body>
</html>
`,
			name,
			launchStyles,
			templ.EscapeString(b.LogoURL),
			templ.EscapeString(b.SiteURL),
			templ.EscapeString(b.TwitterURL),
			templ.EscapeString(b.LinkedInURL),
			templ.EscapeString(b.GitHubURL),
			b.Year,
		)
		return err
	})
}
