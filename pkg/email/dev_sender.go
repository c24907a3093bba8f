package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes each email to dir as an .html body plus a .json metadata
// file instead of delivering it.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development sender. The directory is created on the
// first send.
func NewDevSender(dir string) *DevSender {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "landing-emails")
	}
	return &DevSender{dir: dir, now: time.Now}
}

func (d *DevSender) Provider() string { return ProviderDev }

type devMetadata struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	From      string `json:"from,omitempty"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	Path      string `json:"path"`
}

// SendEmail saves the message and returns its metadata as the payload.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) (json.RawMessage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, sendError(ProviderDev, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, sendError(ProviderDev, fmt.Errorf("create directory: %w", err))
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0o644); err != nil {
		return nil, sendError(ProviderDev, fmt.Errorf("write html: %w", err))
	}

	meta := devMetadata{
		ID:        base,
		Timestamp: now.Format(time.RFC3339),
		From:      params.From,
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		Path:      htmlPath,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, sendError(ProviderDev, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return nil, sendError(ProviderDev, fmt.Errorf("write metadata: %w", err))
	}

	return json.Marshal(meta)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename lowercases s, replaces spaces with underscores and drops
// anything outside [a-zA-Z0-9-_.], truncated to 100 bytes.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
