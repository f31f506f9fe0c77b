package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/utils"
)

// Mailer delivers a structured message using the active email
// configuration. Implementations construct and hand off the message; the
// caller owns logging and result propagation.
type Mailer interface {
	Send(ctx context.Context, config *models.EmailConfig, msg models.EmailMessage) error
}

// ProviderMailer dispatches to the transport named by the stored config,
// falling back to the environment default when the config omits one
type ProviderMailer struct {
	defaultProvider string
	resend          *ResendMailer
	smtp            *SMTPMailer
}

func NewMailer(defaultProvider string) *ProviderMailer {
	return &ProviderMailer{
		defaultProvider: defaultProvider,
		resend:          &ResendMailer{client: &http.Client{Timeout: 30 * time.Second}},
		smtp:            &SMTPMailer{},
	}
}

func (m *ProviderMailer) Send(ctx context.Context, config *models.EmailConfig, msg models.EmailMessage) error {
	if config == nil {
		return errors.New("email is not configured")
	}
	if !config.Enabled {
		return errors.New("email sending is disabled")
	}

	provider := strings.ToLower(config.Provider)
	if provider == "" {
		provider = strings.ToLower(m.defaultProvider)
	}

	switch provider {
	case "smtp":
		return m.smtp.Send(ctx, config, msg)
	case "resend", "":
		return m.resend.Send(ctx, config, msg)
	default:
		return fmt.Errorf("unknown email provider: %s", provider)
	}
}

// ResendMailer sends through the Resend HTTP API
type ResendMailer struct {
	client *http.Client
}

func (m *ResendMailer) Send(ctx context.Context, config *models.EmailConfig, msg models.EmailMessage) error {
	if config.APIKey == "" {
		return errors.New("resend API key not configured")
	}

	reqBody := map[string]interface{}{
		"from":    fmt.Sprintf("%s <%s>", config.FromName, config.FromEmail),
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTMLBody,
		"text":    msg.TextBody,
	}
	if config.ReplyTo != "" {
		reqBody["reply_to"] = config.ReplyTo
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// SMTPMailer sends through a configured SMTP relay
type SMTPMailer struct{}

func (m *SMTPMailer) Send(_ context.Context, config *models.EmailConfig, msg models.EmailMessage) error {
	if config.SMTPHost == "" {
		return errors.New("SMTP host not configured")
	}

	port := config.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", config.SMTPHost, port)

	var auth smtp.Auth
	if config.SMTPUser != "" {
		auth = smtp.PlainAuth("", config.SMTPUser, config.SMTPPassword, config.SMTPHost)
	}

	return smtp.SendMail(addr, auth, config.FromEmail, []string{msg.To}, buildMIMEMessage(config, msg))
}

// buildMIMEMessage assembles a multipart/alternative body with the plain
// text part first, per RFC 2046 ordering. A message carrying only HTML
// gets its text part derived by stripping the markup.
func buildMIMEMessage(config *models.EmailConfig, msg models.EmailMessage) []byte {
	const boundary = "qz-mail-boundary"

	text := msg.TextBody
	if text == "" {
		text = utils.StripHTML(msg.HTMLBody)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", config.FromName), config.FromEmail)
	if msg.ToName != "" {
		fmt.Fprintf(&b, "To: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", msg.ToName), msg.To)
	} else {
		fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	}
	if config.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", config.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(msg.HTMLBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.Bytes()
}
