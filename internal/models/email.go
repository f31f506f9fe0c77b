package models

import (
	"time"
)

// SecretMask is the fixed placeholder substituted for sensitive config
// fields on read. A client re-submitting it unchanged leaves the stored
// value untouched.
const SecretMask = "••••••••"

// EmailConfig is the singleton email provider configuration
type EmailConfig struct {
	ID           string    `json:"-" bson:"_id,omitempty"`
	Provider     string    `json:"provider" bson:"provider"` // "resend" or "smtp"
	FromEmail    string    `json:"fromEmail" bson:"fromEmail"`
	FromName     string    `json:"fromName" bson:"fromName"`
	ReplyTo      string    `json:"replyTo,omitempty" bson:"replyTo,omitempty"`
	APIKey       string    `json:"apiKey,omitempty" bson:"apiKey,omitempty"`
	SMTPHost     string    `json:"smtpHost,omitempty" bson:"smtpHost,omitempty"`
	SMTPPort     int       `json:"smtpPort,omitempty" bson:"smtpPort,omitempty"`
	SMTPUser     string    `json:"smtpUser,omitempty" bson:"smtpUser,omitempty"`
	SMTPPassword string    `json:"smtpPassword,omitempty" bson:"smtpPassword,omitempty"`
	Enabled      bool      `json:"enabled" bson:"enabled"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Masked returns a copy safe to hand to the admin UI: secrets replaced by
// SecretMask when set, internal id dropped.
func (c EmailConfig) Masked() EmailConfig {
	out := c
	out.ID = ""
	if out.APIKey != "" {
		out.APIKey = SecretMask
	}
	if out.SMTPPassword != "" {
		out.SMTPPassword = SecretMask
	}
	return out
}

// EmailMessage is the structured message handed to the mail sender
type EmailMessage struct {
	To       string `json:"to"`
	ToName   string `json:"toName"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
	TextBody string `json:"textBody"`
}

// EmailLog records one send attempt and its outcome
type EmailLog struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	To        string    `json:"to" bson:"to"`
	Subject   string    `json:"subject" bson:"subject"`
	Provider  string    `json:"provider" bson:"provider"`
	Success   bool      `json:"success" bson:"success"`
	Error     string    `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
