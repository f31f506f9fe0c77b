package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"qualityze-admin-be/internal/models"
)

// EmailConfigStore persists the singleton provider configuration
type EmailConfigStore interface {
	Get(ctx context.Context) (*models.EmailConfig, error)
	Save(ctx context.Context, config models.EmailConfig, updateAPIKey, updateSMTPPassword bool) error
}

// EmailLogStore records send attempts
type EmailLogStore interface {
	Insert(ctx context.Context, entry *models.EmailLog) error
	Recent(ctx context.Context, limit int) ([]models.EmailLog, error)
}

// View path invalidated by config mutations
const adminEmailSettingsPath = "/admin/downloads/emails"

// EmailService manages the email configuration and test sends
type EmailService struct {
	configs     EmailConfigStore
	logs        EmailLogStore
	mailer      Mailer
	invalidator ViewInvalidator
}

func NewEmailService(configs EmailConfigStore, logs EmailLogStore, mailer Mailer, invalidator ViewInvalidator) *EmailService {
	return &EmailService{
		configs:     configs,
		logs:        logs,
		mailer:      mailer,
		invalidator: invalidator,
	}
}

// GetConfig returns the stored configuration with secrets masked and the
// internal id dropped. Nil when unauthorized, unsaved, or on store trouble.
func (s *EmailService) GetConfig(ctx context.Context, sess *Session) *models.EmailConfig {
	if !sess.Valid() {
		return nil
	}

	config, err := s.configs.Get(ctx)
	if err != nil {
		log.Println("get email config error:", err)
		return nil
	}
	if config == nil {
		return nil
	}

	masked := config.Masked()
	return &masked
}

// SaveConfig upserts the singleton. A sensitive field arriving still equal
// to the mask placeholder is excluded from the write so the stored secret
// survives a round-trip through the settings form.
func (s *EmailService) SaveConfig(ctx context.Context, sess *Session, config models.EmailConfig) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	updateAPIKey := config.APIKey != models.SecretMask
	updateSMTPPassword := config.SMTPPassword != models.SecretMask

	if err := s.configs.Save(ctx, config, updateAPIKey, updateSMTPPassword); err != nil {
		log.Println("save email config error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminEmailSettingsPath)
	return models.OK()
}

// TestSend delivers a fixed test message to the given address and logs
// the outcome. The mailer's result is propagated uninterpreted.
func (s *EmailService) TestSend(ctx context.Context, sess *Session, testEmail string) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	config, err := s.configs.Get(ctx)
	if err != nil {
		log.Println("test email error:", err)
		return models.Fail(err.Error())
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	msg := models.EmailMessage{
		To:      testEmail,
		ToName:  "Test User",
		Subject: "Test Email from Qualityze Admin",
		HTMLBody: fmt.Sprintf(`<h2>Email Configuration Test</h2>
<p>This is a test email to verify your email configuration is working correctly.</p>
<p>If you received this email, your email settings are configured properly!</p>
<hr>
<p style="color: #666; font-size: 12px;">
  Sent from Qualityze Admin Panel<br>
  %s
</p>`, now),
		TextBody: fmt.Sprintf(`Email Configuration Test

This is a test email to verify your email configuration is working correctly.
If you received this email, your email settings are configured properly!

Sent from Qualityze Admin Panel
%s`, now),
	}

	sendErr := s.mailer.Send(ctx, config, msg)

	entry := &models.EmailLog{
		To:        testEmail,
		Subject:   msg.Subject,
		Success:   sendErr == nil,
		CreatedAt: time.Now(),
	}
	if config != nil {
		entry.Provider = config.Provider
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Println("email log write error:", err)
	}

	if sendErr != nil {
		return models.Fail(sendErr.Error())
	}
	return models.OK()
}

// Logs returns recent send attempts, degrading to empty on store trouble
func (s *EmailService) Logs(ctx context.Context, limit int) []models.EmailLog {
	if limit <= 0 {
		limit = 50
	}

	logs, err := s.logs.Recent(ctx, limit)
	if err != nil {
		log.Println("get email logs error:", err)
		return []models.EmailLog{}
	}
	if logs == nil {
		return []models.EmailLog{}
	}
	return logs
}
