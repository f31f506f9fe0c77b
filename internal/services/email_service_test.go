package services

import (
	"context"
	"errors"
	"testing"

	"qualityze-admin-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailFixtures(config *models.EmailConfig, sendErr error) (*memEmailConfigStore, *memEmailLogStore, *fakeMailer, *EmailService) {
	configs := &memEmailConfigStore{config: config}
	logs := &memEmailLogStore{}
	mailer := &fakeMailer{err: sendErr}
	return configs, logs, mailer, NewEmailService(configs, logs, mailer, &spyInvalidator{})
}

func storedConfig() *models.EmailConfig {
	return &models.EmailConfig{
		ID:           "cfg-1",
		Provider:     "resend",
		FromEmail:    "no-reply@example.com",
		FromName:     "Qualityze",
		APIKey:       "re_live_secret",
		SMTPPassword: "hunter2",
		Enabled:      true,
	}
}

func TestGetConfigMasksSecrets(t *testing.T) {
	_, _, _, svc := emailFixtures(storedConfig(), nil)

	got := svc.GetConfig(context.Background(), adminSession())
	require.NotNil(t, got)
	assert.Equal(t, models.SecretMask, got.APIKey)
	assert.Equal(t, models.SecretMask, got.SMTPPassword)
	assert.Empty(t, got.ID)
	assert.Equal(t, "no-reply@example.com", got.FromEmail)
}

func TestGetConfigNilWhenUnsaved(t *testing.T) {
	_, _, _, svc := emailFixtures(nil, nil)
	assert.Nil(t, svc.GetConfig(context.Background(), adminSession()))
}

func TestGetConfigNilWithoutSession(t *testing.T) {
	_, _, _, svc := emailFixtures(storedConfig(), nil)
	assert.Nil(t, svc.GetConfig(context.Background(), nil))
}

func TestSaveConfigPreservesMaskedSecrets(t *testing.T) {
	configs, _, _, svc := emailFixtures(storedConfig(), nil)

	// settings form round-trip: secrets come back as the placeholder
	submitted := *storedConfig()
	submitted.APIKey = models.SecretMask
	submitted.SMTPPassword = models.SecretMask
	submitted.FromName = "Qualityze Support"

	result := svc.SaveConfig(context.Background(), adminSession(), submitted)
	require.True(t, result.Success)

	assert.False(t, configs.lastAPIKey)
	assert.False(t, configs.lastSMTPPass)
	assert.Equal(t, "re_live_secret", configs.config.APIKey)
	assert.Equal(t, "hunter2", configs.config.SMTPPassword)
	assert.Equal(t, "Qualityze Support", configs.config.FromName)
}

func TestSaveConfigWritesChangedSecrets(t *testing.T) {
	configs, _, _, svc := emailFixtures(storedConfig(), nil)

	submitted := *storedConfig()
	submitted.APIKey = "re_live_rotated"
	submitted.SMTPPassword = models.SecretMask

	result := svc.SaveConfig(context.Background(), adminSession(), submitted)
	require.True(t, result.Success)

	assert.True(t, configs.lastAPIKey)
	assert.False(t, configs.lastSMTPPass)
	assert.Equal(t, "re_live_rotated", configs.config.APIKey)
	assert.Equal(t, "hunter2", configs.config.SMTPPassword)
}

func TestSaveConfigRequiresSession(t *testing.T) {
	configs, _, _, svc := emailFixtures(storedConfig(), nil)

	result := svc.SaveConfig(context.Background(), nil, *storedConfig())
	assert.False(t, result.Success)
	assert.Equal(t, ErrUnauthorized, result.Error)
	assert.Zero(t, configs.saveCount)
}

func TestTestSendLogsSuccess(t *testing.T) {
	_, logs, mailer, svc := emailFixtures(storedConfig(), nil)

	result := svc.TestSend(context.Background(), adminSession(), "ops@example.com")
	require.True(t, result.Success)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ops@example.com", mailer.sent[0].To)
	assert.Equal(t, "Test Email from Qualityze Admin", mailer.sent[0].Subject)
	assert.NotEmpty(t, mailer.sent[0].HTMLBody)
	assert.NotEmpty(t, mailer.sent[0].TextBody)

	require.Len(t, logs.entries, 1)
	assert.True(t, logs.entries[0].Success)
	assert.Equal(t, "resend", logs.entries[0].Provider)
	assert.Empty(t, logs.entries[0].Error)
}

func TestTestSendLogsFailure(t *testing.T) {
	_, logs, _, svc := emailFixtures(storedConfig(), errors.New("resend: 401 invalid api key"))

	result := svc.TestSend(context.Background(), adminSession(), "ops@example.com")
	assert.False(t, result.Success)
	assert.Equal(t, "resend: 401 invalid api key", result.Error)

	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Success)
	assert.Equal(t, "resend: 401 invalid api key", logs.entries[0].Error)
}

func TestLogsDefaultLimit(t *testing.T) {
	_, logs, _, svc := emailFixtures(storedConfig(), nil)
	for i := 0; i < 60; i++ {
		logs.entries = append(logs.entries, models.EmailLog{To: "ops@example.com"})
	}

	got := svc.Logs(context.Background(), 0)
	assert.Len(t, got, 50)
}
