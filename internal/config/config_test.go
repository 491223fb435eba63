package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SMTP_USER", "hr@example.com")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 5, cfg.DBRetries)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, "09:00", cfg.Shift.Start)
	assert.Equal(t, 15, cfg.Shift.GraceMinutes)
	assert.Equal(t, "hr@example.com", cfg.MailFrom)
	assert.Contains(t, cfg.DSN(), "password=secret")
	assert.False(t, cfg.SMTPEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SHIFT_START", "08:30")
	t.Setenv("SHIFT_GRACE_MINUTES", "5")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "08:30", cfg.Shift.Start)
	assert.Equal(t, 5, cfg.Shift.GraceMinutes)
	assert.True(t, cfg.SMTPEnabled())
}

func TestLoad_InvalidShift(t *testing.T) {
	t.Setenv("SHIFT_START", "9am")

	_, err := Load()

	assert.Error(t, err)
}
