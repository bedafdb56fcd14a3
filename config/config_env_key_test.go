package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"twilio": map[string]any{
			"accountSid": "",
			"authToken":  "",
		},
		"email": map[string]any{
			"resendApiKey": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TWILIO_ACCOUNTSID", want: "twilio.accountSid"},
		{envKey: "TWILIO_AUTHTOKEN", want: "twilio.authToken"},
		{envKey: "EMAIL_RESENDAPIKEY", want: "email.resendApiKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Redis:  &RedisConfig{Addr: "localhost:6379"},
		Twilio: &TwilioConfig{},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "America/Toronto", cfg.Notifier.TimeZone)
	assert.Equal(t, defaultSMSConcurrency, cfg.Notifier.SMSConcurrency)
	assert.True(t, cfg.Outbox.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Outbox.Interval)
	assert.Equal(t, defaultOutboxBatchSize, cfg.Outbox.BatchSize)
	assert.Equal(t, defaultCartTTL, cfg.Redis.CartTTL)
	assert.Equal(t, defaultProviderTimeout, cfg.Twilio.Timeout)
	assert.Nil(t, cfg.Email)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Notifier: &NotifierConfig{TimeZone: "UTC", SMSConcurrency: 2},
		Outbox:   &OutboxConfig{Enabled: false, Interval: time.Minute, BatchSize: 5, MaxAttempts: 3},
	}

	applyDefaults(cfg)

	assert.Equal(t, "UTC", cfg.Notifier.TimeZone)
	assert.Equal(t, 2, cfg.Notifier.SMSConcurrency)
	assert.False(t, cfg.Outbox.Enabled)
	assert.Equal(t, time.Minute, cfg.Outbox.Interval)
	assert.Equal(t, 5, cfg.Outbox.BatchSize)
	assert.Equal(t, 3, cfg.Outbox.MaxAttempts)
}
