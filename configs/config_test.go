package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WEBHOOK_TIMEOUT", "")
	t.Setenv("USD_TO_VND", "")
	t.Setenv("ENGAGEMENT_REFRESH", "")
	t.Setenv("TIMEZONE", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, 25000.0, cfg.UsdToVnd)
	assert.Equal(t, "@every 01h00m00s", cfg.EngagementRefresh)
	assert.Equal(t, "contentops_session", cfg.CookieName)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timezone)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("WEBHOOK_BASE_URL", "https://automation.example.com")
	t.Setenv("WEBHOOK_TIMEOUT", "5s")
	t.Setenv("USD_TO_VND", "26100")
	t.Setenv("ENGAGEMENT_REFRESH", "off")

	cfg := LoadConfig()

	assert.Equal(t, "https://automation.example.com", cfg.Webhook.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, 26100.0, cfg.UsdToVnd)
	assert.Equal(t, "off", cfg.EngagementRefresh)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.EqualError(t, cfg.Validate(), "POSTGRES_URI is required")

	cfg.PostgresURI = "postgres://localhost/contentops"
	cfg.SecretKey = "short"
	assert.Error(t, cfg.Validate())

	cfg.SecretKey = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "UTC"
	assert.Equal(t, "UTC", cfg.Location().String())
}
