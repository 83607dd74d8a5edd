package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "CHAT_MAX_TOKENS", "CONTENT_MAX_TOKENS", "SEED_SAMPLE_DATA", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "gudimart-store", cfg.AppName)
	assert.Equal(t, 250, cfg.ChatMaxTokens)
	assert.Equal(t, 500, cfg.ContentMaxTokens)
	assert.True(t, cfg.SeedSampleData)
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("CHAT_MAX_TOKENS", "not-a-number")
	t.Setenv("NOTIFY_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, 250, cfg.ChatMaxTokens, "bad ints fall back to the default")
	assert.True(t, cfg.NotifyEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: "5000", AITimeout: time.Second, ChatMaxTokens: 1, ContentMaxTokens: 1}
	}
	assert.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"no port":                func(c *Config) { c.Port = "" },
		"notify without broker":  func(c *Config) { c.NotifyEnabled = true },
		"rate limit w/o redis":   func(c *Config) { c.RateLimitEnabled = true },
		"zero ai timeout":        func(c *Config) { c.AITimeout = 0 },
		"non-positive max token": func(c *Config) { c.ChatMaxTokens = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
