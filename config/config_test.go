package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_HOST", "LLM_PROVIDER", "LEAD_STORE", "MONGO_DB", "ALLOWED_ORIGINS",
		"SESSION_TTL_MINUTES", "LLM_TIMEOUT_SECONDS", "CRON_ENABLED", "JWT_ISSUER"} {
		t.Setenv(k, "")
	}

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 8080, env.PORT)
	assert.Equal(t, "localhost", env.DB_HOST)
	assert.Equal(t, "digitalocean", env.LLM_PROVIDER)
	assert.Equal(t, "postgres", env.LEAD_STORE)
	assert.Equal(t, "admissions", env.MONGO_DB)
	assert.Equal(t, "admission-counselor-api", env.JWT_ISSUER)
	assert.True(t, env.CRON_ENABLED)
	assert.Equal(t, 2*time.Hour, env.SessionTTL())
	assert.Equal(t, time.Minute, env.LLMTimeout())
	assert.Equal(t, []string{"http://localhost:3000"}, env.Origins())
}

func TestGet_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LEAD_STORE", "MONGO")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("LLM_TIMEOUT_SECONDS", "-4")
	t.Setenv("CRON_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://apply.example.edu, ,https://www.example.edu")
	t.Setenv("GO_ENV", "production")

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "gemini", env.LLM_PROVIDER)
	assert.Equal(t, "mongo", env.LEAD_STORE)
	assert.Equal(t, 30*time.Minute, env.SessionTTL())
	assert.Equal(t, time.Minute, env.LLMTimeout())
	assert.False(t, env.CRON_ENABLED)
	assert.True(t, env.IsProduction())
	assert.Equal(t, []string{"https://apply.example.edu", "https://www.example.edu"}, env.Origins())
}
