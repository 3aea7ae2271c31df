package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "RECORD_STORE", "NOTIFIER", "SUPABASE_URL", "SUPABASE_KEY",
		"SUPABASE_ANON_KEY", "SMTP_USERNAME", "SMTP_PASSWORD", "CONTACT_EMAIL_TO", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECORD_STORE", "")
	t.Setenv("NOTIFIER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.RecordStore)
	assert.Equal(t, NotifierLog, cfg.Notifier)
	assert.Equal(t, "send-contact-notification", cfg.NotificationFunction)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigSelectsSupabaseNotifier(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_KEY", "anon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.RecordStore)
	assert.Equal(t, NotifierSupabase, cfg.Notifier)
	assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseUrl)
}

func TestLoadConfigFallsBackToSMTP(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_USERNAME", "login@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("CONTACT_EMAIL_TO", "me@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NotifierSMTP, cfg.Notifier)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://me.dev/, ,http://localhost:5173")
	assert.Equal(t, []string{"https://me.dev", "http://localhost:5173"}, getEnvList("ALLOWED_ORIGINS", nil))
	assert.Equal(t, []string{"x"}, getEnvList("UNSET_LIST_KEY_FOR_TEST", []string{"x"}))
}
