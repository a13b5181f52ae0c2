package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "domains.txt", cfg.DomainsFile)
	assert.Equal(t, "safebrowse.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500, cfg.BatchSize)
	assert.Empty(t, cfg.PostgresURL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Zero(t, cfg.DedupHours)
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("GSB_API_KEY", "key123")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "chat42")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("DEDUP_HOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, "tok", cfg.TelegramBotToken)
	assert.Equal(t, "chat42", cfg.TelegramChatID)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 48, cfg.DedupHours)
}
