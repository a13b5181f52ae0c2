package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	APIKey           string `mapstructure:"GSB_API_KEY"`
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `mapstructure:"TELEGRAM_CHAT_ID"`
	DomainsFile      string `mapstructure:"DOMAINS_FILE"`
	LogFile          string `mapstructure:"LOGFILE"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	BatchSize        int    `mapstructure:"BATCH_SIZE"`
	PostgresURL      string `mapstructure:"POSTGRES_URL"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int    `mapstructure:"REDIS_DB"`
	DedupHours       int    `mapstructure:"DEDUP_HOURS"`
	PushgatewayURL   string `mapstructure:"PUSHGATEWAY_URL"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables in production.
	_ = viper.ReadInConfig()

	// Defaults also register the keys so AutomaticEnv picks them up on Unmarshal.
	viper.SetDefault("GSB_API_KEY", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("DOMAINS_FILE", "domains.txt")
	viper.SetDefault("LOGFILE", "safebrowse.log")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BATCH_SIZE", 500)
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DEDUP_HOURS", 0)
	viper.SetDefault("PUSHGATEWAY_URL", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
