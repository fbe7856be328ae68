package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the full environment-provided configuration surface.
type Config struct {
	TelegramBotToken string
	ServingEndpoint  string
	ServingHost      string
	ServingToken     string
	PollInterval     int // seconds
	Port             string
	AdminChatID      int64 // 0 = error reports disabled
}

// Load collects configuration from environment variables
// (TELEGRAM_BOT_TOKEN -> telegram_bot_token, etc.).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	cfg := &Config{
		TelegramBotToken: k.String("telegram_bot_token"),
		ServingEndpoint:  k.String("serving_endpoint"),
		ServingHost:      k.String("serving_host"),
		ServingToken:     k.String("serving_token"),
		PollInterval:     k.Int("poll_interval"),
		Port:             k.String("port"),
		AdminChatID:      k.Int64("admin_chat_id"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required credential is present.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.ServingEndpoint == "" {
		return fmt.Errorf("SERVING_ENDPOINT is required")
	}
	if c.ServingHost == "" {
		return fmt.Errorf("SERVING_HOST is required")
	}
	if c.ServingToken == "" {
		return fmt.Errorf("SERVING_TOKEN is required")
	}
	return nil
}
