// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads arc-shelf settings from the config file and
// ARC_SHELF_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full arc-shelf configuration.
type Config struct {
	// Storage selects the persistence backend: "sqlite" or "memory".
	Storage string `mapstructure:"storage"`
	// DBPath overrides the default database location.
	DBPath string `mapstructure:"db_path"`

	// ShareBaseURL is the origin+path that share links are rooted at.
	ShareBaseURL string `mapstructure:"share_base_url"`
	// SharerName is the display name attached to outgoing shares.
	SharerName string `mapstructure:"sharer_name"`

	// AI settings for the online discovery adapter.
	AIEndpoint string `mapstructure:"ai_endpoint"`
	AIKey      string `mapstructure:"ai_key"`
	AIModel    string `mapstructure:"ai_model"`

	// Offline forces the stub adapter regardless of AI settings.
	Offline bool `mapstructure:"offline"`
	// StubDelay is the stub adapter's artificial response delay.
	StubDelay time.Duration `mapstructure:"stub_delay"`

	// Debug enables diagnostic logging on stderr.
	Debug bool `mapstructure:"debug"`
}

// Load reads configuration from $XDG_CONFIG_HOME/arc-shelf/config.yaml
// (when present) and the environment. A missing config file is fine.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("storage", "sqlite")
	v.SetDefault("share_base_url", "https://arc-shelf.app/s")
	v.SetDefault("ai_model", "gpt-4o-mini")
	v.SetDefault("stub_delay", 800*time.Millisecond)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("ARC_SHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone only covers keys viper already knows about
	// (defaults or config file), so bind every key explicitly or the
	// env vars for default-less keys are ignored.
	for _, key := range []string{
		"storage", "db_path",
		"share_base_url", "sharer_name",
		"ai_endpoint", "ai_key", "ai_model",
		"offline", "stub_delay", "debug",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arc-shelf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "arc-shelf")
}
