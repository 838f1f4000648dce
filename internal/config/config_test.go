// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("storage: got %q, want sqlite", cfg.Storage)
	}
	if cfg.ShareBaseURL != "https://arc-shelf.app/s" {
		t.Errorf("share base url: got %q", cfg.ShareBaseURL)
	}
	if cfg.AIModel != "gpt-4o-mini" {
		t.Errorf("ai model: got %q", cfg.AIModel)
	}
	if cfg.StubDelay != 800*time.Millisecond {
		t.Errorf("stub delay: got %v", cfg.StubDelay)
	}
	if cfg.AIEndpoint != "" || cfg.Offline || cfg.Debug {
		t.Errorf("unset keys should stay zero: %+v", cfg)
	}
}

// Keys without defaults must still be reachable from the environment
// when no config file exists.
func TestLoadEnvOnlyKeys(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ARC_SHELF_AI_ENDPOINT", "https://llm.example")
	t.Setenv("ARC_SHELF_AI_KEY", "sk-test")
	t.Setenv("ARC_SHELF_OFFLINE", "true")
	t.Setenv("ARC_SHELF_DB_PATH", "/tmp/custom.db")
	t.Setenv("ARC_SHELF_SHARER_NAME", "Ana")
	t.Setenv("ARC_SHELF_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AIEndpoint != "https://llm.example" {
		t.Errorf("ai endpoint: got %q", cfg.AIEndpoint)
	}
	if cfg.AIKey != "sk-test" {
		t.Errorf("ai key: got %q", cfg.AIKey)
	}
	if !cfg.Offline {
		t.Error("offline not picked up from env")
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	if cfg.SharerName != "Ana" {
		t.Errorf("sharer name: got %q", cfg.SharerName)
	}
	if !cfg.Debug {
		t.Error("debug not picked up from env")
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ARC_SHELF_STORAGE", "memory")
	t.Setenv("ARC_SHELF_STUB_DELAY", "150ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage != "memory" {
		t.Errorf("storage: got %q, want memory", cfg.Storage)
	}
	if cfg.StubDelay != 150*time.Millisecond {
		t.Errorf("stub delay: got %v", cfg.StubDelay)
	}
}
