// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/cmd"
	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/discover"
	"github.com/mtreilly/arc-shelf/internal/shelf"
	"github.com/mtreilly/arc-shelf/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arc-shelf: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := zap.NewNop()
	if cfg.Debug {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	// Storage backend selection.
	// Default: "sqlite" (persistent KV). Option: "memory" (no persistence).
	// If SQLite fails (missing dir, corrupted, permissions), fall back to
	// the in-memory store so the tool remains operational without persistence.
	var kv store.KV
	switch cfg.Storage {
	case "", "sqlite":
		path := cfg.DBPath
		if path == "" {
			path = store.DefaultDBPath()
		}
		s, err := store.OpenSQLiteStore(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot open SQLite database: %v\n", err)
			fmt.Fprintln(os.Stderr, "         falling back to in-memory store (no persistence)")
			kv = store.NewMemoryStore()
			break
		}
		kv = s

	case "memory":
		kv = store.NewMemoryStore()

	default:
		fmt.Fprintf(os.Stderr, "arc-shelf: unknown storage backend %q (choose sqlite or memory)\n", cfg.Storage)
		os.Exit(1)
	}
	defer kv.Close()

	lib, err := shelf.Open(kv, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arc-shelf: failed to open library: %v\n", err)
		os.Exit(1)
	}

	var adapter discover.Adapter
	if cfg.Offline || cfg.AIEndpoint == "" {
		adapter = discover.NewStubAdapter(cfg.StubDelay)
	} else {
		adapter = discover.NewAIAdapter(cfg.AIEndpoint, cfg.AIKey, cfg.AIModel, log)
	}

	root := cmd.NewRootCmd(cfg, lib, adapter, log)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
