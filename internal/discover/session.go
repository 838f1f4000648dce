// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package discover

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// Session enforces the at-most-one-in-flight search discipline: starting
// a new search cancels the previous one, and a search that has been
// superseded never surfaces its result, even if the adapter resolves it
// late.
type Session struct {
	adapter Adapter
	log     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

// NewSession wraps adapter with the single-flight discipline.
func NewSession(adapter Adapter, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{adapter: adapter, log: log}
}

// Search runs a query, cancelling any search still in flight. If a
// newer Search supersedes this one before it completes, its result is
// discarded and context.Canceled is returned.
func (s *Session) Search(ctx context.Context, query string, t shelf.MediaType) (*SearchResult, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	sctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	id := s.seq
	s.mu.Unlock()

	res, err := s.adapter.Search(sctx, query, t)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.seq {
		// Superseded while in flight; drop the late result.
		s.log.Debug("discarding superseded search result", zap.String("query", query))
		return nil, context.Canceled
	}
	s.cancel = nil
	cancel()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Close cancels any outstanding search, e.g. when leaving the search
// context entirely.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
