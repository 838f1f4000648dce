// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package discover

import (
	"context"
	"fmt"
	"time"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// StubAdapter supports fully offline use: after an artificial delay it
// manufactures a single placeholder record echoing the query. It is
// cancellable mid-delay.
type StubAdapter struct {
	Delay time.Duration
}

// NewStubAdapter creates a stub with the given artificial delay.
func NewStubAdapter(delay time.Duration) *StubAdapter {
	return &StubAdapter{Delay: delay}
}

func (s *StubAdapter) Search(ctx context.Context, query string, t shelf.MediaType) (*SearchResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &SearchResult{
		Matches: []Descriptor{{
			Title:       query,
			Type:        t,
			Creator:     "Unknown",
			Description: fmt.Sprintf("Placeholder result for %q (offline mode)", query),
		}},
	}, nil
}

func (s *StubAdapter) Recommend(ctx context.Context, name string, members []Descriptor, t shelf.MediaType) ([]Descriptor, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *StubAdapter) Featured(ctx context.Context, t shelf.MediaType) ([]FeaturedCollection, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *StubAdapter) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
