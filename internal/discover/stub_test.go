// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package discover

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func TestStubSearchEchoesQuery(t *testing.T) {
	stub := NewStubAdapter(0)

	res, err := stub.Search(context.Background(), "neuromancer", shelf.TypeBook)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Matches) != 1 {
		t.Fatalf("matches: got %d, want 1", len(res.Matches))
	}
	m := res.Matches[0]
	if m.Title != "neuromancer" {
		t.Errorf("title: got %q", m.Title)
	}
	if m.Type != shelf.TypeBook {
		t.Errorf("type: got %q", m.Type)
	}
	if len(res.Similar) != 0 {
		t.Errorf("similar should be empty, got %d", len(res.Similar))
	}
}

func TestStubHonorsDelay(t *testing.T) {
	stub := NewStubAdapter(50 * time.Millisecond)

	start := time.Now()
	if _, err := stub.Search(context.Background(), "q", shelf.TypeGame); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("returned before delay elapsed: %v", elapsed)
	}
}

func TestStubCancelMidDelay(t *testing.T) {
	stub := NewStubAdapter(10 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := stub.Search(ctx, "q", shelf.TypeMovie)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancellation was not prompt")
	}
}

func TestStubRecommendAndFeaturedAreEmpty(t *testing.T) {
	stub := NewStubAdapter(0)

	recs, err := stub.Recommend(context.Background(), "any", nil, shelf.TypeBook)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("recommend: got %d results", len(recs))
	}

	cols, err := stub.Featured(context.Background(), shelf.TypeBook)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(cols) != 0 {
		t.Fatalf("featured: got %d results", len(cols))
	}
}
