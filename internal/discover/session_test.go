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

// blockingAdapter parks Search calls until their context is cancelled or
// release is closed, recording each query's context.
type blockingAdapter struct {
	started chan string
	release chan struct{}
}

func newBlockingAdapter() *blockingAdapter {
	return &blockingAdapter{
		started: make(chan string, 8),
		release: make(chan struct{}),
	}
}

func (b *blockingAdapter) Search(ctx context.Context, query string, t shelf.MediaType) (*SearchResult, error) {
	b.started <- query
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
		return &SearchResult{Matches: []Descriptor{{Title: query, Type: t}}}, nil
	}
}

func (b *blockingAdapter) Recommend(ctx context.Context, name string, members []Descriptor, t shelf.MediaType) ([]Descriptor, error) {
	return nil, nil
}

func (b *blockingAdapter) Featured(ctx context.Context, t shelf.MediaType) ([]FeaturedCollection, error) {
	return nil, nil
}

func TestSessionPassesThroughSingleSearch(t *testing.T) {
	s := NewSession(NewStubAdapter(0), nil)
	defer s.Close()

	res, err := s.Search(context.Background(), "dune", shelf.TypeBook)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Matches) != 1 || res.Matches[0].Title != "dune" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSessionSupersedesInFlightSearch(t *testing.T) {
	adapter := newBlockingAdapter()
	s := NewSession(adapter, nil)
	defer s.Close()

	type outcome struct {
		res *SearchResult
		err error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		res, err := s.Search(context.Background(), "first", shelf.TypeBook)
		firstDone <- outcome{res, err}
	}()
	<-adapter.started

	secondDone := make(chan outcome, 1)
	go func() {
		res, err := s.Search(context.Background(), "second", shelf.TypeBook)
		secondDone <- outcome{res, err}
	}()
	<-adapter.started

	// The first search's context is cancelled by the second; whether it
	// observes the cancellation or resolves late, its result must be
	// suppressed as Canceled.
	first := <-firstDone
	if !errors.Is(first.err, context.Canceled) {
		t.Fatalf("superseded search: got (%+v, %v), want context.Canceled", first.res, first.err)
	}

	close(adapter.release)
	second := <-secondDone
	if second.err != nil {
		t.Fatalf("winning search: %v", second.err)
	}
	if second.res.Matches[0].Title != "second" {
		t.Fatalf("winning search returned wrong result: %+v", second.res)
	}
}

func TestSessionCloseCancelsOutstanding(t *testing.T) {
	adapter := newBlockingAdapter()
	s := NewSession(adapter, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "orphan", shelf.TypeGame)
		done <- err
	}()
	<-adapter.started

	s.Close()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("search not cancelled by Close")
	}
}

func TestSessionCallerCancellationPropagates(t *testing.T) {
	s := NewSession(NewStubAdapter(10*time.Second), nil)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.Search(ctx, "q", shelf.TypeMovie)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
