// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package discover is the boundary to the external search and
// recommendation service. Implementations never let service failures
// escape: they degrade to empty results. Cancellation is the one error
// callers see, always as the context's own error.
package discover

import (
	"context"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// Descriptor is a candidate record returned by a search. It carries
// only descriptive fields; promoting one into the shelf is the
// caller's job.
type Descriptor struct {
	Title       string          `json:"title" validate:"required"`
	Type        shelf.MediaType `json:"type"`
	Creator     string          `json:"creator,omitempty"`
	Year        string          `json:"year,omitempty"`
	Description string          `json:"description,omitempty"`
}

// SearchResult partitions candidates into direct matches and
// related-but-not-matching suggestions.
type SearchResult struct {
	Matches []Descriptor `json:"matches"`
	Similar []Descriptor `json:"similar"`
}

// FeaturedCollection is a curated-looking bundle for editorial display.
type FeaturedCollection struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Author      string       `json:"author,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Items       []Descriptor `json:"items"`
}

// Adapter is the external search contract. All three operations honor
// context cancellation promptly.
type Adapter interface {
	Search(ctx context.Context, query string, t shelf.MediaType) (*SearchResult, error)
	Recommend(ctx context.Context, name string, members []Descriptor, t shelf.MediaType) ([]Descriptor, error)
	Featured(ctx context.Context, t shelf.MediaType) ([]FeaturedCollection, error)
}
