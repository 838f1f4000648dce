// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package shelf

import (
	"time"
)

// MediaType represents the kind of tracked work.
type MediaType string

const (
	TypeBook  MediaType = "book"
	TypeMovie MediaType = "movie"
	TypeGame  MediaType = "game"
)

// ValidType reports whether t is one of the known media types.
func ValidType(t MediaType) bool {
	switch t {
	case TypeBook, TypeMovie, TypeGame:
		return true
	}
	return false
}

// Status represents where an item sits on the shelf.
type Status string

const (
	StatusWishlist Status = "wishlist" // want to read/watch/play
	StatusCurrent  Status = "current"  // in progress
	StatusDone     Status = "done"     // completed
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusWishlist, StatusCurrent, StatusDone:
		return true
	}
	return false
}

// MediaItem is a tracked book, movie, or game.
type MediaItem struct {
	ID            string    `json:"id"`
	Type          MediaType `json:"type"`
	Title         string    `json:"title"`
	OriginalTitle string    `json:"original_title,omitempty"`
	Creator       string    `json:"creator,omitempty"` // author, director, or studio
	Year          string    `json:"year,omitempty"`    // free text, not necessarily numeric
	Description   string    `json:"description,omitempty"`

	Status Status `json:"status"`
	Rating int    `json:"rating,omitempty"` // 1-5, 0 = unrated
	Review string `json:"review,omitempty"`

	// Memories are ordered newest first.
	Memories []Memory `json:"memories,omitempty"`

	// CollectionIDs is the set of collections this item belongs to.
	// Order carries no meaning.
	CollectionIDs []string `json:"collection_ids,omitempty"`

	Collaborators []string  `json:"collaborators,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// InCollection reports whether the item belongs to the given collection.
func (m *MediaItem) InCollection(collectionID string) bool {
	for _, id := range m.CollectionIDs {
		if id == collectionID {
			return true
		}
	}
	return false
}

// Memory is a user-attached photo with a caption, pinned to an item.
type Memory struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"` // data URI
	Caption   string    `json:"caption,omitempty"`
	Location  string    `json:"location,omitempty"` // page number or timestamp, depending on type
	CreatedAt time.Time `json:"created_at"`
}

// Collection is a user-named grouping of items of a single type.
type Collection struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        MediaType `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// SortKey selects the ordering of a derived view.
type SortKey string

const (
	SortByAdded  SortKey = "added"
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
)

// ViewOptions filters and orders a derived listing of items.
type ViewOptions struct {
	Type          MediaType // always applied
	Status        Status    // optional
	CollectionID  string    // optional: only members of this collection
	Uncategorized bool      // optional: only items with no memberships
	SortBy        SortKey
	Descending    bool
}
