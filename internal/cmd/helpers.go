// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// shortID returns the display prefix of an id. Imported item edits can
// carry ids from other tools, so the id is not guaranteed to be uuid
// length.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// findItem resolves an item reference: exact id, unique id prefix, or
// case-insensitive exact title.
func findItem(lib *shelf.Library, ref string) (*shelf.MediaItem, error) {
	if it := lib.Item(ref); it != nil {
		return it, nil
	}

	var byPrefix, byTitle []*shelf.MediaItem
	for _, it := range lib.Items() {
		if strings.HasPrefix(it.ID, ref) {
			byPrefix = append(byPrefix, it)
		}
		if strings.EqualFold(it.Title, ref) {
			byTitle = append(byTitle, it)
		}
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return nil, fmt.Errorf("item reference %q is ambiguous (%d id matches)", ref, len(byPrefix))
	}
	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return nil, fmt.Errorf("item title %q is ambiguous (%d items), use an id", ref, len(byTitle))
	}
	return nil, fmt.Errorf("item not found: %s", ref)
}

// findCollection resolves a collection by id or by title. When t is
// non-empty the title lookup is restricted to that type.
func findCollection(lib *shelf.Library, ref string, t shelf.MediaType) (*shelf.Collection, error) {
	if c := lib.Collection(ref); c != nil {
		return c, nil
	}
	if t != "" {
		if c := lib.CollectionByTitle(ref, t); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("collection not found: %s", ref)
	}

	var matches []*shelf.Collection
	for _, c := range lib.Collections() {
		if strings.EqualFold(c.Title, ref) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("collection title %q exists for multiple types, add --type", ref)
	}
	return nil, fmt.Errorf("collection not found: %s", ref)
}

// parseType validates a --type flag value.
func parseType(s string) (shelf.MediaType, error) {
	t := shelf.MediaType(strings.ToLower(s))
	if !shelf.ValidType(t) {
		return "", fmt.Errorf("unknown media type %q (choose book, movie, game)", s)
	}
	return t, nil
}

// parseStatus validates a status argument.
func parseStatus(s string) (shelf.Status, error) {
	st := shelf.Status(strings.ToLower(s))
	if !shelf.ValidStatus(st) {
		return "", fmt.Errorf("unknown status %q (choose wishlist, current, done)", s)
	}
	return st, nil
}

// collectionItems returns the members of a collection.
func collectionItems(lib *shelf.Library, c *shelf.Collection) []*shelf.MediaItem {
	var out []*shelf.MediaItem
	for _, it := range lib.Items() {
		if it.InCollection(c.ID) {
			out = append(out, it)
		}
	}
	return out
}
