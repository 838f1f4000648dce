// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package share

import (
	"fmt"
	"strings"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// ImportResult summarizes what an import actually did.
type ImportResult struct {
	Collection *shelf.Collection
	Linked     int // existing items linked into the new collection
	Created    int // new items created from shared snapshots
}

// ImportCollection materializes a decoded collection share in the
// library. The collection gets a non-colliding title; each incoming
// snapshot either links an existing item with the same title, creator,
// and type into the new collection, or becomes a fresh wishlist item
// scoped to it.
func ImportCollection(lib *shelf.Library, p *SharedCollection) (*ImportResult, error) {
	title := resolveTitle(lib, p)
	c, err := lib.CreateCollection(title, p.Description, p.Type)
	if err != nil {
		return nil, fmt.Errorf("create imported collection: %w", err)
	}

	res := &ImportResult{Collection: c}
	for _, snap := range p.Items {
		if existing := findMatch(lib, snap.Title, snap.Creator, p.Type); existing != nil {
			if existing.InCollection(c.ID) {
				continue
			}
			ids := append(append([]string(nil), existing.CollectionIDs...), c.ID)
			if err := lib.SetItemCollections(existing.ID, ids); err != nil {
				return nil, err
			}
			res.Linked++
			continue
		}

		_, err := lib.InsertItem(shelf.MediaItem{
			Type:          p.Type,
			Title:         snap.Title,
			OriginalTitle: snap.OriginalTitle,
			Creator:       snap.Creator,
			Year:          snap.Year,
			Description:   snap.Description,
			Status:        shelf.StatusWishlist,
			CollectionIDs: []string{c.ID},
		})
		if err != nil {
			return nil, err
		}
		res.Created++
	}
	return res, nil
}

// resolveTitle mirrors the creation uniqueness rule: annotate with the
// sharer, then disambiguate numerically for repeated imports.
func resolveTitle(lib *shelf.Library, p *SharedCollection) string {
	base := strings.TrimSpace(p.Title)
	if base == "" {
		base = "Shared collection"
	}
	if lib.CollectionByTitle(base, p.Type) == nil {
		return base
	}

	suffix := " (Imported)"
	if p.SharedBy != "" {
		suffix = fmt.Sprintf(" (Shared by %s)", p.SharedBy)
	}
	candidate := base + suffix
	for n := 2; lib.CollectionByTitle(candidate, p.Type) != nil; n++ {
		candidate = fmt.Sprintf("%s%s %d", base, suffix, n)
	}
	return candidate
}

func findMatch(lib *shelf.Library, title, creator string, t shelf.MediaType) *shelf.MediaItem {
	for _, it := range lib.Items() {
		if it.Type == t && strings.EqualFold(it.Title, title) && strings.EqualFold(it.Creator, creator) {
			return it
		}
	}
	return nil
}

// AcceptItemEdit applies a returned item edit: replace in place when the
// id is known, insert as new otherwise. The sharer lands in the item's
// collaborator set either way.
func AcceptItemEdit(lib *shelf.Library, p *SharedItemEdit) (*shelf.MediaItem, error) {
	item := p.Item
	item.Collaborators = addCollaborator(item.Collaborators, p.SharedBy)

	if existing := lib.Item(item.ID); existing != nil {
		if err := lib.UpdateItem(item); err != nil {
			return nil, err
		}
		return lib.Item(item.ID), nil
	}
	return lib.InsertItem(item)
}

func addCollaborator(names []string, name string) []string {
	if name == "" {
		return names
	}
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}
