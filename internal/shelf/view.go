// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package shelf

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// View derives an ordered listing from items. It is a pure function:
// filter by type, then by status, then by collection membership (or by
// having none at all), then sort. Stability across equal keys is not
// guaranteed.
func View(items []*MediaItem, opts ViewOptions) []*MediaItem {
	var out []*MediaItem
	for _, it := range items {
		if it.Type != opts.Type {
			continue
		}
		if opts.Status != "" && it.Status != opts.Status {
			continue
		}
		if opts.CollectionID != "" && !it.InCollection(opts.CollectionID) {
			continue
		}
		if opts.Uncategorized && len(it.CollectionIDs) > 0 {
			continue
		}
		out = append(out, it)
	}

	switch opts.SortBy {
	case SortByTitle:
		c := collate.New(language.Und, collate.Loose)
		sort.Slice(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortByRating:
		sort.Slice(out, func(i, j int) bool {
			return out[i].Rating < out[j].Rating
		})
	default: // SortByAdded
		sort.Slice(out, func(i, j int) bool {
			return out[i].AddedAt.Before(out[j].AddedAt)
		})
	}

	if opts.Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
