// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package shelf

import (
	"testing"
	"time"
)

func viewFixture() []*MediaItem {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*MediaItem{
		{ID: "1", Type: TypeBook, Title: "Solaris", Status: StatusDone, Rating: 5, AddedAt: base},
		{ID: "2", Type: TypeBook, Title: "annihilation", Status: StatusWishlist, Rating: 3, AddedAt: base.Add(time.Hour), CollectionIDs: []string{"c1"}},
		{ID: "3", Type: TypeBook, Title: "Blindsight", Status: StatusCurrent, Rating: 4, AddedAt: base.Add(2 * time.Hour), CollectionIDs: []string{"c1", "c2"}},
		{ID: "4", Type: TypeMovie, Title: "Arrival", Status: StatusDone, Rating: 5, AddedAt: base.Add(3 * time.Hour)},
	}
}

func ids(items []*MediaItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func assertOrder(t *testing.T, got []*MediaItem, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestViewFiltersByType(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeMovie})
	assertOrder(t, got, "4")
}

func TestViewFiltersByStatus(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook, Status: StatusWishlist})
	assertOrder(t, got, "2")
}

func TestViewFiltersByCollection(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook, CollectionID: "c1"})
	assertOrder(t, got, "2", "3")

	got = View(viewFixture(), ViewOptions{Type: TypeBook, CollectionID: "c2"})
	assertOrder(t, got, "3")
}

func TestViewUncategorized(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook, Uncategorized: true})
	assertOrder(t, got, "1")
}

func TestViewSortByAddedDefault(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook})
	assertOrder(t, got, "1", "2", "3")

	got = View(viewFixture(), ViewOptions{Type: TypeBook, Descending: true})
	assertOrder(t, got, "3", "2", "1")
}

func TestViewSortByTitleIgnoresCase(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook, SortBy: SortByTitle})
	assertOrder(t, got, "2", "3", "1")
}

func TestViewSortByRating(t *testing.T) {
	got := View(viewFixture(), ViewOptions{Type: TypeBook, SortBy: SortByRating, Descending: true})
	assertOrder(t, got, "1", "3", "2")
}

func TestViewDoesNotMutateInput(t *testing.T) {
	items := viewFixture()
	View(items, ViewOptions{Type: TypeBook, SortBy: SortByTitle, Descending: true})
	if items[0].ID != "1" || items[3].ID != "4" {
		t.Fatal("View reordered the input slice")
	}
}
