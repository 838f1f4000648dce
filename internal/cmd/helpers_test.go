// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/mtreilly/arc-shelf/internal/share"
	"github.com/mtreilly/arc-shelf/internal/shelf"
	"github.com/mtreilly/arc-shelf/internal/store"
)

func TestShortID(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0123456789abcdef", "01234567"},
		{"01234567", "01234567"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, c := range cases {
		if got := shortID(c.in); got != c.want {
			t.Errorf("shortID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	if got := truncate("日本語のタイトルです", 5); got != "日本..." {
		t.Errorf("truncate multi-byte title: got %q", got)
	}
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate below max: got %q", got)
	}
	if got := truncate("éàü", 2); got != "éà" {
		t.Errorf("truncate tiny max: got %q", got)
	}
}

// Items accepted from item-edit tokens keep their foreign ids, which can
// be shorter than a uuid. Listing them must not panic.
func TestListSurvivesImportedShortID(t *testing.T) {
	lib, err := shelf.Open(store.NewMemoryStore(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := share.AcceptItemEdit(lib, &share.SharedItemEdit{
		Item:     shelf.MediaItem{ID: "abc", Type: shelf.TypeBook, Title: "Borrowed"},
		SharedBy: "Ana",
	}); err != nil {
		t.Fatalf("AcceptItemEdit: %v", err)
	}

	cmd := newListCmd(lib)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list with short foreign id: %v", err)
	}

	cmd = newShowCmd(lib)
	cmd.SetArgs([]string{"abc"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show with short foreign id: %v", err)
	}
}
