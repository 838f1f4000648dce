// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package share

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func TestCollectionRoundTrip(t *testing.T) {
	c := &shelf.Collection{ID: "c1", Title: "Space operas", Description: "big ships", Type: shelf.TypeBook}
	items := []*shelf.MediaItem{
		{
			ID:      "i1",
			Type:    shelf.TypeBook,
			Title:   "Consider Phlebas",
			Creator: "Iain M. Banks",
			Year:    "1987",
			Status:  shelf.StatusDone,
			Rating:  5,
			Review:  "private opinion",
			Memories: []shelf.Memory{
				{ID: "m1", Image: "data:image/png;base64,AAAA"},
			},
		},
		{ID: "i2", Type: shelf.TypeBook, Title: "A Fire Upon the Deep"},
	}

	link, err := EncodeCollection("https://arc-shelf.app/s", c, items, "Ada")
	if err != nil {
		t.Fatalf("EncodeCollection: %v", err)
	}
	if !strings.Contains(link, CollectionParam+"=") {
		t.Fatalf("link missing %s param: %s", CollectionParam, link)
	}

	p, err := Decode(link)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Kind != KindCollection || p.Collection == nil {
		t.Fatalf("wrong payload kind: %+v", p)
	}

	got := p.Collection
	if got.Title != "Space operas" || got.Type != shelf.TypeBook || got.SharedBy != "Ada" {
		t.Fatalf("collection fields lost: %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items: got %d, want 2", len(got.Items))
	}
	if got.Items[0].Creator != "Iain M. Banks" {
		t.Fatalf("item creator lost: %+v", got.Items[0])
	}
}

// Personal state must never travel in a collection share.
func TestCollectionShareExcludesPersonalState(t *testing.T) {
	c := &shelf.Collection{Title: "Horror", Type: shelf.TypeMovie}
	items := []*shelf.MediaItem{
		{
			Type:     shelf.TypeMovie,
			Title:    "The Thing",
			Status:   shelf.StatusDone,
			Rating:   5,
			Review:   "masterpiece",
			Memories: []shelf.Memory{{ID: "m", Image: "data:image/jpeg;base64,BBBB"}},
		},
	}

	link, err := EncodeCollection("https://arc-shelf.app/s", c, items, "")
	if err != nil {
		t.Fatalf("EncodeCollection: %v", err)
	}

	u, _ := url.Parse(link)
	raw, err := base64.RawURLEncoding.DecodeString(u.Query().Get(CollectionParam))
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	for _, secret := range []string{"masterpiece", "done", "rating", "memories"} {
		if strings.Contains(string(raw), secret) {
			t.Fatalf("share payload leaks %q: %s", secret, raw)
		}
	}
}

func TestItemEditRoundTrip(t *testing.T) {
	item := &shelf.MediaItem{
		ID:     "i9",
		Type:   shelf.TypeGame,
		Title:  "Outer Wilds",
		Status: shelf.StatusCurrent,
		Review: "keep exploring",
	}

	link, err := EncodeItemEdit("https://arc-shelf.app/s", item, "Ben")
	if err != nil {
		t.Fatalf("EncodeItemEdit: %v", err)
	}
	if !strings.Contains(link, ItemEditParam+"=") {
		t.Fatalf("link missing %s param: %s", ItemEditParam, link)
	}

	p, err := Decode(link)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Kind != KindItemEdit || p.ItemEdit == nil {
		t.Fatalf("wrong payload kind: %+v", p)
	}
	if p.ItemEdit.SharedBy != "Ben" {
		t.Fatalf("sharer lost: %+v", p.ItemEdit)
	}
	if p.ItemEdit.Item.ID != "i9" || p.ItemEdit.Item.Review != "keep exploring" {
		t.Fatalf("item edit fields lost: %+v", p.ItemEdit.Item)
	}
}

// A bare token (no URL around it) decodes by sniffing its shape.
func TestDecodeBareToken(t *testing.T) {
	c := &shelf.Collection{Title: "Shorts", Type: shelf.TypeMovie}
	link, err := EncodeCollection("https://arc-shelf.app/s", c, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	u, _ := url.Parse(link)
	token := u.Query().Get(CollectionParam)

	p, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode bare token: %v", err)
	}
	if p.Kind != KindCollection {
		t.Fatalf("kind: got %q, want %q", p.Kind, KindCollection)
	}

	item := &shelf.MediaItem{ID: "x", Type: shelf.TypeBook, Title: "Roadside Picnic"}
	link, err = EncodeItemEdit("https://arc-shelf.app/s", item, "Cat")
	if err != nil {
		t.Fatal(err)
	}
	u, _ = url.Parse(link)
	p, err = Decode(u.Query().Get(ItemEditParam))
	if err != nil {
		t.Fatalf("Decode bare item token: %v", err)
	}
	if p.Kind != KindItemEdit {
		t.Fatalf("kind: got %q, want %q", p.Kind, KindItemEdit)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"not base64 at all!!!",
		base64.RawURLEncoding.EncodeToString([]byte("not json")),
		base64.RawURLEncoding.EncodeToString([]byte(`{"title":""}`)),                          // missing required fields
		base64.RawURLEncoding.EncodeToString([]byte(`{"title":"x","type":"vinyl"}`)),          // unknown type
		base64.RawURLEncoding.EncodeToString([]byte(`{"item":{"title":""},"shared_by":"a"}`)), // empty item title
		base64.RawURLEncoding.EncodeToString([]byte(`{"item":{"title":"x","type":"book"}}`)),  // missing sharer
		"https://arc-shelf.app/s?share=%%%",
		"https://arc-shelf.app/s?unrelated=1",
	}
	for _, in := range cases {
		if _, err := Decode(in); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Decode(%q): got %v, want ErrInvalidToken", in, err)
		}
	}
}

func TestDecodeToleratesPaddedBase64(t *testing.T) {
	c := &shelf.Collection{Title: "Padded", Type: shelf.TypeGame}
	link, err := EncodeCollection("https://arc-shelf.app/s", c, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	u, _ := url.Parse(link)
	raw, _ := base64.RawURLEncoding.DecodeString(u.Query().Get(CollectionParam))

	padded := base64.URLEncoding.EncodeToString(raw)
	if _, err := Decode(padded); err != nil {
		t.Fatalf("Decode padded token: %v", err)
	}
	std := base64.StdEncoding.EncodeToString(raw)
	if _, err := Decode(std); err != nil {
		t.Fatalf("Decode std base64 token: %v", err)
	}
}
