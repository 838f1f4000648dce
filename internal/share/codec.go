// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package share encodes collections and single-item edits into compact
// URL-embeddable tokens and turns incoming tokens back into shelf state.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// Query keys carrying share tokens in a URL.
const (
	CollectionParam = "share"
	ItemEditParam   = "editItem"
)

// ErrInvalidToken is reported for any malformed or unparseable share
// input. Callers surface it as a single generic message.
var ErrInvalidToken = errors.New("share: invalid or unreadable share token")

// Kind tells the two payload flavors apart.
type Kind string

const (
	KindCollection Kind = "collection"
	KindItemEdit   Kind = "item-edit"
)

// ItemSnapshot is the descriptive-only projection of an item that
// travels inside a collection share. Personal state (status, rating,
// review, memories) is deliberately left out.
type ItemSnapshot struct {
	Title         string          `json:"title" validate:"required"`
	OriginalTitle string          `json:"original_title,omitempty"`
	Type          shelf.MediaType `json:"type" validate:"required,oneof=book movie game"`
	Creator       string          `json:"creator,omitempty"`
	Year          string          `json:"year,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// SharedCollection is the transportable projection of a collection.
type SharedCollection struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description,omitempty"`
	Type        shelf.MediaType `json:"type" validate:"required,oneof=book movie game"`
	SharedBy    string          `json:"shared_by,omitempty"`
	Items       []ItemSnapshot  `json:"items" validate:"dive"`
}

// SharedItemEdit pairs a full item snapshot with the editor's name, for
// returning an edited card to its owner.
type SharedItemEdit struct {
	Item     shelf.MediaItem `json:"item"`
	SharedBy string          `json:"shared_by" validate:"required"`
}

// Payload is the result of decoding a token: exactly one side is set.
type Payload struct {
	Kind       Kind
	Collection *SharedCollection
	ItemEdit   *SharedItemEdit
}

var validate = validator.New()

// EncodeCollection builds a SharedCollection token for the given
// collection and its member items and returns a complete shareable URL
// rooted at base.
func EncodeCollection(base string, c *shelf.Collection, items []*shelf.MediaItem, sharer string) (string, error) {
	p := SharedCollection{
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		SharedBy:    sharer,
		Items:       make([]ItemSnapshot, 0, len(items)),
	}
	for _, it := range items {
		p.Items = append(p.Items, ItemSnapshot{
			Title:         it.Title,
			OriginalTitle: it.OriginalTitle,
			Type:          it.Type,
			Creator:       it.Creator,
			Year:          it.Year,
			Description:   it.Description,
		})
	}
	return buildURL(base, CollectionParam, p)
}

// EncodeItemEdit builds an item-edit token carrying the full item plus
// the sharer's name.
func EncodeItemEdit(base string, item *shelf.MediaItem, sharer string) (string, error) {
	p := SharedItemEdit{Item: *item, SharedBy: sharer}
	return buildURL(base, ItemEditParam, p)
}

func buildURL(base, param string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(data)

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set(param, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Decode accepts a bare token or a full URL carrying one under either
// query key, detects which payload kind it holds, and parses it.
// Anything malformed comes back as ErrInvalidToken.
func Decode(input string) (*Payload, error) {
	token, kind := extractToken(input)
	if token == "" {
		return nil, ErrInvalidToken
	}

	data, err := decodeToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if kind == "" {
		// Bare token: sniff the shape. Item edits carry a nested item
		// object; collection shares carry a flat items array.
		var probe struct {
			Item  json.RawMessage `json:"item"`
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, ErrInvalidToken
		}
		if len(probe.Item) > 0 {
			kind = KindItemEdit
		} else {
			kind = KindCollection
		}
	}

	switch kind {
	case KindCollection:
		var p SharedCollection
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, ErrInvalidToken
		}
		if err := validate.Struct(&p); err != nil {
			return nil, ErrInvalidToken
		}
		return &Payload{Kind: KindCollection, Collection: &p}, nil
	case KindItemEdit:
		var p SharedItemEdit
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, ErrInvalidToken
		}
		if p.Item.Title == "" || !shelf.ValidType(p.Item.Type) {
			return nil, ErrInvalidToken
		}
		if err := validate.Struct(&p); err != nil {
			return nil, ErrInvalidToken
		}
		return &Payload{Kind: KindItemEdit, ItemEdit: &p}, nil
	}
	return nil, ErrInvalidToken
}

// extractToken pulls the token and, when the input is a URL, the kind
// implied by its query key.
func extractToken(input string) (string, Kind) {
	if u, err := url.Parse(input); err == nil && u.RawQuery != "" {
		q := u.Query()
		if t := q.Get(CollectionParam); t != "" {
			return t, KindCollection
		}
		if t := q.Get(ItemEditParam); t != "" {
			return t, KindItemEdit
		}
	}
	return input, ""
}

// decodeToken reverses the transport encoding, tolerating both padded
// and unpadded URL-safe base64.
func decodeToken(token string) ([]byte, error) {
	if data, err := base64.RawURLEncoding.DecodeString(token); err == nil {
		return data, nil
	}
	if data, err := base64.URLEncoding.DecodeString(token); err == nil {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(token)
}
