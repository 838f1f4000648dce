// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package shelf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/store"
)

// Snapshot keys. The whole shelf lives in two JSON-array blobs which are
// rewritten wholesale after every mutation.
const (
	itemsKey       = "arc-shelf:items"
	collectionsKey = "arc-shelf:collections"
)

var (
	ErrEmptyTitle         = errors.New("shelf: collection title is empty")
	ErrDuplicateTitle     = errors.New("shelf: a collection of this type already has that title")
	ErrItemNotFound       = errors.New("shelf: item not found")
	ErrCollectionNotFound = errors.New("shelf: collection not found")
	ErrInvalidType        = errors.New("shelf: unknown media type")
)

// Library owns the item and collection sets. All operations are
// synchronous: they either mutate in-memory state and snapshot it to the
// store, or fail with a sentinel error and leave everything untouched.
type Library struct {
	kv  store.KV
	log *zap.Logger

	items       []*MediaItem
	collections []*Collection
}

// Open loads both snapshots from kv. Missing keys mean a first run and
// initialize an empty shelf.
func Open(kv store.KV, log *zap.Logger) (*Library, error) {
	if log == nil {
		log = zap.NewNop()
	}
	lib := &Library{kv: kv, log: log}

	ctx := context.Background()
	if err := loadBlob(ctx, kv, itemsKey, &lib.items); err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if err := loadBlob(ctx, kv, collectionsKey, &lib.collections); err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}
	return lib, nil
}

func loadBlob[T any](ctx context.Context, kv store.KV, key string, out *[]T) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			*out = nil
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func (l *Library) persistItems() error {
	data, err := json.Marshal(l.items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	return l.kv.Set(context.Background(), itemsKey, data)
}

func (l *Library) persistCollections() error {
	data, err := json.Marshal(l.collections)
	if err != nil {
		return fmt.Errorf("marshal collections: %w", err)
	}
	return l.kv.Set(context.Background(), collectionsKey, data)
}

// Items returns the current item set. Callers must not mutate the
// returned items without going through UpdateItem.
func (l *Library) Items() []*MediaItem {
	out := make([]*MediaItem, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the item with the given id, or nil.
func (l *Library) Item(id string) *MediaItem {
	for _, it := range l.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Collections returns the current collection set.
func (l *Library) Collections() []*Collection {
	out := make([]*Collection, len(l.collections))
	copy(out, l.collections)
	return out
}

// Collection returns the collection with the given id, or nil.
func (l *Library) Collection(id string) *Collection {
	for _, c := range l.collections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CollectionByTitle finds a same-type collection by case-insensitive
// title, or nil.
func (l *Library) CollectionByTitle(title string, t MediaType) *Collection {
	for _, c := range l.collections {
		if c.Type == t && strings.EqualFold(c.Title, title) {
			return c
		}
	}
	return nil
}

// AddItem adds item to the shelf with a fresh id, wishlist status, and
// no memories. Duplicate titles are allowed to coexist. When
// targetCollectionID is non-empty the new item starts out as a member of
// that collection.
func (l *Library) AddItem(item MediaItem, targetCollectionID string) (*MediaItem, error) {
	if !ValidType(item.Type) {
		return nil, ErrInvalidType
	}
	if targetCollectionID != "" && l.Collection(targetCollectionID) == nil {
		return nil, ErrCollectionNotFound
	}

	item.ID = uuid.New().String()
	item.Status = StatusWishlist
	item.Rating = 0
	item.Review = ""
	item.Memories = nil
	item.CollectionIDs = nil
	item.Collaborators = nil
	item.AddedAt = time.Now()
	if targetCollectionID != "" {
		item.CollectionIDs = []string{targetCollectionID}
	}

	l.items = append(l.items, &item)
	if err := l.persistItems(); err != nil {
		l.items = l.items[:len(l.items)-1]
		return nil, err
	}
	l.log.Debug("item added", zap.String("id", item.ID), zap.String("title", item.Title))
	return &item, nil
}

// InsertItem adds an item keeping its existing identity and user state.
// It backs share imports; normal creation goes through AddItem.
func (l *Library) InsertItem(item MediaItem) (*MediaItem, error) {
	if !ValidType(item.Type) {
		return nil, ErrInvalidType
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	l.items = append(l.items, &item)
	if err := l.persistItems(); err != nil {
		l.items = l.items[:len(l.items)-1]
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the stored item with the same id. Unknown ids are
// a no-op. The item's type and added timestamp are immutable.
func (l *Library) UpdateItem(item MediaItem) error {
	for i, existing := range l.items {
		if existing.ID != item.ID {
			continue
		}
		item.Type = existing.Type
		item.AddedAt = existing.AddedAt
		l.items[i] = &item
		if err := l.persistItems(); err != nil {
			l.items[i] = existing
			return err
		}
		return nil
	}
	return nil
}

// DeleteItem removes the item with the given id. Deleting an unknown id
// is a no-op.
func (l *Library) DeleteItem(id string) error {
	for i, it := range l.items {
		if it.ID != id {
			continue
		}
		l.items = append(l.items[:i:i], l.items[i+1:]...)
		if err := l.persistItems(); err != nil {
			return err
		}
		l.log.Debug("item deleted", zap.String("id", id))
		return nil
	}
	return nil
}

// CreateCollection creates a collection after trimming and validating
// its title. Titles are unique case-insensitively within a type.
func (l *Library) CreateCollection(title, description string, t MediaType) (*Collection, error) {
	if !ValidType(t) {
		return nil, ErrInvalidType
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if l.CollectionByTitle(title, t) != nil {
		return nil, ErrDuplicateTitle
	}

	c := &Collection{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Type:        t,
		CreatedAt:   time.Now(),
	}
	l.collections = append(l.collections, c)
	if err := l.persistCollections(); err != nil {
		l.collections = l.collections[:len(l.collections)-1]
		return nil, err
	}
	return c, nil
}

// UpdateCollection renames or re-describes a collection. The duplicate
// check excludes the collection itself.
func (l *Library) UpdateCollection(id, title, description string) (*Collection, error) {
	c := l.Collection(id)
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if other := l.CollectionByTitle(title, c.Type); other != nil && other.ID != id {
		return nil, ErrDuplicateTitle
	}

	prevTitle, prevDesc := c.Title, c.Description
	c.Title = title
	c.Description = description
	if err := l.persistCollections(); err != nil {
		c.Title, c.Description = prevTitle, prevDesc
		return nil, err
	}
	return c, nil
}

// DeleteCollection removes the collection and strips its id from every
// item's membership set. Items themselves are never deleted.
func (l *Library) DeleteCollection(id string) error {
	idx := -1
	for i, c := range l.collections {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrCollectionNotFound
	}

	l.collections = append(l.collections[:idx:idx], l.collections[idx+1:]...)

	touched := false
	for _, it := range l.items {
		next := it.CollectionIDs[:0:0]
		for _, cid := range it.CollectionIDs {
			if cid != id {
				next = append(next, cid)
			}
		}
		if len(next) != len(it.CollectionIDs) {
			it.CollectionIDs = next
			touched = true
		}
	}

	if err := l.persistCollections(); err != nil {
		return err
	}
	if touched {
		if err := l.persistItems(); err != nil {
			return err
		}
	}
	return nil
}

// SetItemCollections replaces an item's membership set wholesale.
func (l *Library) SetItemCollections(itemID string, collectionIDs []string) error {
	item := l.Item(itemID)
	if item == nil {
		return ErrItemNotFound
	}
	for _, cid := range collectionIDs {
		if l.Collection(cid) == nil {
			return ErrCollectionNotFound
		}
	}
	prev := item.CollectionIDs
	item.CollectionIDs = append([]string(nil), collectionIDs...)
	if err := l.persistItems(); err != nil {
		item.CollectionIDs = prev
		return err
	}
	return nil
}

// SetStatusBulk assigns status to every listed item. Unknown ids are
// skipped.
func (l *Library) SetStatusBulk(ids []string, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("shelf: unknown status %q", status)
	}
	prev := make(map[string]Status, len(ids))
	for _, id := range ids {
		if it := l.Item(id); it != nil {
			prev[id] = it.Status
			it.Status = status
		}
	}
	if err := l.persistItems(); err != nil {
		for id, st := range prev {
			l.Item(id).Status = st
		}
		return err
	}
	return nil
}

// RemoveBulk is the batch "delete" with context-dependent scope: with a
// collectionID it only removes the items' membership in that collection;
// without one it deletes the items from the library entirely.
func (l *Library) RemoveBulk(ids []string, collectionID string) error {
	if collectionID != "" {
		if l.Collection(collectionID) == nil {
			return ErrCollectionNotFound
		}
		prev := make(map[string][]string, len(ids))
		for _, id := range ids {
			it := l.Item(id)
			if it == nil {
				continue
			}
			prev[id] = it.CollectionIDs
			next := it.CollectionIDs[:0:0]
			for _, cid := range it.CollectionIDs {
				if cid != collectionID {
					next = append(next, cid)
				}
			}
			it.CollectionIDs = next
		}
		if err := l.persistItems(); err != nil {
			for id, cids := range prev {
				l.Item(id).CollectionIDs = cids
			}
			return err
		}
		return nil
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := l.items[:0:0]
	for _, it := range l.items {
		if !drop[it.ID] {
			kept = append(kept, it)
		}
	}
	before := l.items
	l.items = kept
	if err := l.persistItems(); err != nil {
		l.items = before
		return err
	}
	return nil
}
