// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntityType names a synchronizable entity kind. It is also the namespace
// of tombstone keys and outbox entries.
type EntityType string

const (
	EntityItem         EntityType = "ITEM"
	EntityList         EntityType = "LIST"
	EntityListItem     EntityType = "LIST_ITEM"
	EntityProgressLog  EntityType = "PROGRESS_LOG"
	EntityLoan         EntityType = "LOAN"
	EntityExternalLink EntityType = "EXTERNAL_LINK"
)

// ErrMalformedListItemKey is returned by [ParseListItemKey] when the key is
// not of the form "listId:itemId".
var ErrMalformedListItemKey = errors.New("malformed list item key")

// Record is implemented by every snapshot type that participates in
// last-writer-wins merging.
type Record interface {
	// EntityType returns the tombstone namespace of the record.
	EntityType() EntityType
	// Key returns the natural key: the numeric id, or "listId:itemId"
	// for list memberships.
	Key() string
	// LastModified returns the updatedAt timestamp, or the zero time when
	// the record carries none.
	LastModified() time.Time
	// Valid reports whether the record has both a key and an updatedAt.
	// Invalid records are skipped by every merge pass.
	Valid() bool
}

// TombstoneKey builds the "TYPE:key" identifier under which deletions are
// recorded.
func TombstoneKey(entityType EntityType, key string) string {
	return string(entityType) + ":" + key
}

// ListItemKey builds the composite natural key of a list membership.
func ListItemKey(listID, itemID int64) string {
	return strconv.FormatInt(listID, 10) + ":" + strconv.FormatInt(itemID, 10)
}

// ParseListItemKey splits a composite "listId:itemId" key.
func ParseListItemKey(key string) (int64, int64, error) {
	left, right, ok := strings.Cut(key, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedListItemKey, key)
	}
	listID, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedListItemKey, key)
	}
	itemID, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedListItemKey, key)
	}
	return listID, itemID, nil
}

// IsNewer reports whether incoming strictly supersedes stored.
// Ties favor the stored version.
func IsNewer(incoming, stored time.Time) bool {
	return incoming.After(stored)
}

// FilterUpdatedAfter returns the records modified strictly after since.
// A nil since returns every valid record.
func FilterUpdatedAfter[T Record](records []T, since *time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		if since != nil && !r.LastModified().After(*since) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
