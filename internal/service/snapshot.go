// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// snapshot is the in-memory form of a remote snapshot document: every
// synced record keyed by its natural key plus the tombstones keyed by
// "TYPE:key". The stored form is a [models.Payload] whose Deletes hold the
// tombstones.
type snapshot struct {
	items         map[string]models.Item
	lists         map[string]models.List
	listItems     map[string]models.ListItem
	progressLogs  map[string]models.ProgressLog
	loans         map[string]models.Loan
	externalLinks map[string]models.ExternalLink
	tombstones    map[string]models.Delete
}

// decodeSnapshot parses a stored document. A nil or blank document is an
// empty snapshot.
func decodeSnapshot(doc []byte) (*snapshot, error) {
	var p models.Payload
	if len(bytes.TrimSpace(doc)) > 0 {
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, err
		}
	}

	s := &snapshot{
		items:         keyed(p.Items),
		lists:         keyed(p.Lists),
		listItems:     keyed(p.ListItems),
		progressLogs:  keyed(p.ProgressLogs),
		loans:         keyed(p.Loans),
		externalLinks: keyed(p.ExternalLinks),
		tombstones:    make(map[string]models.Delete, len(p.Deletes)),
	}
	for _, d := range p.Deletes {
		if d.Valid() {
			d = normalizeDelete(d)
			s.tombstones[d.Key()] = d
		}
	}

	return s, nil
}

func (s *snapshot) encode() ([]byte, error) {
	return json.Marshal(s.delta(nil))
}

// apply merges incoming changes into the snapshot and returns the number of
// rejected records and deletes. Deletes are applied after every record type.
func (s *snapshot) apply(changes models.Payload) int {
	conflicts := 0
	conflicts += mergeRecords(s.items, s.tombstones, changes.Items)
	conflicts += mergeRecords(s.lists, s.tombstones, changes.Lists)
	conflicts += mergeRecords(s.listItems, s.tombstones, changes.ListItems)
	conflicts += mergeRecords(s.progressLogs, s.tombstones, changes.ProgressLogs)
	conflicts += mergeRecords(s.loans, s.tombstones, changes.Loans)
	conflicts += mergeRecords(s.externalLinks, s.tombstones, changes.ExternalLinks)
	conflicts += s.applyDeletes(changes.Deletes)
	return conflicts
}

// mergeRecords applies last-writer-wins per key. A record older than its
// tombstone, or not strictly newer than the stored version, is rejected.
func mergeRecords[T models.Record](stored map[string]T, tombstones map[string]models.Delete, incoming []T) int {
	conflicts := 0
	for _, r := range incoming {
		if !r.Valid() {
			continue
		}

		key := r.Key()
		if t, ok := tombstones[models.TombstoneKey(r.EntityType(), key)]; ok && t.LastModified().After(r.LastModified()) {
			conflicts++
			continue
		}

		existing, ok := stored[key]
		if ok && !models.IsNewer(r.LastModified(), existing.LastModified()) {
			conflicts++
			continue
		}
		stored[key] = r
	}
	return conflicts
}

func (s *snapshot) applyDeletes(deletes []models.Delete) int {
	conflicts := 0
	for _, d := range deletes {
		if !d.Valid() {
			continue
		}
		d = normalizeDelete(d)
		deletedAt := d.LastModified()

		if t, ok := s.tombstones[d.Key()]; ok && t.LastModified().After(deletedAt) {
			continue
		}

		switch d.EntityType {
		case models.EntityList:
			if l, ok := s.lists[d.EntityKey]; ok && l.LastModified().After(deletedAt) {
				conflicts++
				continue
			}
			delete(s.lists, d.EntityKey)
			s.removeListItems(d.EntityKey, deletedAt)

		case models.EntityListItem:
			if li, ok := s.listItems[d.EntityKey]; ok && li.LastModified().After(deletedAt) {
				conflicts++
				continue
			}
			delete(s.listItems, d.EntityKey)
		}

		s.tombstones[d.Key()] = d
	}
	return conflicts
}

// removeListItems drops every list item of listKey and leaves a LIST_ITEM
// tombstone stamped with the list's deletion time for each.
func (s *snapshot) removeListItems(listKey string, deletedAt time.Time) {
	prefix := listKey + ":"
	for key := range s.listItems {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		delete(s.listItems, key)

		at := deletedAt
		tomb := models.Delete{EntityType: models.EntityListItem, EntityKey: key, DeletedAt: &at}
		s.tombstones[tomb.Key()] = tomb
	}
}

// delta returns the records and tombstones modified strictly after since,
// or everything when since is nil, in ascending key order.
func (s *snapshot) delta(since *time.Time) models.Payload {
	return models.Payload{
		FullSync:      false,
		Items:         sortedAfter(s.items, since),
		Lists:         sortedAfter(s.lists, since),
		ListItems:     sortedAfter(s.listItems, since),
		ProgressLogs:  sortedAfter(s.progressLogs, since),
		Loans:         sortedAfter(s.loans, since),
		ExternalLinks: sortedAfter(s.externalLinks, since),
		Deletes:       sortedTombstones(s.tombstones, since),
	}
}

func keyed[T models.Record](records []T) map[string]T {
	m := make(map[string]T, len(records))
	for _, r := range records {
		if r.Valid() {
			m[r.Key()] = r
		}
	}
	return m
}

func sortedAfter[T models.Record](m map[string]T, since *time.Time) []T {
	keys := slices.SortedFunc(maps.Keys(m), compareKeys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return models.FilterUpdatedAfter(out, since)
}

func sortedTombstones(m map[string]models.Delete, since *time.Time) []models.Delete {
	keys := slices.SortedFunc(maps.Keys(m), compareKeys)
	out := make([]models.Delete, 0, len(keys))
	for _, k := range keys {
		d := m[k]
		if since != nil && !d.LastModified().After(*since) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// compareKeys orders keys segment by segment on ':', numerically where both
// segments are integers, so "9" sorts before "10" and "2:5" before "10:1".
func compareKeys(a, b string) int {
	as, bs := strings.Split(a, ":"), strings.Split(b, ":")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

func compareSegment(a, b string) int {
	an, aErr := strconv.ParseInt(a, 10, 64)
	bn, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// normalizeDelete upper-cases the entity type so tombstones match
// regardless of the sender's casing.
func normalizeDelete(d models.Delete) models.Delete {
	d.EntityType = models.EntityType(strings.ToUpper(string(d.EntityType)))
	return d
}
