// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/validators"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// memDocuments is an in-memory RemoteDocumentStore.
type memDocuments struct {
	mu      sync.Mutex
	docs    map[string][]byte
	updates int
	err     error
}

func newMemDocuments() *memDocuments {
	return &memDocuments{docs: map[string][]byte{}}
}

func (m *memDocuments) Update(_ context.Context, namespace string, fn store.UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.updates++

	next, err := fn(m.docs[namespace])
	if err != nil {
		return err
	}
	m.docs[namespace] = next
	return nil
}

const testAPIKey = "secret"

var serverNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestMergeSvc(docs store.RemoteDocumentStore, apiKey string) *remoteMergeService {
	svc := NewRemoteMergeService(docs, apiKey, "default", logger.Nop()).(*remoteMergeService)
	svc.now = func() time.Time { return serverNow }
	return svc
}

func merge(t *testing.T, svc *remoteMergeService, req models.SyncRequest) models.SyncResponse {
	t.Helper()
	resp, err := svc.Merge(context.Background(), testAPIKey, "", req)
	require.NoError(t, err)
	return resp
}

// ── authentication ───────────────────────────────────────────────────────────

func TestRemoteMergeService_Merge_KeyNotConfigured(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, "")

	_, err := svc.Merge(context.Background(), "anything", "", models.SyncRequest{ClientID: "c"})

	assert.ErrorIs(t, err, ErrSyncAPIKeyNotConfigured)
	assert.Zero(t, docs.updates)
}

func TestRemoteMergeService_Merge_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "secreT", "secret "} {
		docs := newMemDocuments()
		svc := newTestMergeSvc(docs, testAPIKey)

		_, err := svc.Merge(context.Background(), key, "", models.SyncRequest{ClientID: "c"})

		assert.ErrorIs(t, err, ErrInvalidSyncAPIKey, "key %q", key)
		assert.Zero(t, docs.updates)
	}
}

func TestRemoteMergeService_Authenticate(t *testing.T) {
	svc := newTestMergeSvc(newMemDocuments(), testAPIKey)

	assert.NoError(t, svc.Authenticate(testAPIKey))
	assert.ErrorIs(t, svc.Authenticate("wrong"), ErrInvalidSyncAPIKey)
	assert.ErrorIs(t, newTestMergeSvc(newMemDocuments(), "").Authenticate(testAPIKey), ErrSyncAPIKeyNotConfigured)
}

// ── validation ───────────────────────────────────────────────────────────────

func TestRemoteMergeService_Merge_RequiresClientID(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, testAPIKey)

	_, err := svc.Merge(context.Background(), testAPIKey, "", models.SyncRequest{ClientID: "  "})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyClientID)
	assert.Zero(t, docs.updates)
}

func TestRemoteMergeService_Merge_RejectsBadNamespace(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, testAPIKey)

	_, err := svc.Merge(context.Background(), testAPIKey, "../etc", models.SyncRequest{ClientID: "c"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidNamespace)
	assert.Zero(t, docs.updates)
}

func TestRemoteMergeService_Merge_InvalidDeletesAreSkipped(t *testing.T) {
	svc := newTestMergeSvc(newMemDocuments(), testAPIKey)

	resp := merge(t, svc, models.SyncRequest{
		ClientID: "c",
		Changes: models.Payload{Deletes: []models.Delete{
			{EntityType: models.EntityList, EntityKey: "9"},
			{EntityKey: "9", DeletedAt: at(1)},
		}},
	})

	assert.Zero(t, resp.ConflictCount)
	assert.Empty(t, resp.Changes.Deletes)
}

// ── namespaces ───────────────────────────────────────────────────────────────

func TestRemoteMergeService_Merge_NamespacesAreIsolated(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, testAPIKey)
	ctx := context.Background()

	_, err := svc.Merge(ctx, testAPIKey, "team-a", models.SyncRequest{
		ClientID: "c",
		Changes:  models.Payload{Lists: []models.List{{ID: 1, Name: "A", UpdatedAt: at(1)}}},
	})
	require.NoError(t, err)

	resp, err := svc.Merge(ctx, testAPIKey, "", models.SyncRequest{ClientID: "c"})
	require.NoError(t, err)
	assert.Empty(t, resp.Changes.Lists)

	assert.Contains(t, docs.docs, "team-a")
	assert.Contains(t, docs.docs, "default")
}

// ── merge semantics ──────────────────────────────────────────────────────────

func TestRemoteMergeService_Merge_FullSyncReturnsWholeSnapshot(t *testing.T) {
	svc := newTestMergeSvc(newMemDocuments(), testAPIKey)

	merge(t, svc, models.SyncRequest{
		ClientID: "a",
		Changes: models.Payload{
			Items: []models.Item{{ID: 1, Title: "Dune", UpdatedAt: at(1)}},
			Lists: []models.List{{ID: 2, Name: "Shelf", UpdatedAt: at(2)}},
		},
	})

	resp := merge(t, svc, models.SyncRequest{ClientID: "b"})

	assert.True(t, serverNow.Equal(resp.ServerTime))
	assert.False(t, resp.Changes.FullSync)
	assert.Len(t, resp.Changes.Items, 1)
	assert.Len(t, resp.Changes.Lists, 1)
}

func TestRemoteMergeService_Merge_StaleRecordCountsConflict(t *testing.T) {
	svc := newTestMergeSvc(newMemDocuments(), testAPIKey)
	merge(t, svc, models.SyncRequest{
		ClientID: "a",
		Changes:  models.Payload{Items: []models.Item{{ID: 5, Title: "remote", UpdatedAt: at(3)}}},
	})

	resp := merge(t, svc, models.SyncRequest{
		ClientID:   "b",
		LastSyncAt: at(0),
		Changes:    models.Payload{Items: []models.Item{{ID: 5, Title: "stale", UpdatedAt: at(1)}}},
	})

	assert.Equal(t, 1, resp.ConflictCount)
	require.Len(t, resp.Changes.Items, 1)
	assert.Equal(t, "remote", resp.Changes.Items[0].Title)
}

func TestRemoteMergeService_Merge_DeletedListRejectsOlderEdits(t *testing.T) {
	svc := newTestMergeSvc(newMemDocuments(), testAPIKey)
	merge(t, svc, models.SyncRequest{
		ClientID: "a",
		Changes:  models.Payload{Lists: []models.List{{ID: 9, Name: "Keep", UpdatedAt: at(1)}}},
	})
	merge(t, svc, models.SyncRequest{
		ClientID: "a",
		Changes:  models.Payload{Deletes: []models.Delete{del(models.EntityList, "9", 5)}},
	})

	resp := merge(t, svc, models.SyncRequest{
		ClientID:   "b",
		LastSyncAt: at(2),
		Changes:    models.Payload{Lists: []models.List{{ID: 9, Name: "Edit", UpdatedAt: at(3)}}},
	})

	assert.Equal(t, 1, resp.ConflictCount)
	assert.Empty(t, resp.Changes.Lists)
	require.Len(t, resp.Changes.Deletes, 1)
	assert.Equal(t, models.EntityList, resp.Changes.Deletes[0].EntityType)
	assert.Equal(t, "9", resp.Changes.Deletes[0].EntityKey)
}

func TestRemoteMergeService_Merge_SamePayloadTwiceIsStable(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, testAPIKey)
	req := models.SyncRequest{
		ClientID: "a",
		Changes: models.Payload{
			Lists:   []models.List{{ID: 1, UpdatedAt: at(1)}},
			Deletes: []models.Delete{del(models.EntityListItem, "1:2", 2)},
		},
	}

	merge(t, svc, req)
	first := string(docs.docs["default"])
	merge(t, svc, req)

	assert.JSONEq(t, first, string(docs.docs["default"]))
}

// ── store failures ───────────────────────────────────────────────────────────

func TestRemoteMergeService_Merge_CorruptDocumentIsNotOverwritten(t *testing.T) {
	docs := newMemDocuments()
	docs.docs["default"] = []byte("{broken")
	svc := newTestMergeSvc(docs, testAPIKey)

	_, err := svc.Merge(context.Background(), testAPIKey, "", models.SyncRequest{
		ClientID: "a",
		Changes:  models.Payload{Lists: []models.List{{ID: 1, UpdatedAt: at(1)}}},
	})

	assert.ErrorIs(t, err, ErrCorruptRemoteStore)
	assert.Equal(t, "{broken", string(docs.docs["default"]))
}

func TestRemoteMergeService_Merge_StoreError(t *testing.T) {
	docs := newMemDocuments()
	docs.err = errors.New("connection reset")
	svc := newTestMergeSvc(docs, testAPIKey)

	_, err := svc.Merge(context.Background(), testAPIKey, "", models.SyncRequest{ClientID: "a"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptRemoteStore)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRemoteMergeService_Merge_ConcurrentRequests(t *testing.T) {
	docs := newMemDocuments()
	svc := newTestMergeSvc(docs, testAPIKey)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := svc.Merge(context.Background(), testAPIKey, "", models.SyncRequest{
				ClientID: "c",
				Changes:  models.Payload{Lists: []models.List{{ID: id, UpdatedAt: at(1)}}},
			})
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	resp := merge(t, svc, models.SyncRequest{ClientID: "reader"})
	assert.Len(t, resp.Changes.Lists, 20)
}
