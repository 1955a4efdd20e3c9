// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRequest is the body a local node posts to the remote merge store.
type SyncRequest struct {
	// ClientID identifies the local replica. It is generated once per user
	// and stays stable afterwards.
	ClientID string `json:"clientId"`

	// LastSyncAt is the server time of the caller's previous successful
	// round. Nil asks for the whole remote snapshot.
	LastSyncAt *time.Time `json:"lastSyncAt"`

	// Changes holds the local changes since LastSyncAt.
	Changes Payload `json:"changes"`
}

// SyncResponse is the remote merge store's answer to a [SyncRequest].
type SyncResponse struct {
	// ServerTime is the remote clock at the end of the merge. The caller
	// uses it as its next LastSyncAt.
	ServerTime time.Time `json:"serverTime"`

	// Changes is the slice of the remote snapshot modified after the
	// request's LastSyncAt.
	Changes Payload `json:"changes"`

	// ConflictCount is the number of incoming records and deletes the
	// remote store rejected.
	ConflictCount int `json:"conflictCount"`
}

// Sync status labels stored in [SyncState.LastStatus].
const (
	SyncStatusEnabled         = "enabled"
	SyncStatusDisabled        = "disabled"
	SyncStatusMissingEndpoint = "missing-endpoint"
	SyncStatusSuccess         = "success"
	SyncStatusConflicts       = "conflicts"
	SyncStatusError           = "error"
)

// SyncState is the persisted per-user sync bookkeeping of a local node.
type SyncState struct {
	UserID            int64      `json:"user_id"`
	ClientID          string     `json:"client_id"`
	Enabled           bool       `json:"enabled"`
	LastSyncAt        *time.Time `json:"last_sync_at,omitempty"`
	LastStatus        string     `json:"last_status"`
	LastConflictCount int        `json:"last_conflict_count"`
	NeedsFullSync     bool       `json:"needs_full_sync"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Status projects the state onto the public status response.
func (s SyncState) Status() SyncStatus {
	return SyncStatus{
		Enabled:           s.Enabled,
		LastSyncAt:        s.LastSyncAt,
		LastStatus:        s.LastStatus,
		LastConflictCount: s.LastConflictCount,
	}
}

// SyncStatus is returned by the local sync endpoints.
type SyncStatus struct {
	Enabled           bool       `json:"enabled"`
	LastSyncAt        *time.Time `json:"lastSyncAt"`
	LastStatus        string     `json:"lastStatus"`
	LastConflictCount int        `json:"lastConflictCount"`
}

// SyncEnableRequest is the body of the enable endpoint.
type SyncEnableRequest struct {
	Enabled *bool `json:"enabled"`
}
