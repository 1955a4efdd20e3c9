package models

import "time"

// OutboxOperation is the kind of a queued outbox entry.
type OutboxOperation string

const OutboxDelete OutboxOperation = "DELETE"

// OutboxEntry is a local deletion awaiting propagation to the remote store.
type OutboxEntry struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	EntityType EntityType      `json:"entity_type"`
	EntityKey  string          `json:"entity_key"`
	Operation  OutboxOperation `json:"operation"`
	QueuedAt   time.Time       `json:"queued_at"`
}

// OutboxDeleteRequest reports a local deletion of a list or a list
// membership. EntityKey is the list id, or "listId:itemId" for a membership.
type OutboxDeleteRequest struct {
	EntityType EntityType `json:"entityType"`
	EntityKey  string     `json:"entityKey"`
}
