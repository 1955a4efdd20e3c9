package models

import "time"

// Delete is a tombstone: the record that an entity was deleted at DeletedAt.
//
// A tombstone suppresses incoming versions of the same key that are older
// than itself. A version updated after DeletedAt resurrects the entity.
type Delete struct {
	EntityType EntityType `json:"entityType"`
	EntityKey  string     `json:"entityKey"`
	DeletedAt  *time.Time `json:"deletedAt"`
}

// Key returns the tombstone key "TYPE:key".
func (d Delete) Key() string { return TombstoneKey(d.EntityType, d.EntityKey) }

// LastModified returns DeletedAt.
func (d Delete) LastModified() time.Time { return timeOrZero(d.DeletedAt) }

func (d Delete) Valid() bool {
	return d.EntityType != "" && d.EntityKey != "" && d.DeletedAt != nil
}
