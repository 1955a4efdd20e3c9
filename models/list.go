package models

import "time"

// List is the snapshot of a user-owned ordered collection of items.
type List struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (l List) EntityType() EntityType  { return EntityList }
func (l List) Key() string             { return formatID(l.ID) }
func (l List) LastModified() time.Time { return timeOrZero(l.UpdatedAt) }
func (l List) Valid() bool             { return l.ID != 0 && l.UpdatedAt != nil }

// ListItem is the membership of an item in a list. Its natural key is the
// composite "listId:itemId"; Position is dense and zero-based per list.
type ListItem struct {
	ListID    int64      `json:"listId"`
	ItemID    int64      `json:"itemId"`
	Position  int        `json:"position"`
	Priority  int        `json:"priority"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (l ListItem) EntityType() EntityType  { return EntityListItem }
func (l ListItem) Key() string             { return ListItemKey(l.ListID, l.ItemID) }
func (l ListItem) LastModified() time.Time { return timeOrZero(l.UpdatedAt) }
func (l ListItem) Valid() bool {
	return l.ListID != 0 && l.ItemID != 0 && l.UpdatedAt != nil
}
