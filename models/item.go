// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ItemType is the media kind of a catalog item.
type ItemType string

const (
	ItemTypeBook ItemType = "BOOK"
	ItemTypeDVD  ItemType = "DVD"
)

// ItemInfo is the type-specific sub-record of an item.
// Exactly one implementation is attached to an item: [BookInfo] for books
// and [DvdInfo] for DVDs.
type ItemInfo interface {
	isItemInfo()
}

// BookInfo carries the book-specific attributes of an item.
type BookInfo struct {
	ISBN      string   `json:"isbn,omitempty"`
	Pages     *int     `json:"pages,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Authors   []string `json:"authors,omitempty"`
}

func (BookInfo) isItemInfo() {}

// DvdInfo carries the DVD-specific attributes of an item.
type DvdInfo struct {
	Runtime  *int     `json:"runtime,omitempty"`
	Director string   `json:"director,omitempty"`
	Cast     []string `json:"cast,omitempty"`
}

func (DvdInfo) isItemInfo() {}

// Item is the snapshot of a catalog item as exchanged between replicas.
//
// On the wire Info is written as one of the mutually exclusive "bookInfo"
// and "dvdInfo" fields.
type Item struct {
	ID              int64      `json:"id"`
	Type            ItemType   `json:"type"`
	Title           string     `json:"title"`
	Year            *int       `json:"year,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status,omitempty"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt"`
	ProgressPercent int        `json:"progressPercent"`
	ProgressValue   int        `json:"progressValue"`
	TotalValue      int        `json:"totalValue"`
	Tags            []string   `json:"tags,omitempty"`
	Info            ItemInfo   `json:"-"`
}

func (i Item) EntityType() EntityType  { return EntityItem }
func (i Item) Key() string             { return formatID(i.ID) }
func (i Item) LastModified() time.Time { return timeOrZero(i.UpdatedAt) }
func (i Item) Valid() bool             { return i.ID != 0 && i.UpdatedAt != nil }

// Book returns the book sub-record, if any.
func (i Item) Book() (BookInfo, bool) {
	switch v := i.Info.(type) {
	case BookInfo:
		return v, true
	case *BookInfo:
		if v != nil {
			return *v, true
		}
	}
	return BookInfo{}, false
}

// Dvd returns the DVD sub-record, if any.
func (i Item) Dvd() (DvdInfo, bool) {
	switch v := i.Info.(type) {
	case DvdInfo:
		return v, true
	case *DvdInfo:
		if v != nil {
			return *v, true
		}
	}
	return DvdInfo{}, false
}

// itemAlias strips the methods of Item so the wire form can be encoded
// without recursing into MarshalJSON.
type itemAlias Item

type itemWire struct {
	itemAlias
	BookInfo *BookInfo `json:"bookInfo,omitempty"`
	DvdInfo  *DvdInfo  `json:"dvdInfo,omitempty"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	w := itemWire{itemAlias: itemAlias(i)}
	if b, ok := i.Book(); ok {
		w.BookInfo = &b
	} else if d, ok := i.Dvd(); ok {
		w.DvdInfo = &d
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the wire form. When both sub-records are present the
// one matching Type wins.
func (i *Item) UnmarshalJSON(b []byte) error {
	var w itemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*i = Item(w.itemAlias)
	switch {
	case w.BookInfo != nil && (w.DvdInfo == nil || i.Type != ItemTypeDVD):
		i.Info = *w.BookInfo
	case w.DvdInfo != nil:
		i.Info = *w.DvdInfo
	}
	return nil
}
