package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CatalogReader loads the owned catalog of a user. A nil since returns every
// owned record; otherwise only records updated strictly after since.
type CatalogReader interface {
	FindItems(ctx context.Context, userID int64, since *time.Time) ([]models.Item, error)
	FindLists(ctx context.Context, userID int64, since *time.Time) ([]models.List, error)
	FindListItems(ctx context.Context, userID int64, since *time.Time) ([]models.ListItem, error)
	FindProgressLogs(ctx context.Context, userID int64, since *time.Time) ([]models.ProgressLog, error)
	FindLoans(ctx context.Context, userID int64, since *time.Time) ([]models.Loan, error)
	FindExternalLinks(ctx context.Context, userID int64, since *time.Time) ([]models.ExternalLink, error)
}

// CatalogWriter applies synced records to the catalog. All methods run in
// the transaction opened by [CatalogRepository.InTx].
type CatalogWriter interface {
	// Owned reports whether the item or list id belongs to userID.
	Owned(ctx context.Context, entity models.EntityType, id, userID int64) (bool, error)
	// OwnedByOtherUser reports whether the record id exists and hangs off a
	// user other than userID. Items and lists are checked directly, child
	// records through their item.
	OwnedByOtherUser(ctx context.Context, entity models.EntityType, id, userID int64) (bool, error)
	// UpdatedAt returns the stored updated_at of the record, or nil when it
	// does not exist. Items, lists and list items are scoped to userID.
	UpdatedAt(ctx context.Context, entity models.EntityType, key string, userID int64) (*time.Time, error)

	UpsertItem(ctx context.Context, userID int64, item models.Item) error
	UpsertList(ctx context.Context, userID int64, list models.List) error
	UpsertListItem(ctx context.Context, listItem models.ListItem) error
	UpsertProgressLog(ctx context.Context, log models.ProgressLog) error
	UpsertLoan(ctx context.Context, loan models.Loan) error
	UpsertExternalLink(ctx context.Context, link models.ExternalLink) error

	DeleteList(ctx context.Context, listID int64) error
	DeleteListItem(ctx context.Context, listID, itemID int64) error

	// ResetSequences realigns identity sequences with the synced ids.
	ResetSequences(ctx context.Context) error
}

// CatalogRepository is the local relational store the sync orchestrator
// reads from and writes into.
type CatalogRepository interface {
	CatalogReader
	// InTx runs fn inside one transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(w CatalogWriter) error) error
}

// SyncStateRepository persists per-user sync bookkeeping.
type SyncStateRepository interface {
	// GetOrCreate returns the state of userID, inserting initial when the
	// user has none yet.
	GetOrCreate(ctx context.Context, userID int64, initial models.SyncState) (models.SyncState, error)
	Save(ctx context.Context, state models.SyncState) error
	ListEnabled(ctx context.Context) ([]models.SyncState, error)
	MarkNeedsFullSync(ctx context.Context, userID int64) error
}

// OutboxRepository persists queued local deletions.
type OutboxRepository interface {
	Insert(ctx context.Context, entry models.OutboxEntry) error
	// FindSince returns entries queued strictly after since, oldest first.
	FindSince(ctx context.Context, userID int64, since time.Time) ([]models.OutboxEntry, error)
	// DeleteUpTo removes entries queued at or before ts.
	DeleteUpTo(ctx context.Context, userID int64, ts time.Time) (int64, error)
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}

// UpdateFunc receives the current document, nil when none exists yet, and
// returns the document to store. Returning an error aborts the update and
// leaves the stored document untouched. It may be called more than once
// when a store retries on a concurrent write.
type UpdateFunc func(current []byte) ([]byte, error)

// RemoteDocumentStore holds one snapshot document per namespace and updates
// it as a single read-modify-write unit.
type RemoteDocumentStore interface {
	Update(ctx context.Context, namespace string, fn UpdateFunc) error
}
