package store

import (
	"context"
	"fmt"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

// Storages groups the repositories of a catalog node.
type Storages struct {
	CatalogRepository   CatalogRepository
	SyncStateRepository SyncStateRepository
	OutboxRepository    OutboxRepository
}

// NewStorages wires every catalog node repository onto db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CatalogRepository:   NewCatalogRepository(db, logger),
		SyncStateRepository: NewSyncStateRepository(db, logger),
		OutboxRepository:    NewOutboxRepository(db, logger),
	}
}

// NewRemoteDocumentStore opens the document backend selected by
// cfg.Driver. SQL backends are migrated before use. The returned close
// function releases the underlying connection.
func NewRemoteDocumentStore(ctx context.Context, cfg config.Remote, log *logger.Logger) (RemoteDocumentStore, func() error, error) {
	switch cfg.Driver {
	case config.RemoteDriverS3:
		s, err := NewS3DocumentStore(ctx, cfg.S3, log)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil

	case config.RemoteDriverPostgres, config.RemoteDriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.RemoteDriverPostgres {
			db, err = NewConnectPostgres(ctx, config.DB{DSN: cfg.DSN}, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DSN, log)
		}
		if err != nil {
			return nil, nil, err
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return NewSQLDocumentStore(db, log), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
