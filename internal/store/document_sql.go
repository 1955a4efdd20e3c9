package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/migrations"
)

const remoteStoreTable = "sync_remote_store"

// sqlDocumentStore keeps one snapshot document per namespace in a table row.
// Update locks the row for the duration of the transaction: postgres through
// SELECT ... FOR UPDATE, sqlite through its immediate transaction mode.
type sqlDocumentStore struct {
	*DB
	logger *logger.Logger
}

func NewSQLDocumentStore(db *DB, logger *logger.Logger) RemoteDocumentStore {
	logger.Debug().Str("dialect", db.Dialect()).Msg("SQL document store created")
	return &sqlDocumentStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqlDocumentStore) Update(ctx context.Context, namespace string, fn UpdateFunc) error {
	log := logger.FromContext(ctx)
	b := s.builder()

	err := s.inTx(ctx, nil, func(tx *sql.Tx) error {
		query, args, err := buildEnsureDocumentQuery(b, namespace, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildSelectDocumentQuery(b, namespace, s.dialect == migrations.DialectPostgres)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var payload sql.Null[string]
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var current []byte
		if payload.Valid && payload.V != "" {
			current = []byte(payload.V)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		query, args, err = buildSaveDocumentQuery(b, namespace, next, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlDocumentStore.Update").
			Str("namespace", namespace).
			Str("classification", s.classify(err)).
			Msg("document update failed")
		return err
	}

	return nil
}

// buildEnsureDocumentQuery inserts an empty row for namespace so the
// following select has a row to lock.
func buildEnsureDocumentQuery(b sq.StatementBuilderType, namespace string, now time.Time) (string, []any, error) {
	return b.Insert(remoteStoreTable).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, nil, now).
		Suffix("ON CONFLICT (namespace) DO NOTHING").
		ToSql()
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, namespace string, lock bool) (string, []any, error) {
	q := b.Select("payload").
		From(remoteStoreTable).
		Where(sq.Eq{"namespace": namespace})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func buildSaveDocumentQuery(b sq.StatementBuilderType, namespace string, payload []byte, now time.Time) (string, []any, error) {
	return b.Update(remoteStoreTable).
		Set("payload", string(payload)).
		Set("updated_at", now).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}
