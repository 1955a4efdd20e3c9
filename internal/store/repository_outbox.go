package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

type outboxRepository struct {
	*DB
	logger *logger.Logger
}

func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	logger.Debug().Msg("OutboxRepository created")
	return &outboxRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *outboxRepository) Insert(ctx context.Context, entry models.OutboxEntry) error {
	queuedAt := entry.QueuedAt
	if queuedAt.IsZero() {
		queuedAt = time.Now().UTC()
	}

	_, err := r.ExecContext(ctx, insertOutboxEntry,
		entry.UserID, string(entry.EntityType), entry.EntityKey, string(entry.Operation), queuedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "outboxRepository.Insert").
			Int64("user_id", entry.UserID).
			Str("entity_type", string(entry.EntityType)).
			Str("entity_key", entry.EntityKey).
			Str("classification", r.classify(err)).
			Msg("failed to queue outbox entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *outboxRepository) FindSince(ctx context.Context, userID int64, since time.Time) ([]models.OutboxEntry, error) {
	entries, err := queryRows(ctx, r.DB, selectOutboxSince, []any{userID, since.UTC()}, scanOutboxEntry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "outboxRepository.FindSince").
			Int64("user_id", userID).
			Msg("failed to read outbox")
		return nil, err
	}
	return entries, nil
}

func (r *outboxRepository) DeleteUpTo(ctx context.Context, userID int64, ts time.Time) (int64, error) {
	return r.delete(ctx, "outboxRepository.DeleteUpTo", deleteOutboxUpTo, userID, ts.UTC())
}

func (r *outboxRepository) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	return r.delete(ctx, "outboxRepository.DeleteAll", deleteOutboxAll, userID)
}

func (r *outboxRepository) delete(ctx context.Context, fn, query string, userID int64, args ...any) (int64, error) {
	res, err := r.ExecContext(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to purge outbox")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func scanOutboxEntry(rows *sql.Rows) (models.OutboxEntry, error) {
	var (
		e          models.OutboxEntry
		entityType string
		operation  string
	)

	if err := rows.Scan(&e.ID, &e.UserID, &entityType, &e.EntityKey, &operation, &e.QueuedAt); err != nil {
		return models.OutboxEntry{}, err
	}

	e.EntityType = models.EntityType(entityType)
	e.Operation = models.OutboxOperation(operation)
	e.QueuedAt = e.QueuedAt.UTC()
	return e, nil
}
