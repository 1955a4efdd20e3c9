package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("SyncStateRepository created")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

// GetOrCreate inserts initial unless a row for userID exists and then reads
// the stored row back, so concurrent callers observe the same state.
func (r *syncStateRepository) GetOrCreate(ctx context.Context, userID int64, initial models.SyncState) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	updatedAt := initial.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.ExecContext(ctx, getOrCreateSyncState,
		userID, initial.ClientID, initial.Enabled, initial.LastStatus, initial.NeedsFullSync, updatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.GetOrCreate").
			Int64("user_id", userID).
			Str("classification", r.classify(err)).
			Msg("failed to insert initial sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state, err := scanSyncState(r.QueryRowContext(ctx, selectSyncState, userID))
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.GetOrCreate").
			Int64("user_id", userID).
			Msg("failed to read sync state")
		return models.SyncState{}, err
	}

	return state, nil
}

func (r *syncStateRepository) Save(ctx context.Context, state models.SyncState) error {
	log := logger.FromContext(ctx)

	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	}

	_, err := r.ExecContext(ctx, saveSyncState,
		state.UserID, state.ClientID, state.Enabled, state.LastSyncAt,
		state.LastStatus, state.LastConflictCount, state.NeedsFullSync, state.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.Save").
			Int64("user_id", state.UserID).
			Str("classification", r.classify(err)).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncStateRepository) ListEnabled(ctx context.Context) ([]models.SyncState, error) {
	states, err := queryRows(ctx, r.DB, selectEnabledSyncStates, nil, func(rows *sql.Rows) (models.SyncState, error) {
		return scanSyncState(rows)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.ListEnabled").
			Msg("failed to list enabled sync states")
		return nil, err
	}
	return states, nil
}

func (r *syncStateRepository) MarkNeedsFullSync(ctx context.Context, userID int64) error {
	if _, err := r.ExecContext(ctx, markNeedsFullSync, userID, time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.MarkNeedsFullSync").
			Int64("user_id", userID).
			Msg("failed to flag full sync")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncState(row rowScanner) (models.SyncState, error) {
	var (
		s          models.SyncState
		lastSyncAt sql.Null[time.Time]
	)

	err := row.Scan(&s.UserID, &s.ClientID, &s.Enabled, &lastSyncAt,
		&s.LastStatus, &s.LastConflictCount, &s.NeedsFullSync, &s.UpdatedAt)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	s.LastSyncAt = utcPtr(nullPtr(lastSyncAt))
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
