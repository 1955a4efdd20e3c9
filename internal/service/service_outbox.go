package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

type outboxService struct {
	repo store.OutboxRepository
	now  func() time.Time

	logger *logger.Logger
}

func NewOutboxService(repo store.OutboxRepository, logger *logger.Logger) OutboxService {
	return &outboxService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// EnqueueDelete records a local deletion of a list or a list membership.
// Other entity types are soft-deleted locally and travel as regular records.
func (s *outboxService) EnqueueDelete(ctx context.Context, userID int64, entityType models.EntityType, entityKey string) error {
	entityType = models.EntityType(strings.ToUpper(string(entityType)))
	if entityType != models.EntityList && entityType != models.EntityListItem {
		return fmt.Errorf("%w: %s", ErrUnsupportedOutboxEntity, entityType)
	}

	entry := models.OutboxEntry{
		UserID:     userID,
		EntityType: entityType,
		EntityKey:  entityKey,
		Operation:  models.OutboxDelete,
		QueuedAt:   s.now(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("enqueue delete: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "outboxService.EnqueueDelete").
		Int64("user_id", userID).
		Str("entity_type", string(entityType)).
		Str("entity_key", entityKey).
		Msg("delete queued")

	return nil
}

func (s *outboxService) DrainSince(ctx context.Context, userID int64, since *time.Time) ([]models.Delete, error) {
	if since == nil {
		return []models.Delete{}, nil
	}

	entries, err := s.repo.FindSince(ctx, userID, *since)
	if err != nil {
		return nil, fmt.Errorf("drain outbox: %w", err)
	}

	// entries are ordered by queue time, so a later entry of the same key
	// replaces the earlier one in place
	deletes := make([]models.Delete, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Operation != models.OutboxDelete {
			continue
		}
		queuedAt := e.QueuedAt
		d := models.Delete{EntityType: e.EntityType, EntityKey: e.EntityKey, DeletedAt: &queuedAt}

		if i, ok := index[d.Key()]; ok {
			deletes[i] = d
			continue
		}
		index[d.Key()] = len(deletes)
		deletes = append(deletes, d)
	}

	return deletes, nil
}

func (s *outboxService) PurgeUpTo(ctx context.Context, userID int64, ts time.Time) error {
	n, err := s.repo.DeleteUpTo(ctx, userID, ts)
	if err != nil {
		return fmt.Errorf("purge outbox: %w", err)
	}
	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("purged", n).Msg("outbox purged")
	return nil
}

func (s *outboxService) PurgeAll(ctx context.Context, userID int64) error {
	n, err := s.repo.DeleteAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("purge outbox: %w", err)
	}
	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("purged", n).Msg("outbox cleared")
	return nil
}
