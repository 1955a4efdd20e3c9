package service

import (
	"context"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// OutboxService queues local deletions until the next sync round carries
// them to the remote store.
type OutboxService interface {
	EnqueueDelete(ctx context.Context, userID int64, entityType models.EntityType, entityKey string) error
	// DrainSince returns the deletions queued strictly after since, one per
	// entity, oldest first. A nil since yields nothing.
	DrainSince(ctx context.Context, userID int64, since *time.Time) ([]models.Delete, error)
	PurgeUpTo(ctx context.Context, userID int64, ts time.Time) error
	PurgeAll(ctx context.Context, userID int64) error
}

// SyncService drives sync rounds of a catalog node.
type SyncService interface {
	Enable(ctx context.Context, userID int64, enabled bool) (models.SyncStatus, error)
	Status(ctx context.Context, userID int64) (models.SyncStatus, error)
	Run(ctx context.Context, userID int64) (models.SyncStatus, error)
	// FlushAllUsers runs a round for every enabled user and returns how many
	// rounds completed without error.
	FlushAllUsers(ctx context.Context) (int, error)
	MarkNeedsFullSync(ctx context.Context, userID int64) error
}

// RemoteMergeService merges sync requests into the shared snapshot document
// of a namespace.
type RemoteMergeService interface {
	// Authenticate lets a transport reject a caller before reading the body.
	Authenticate(apiKey string) error
	Merge(ctx context.Context, apiKey, namespace string, req models.SyncRequest) (models.SyncResponse, error)
}
