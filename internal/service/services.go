package service

import (
	"fmt"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/adapter"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
)

// Services groups the services of one process. A catalog node fills the
// local sync fields; the remote merge store fills RemoteMergeService.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService

	OutboxService OutboxService
	SyncService   SyncService

	RemoteMergeService RemoteMergeService
}

// NewServices wires the services of a catalog node. remote may be nil when
// no sync endpoint is configured.
func NewServices(storages *store.Storages, remote adapter.RemoteSyncAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	outbox := NewOutboxService(storages.OutboxRepository, logger)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		OutboxService:  outbox,
		SyncService: NewSyncService(
			storages.CatalogRepository,
			storages.SyncStateRepository,
			outbox,
			remote,
			utils.NewUUIDGenerator(),
			cfg.Sync,
			logger,
		),
	}, nil
}

// NewRemoteServices wires the services of the remote merge store.
func NewRemoteServices(documents store.RemoteDocumentStore, cfg config.RemoteConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AppInfoService:     appInfo,
		RemoteMergeService: NewRemoteMergeService(documents, cfg.APIKey, cfg.Storage.Namespace, logger),
	}, nil
}
