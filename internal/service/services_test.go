package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/mock"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"go.uber.org/mock/gomock"
)

// ── NewServices ───────────────────────────────────────────────────────────────

func TestNewServices_CatalogNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		CatalogRepository:   mock.NewMockCatalogRepository(ctrl),
		SyncStateRepository: mock.NewMockSyncStateRepository(ctrl),
		OutboxRepository:    mock.NewMockOutboxRepository(ctrl),
	}
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", TokenSignKey: "k"}}

	services, err := NewServices(storages, nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.OutboxService)
	assert.NotNil(t, services.SyncService)
	assert.Nil(t, services.RemoteMergeService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, nil, config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ── NewRemoteServices ─────────────────────────────────────────────────────────

func TestNewRemoteServices_MergeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := config.RemoteConfig{
		App:     config.App{Version: "1.0.0"},
		Storage: config.Remote{Namespace: "default"},
		APIKey:  "secret",
	}

	services, err := NewRemoteServices(mock.NewMockRemoteDocumentStore(ctrl), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.RemoteMergeService)
	assert.NotNil(t, services.AppInfoService)
	assert.Nil(t, services.SyncService)
	assert.Nil(t, services.AuthService)
}

func TestNewRemoteServices_MissingVersion(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewRemoteServices(mock.NewMockRemoteDocumentStore(ctrl), config.RemoteConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
