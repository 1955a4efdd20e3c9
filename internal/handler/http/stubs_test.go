package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

const goodToken = "good-token"

// ── stubs ────────────────────────────────────────────────────────────────────

type stubAuthService struct {
	userID int64
}

func (s *stubAuthService) ParseToken(_ context.Context, token string) (models.Token, error) {
	if token != goodToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: s.userID}, nil
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(context.Context) string {
	return s.version
}

type stubSyncService struct {
	status models.SyncStatus
	err    error

	calls   []string
	userID  int64
	enabled *bool
}

func (s *stubSyncService) record(name string, userID int64) (models.SyncStatus, error) {
	s.calls = append(s.calls, name)
	s.userID = userID
	return s.status, s.err
}

func (s *stubSyncService) Enable(_ context.Context, userID int64, enabled bool) (models.SyncStatus, error) {
	s.enabled = &enabled
	return s.record("Enable", userID)
}

func (s *stubSyncService) Status(_ context.Context, userID int64) (models.SyncStatus, error) {
	return s.record("Status", userID)
}

func (s *stubSyncService) Run(_ context.Context, userID int64) (models.SyncStatus, error) {
	return s.record("Run", userID)
}

func (s *stubSyncService) FlushAllUsers(context.Context) (int, error) {
	s.calls = append(s.calls, "FlushAllUsers")
	return 0, s.err
}

func (s *stubSyncService) MarkNeedsFullSync(_ context.Context, userID int64) error {
	_, err := s.record("MarkNeedsFullSync", userID)
	return err
}

type stubOutboxService struct {
	err error

	userID     int64
	entityType models.EntityType
	entityKey  string
}

func (s *stubOutboxService) EnqueueDelete(_ context.Context, userID int64, entityType models.EntityType, entityKey string) error {
	s.userID, s.entityType, s.entityKey = userID, entityType, entityKey
	return s.err
}

func (s *stubOutboxService) DrainSince(context.Context, int64, *time.Time) ([]models.Delete, error) {
	return nil, nil
}

func (s *stubOutboxService) PurgeUpTo(context.Context, int64, time.Time) error { return nil }

func (s *stubOutboxService) PurgeAll(context.Context, int64) error { return nil }

type stubMergeService struct {
	resp    models.SyncResponse
	err     error
	authErr error

	apiKey    string
	namespace string
	req       models.SyncRequest
}

func (s *stubMergeService) Authenticate(apiKey string) error {
	s.apiKey = apiKey
	return s.authErr
}

func (s *stubMergeService) Merge(_ context.Context, apiKey, namespace string, req models.SyncRequest) (models.SyncResponse, error) {
	s.apiKey, s.namespace, s.req = apiKey, namespace, req
	return s.resp, s.err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{version: "1.0.0"}
	}
	return NewHandler(services, logger.Nop()).Init()
}

func newCatalogRouter(t *testing.T, sync *stubSyncService) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{
		AuthService: &stubAuthService{userID: 42},
		SyncService: sync,
	})
}
