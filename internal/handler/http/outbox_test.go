package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

func newOutboxRouter(t *testing.T, outbox *stubOutboxService) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{
		AuthService:   &stubAuthService{userID: 42},
		SyncService:   &stubSyncService{},
		OutboxService: outbox,
	})
}

func TestEnqueueDelete_QueuesForCaller(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.OutboxDeleteRequest
	}{
		{"list", `{"entityType":"LIST","entityKey":"9"}`, models.OutboxDeleteRequest{EntityType: models.EntityList, EntityKey: "9"}},
		{"lower case membership", `{"entityType":"list_item","entityKey":"9:3"}`, models.OutboxDeleteRequest{EntityType: models.EntityListItem, EntityKey: "9:3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outbox := &stubOutboxService{}
			rec := httptest.NewRecorder()

			newOutboxRouter(t, outbox).ServeHTTP(rec, authedRequest(http.MethodPost, "/sync/outbox", tt.body))

			require.Equal(t, http.StatusAccepted, rec.Code)
			assert.Equal(t, int64(42), outbox.userID)
			assert.Equal(t, tt.want.EntityType, outbox.entityType)
			assert.Equal(t, tt.want.EntityKey, outbox.entityKey)

			var got models.OutboxDeleteRequest
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnqueueDelete_RejectsBadInput(t *testing.T) {
	bodies := []string{
		`{`,
		`{"entityType":"ITEM","entityKey":"1"}`,
		`{"entityType":"LIST","entityKey":"abc"}`,
		`{"entityType":"LIST_ITEM","entityKey":"9"}`,
		`{}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			outbox := &stubOutboxService{}
			rec := httptest.NewRecorder()

			newOutboxRouter(t, outbox).ServeHTTP(rec, authedRequest(http.MethodPost, "/sync/outbox", body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, outbox.entityKey)
		})
	}
}

func TestEnqueueDelete_RequiresAuth(t *testing.T) {
	outbox := &stubOutboxService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync/outbox", nil)

	newOutboxRouter(t, outbox).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, outbox.userID)
}

func TestEnqueueDelete_StorageErrorIsHidden(t *testing.T) {
	outbox := &stubOutboxService{err: errors.New("pq: connection refused")}
	rec := httptest.NewRecorder()

	newOutboxRouter(t, outbox).ServeHTTP(rec, authedRequest(http.MethodPost, "/sync/outbox", `{"entityType":"LIST","entityKey":"9"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
