package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/rpc"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeRemoteSync struct {
	calls  int
	errs   []error
	apiKey []string
}

func (f *fakeRemoteSync) Merge(ctx context.Context, req *models.SyncRequest) (*models.SyncResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.apiKey = md.Get(rpc.MetadataAPIKey)

	f.calls++
	if len(f.errs) >= f.calls {
		return nil, f.errs[f.calls-1]
	}
	return &models.SyncResponse{ServerTime: serverTime, ConflictCount: len(req.Changes.Lists)}, nil
}

func newBufconnAdapter(t *testing.T, srv rpc.RemoteSyncServer, cfg config.Sync) *grpcRemoteAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	rpc.RegisterRemoteSyncServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	a, err := NewGRPCRemoteAdapter("passthrough:///bufnet", cfg, logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ── gRPC Push ───────────────────────────────────────────────────────────────

func TestGRPCPush_Success(t *testing.T) {
	srv := &fakeRemoteSync{}
	a := newBufconnAdapter(t, srv, config.Sync{APIKey: "secret", Timeout: time.Second})

	resp, err := a.Push(context.Background(), models.SyncRequest{
		ClientID: "client-1",
		Changes:  models.Payload{Lists: []models.List{{ID: 1}, {ID: 2}}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.ConflictCount)
	assert.True(t, serverTime.Equal(resp.ServerTime))
	assert.Equal(t, []string{"secret"}, srv.apiKey)
}

func TestGRPCPush_NoAPIKeyWhenUnset(t *testing.T) {
	srv := &fakeRemoteSync{}
	a := newBufconnAdapter(t, srv, config.Sync{Timeout: time.Second})

	_, err := a.Push(context.Background(), models.SyncRequest{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Empty(t, srv.apiKey)
}

func TestGRPCPush_RetriesUnavailable(t *testing.T) {
	srv := &fakeRemoteSync{errs: []error{status.Error(codes.Unavailable, "down")}}
	a := newBufconnAdapter(t, srv, config.Sync{RetryMax: 1, Timeout: time.Second})

	_, err := a.Push(context.Background(), models.SyncRequest{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, srv.calls)
}

func TestGRPCPush_MapsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "invalid sync api key"), want: ErrUnauthorized},
		{name: "failed precondition", err: status.Error(codes.FailedPrecondition, "sync api key not configured"), want: ErrBadRequest},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "client id is empty"), want: ErrBadRequest},
		{name: "data loss", err: status.Error(codes.DataLoss, "sync store corrupted"), want: ErrRemoteInternal},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), want: ErrTransport},
		{name: "not found", err: status.Error(codes.NotFound, "nope"), want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &fakeRemoteSync{errs: []error{tt.err}}
			a := newBufconnAdapter(t, srv, config.Sync{Timeout: time.Second})

			_, err := a.Push(context.Background(), models.SyncRequest{ClientID: "client-1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, srv.calls)
		})
	}
}
