package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/rpc"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type grpcRemoteAdapter struct {
	conn   *grpc.ClientConn
	client rpc.RemoteSyncClient

	apiKey   string
	timeout  time.Duration
	retryMax int

	logger *logger.Logger
}

// NewGRPCRemoteAdapter dials target lazily and returns the gRPC
// implementation of [RemoteSyncAdapter]. Close releases the connection.
func NewGRPCRemoteAdapter(target string, cfg config.Sync, logger *logger.Logger, opts ...grpc.DialOption) (*grpcRemoteAdapter, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &grpcRemoteAdapter{
		conn:     conn,
		client:   rpc.NewRemoteSyncClient(conn),
		apiKey:   strings.TrimSpace(cfg.APIKey),
		timeout:  cfg.Timeout,
		retryMax: max(cfg.RetryMax, 0),
		logger:   logger,
	}, nil
}

// Push implements [RemoteSyncAdapter]. Unavailable responses are retried up
// to retryMax times; each attempt is bounded by the configured timeout.
func (g *grpcRemoteAdapter) Push(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if g.apiKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.MetadataAPIKey, g.apiKey)
	}

	var err error
	for attempt := 0; attempt <= g.retryMax; attempt++ {
		var resp *models.SyncResponse
		resp, err = g.merge(ctx, req)
		if err == nil {
			return *resp, nil
		}
		if status.Code(err) != codes.Unavailable || ctx.Err() != nil {
			break
		}

		logger.FromContext(ctx).Debug().
			Str("func", "grpcRemoteAdapter.Push").
			Int("attempt", attempt+1).
			Err(err).
			Msg("remote unavailable, retrying")
	}

	return models.SyncResponse{}, mapGRPCError(err)
}

func (g *grpcRemoteAdapter) merge(ctx context.Context, req models.SyncRequest) (*models.SyncResponse, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.client.Merge(ctx, &req)
}

func (g *grpcRemoteAdapter) Close() error {
	return g.conn.Close()
}
