package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

const grpcScheme = "grpc"

// NewRemoteSyncAdapter picks the transport from the endpoint scheme:
// grpc://host:port dials the RemoteSync gRPC service, anything else is
// treated as the URL of the HTTP merge endpoint. An empty endpoint returns
// [ErrNoEndpoint].
func NewRemoteSyncAdapter(cfg config.Sync, logger *logger.Logger) (RemoteSyncAdapter, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	u, err := url.Parse(endpoint)
	if err == nil && u.Scheme == grpcScheme {
		if u.Host == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEndpoint, endpoint)
		}
		a, err := NewGRPCRemoteAdapter(u.Host, cfg, logger)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	return NewHTTPRemoteAdapter(cfg, logger)
}
