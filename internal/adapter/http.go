package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// APIKeyHeader carries the pre-shared sync key on HTTP requests.
const APIKeyHeader = "X-API-Key"

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	endpoint string
	apiKey   string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP implementation of
// [RemoteSyncAdapter]. Requests are POSTed to cfg.Endpoint with a per-attempt
// timeout of cfg.Timeout and up to cfg.RetryMax retries on transport errors.
// HTTP answers are never retried.
//
// Returns an error wrapping [ErrInvalidEndpoint] if the endpoint cannot be
// parsed as an absolute URL.
func NewHTTPRemoteAdapter(cfg config.Sync, logger *logger.Logger) (RemoteSyncAdapter, error) {
	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &httpRemoteAdapter{
		client:   utils.NewHTTPClient(cfg.Timeout, cfg.RetryMax),
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		logger:   logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Push implements [RemoteSyncAdapter]. The X-API-Key header is only set when
// a key is configured.
func (h *httpRemoteAdapter) Push(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	var result models.SyncResponse

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result)
	if h.apiKey != "" {
		r.SetHeader(APIKeyHeader, h.apiKey)
	}

	resp, err := r.Post(h.endpoint)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpRemoteAdapter.Push").
		Int("attempts", resp.Request.Attempt).
		Int("conflicts", result.ConflictCount).
		Msg("sync request delivered")

	return result, nil
}
