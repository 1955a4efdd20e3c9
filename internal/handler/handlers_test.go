package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
)

// remoteServices only needs a non-nil merge service; handlers never call it
// during construction.
func remoteServices() *service.Services {
	return &service.Services{RemoteMergeService: service.NewRemoteMergeService(nil, "key", "default", logger.Nop())}
}

func TestNewHandlers_BothAddresses(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}

	h, err := NewHandlers(remoteServices(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.GRPC)
}

func TestNewHandlers_OnlyHTTP(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.GRPC)
}

func TestNewHandlers_GRPCSkippedWithoutMergeService(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.GRPC)
}

func TestNewHandlers_OnlyGRPC(t *testing.T) {
	h, err := NewHandlers(remoteServices(), config.Server{GRPCAddress: ":9090"}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.HTTP)
	assert.NotNil(t, h.GRPC)
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(remoteServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
