package handler

import (
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler/grpc"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler/http"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// gRPC only serves the remote merge service, so it is skipped for processes
// that have none.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		if services.RemoteMergeService == nil {
			logger.Warn().Str("address", cfg.GRPCAddress).Msg("gRPC address set but no gRPC service to serve, skipping")
		} else {
			handlers.GRPC = grpc.NewHandler(services, logger)
		}
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
