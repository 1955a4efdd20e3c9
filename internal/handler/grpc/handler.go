package grpc

import (
	"context"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/rpc"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Handler serves the RemoteSync gRPC service on top of the remote merge
// service.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds the services this process can serve to s. It reports
// whether anything was registered.
func (h *Handler) Register(s grpc.ServiceRegistrar) bool {
	if h.services.RemoteMergeService == nil {
		return false
	}
	rpc.RegisterRemoteSyncServer(s, h)
	return true
}

// Merge implements [rpc.RemoteSyncServer]. The API key and namespace travel
// in the x-api-key and x-sync-namespace metadata.
func (h *Handler) Merge(ctx context.Context, req *models.SyncRequest) (*models.SyncResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)

	if req == nil {
		req = &models.SyncRequest{}
	}

	resp, err := h.services.RemoteMergeService.Merge(ctx,
		firstValue(md, rpc.MetadataAPIKey),
		firstValue(md, rpc.MetadataNamespace),
		*req,
	)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
