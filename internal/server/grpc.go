package server

import (
	"context"
	"net"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	myGRPC "github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler/grpc"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.Interceptors()...))
	handler.Register(server)

	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		server.Stop()
		return nil, err
	}

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")
	return g.server.Serve(g.listener)
}

// shutdown waits for in-flight calls until ctx is done, then cuts them off.
func (g *grpcServer) shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
	// a listener that was never served is still open
	_ = g.listener.Close()
}
