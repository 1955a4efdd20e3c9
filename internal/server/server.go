package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

// shutdownTimeout bounds the transport shutdown and every shutdown hook.
const shutdownTimeout = 15 * time.Second

type server struct {
	transports []transport

	hooksMu sync.Mutex
	hooks   []func(ctx context.Context)

	logger *logger.Logger
}

// NewServer binds a listener for every handler in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers.HTTP != nil {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("HTTP listener: %w", err)
		}
		s.transports = append(s.transports, h)
	}
	if handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			s.Shutdown(context.Background())
			return nil, fmt.Errorf("gRPC listener: %w", err)
		}
		s.transports = append(s.transports, g)
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

func (s *server) OnShutdown(fn func(ctx context.Context)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, len(s.transports))
	for _, t := range s.transports {
		go func() {
			if err := t.serve(); err != nil {
				errCh <- fmt.Errorf("%s server: %w", t.name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("transport failed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.Shutdown(shutdownCtx)
	s.runHooks(shutdownCtx)

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) {
	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.shutdown(ctx)
		}()
	}
	wg.Wait()
}

func (s *server) runHooks(ctx context.Context) {
	s.hooksMu.Lock()
	hooks := append([]func(context.Context){}, s.hooks...)
	s.hooksMu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}
