// Command server runs a catalog node: the local sync endpoints, the outbox
// and the periodic flush to the remote merge store. When a remote document
// store is configured the node also hosts the merge endpoint itself.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/adapter"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/server"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/workers"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.New("plms-node", cfg.App.LogFile)
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).
		Bool("sync_enabled", cfg.Sync.Enabled).Str("sync_endpoint", cfg.Sync.Endpoint).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting catalog database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error migrating catalog database: %w", err)
	}

	remote, err := adapter.NewRemoteSyncAdapter(cfg.Sync, log)
	switch {
	case errors.Is(err, adapter.ErrNoEndpoint):
		log.Warn().Msg("sync endpoint is not configured, sync runs will report it")
		remote = nil
	case err != nil:
		return fmt.Errorf("error creating remote sync adapter: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, log), remote, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if hostsRemoteStore(cfg.Storage.Remote) {
		documents, closeDocuments, err := store.NewRemoteDocumentStore(ctx, cfg.Storage.Remote, log)
		if err != nil {
			return fmt.Errorf("error opening remote document store: %w", err)
		}
		defer closeDocuments()

		services.RemoteMergeService = service.NewRemoteMergeService(documents, cfg.Sync.APIKey, cfg.Storage.Remote.Namespace, log)
		log.Info().Str("driver", cfg.Storage.Remote.Driver).Msg("hosting remote merge store")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	jobs := workers.NewWorkers(
		service.NewFlushJob(services.SyncService, cfg.Workers.FlushInterval, log),
	)
	jobs.Run(ctx)

	srv.OnShutdown(func(context.Context) { jobs.Stop() })
	if cfg.Sync.Enabled && cfg.Sync.FlushOnShutdown {
		srv.OnShutdown(func(ctx context.Context) {
			n, err := services.SyncService.FlushAllUsers(ctx)
			if err != nil {
				log.Warn().Err(err).Int("flushed", n).Msg("shutdown sync flush finished with errors")
				return
			}
			log.Info().Int("flushed", n).Msg("shutdown sync flush finished")
		})
	}

	return srv.RunServer(ctx)
}

// hostsRemoteStore reports whether the node is configured to serve the
// merge endpoint from its own document store.
func hostsRemoteStore(cfg config.Remote) bool {
	if cfg.Driver == config.RemoteDriverS3 {
		return cfg.S3.Bucket != ""
	}
	return cfg.DSN != ""
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
