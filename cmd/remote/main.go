// Command remote runs the standalone remote merge store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/handler"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/server"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit())

	if err := run(buildInfo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetRemoteConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.New("plms-remote", cfg.App.LogFile)
	if cfg.APIKey == "" {
		log.Warn().Msg("sync API key is not configured, every merge will be rejected")
	}

	ctx := context.Background()

	documents, closeDocuments, err := store.NewRemoteDocumentStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error opening document store: %w", err)
	}
	defer closeDocuments()

	services, err := service.NewRemoteServices(documents, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
