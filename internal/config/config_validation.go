// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// validate checks the invariants every merged [StructuredConfig] must hold,
// regardless of which binary consumes it.
func (cfg *StructuredConfig) validate() error {
	var errs error

	if cfg.Sync.RetryMax < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative retry max", ErrInvalidSyncConfigs))
	}
	if cfg.Sync.Timeout < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative timeout", ErrInvalidSyncConfigs))
	}
	if cfg.Sync.Endpoint != "" {
		if u, err := url.Parse(cfg.Sync.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = errors.Join(errs, fmt.Errorf("%w: endpoint must be an absolute URL", ErrInvalidSyncConfigs))
		}
	}

	switch cfg.Storage.Remote.Driver {
	case "", RemoteDriverPostgres, RemoteDriverSQLite, RemoteDriverS3:
	default:
		errs = errors.Join(errs, fmt.Errorf("%w: unknown remote driver %q", ErrInvalidStorageConfigs, cfg.Storage.Remote.Driver))
	}

	if cfg.Workers.FlushInterval < 0 {
		errs = errors.Join(errs, ErrInvalidWorkerConfigs)
	}

	return errs
}

// validateNode checks what the catalog node needs to start.
func (cfg *StructuredConfig) validateNode() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *RemoteConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.Driver {
	case RemoteDriverS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is required", ErrInvalidStorageConfigs)
		}
	case RemoteDriverPostgres, RemoteDriverSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: remote dsn is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown remote driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}
