// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport a catalog node uses to reach the
// remote merge store.
//
// The primary abstraction is [RemoteSyncAdapter], which decouples the sync
// orchestrator from the underlying protocol. The package ships an HTTP
// implementation (POST to the configured endpoint) and a gRPC implementation
// selected by a grpc:// endpoint; see [NewRemoteSyncAdapter].
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the protocol in use.
package adapter

import (
	"context"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteSyncAdapter sends one sync request to the remote merge store and
// returns its response. Implementations attach the configured API key and
// return an error wrapping one of the package sentinels on any failure,
// including non-2xx responses and undecodable bodies.
type RemoteSyncAdapter interface {
	Push(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}
