// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc describes the RemoteSync gRPC service shared by the remote
// merge store (server side) and catalog nodes (client side).
//
// Messages are the plain [models.SyncRequest] and [models.SyncResponse]
// structs encoded with the JSON codec registered under [CodecName].
package rpc

import (
	"context"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "plms.sync.v1.RemoteSync"
	MergeMethod = "/" + ServiceName + "/Merge"

	// Metadata keys read by the server.
	MetadataAPIKey    = "x-api-key"
	MetadataNamespace = "x-sync-namespace"
)

// RemoteSyncServer is implemented by the remote merge store's gRPC handler.
type RemoteSyncServer interface {
	Merge(ctx context.Context, req *models.SyncRequest) (*models.SyncResponse, error)
}

// ServiceDesc is the grpc.ServiceDesc of RemoteSync.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemoteSyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Merge",
			Handler:    mergeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "plms/sync/v1/remote_sync",
}

// RegisterRemoteSyncServer registers srv on s.
func RegisterRemoteSyncServer(s grpc.ServiceRegistrar, srv RemoteSyncServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func mergeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SyncRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteSyncServer).Merge(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MergeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteSyncServer).Merge(ctx, req.(*models.SyncRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RemoteSyncClient calls RemoteSync on a remote merge store.
type RemoteSyncClient interface {
	Merge(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error)
}

type remoteSyncClient struct {
	cc grpc.ClientConnInterface
}

func NewRemoteSyncClient(cc grpc.ClientConnInterface) RemoteSyncClient {
	return &remoteSyncClient{cc: cc}
}

func (c *remoteSyncClient) Merge(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error) {
	out := new(models.SyncResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, MergeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
