// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	metadataTraceID = "x-trace-id"
	maxTraceIDLen   = 64
)

// Interceptors returns the unary interceptor chain of the gRPC server.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging}
}

// withTraceID attaches a child logger carrying trace_id to the call context.
// The id is taken from x-trace-id metadata or generated, and sent back as a
// response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, _ := metadata.FromIncomingContext(ctx)

	traceID := firstValue(md, metadataTraceID)
	if traceID == "" || len(traceID) > maxTraceIDLen {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(metadataTraceID, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	level := zerolog.InfoLevel
	if err != nil {
		level = zerolog.WarnLevel
	}

	logger.FromContext(ctx).WithLevel(level).
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
