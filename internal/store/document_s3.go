// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

const s3UpdateAttempts = 5

// s3API is the subset of the S3 client the document store calls.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3DocumentStore keeps one JSON object per namespace. Writes are
// conditional on the ETag read, so a concurrent writer makes the put fail
// with a precondition error and the update starts over.
type s3DocumentStore struct {
	client s3API
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3DocumentStore builds an S3 client from cfg. A non-empty endpoint
// switches to path-style addressing for MinIO and similar servers.
func NewS3DocumentStore(ctx context.Context, cfg config.S3, log *logger.Logger) (RemoteDocumentStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3DocumentStore").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Str("prefix", cfg.Prefix).Msg("S3 document store created")
	return newS3DocumentStore(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newS3DocumentStore(client s3API, bucket, prefix string, log *logger.Logger) *s3DocumentStore {
	return &s3DocumentStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: log,
	}
}

func (s *s3DocumentStore) objectKey(namespace string) string {
	return s.prefix + namespace + ".json"
}

func (s *s3DocumentStore) Update(ctx context.Context, namespace string, fn UpdateFunc) error {
	log := logger.FromContext(ctx)
	key := s.objectKey(namespace)

	for attempt := 1; attempt <= s3UpdateAttempts; attempt++ {
		current, etag, err := s.get(ctx, key)
		if err != nil {
			log.Err(err).Str("func", "s3DocumentStore.Update").Str("key", key).Msg("failed to read document")
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		input := &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(next),
			ContentType: aws.String("application/json"),
		}
		if etag == "" {
			input.IfNoneMatch = aws.String("*")
		} else {
			input.IfMatch = aws.String(etag)
		}

		_, err = s.client.PutObject(ctx, input)
		if err == nil {
			return nil
		}
		if !isPreconditionFailure(err) {
			log.Err(err).Str("func", "s3DocumentStore.Update").Str("key", key).Msg("failed to write document")
			return fmt.Errorf("%w: %w", ErrObjectStorage, err)
		}

		log.Warn().
			Str("func", "s3DocumentStore.Update").
			Str("key", key).
			Int("attempt", attempt).
			Msg("document changed concurrently, retrying")
	}

	return ErrDocumentConflict
}

// get returns the object body and ETag, or nil and "" when the object does
// not exist.
func (s *s3DocumentStore) get(ctx context.Context, key string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = nil
	}

	return body, aws.ToString(out.ETag), nil
}

func isPreconditionFailure(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return strings.EqualFold(code, "PreconditionFailed") || strings.EqualFold(code, "ConditionalRequestConflict")
}
