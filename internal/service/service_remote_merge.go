package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/validators"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

type remoteMergeService struct {
	documents        store.RemoteDocumentStore
	validator        validators.Validator
	apiKey           string
	defaultNamespace string

	locks *keyedMutex
	now   func() time.Time

	logger *logger.Logger
}

// NewRemoteMergeService returns the remote side of the sync protocol.
// Requests naming no namespace go to defaultNamespace.
func NewRemoteMergeService(documents store.RemoteDocumentStore, apiKey, defaultNamespace string, logger *logger.Logger) RemoteMergeService {
	return &remoteMergeService{
		documents:        documents,
		validator:        validators.NewSyncValidator(),
		apiKey:           apiKey,
		defaultNamespace: defaultNamespace,
		locks:            newKeyedMutex(),
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logger,
	}
}

// Merge authenticates the caller, merges req.Changes into the namespace's
// snapshot document and returns everything the caller has not seen since
// req.LastSyncAt. Authentication runs before anything else.
func (s *remoteMergeService) Merge(ctx context.Context, apiKey, namespace string, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.Authenticate(apiKey); err != nil {
		log.Warn().Err(err).Str("func", "remoteMergeService.Merge").Msg("sync request rejected")
		return models.SyncResponse{}, err
	}

	if namespace == "" {
		namespace = s.defaultNamespace
	}
	if err := s.validator.Validate(ctx, validators.Namespace(namespace)); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.validator.Validate(ctx, req, validators.FieldClientID); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	unlock := s.locks.Lock(namespace)
	defer unlock()

	var (
		conflicts int
		merged    *snapshot
	)
	err := s.documents.Update(ctx, namespace, func(current []byte) ([]byte, error) {
		snap, err := decodeSnapshot(current)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptRemoteStore, err)
		}

		// the store may call this again after a concurrent write
		conflicts = snap.apply(req.Changes)
		merged = snap

		return snap.encode()
	})
	if err != nil {
		log.Err(err).
			Str("func", "remoteMergeService.Merge").
			Str("namespace", namespace).
			Str("client_id", req.ClientID).
			Msg("merge failed")
		if errors.Is(err, ErrCorruptRemoteStore) {
			return models.SyncResponse{}, err
		}
		return models.SyncResponse{}, fmt.Errorf("remote store update: %w", err)
	}

	resp := models.SyncResponse{
		ServerTime:    s.now(),
		Changes:       merged.delta(req.LastSyncAt),
		ConflictCount: conflicts,
	}

	log.Info().
		Str("func", "remoteMergeService.Merge").
		Str("namespace", namespace).
		Str("client_id", req.ClientID).
		Int("incoming", req.Changes.Size()).
		Int("outgoing", resp.Changes.Size()).
		Int("conflicts", conflicts).
		Msg("sync request merged")

	return resp, nil
}

// Authenticate checks apiKey against the configured key in constant time.
func (s *remoteMergeService) Authenticate(apiKey string) error {
	if s.apiKey == "" {
		return ErrSyncAPIKeyNotConfigured
	}
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		return ErrInvalidSyncAPIKey
	}
	return nil
}
