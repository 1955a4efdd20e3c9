// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/adapter"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// idGenerator produces client ids. utils.UUIDGenerator satisfies it.
type idGenerator interface {
	Generate() string
}

// syncService is the concrete implementation of SyncService. It drives one
// round at a time per user: build the outgoing payload, push it through the
// remote adapter, apply the answer locally and advance the bookkeeping.
type syncService struct {
	catalog store.CatalogRepository
	states  store.SyncStateRepository
	outbox  OutboxService

	// remote is nil when no endpoint is configured.
	remote adapter.RemoteSyncAdapter

	ids            idGenerator
	enabledDefault bool

	locks *keyedMutex
	now   func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs the local sync orchestrator. A nil remote makes
// every enabled round end with status "missing-endpoint".
func NewSyncService(
	catalog store.CatalogRepository,
	states store.SyncStateRepository,
	outbox OutboxService,
	remote adapter.RemoteSyncAdapter,
	ids idGenerator,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		catalog:        catalog,
		states:         states,
		outbox:         outbox,
		remote:         remote,
		ids:            ids,
		enabledDefault: cfg.Enabled,
		locks:          newKeyedMutex(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *syncService) Enable(ctx context.Context, userID int64, enabled bool) (models.SyncStatus, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return models.SyncStatus{}, err
	}

	state.Enabled = enabled
	state.LastStatus = models.SyncStatusDisabled
	if enabled {
		state.LastStatus = models.SyncStatusEnabled
	}

	return s.save(ctx, state)
}

func (s *syncService) Status(ctx context.Context, userID int64) (models.SyncStatus, error) {
	state, err := s.loadState(ctx, userID)
	if err != nil {
		return models.SyncStatus{}, err
	}
	return state.Status(), nil
}

// Run performs one sync round for userID.
//
// Configuration problems and transport failures are not errors: they are
// recorded in the returned status. An error is returned only when the local
// bookkeeping cannot be read or written.
func (s *syncService) Run(ctx context.Context, userID int64) (models.SyncStatus, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	log := logger.FromContext(ctx)

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return models.SyncStatus{}, err
	}

	if !state.Enabled {
		state.LastStatus = models.SyncStatusDisabled
		return s.save(ctx, state)
	}
	if s.remote == nil {
		state.LastStatus = models.SyncStatusMissingEndpoint
		return s.save(ctx, state)
	}
	if state.ClientID == "" {
		state.ClientID = s.ids.Generate()
	}

	fullSync := state.LastSyncAt == nil || state.NeedsFullSync
	var since *time.Time
	if !fullSync {
		since = state.LastSyncAt
	}

	payload, err := s.buildPayload(ctx, userID, since)
	if err != nil {
		return models.SyncStatus{}, err
	}

	resp, err := s.remote.Push(ctx, models.SyncRequest{
		ClientID:   state.ClientID,
		LastSyncAt: since,
		Changes:    payload,
	})
	if err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.Run").
			Int64("user_id", userID).
			Msg("sync failed")
		state.LastStatus = models.SyncStatusError
		return s.save(ctx, state)
	}

	localConflicts, err := s.applyRemote(ctx, userID, resp.Changes)
	if err != nil {
		log.Error().Err(err).
			Str("func", "syncService.Run").
			Int64("user_id", userID).
			Msg("applying remote changes failed")
		state.LastStatus = models.SyncStatusError
		return s.save(ctx, state)
	}

	state.LastConflictCount = resp.ConflictCount + localConflicts
	state.LastStatus = models.SyncStatusSuccess
	if state.LastConflictCount > 0 {
		state.LastStatus = models.SyncStatusConflicts
	}

	syncedAt := resp.ServerTime.UTC()
	if resp.ServerTime.IsZero() {
		syncedAt = s.now()
	}
	state.LastSyncAt = &syncedAt
	state.NeedsFullSync = false

	if err = s.purgeOutbox(ctx, userID, fullSync, syncedAt); err != nil {
		// leftover entries are resent next round
		log.Warn().Err(err).Int64("user_id", userID).Msg("outbox purge failed")
	}

	log.Info().
		Str("func", "syncService.Run").
		Int64("user_id", userID).
		Bool("full_sync", fullSync).
		Int("sent", payload.Size()).
		Int("received", resp.Changes.Size()).
		Int("conflicts", state.LastConflictCount).
		Msg("sync round finished")

	return s.save(ctx, state)
}

// FlushAllUsers runs a round for every enabled user. A failing user is
// logged and skipped.
func (s *syncService) FlushAllUsers(ctx context.Context) (int, error) {
	states, err := s.states.ListEnabled(ctx)
	if err != nil {
		return 0, fmt.Errorf("list enabled sync states: %w", err)
	}

	var (
		flushed int
		errs    []error
	)
	for _, st := range states {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err = s.Run(ctx, st.UserID); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "syncService.FlushAllUsers").
				Int64("user_id", st.UserID).
				Msg("sync flush failed")
			errs = append(errs, fmt.Errorf("user %d: %w", st.UserID, err))
			continue
		}
		flushed++
	}

	return flushed, errors.Join(errs...)
}

func (s *syncService) MarkNeedsFullSync(ctx context.Context, userID int64) error {
	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.states.MarkNeedsFullSync(ctx, userID); err != nil {
		return fmt.Errorf("mark full sync: %w", err)
	}
	return nil
}

func (s *syncService) buildPayload(ctx context.Context, userID int64, since *time.Time) (models.Payload, error) {
	var (
		p   = models.Payload{FullSync: since == nil}
		err error
	)

	if p.Items, err = s.catalog.FindItems(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load items: %w", err)
	}
	if p.Lists, err = s.catalog.FindLists(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load lists: %w", err)
	}
	if p.ListItems, err = s.catalog.FindListItems(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load list items: %w", err)
	}
	if p.ProgressLogs, err = s.catalog.FindProgressLogs(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load progress logs: %w", err)
	}
	if p.Loans, err = s.catalog.FindLoans(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load loans: %w", err)
	}
	if p.ExternalLinks, err = s.catalog.FindExternalLinks(ctx, userID, since); err != nil {
		return models.Payload{}, fmt.Errorf("load external links: %w", err)
	}
	if p.Deletes, err = s.outbox.DrainSince(ctx, userID, since); err != nil {
		return models.Payload{}, err
	}

	return p, nil
}

func (s *syncService) applyRemote(ctx context.Context, userID int64, changes models.Payload) (int, error) {
	if changes.IsEmpty() {
		return 0, nil
	}

	var conflicts int
	err := s.catalog.InTx(ctx, func(w store.CatalogWriter) error {
		a := &localApplier{w: w, userID: userID}

		n, err := a.apply(ctx, changes)
		if err != nil {
			return err
		}
		conflicts = n

		return w.ResetSequences(ctx)
	})
	if err != nil {
		return 0, err
	}
	return conflicts, nil
}

func (s *syncService) purgeOutbox(ctx context.Context, userID int64, fullSync bool, syncedAt time.Time) error {
	if fullSync {
		return s.outbox.PurgeAll(ctx, userID)
	}
	return s.outbox.PurgeUpTo(ctx, userID, syncedAt)
}

func (s *syncService) loadState(ctx context.Context, userID int64) (models.SyncState, error) {
	state, err := s.states.GetOrCreate(ctx, userID, models.SyncState{
		UserID:  userID,
		Enabled: s.enabledDefault,
	})
	if err != nil {
		return models.SyncState{}, fmt.Errorf("load sync state: %w", err)
	}
	return state, nil
}

func (s *syncService) save(ctx context.Context, state models.SyncState) (models.SyncStatus, error) {
	state.UpdatedAt = s.now()
	if err := s.states.Save(ctx, state); err != nil {
		return models.SyncStatus{}, fmt.Errorf("save sync state: %w", err)
	}
	return state.Status(), nil
}

func (s *syncService) lockUser(userID int64) func() {
	return s.locks.Lock(strconv.FormatInt(userID, 10))
}
