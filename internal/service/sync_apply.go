package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// localApplier writes a remote payload into the catalog of one user. It runs
// inside the transaction of [store.CatalogRepository.InTx] and returns the
// number of records it refused.
type localApplier struct {
	w      store.CatalogWriter
	userID int64
}

func (a *localApplier) apply(ctx context.Context, p models.Payload) (int, error) {
	steps := []func(context.Context, models.Payload) (int, error){
		a.applyItems,
		a.applyLists,
		a.applyListItems,
		a.applyProgressLogs,
		a.applyLoans,
		a.applyExternalLinks,
		a.applyDeletes,
	}

	conflicts := 0
	for _, step := range steps {
		n, err := step(ctx, p)
		if err != nil {
			return 0, err
		}
		conflicts += n
	}
	return conflicts, nil
}

// applyRecords upserts every valid record that passes allowed and is strictly
// newer than the stored version. Rejected records are counted.
func applyRecords[T models.Record](
	ctx context.Context,
	a *localApplier,
	records []T,
	allowed func(context.Context, T) (bool, error),
	upsert func(context.Context, T) error,
) (int, error) {
	conflicts := 0
	for _, r := range records {
		if !r.Valid() {
			continue
		}

		ok, err := allowed(ctx, r)
		if err != nil {
			return 0, err
		}
		if !ok {
			conflicts++
			continue
		}

		local, err := a.w.UpdatedAt(ctx, r.EntityType(), r.Key(), a.userID)
		if err != nil {
			return 0, err
		}
		if local != nil && !models.IsNewer(r.LastModified(), *local) {
			conflicts++
			continue
		}

		if err = upsert(ctx, r); err != nil {
			return 0, fmt.Errorf("apply %s %s: %w", r.EntityType(), r.Key(), err)
		}
	}
	return conflicts, nil
}

func (a *localApplier) applyItems(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.Items,
		func(ctx context.Context, i models.Item) (bool, error) {
			return a.notForeign(ctx, models.EntityItem, i.ID)
		},
		func(ctx context.Context, i models.Item) error {
			return a.w.UpsertItem(ctx, a.userID, i)
		})
}

func (a *localApplier) applyLists(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.Lists,
		func(ctx context.Context, l models.List) (bool, error) {
			return a.notForeign(ctx, models.EntityList, l.ID)
		},
		func(ctx context.Context, l models.List) error {
			return a.w.UpsertList(ctx, a.userID, l)
		})
}

func (a *localApplier) applyListItems(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.ListItems,
		func(ctx context.Context, li models.ListItem) (bool, error) {
			return a.ownsBoth(ctx, li.ListID, li.ItemID)
		},
		a.w.UpsertListItem)
}

func (a *localApplier) applyProgressLogs(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.ProgressLogs,
		func(ctx context.Context, l models.ProgressLog) (bool, error) {
			return a.childAllowed(ctx, models.EntityProgressLog, l.ID, l.ItemID)
		},
		a.w.UpsertProgressLog)
}

func (a *localApplier) applyLoans(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.Loans,
		func(ctx context.Context, l models.Loan) (bool, error) {
			return a.childAllowed(ctx, models.EntityLoan, l.ID, l.ItemID)
		},
		a.w.UpsertLoan)
}

func (a *localApplier) applyExternalLinks(ctx context.Context, p models.Payload) (int, error) {
	return applyRecords(ctx, a, p.ExternalLinks,
		func(ctx context.Context, e models.ExternalLink) (bool, error) {
			return a.childAllowed(ctx, models.EntityExternalLink, e.ID, e.ItemID)
		},
		a.w.UpsertExternalLink)
}

func (a *localApplier) applyDeletes(ctx context.Context, p models.Payload) (int, error) {
	conflicts := 0
	for _, d := range p.Deletes {
		if !d.Valid() {
			continue
		}

		var (
			rejected bool
			err      error
		)
		switch models.EntityType(strings.ToUpper(string(d.EntityType))) {
		case models.EntityList:
			rejected, err = a.deleteList(ctx, d)
		case models.EntityListItem:
			rejected, err = a.deleteListItem(ctx, d)
		default:
			continue
		}
		if err != nil {
			return 0, err
		}
		if rejected {
			conflicts++
		}
	}
	return conflicts, nil
}

// deleteList treats a list that no longer exists locally as already
// deleted. Only a list held by another user is a conflict.
func (a *localApplier) deleteList(ctx context.Context, d models.Delete) (bool, error) {
	listID, err := strconv.ParseInt(d.EntityKey, 10, 64)
	if err != nil {
		return false, nil
	}

	owned, err := a.w.Owned(ctx, models.EntityList, listID, a.userID)
	if err != nil {
		return false, err
	}
	if !owned {
		return a.w.OwnedByOtherUser(ctx, models.EntityList, listID, a.userID)
	}

	newer, err := a.storedAfter(ctx, models.EntityList, d)
	if err != nil || newer {
		return newer, err
	}

	if err = a.w.DeleteList(ctx, listID); err != nil {
		return false, fmt.Errorf("delete list %d: %w", listID, err)
	}
	return false, nil
}

func (a *localApplier) deleteListItem(ctx context.Context, d models.Delete) (bool, error) {
	listID, itemID, err := models.ParseListItemKey(d.EntityKey)
	if err != nil {
		return false, nil
	}

	for _, parent := range []struct {
		entity models.EntityType
		id     int64
	}{{models.EntityList, listID}, {models.EntityItem, itemID}} {
		owned, err := a.w.Owned(ctx, parent.entity, parent.id, a.userID)
		if err != nil {
			return false, err
		}
		if !owned {
			return a.w.OwnedByOtherUser(ctx, parent.entity, parent.id, a.userID)
		}
	}

	newer, err := a.storedAfter(ctx, models.EntityListItem, d)
	if err != nil || newer {
		return newer, err
	}

	if err = a.w.DeleteListItem(ctx, listID, itemID); err != nil {
		return false, fmt.Errorf("delete list item %s: %w", d.EntityKey, err)
	}
	return false, nil
}

// storedAfter reports whether the local row was modified after the delete.
func (a *localApplier) storedAfter(ctx context.Context, entity models.EntityType, d models.Delete) (bool, error) {
	local, err := a.w.UpdatedAt(ctx, entity, d.EntityKey, a.userID)
	if err != nil {
		return false, err
	}
	return local != nil && local.After(*d.DeletedAt), nil
}

func (a *localApplier) notForeign(ctx context.Context, entity models.EntityType, id int64) (bool, error) {
	foreign, err := a.w.OwnedByOtherUser(ctx, entity, id, a.userID)
	return !foreign, err
}

func (a *localApplier) ownsBoth(ctx context.Context, listID, itemID int64) (bool, error) {
	ok, err := a.w.Owned(ctx, models.EntityList, listID, a.userID)
	if err != nil || !ok {
		return false, err
	}
	return a.w.Owned(ctx, models.EntityItem, itemID, a.userID)
}

func (a *localApplier) childAllowed(ctx context.Context, entity models.EntityType, id, itemID int64) (bool, error) {
	ok, err := a.w.Owned(ctx, models.EntityItem, itemID, a.userID)
	if err != nil || !ok {
		return false, err
	}
	return a.notForeign(ctx, entity, id)
}
