package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/mock"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
	"go.uber.org/mock/gomock"
)

const applyUser int64 = 7

func newTestApplier(t *testing.T) (*localApplier, *mock.MockCatalogWriter) {
	t.Helper()
	w := mock.NewMockCatalogWriter(gomock.NewController(t))
	return &localApplier{w: w, userID: applyUser}, w
}

// ── records ──────────────────────────────────────────────────────────────────

func TestLocalApplier_Item_NewRecordIsInserted(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	item := models.Item{ID: 1, Title: "Dune", UpdatedAt: at(2)}

	w.EXPECT().OwnedByOtherUser(ctx, models.EntityItem, int64(1), applyUser).Return(false, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityItem, "1", applyUser).Return(nil, nil)
	w.EXPECT().UpsertItem(ctx, applyUser, item).Return(nil)

	conflicts, err := a.apply(ctx, models.Payload{Items: []models.Item{item}})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_Item_OlderOrEqualIsConflict(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().OwnedByOtherUser(ctx, models.EntityItem, gomock.Any(), applyUser).Return(false, nil).Times(2)
	w.EXPECT().UpdatedAt(ctx, models.EntityItem, "1", applyUser).Return(at(5), nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityItem, "2", applyUser).Return(at(9), nil)

	conflicts, err := a.apply(ctx, models.Payload{Items: []models.Item{
		{ID: 1, UpdatedAt: at(5)},
		{ID: 2, UpdatedAt: at(3)},
	}})

	require.NoError(t, err)
	assert.Equal(t, 2, conflicts)
}

func TestLocalApplier_Item_ForeignIsConflict(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().OwnedByOtherUser(ctx, models.EntityItem, int64(3), applyUser).Return(true, nil)

	conflicts, err := a.apply(ctx, models.Payload{Items: []models.Item{{ID: 3, UpdatedAt: at(1)}}})

	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

func TestLocalApplier_InvalidRecordsAreSkipped(t *testing.T) {
	a, _ := newTestApplier(t)

	conflicts, err := a.apply(context.Background(), models.Payload{
		Items:     []models.Item{{ID: 1}},
		Lists:     []models.List{{UpdatedAt: at(1)}},
		ListItems: []models.ListItem{{ListID: 1, UpdatedAt: at(1)}},
		Deletes:   []models.Delete{{EntityType: models.EntityList, EntityKey: "1"}},
	})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_ListItem_RequiresBothParents(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	owned := models.ListItem{ListID: 1, ItemID: 2, UpdatedAt: at(4)}
	orphan := models.ListItem{ListID: 1, ItemID: 99, UpdatedAt: at(4)}

	w.EXPECT().Owned(ctx, models.EntityList, int64(1), applyUser).Return(true, nil).Times(2)
	w.EXPECT().Owned(ctx, models.EntityItem, int64(2), applyUser).Return(true, nil)
	w.EXPECT().Owned(ctx, models.EntityItem, int64(99), applyUser).Return(false, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityListItem, "1:2", applyUser).Return(at(1), nil)
	w.EXPECT().UpsertListItem(ctx, owned).Return(nil)

	conflicts, err := a.apply(ctx, models.Payload{ListItems: []models.ListItem{owned, orphan}})

	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

func TestLocalApplier_ChildRecords(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	logEntry := models.ProgressLog{ID: 10, ItemID: 1, UpdatedAt: at(2)}
	loan := models.Loan{ID: 11, ItemID: 1, UpdatedAt: at(2)}
	link := models.ExternalLink{ID: 12, ItemID: 5, UpdatedAt: at(2)}

	w.EXPECT().Owned(ctx, models.EntityItem, int64(1), applyUser).Return(true, nil).Times(2)
	w.EXPECT().Owned(ctx, models.EntityItem, int64(5), applyUser).Return(false, nil)

	w.EXPECT().OwnedByOtherUser(ctx, models.EntityProgressLog, int64(10), applyUser).Return(false, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityProgressLog, "10", applyUser).Return(nil, nil)
	w.EXPECT().UpsertProgressLog(ctx, logEntry).Return(nil)

	// the loan id is taken by another user's item
	w.EXPECT().OwnedByOtherUser(ctx, models.EntityLoan, int64(11), applyUser).Return(true, nil)

	conflicts, err := a.apply(ctx, models.Payload{
		ProgressLogs:  []models.ProgressLog{logEntry},
		Loans:         []models.Loan{loan},
		ExternalLinks: []models.ExternalLink{link},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, conflicts)
}

func TestLocalApplier_UpsertErrorAborts(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	boom := errors.New("boom")

	w.EXPECT().OwnedByOtherUser(ctx, models.EntityList, int64(1), applyUser).Return(false, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityList, "1", applyUser).Return(nil, nil)
	w.EXPECT().UpsertList(ctx, applyUser, gomock.Any()).Return(boom)

	_, err := a.apply(ctx, models.Payload{Lists: []models.List{{ID: 1, UpdatedAt: at(1)}}})

	assert.ErrorIs(t, err, boom)
}

// ── deletes ──────────────────────────────────────────────────────────────────

func TestLocalApplier_DeleteList(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(true, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityList, "4", applyUser).Return(at(2), nil)
	w.EXPECT().DeleteList(ctx, int64(4)).Return(nil)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del("list", "4", 3)}})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_DeleteList_NewerLocalWins(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(true, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityList, "4", applyUser).Return(at(8), nil)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del(models.EntityList, "4", 3)}})

	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

func TestLocalApplier_DeleteList_ForeignIsConflict(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(false, nil)
	w.EXPECT().OwnedByOtherUser(ctx, models.EntityList, int64(4), applyUser).Return(true, nil)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del(models.EntityList, "4", 3)}})

	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

// A node that deleted list 9 gets the list and membership tombstones back
// from the remote on the same round. They are already applied locally.
func TestLocalApplier_EchoedTombstonesOfAbsentRowsAreNotConflicts(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(9), applyUser).Return(false, nil).Times(3)
	w.EXPECT().OwnedByOtherUser(ctx, models.EntityList, int64(9), applyUser).Return(false, nil).Times(3)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{
		del(models.EntityList, "9", 3),
		del(models.EntityListItem, "9:1", 3),
		del(models.EntityListItem, "9:2", 3),
	}})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_DeleteListItem_ForeignItemIsConflict(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(true, nil)
	w.EXPECT().Owned(ctx, models.EntityItem, int64(9), applyUser).Return(false, nil)
	w.EXPECT().OwnedByOtherUser(ctx, models.EntityItem, int64(9), applyUser).Return(true, nil)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del(models.EntityListItem, "4:9", 3)}})

	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

func TestLocalApplier_DeleteListItem_OwnershipErrorAborts(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	boom := errors.New("boom")

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(false, nil)
	w.EXPECT().OwnedByOtherUser(ctx, models.EntityList, int64(4), applyUser).Return(false, boom)

	_, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del(models.EntityListItem, "4:9", 3)}})

	assert.ErrorIs(t, err, boom)
}

func TestLocalApplier_DeleteListItem(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()

	w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(true, nil)
	w.EXPECT().Owned(ctx, models.EntityItem, int64(9), applyUser).Return(true, nil)
	w.EXPECT().UpdatedAt(ctx, models.EntityListItem, "4:9", applyUser).Return(nil, nil)
	w.EXPECT().DeleteListItem(ctx, int64(4), int64(9)).Return(nil)

	conflicts, err := a.apply(ctx, models.Payload{Deletes: []models.Delete{del(models.EntityListItem, "4:9", 3)}})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_Deletes_IgnoredKinds(t *testing.T) {
	a, _ := newTestApplier(t)

	conflicts, err := a.apply(context.Background(), models.Payload{Deletes: []models.Delete{
		del(models.EntityItem, "1", 3),
		del(models.EntityLoan, "2", 3),
		del(models.EntityList, "not-a-number", 3),
		del(models.EntityListItem, "4", 3),
	}})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}

func TestLocalApplier_DeletesRunAfterRecords(t *testing.T) {
	a, w := newTestApplier(t)
	ctx := context.Background()
	list := models.List{ID: 4, UpdatedAt: at(1)}

	gomock.InOrder(
		w.EXPECT().OwnedByOtherUser(ctx, models.EntityList, int64(4), applyUser).Return(false, nil),
		w.EXPECT().UpdatedAt(ctx, models.EntityList, "4", applyUser).Return(nil, nil),
		w.EXPECT().UpsertList(ctx, applyUser, list).Return(nil),
		w.EXPECT().Owned(ctx, models.EntityList, int64(4), applyUser).Return(true, nil),
		w.EXPECT().UpdatedAt(ctx, models.EntityList, "4", applyUser).Return(at(1), nil),
		w.EXPECT().DeleteList(ctx, int64(4)).Return(nil),
	)

	conflicts, err := a.apply(ctx, models.Payload{
		Lists:   []models.List{list},
		Deletes: []models.Delete{del(models.EntityList, "4", 2)},
	})

	require.NoError(t, err)
	assert.Zero(t, conflicts)
}
