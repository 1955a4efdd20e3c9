package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

var itemColumns = []string{
	"id", "type", "title", "year", "condition", "location", "status",
	"deleted_at", "created_at", "updated_at",
	"progress_percent", "progress_value", "total_value",
	"has_book", "isbn", "pages", "publisher",
	"has_dvd", "runtime", "director",
}

// ── reads ──

func TestFindItems_LoadsSubRecordsAndTags(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	updated := ts("2024-05-01T12:00:00Z")

	mock.ExpectQuery("FROM media_item mi").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(10, "BOOK", "Dune", 1965, nil, "shelf", "AVAILABLE", nil, updated, updated, 0, 0, 0,
				true, "isbn-1", 412, "Chilton", false, nil, nil).
			AddRow(11, "DVD", "Alien", nil, "good", nil, "AVAILABLE", nil, updated, updated, 0, 0, 0,
				false, nil, nil, nil, true, 117, "Scott"))
	mock.ExpectQuery("FROM book_author").
		WithArgs(int64(10), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "author"}).AddRow(10, "Frank Herbert"))
	mock.ExpectQuery("FROM dvd_cast").
		WithArgs(int64(10), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "member"}).
			AddRow(11, "Sigourney Weaver").
			AddRow(11, "Tom Skerritt"))
	mock.ExpectQuery("FROM media_item_tag mit").
		WithArgs(int64(10), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name"}).AddRow(10, "scifi"))

	items, err := repo.FindItems(testContext(), 1, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	book, ok := items[0].Book()
	require.True(t, ok)
	assert.Equal(t, "isbn-1", book.ISBN)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, []string{"scifi"}, items[0].Tags)
	require.NotNil(t, items[0].Year)
	assert.Equal(t, 1965, *items[0].Year)

	dvd, ok := items[1].Dvd()
	require.True(t, ok)
	assert.Equal(t, "Scott", dvd.Director)
	assert.Equal(t, []string{"Sigourney Weaver", "Tom Skerritt"}, dvd.Cast)
	assert.Nil(t, items[1].Year)
	assert.Empty(t, items[1].Tags)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindItems_EmptySkipsValueQueries(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("FROM media_item mi").WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.FindItems(testContext(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLists_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("FROM list").WillReturnError(errors.New("boom"))

	_, err := repo.FindLists(testContext(), 1, nil)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindLoans_ScansOptionalDates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	updated := ts("2024-05-01T12:00:00Z")
	start := ts("2024-04-01T00:00:00Z")
	due := ts("2024-04-15T00:00:00Z")

	mock.ExpectQuery("FROM loan t").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(loanColumns).
			AddRow(3, 10, "Ann", start, due, nil, "ACTIVE", updated))

	loans, err := repo.FindLoans(testContext(), 1, nil)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "2024-04-01", loans[0].StartDate.String())
	require.NotNil(t, loans[0].DueDate)
	assert.Equal(t, "2024-04-15", loans[0].DueDate.String())
	assert.Nil(t, loans[0].ReturnedAt)
	assert.Equal(t, models.LoanActive, loans[0].Status)
}

// ── writes ──

func TestInTx_UpsertBookItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	item := models.Item{
		ID:        10,
		Type:      models.ItemTypeBook,
		Title:     "Dune",
		UpdatedAt: tsPtr("2024-05-01T12:00:00Z"),
		Tags:      []string{"scifi", " "},
		Info:      models.BookInfo{ISBN: "isbn-1", Authors: []string{"Frank Herbert", "Brian Herbert"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO media_item").
		WithArgs(int64(10), int64(1), "BOOK", "Dune", nil, nil, nil, "AVAILABLE", nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(), 0, 0, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO book_info").
		WithArgs(int64(10), "isbn-1", nil, nil, "Frank Herbert, Brian Herbert").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM book_author").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO book_author").WithArgs(int64(10), "Frank Herbert").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO book_author").WithArgs(int64(10), "Brian Herbert").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM dvd_info").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM dvd_cast").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM media_item_tag").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO tag").WithArgs("scifi").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO media_item_tag").WithArgs(int64(10), int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InTx(testContext(), func(w CatalogWriter) error {
		return w.UpsertItem(testContext(), 1, item)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_ItemWithoutInfoKeepsSubRecords(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO media_item").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM media_item_tag").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.InTx(testContext(), func(w CatalogWriter) error {
		return w.UpsertItem(testContext(), 1, models.Item{ID: 10, Type: models.ItemTypeDVD, Title: "x", UpdatedAt: tsPtr("2024-05-01T12:00:00Z")})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM list_item").WithArgs(int64(4)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.InTx(testContext(), func(w CatalogWriter) error {
		return w.DeleteList(testContext(), 4)
	})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_DeleteListRemovesItemsFirst(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM list_item WHERE list_id = $1;")).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM list WHERE id = $1;")).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InTx(testContext(), func(w CatalogWriter) error {
		return w.DeleteList(testContext(), 4)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCatalogRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	err := repo.InTx(testContext(), func(w CatalogWriter) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCatalogWriter_Owned(t *testing.T) {
	db, mock := newTestDB(t)
	w := &catalogWriter{q: db, b: newDBFromSQL(db).builder()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM media_item")).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	owned, err := w.Owned(testContext(), models.EntityItem, 10, 1)
	require.NoError(t, err)
	assert.True(t, owned)

	_, err = w.Owned(testContext(), models.EntityLoan, 10, 1)
	assert.ErrorIs(t, err, ErrUnsupportedEntity)
}

func TestCatalogWriter_OwnedByOtherUser(t *testing.T) {
	db, mock := newTestDB(t)
	w := &catalogWriter{q: db, b: newDBFromSQL(db).builder()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM progress_log t")).
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	other, err := w.OwnedByOtherUser(testContext(), models.EntityProgressLog, 3, 1)
	require.NoError(t, err)
	assert.False(t, other)
}

func TestCatalogWriter_UpdatedAt(t *testing.T) {
	db, mock := newTestDB(t)
	w := &catalogWriter{q: db, b: newDBFromSQL(db).builder()}

	stored := time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	mock.ExpectQuery("SELECT li.updated_at FROM list_item li").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(stored))
	mock.ExpectQuery("SELECT updated_at FROM list").
		WillReturnError(sql.ErrNoRows)

	got, err := w.UpdatedAt(testContext(), models.EntityListItem, "4:10", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(stored))

	got, err = w.UpdatedAt(testContext(), models.EntityList, "4", 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogWriter_UpsertLoanDefaultsStatus(t *testing.T) {
	db, mock := newTestDB(t)
	w := &catalogWriter{q: db, b: newDBFromSQL(db).builder()}

	start := models.NewDate(2024, time.April, 1)

	mock.ExpectExec("INSERT INTO loan").
		WithArgs(int64(3), int64(10), "Ann", start.Time, nil, nil, "ACTIVE", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := w.UpsertLoan(testContext(), models.Loan{ID: 3, ItemID: 10, ToWhom: "Ann", StartDate: start, UpdatedAt: tsPtr("2024-05-01T12:00:00Z")})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogWriter_ResetSequences(t *testing.T) {
	db, mock := newTestDB(t)
	w := &catalogWriter{q: db, b: newDBFromSQL(db).builder()}

	for range resetSequences {
		mock.ExpectExec("SELECT setval").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, w.ResetSequences(testContext()))
	require.NoError(t, mock.ExpectationsWereMet())
}
