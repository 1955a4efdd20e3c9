// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]. Reads go through the embedded [*DB]; writes run in a
// transaction through [catalogWriter].
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

// FindItems returns the owned items of userID with their sub-records,
// authors, cast and tags.
func (r *catalogRepository) FindItems(ctx context.Context, userID int64, since *time.Time) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.builder(), userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := queryRows(ctx, r.DB, query, args, scanItem)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FindItems").
			Int64("user_id", userID).
			Str("classification", r.classify(err)).
			Msg("failed to load items")
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	authors, err := r.itemValues(ctx, "book_author", "author", "item_id", ids)
	if err != nil {
		return nil, err
	}
	cast, err := r.itemValues(ctx, "dvd_cast", "member", "item_id", ids)
	if err != nil {
		return nil, err
	}
	tags, err := r.itemValues(ctx, "media_item_tag mit JOIN tag t ON t.id = mit.tag_id", "t.name", "mit.item_id", ids)
	if err != nil {
		return nil, err
	}

	for i := range items {
		id := items[i].ID
		items[i].Tags = tags[id]
		switch info := items[i].Info.(type) {
		case models.BookInfo:
			info.Authors = authors[id]
			items[i].Info = info
		case models.DvdInfo:
			info.Cast = cast[id]
			items[i].Info = info
		}
	}

	log.Debug().
		Str("func", "catalogRepository.FindItems").
		Int64("user_id", userID).
		Int("count", len(items)).
		Msg("items loaded")

	return items, nil
}

func (r *catalogRepository) itemValues(ctx context.Context, from, valueColumn, itemColumn string, ids []int64) (map[int64][]string, error) {
	query, args, err := buildSelectItemValuesQuery(r.builder(), from, valueColumn, itemColumn, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	type pair struct {
		itemID int64
		value  string
	}
	pairs, err := queryRows(ctx, r.DB, query, args, func(rows *sql.Rows) (pair, error) {
		var p pair
		err := rows.Scan(&p.itemID, &p.value)
		return p, err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]string, len(ids))
	for _, p := range pairs {
		out[p.itemID] = append(out[p.itemID], p.value)
	}
	return out, nil
}

func (r *catalogRepository) FindLists(ctx context.Context, userID int64, since *time.Time) ([]models.List, error) {
	query, args, err := buildSelectListsQuery(r.builder(), userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return find(ctx, r, "catalogRepository.FindLists", userID, query, args, scanList)
}

func (r *catalogRepository) FindListItems(ctx context.Context, userID int64, since *time.Time) ([]models.ListItem, error) {
	query, args, err := buildSelectListItemsQuery(r.builder(), userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return find(ctx, r, "catalogRepository.FindListItems", userID, query, args, scanListItem)
}

func (r *catalogRepository) FindProgressLogs(ctx context.Context, userID int64, since *time.Time) ([]models.ProgressLog, error) {
	query, args, err := buildSelectItemChildrenQuery(r.builder(), "progress_log", progressLogColumns, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return find(ctx, r, "catalogRepository.FindProgressLogs", userID, query, args, scanProgressLog)
}

func (r *catalogRepository) FindLoans(ctx context.Context, userID int64, since *time.Time) ([]models.Loan, error) {
	query, args, err := buildSelectItemChildrenQuery(r.builder(), "loan", loanColumns, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return find(ctx, r, "catalogRepository.FindLoans", userID, query, args, scanLoan)
}

func (r *catalogRepository) FindExternalLinks(ctx context.Context, userID int64, since *time.Time) ([]models.ExternalLink, error) {
	query, args, err := buildSelectItemChildrenQuery(r.builder(), "external_link", externalLinkColumns, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return find(ctx, r, "catalogRepository.FindExternalLinks", userID, query, args, scanExternalLink)
}

// InTx implements [CatalogRepository].
func (r *catalogRepository) InTx(ctx context.Context, fn func(w CatalogWriter) error) error {
	return r.inTx(ctx, nil, func(tx *sql.Tx) error {
		return fn(&catalogWriter{q: tx, b: r.builder()})
	})
}

func find[T any](ctx context.Context, r *catalogRepository, fn string, userID int64, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	out, err := queryRows(ctx, r.DB, query, args, scan)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Str("classification", r.classify(err)).
			Msg("failed to load catalog records")
		return nil, err
	}
	return out, nil
}

// queryRows runs query on q and scans every row with scan.
func queryRows[T any](ctx context.Context, q queryer, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

var (
	progressLogColumns  = []string{"id", "item_id", "log_date", "duration_minutes", "page_or_minute", "percent", "reader_name", "updated_at"}
	loanColumns         = []string{"id", "item_id", "to_whom", "start_date", "due_date", "returned_at", "status", "updated_at"}
	externalLinkColumns = []string{"id", "item_id", "provider", "external_id", "url", "rating", "summary", "last_sync_at", "updated_at"}
)

func scanItem(rows *sql.Rows) (models.Item, error) {
	var (
		it                        models.Item
		year                      sql.Null[int]
		condition, location       sql.Null[string]
		deletedAt, createdAt      sql.Null[time.Time]
		updatedAt                 time.Time
		hasBook, hasDvd           bool
		isbn, publisher, director sql.Null[string]
		pages, runtime            sql.Null[int]
	)

	err := rows.Scan(
		&it.ID, &it.Type, &it.Title, &year, &condition, &location, &it.Status,
		&deletedAt, &createdAt, &updatedAt,
		&it.ProgressPercent, &it.ProgressValue, &it.TotalValue,
		&hasBook, &isbn, &pages, &publisher,
		&hasDvd, &runtime, &director,
	)
	if err != nil {
		return models.Item{}, err
	}

	it.Year = nullPtr(year)
	it.Condition = condition.V
	it.Location = location.V
	it.DeletedAt = utcPtr(nullPtr(deletedAt))
	it.CreatedAt = utcPtr(nullPtr(createdAt))
	it.UpdatedAt = utcPtr(&updatedAt)

	switch {
	case hasBook:
		it.Info = models.BookInfo{ISBN: isbn.V, Pages: nullPtr(pages), Publisher: publisher.V}
	case hasDvd:
		it.Info = models.DvdInfo{Runtime: nullPtr(runtime), Director: director.V}
	}

	return it, nil
}

func scanList(rows *sql.Rows) (models.List, error) {
	var (
		l         models.List
		updatedAt time.Time
	)
	if err := rows.Scan(&l.ID, &l.Name, &updatedAt); err != nil {
		return models.List{}, err
	}
	l.UpdatedAt = utcPtr(&updatedAt)
	return l, nil
}

func scanListItem(rows *sql.Rows) (models.ListItem, error) {
	var (
		li        models.ListItem
		updatedAt time.Time
	)
	if err := rows.Scan(&li.ListID, &li.ItemID, &li.Position, &li.Priority, &updatedAt); err != nil {
		return models.ListItem{}, err
	}
	li.UpdatedAt = utcPtr(&updatedAt)
	return li, nil
}

func scanProgressLog(rows *sql.Rows) (models.ProgressLog, error) {
	var (
		p          models.ProgressLog
		duration   sql.Null[int]
		readerName sql.Null[string]
		updatedAt  time.Time
	)
	err := rows.Scan(&p.ID, &p.ItemID, &p.Date, &duration, &p.PageOrMinute, &p.Percent, &readerName, &updatedAt)
	if err != nil {
		return models.ProgressLog{}, err
	}
	p.DurationMinutes = nullPtr(duration)
	p.ReaderName = readerName.V
	p.UpdatedAt = utcPtr(&updatedAt)
	return p, nil
}

func scanLoan(rows *sql.Rows) (models.Loan, error) {
	var (
		l                   models.Loan
		dueDate, returnedAt sql.Null[time.Time]
		updatedAt           time.Time
	)
	err := rows.Scan(&l.ID, &l.ItemID, &l.ToWhom, &l.StartDate, &dueDate, &returnedAt, &l.Status, &updatedAt)
	if err != nil {
		return models.Loan{}, err
	}
	l.DueDate = datePtr(dueDate)
	l.ReturnedAt = datePtr(returnedAt)
	l.UpdatedAt = utcPtr(&updatedAt)
	return l, nil
}

func scanExternalLink(rows *sql.Rows) (models.ExternalLink, error) {
	var (
		e                        models.ExternalLink
		externalID, url, summary sql.Null[string]
		rating                   sql.Null[float64]
		lastSyncAt               sql.Null[time.Time]
		updatedAt                time.Time
	)
	err := rows.Scan(&e.ID, &e.ItemID, &e.Provider, &externalID, &url, &rating, &summary, &lastSyncAt, &updatedAt)
	if err != nil {
		return models.ExternalLink{}, err
	}
	e.ExternalID = externalID.V
	e.URL = url.V
	e.Rating = nullPtr(rating)
	e.Summary = summary.V
	e.LastSyncAt = utcPtr(nullPtr(lastSyncAt))
	e.UpdatedAt = utcPtr(&updatedAt)
	return e, nil
}

func nullPtr[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func datePtr(n sql.Null[time.Time]) *models.Date {
	if !n.Valid {
		return nil
	}
	d := models.NewDate(n.V.Year(), n.V.Month(), n.V.Day())
	return &d
}

// nullable turns zero values into SQL NULL.
func nullable[T comparable](v T) sql.Null[T] {
	var zero T
	return sql.Null[T]{V: v, Valid: v != zero}
}
