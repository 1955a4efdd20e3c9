package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// catalogWriter implements [CatalogWriter] on top of an open transaction.
type catalogWriter struct {
	q queryer
	b sq.StatementBuilderType
}

func (w *catalogWriter) Owned(ctx context.Context, entity models.EntityType, id, userID int64) (bool, error) {
	if !ownedDirectly(entity) {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedEntity, entity)
	}

	query, args, err := buildOwnedQuery(w.b, entityTables[entity], id, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return w.exists(ctx, query, args)
}

func (w *catalogWriter) OwnedByOtherUser(ctx context.Context, entity models.EntityType, id, userID int64) (bool, error) {
	query, args, err := buildOwnedByOtherUserQuery(w.b, entity, id, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return w.exists(ctx, query, args)
}

func (w *catalogWriter) exists(ctx context.Context, query string, args []any) (bool, error) {
	var count int
	if err := w.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count > 0, nil
}

func (w *catalogWriter) UpdatedAt(ctx context.Context, entity models.EntityType, key string, userID int64) (*time.Time, error) {
	query, args, err := buildUpdatedAtQuery(w.b, entity, key, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedAt time.Time
	err = w.q.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return utcPtr(&updatedAt), nil
}

// UpsertItem writes the item row, then its type-specific sub-record and its
// tag links. An item carrying a book sub-record loses any DVD sub-record and
// vice versa; an item carrying neither keeps what it has.
func (w *catalogWriter) UpsertItem(ctx context.Context, userID int64, item models.Item) error {
	status := item.Status
	if status == "" {
		status = "AVAILABLE"
	}
	createdAt := time.Now().UTC()
	if item.CreatedAt != nil {
		createdAt = *item.CreatedAt
	}

	if err := w.exec(ctx, upsertItem,
		item.ID, userID, string(item.Type), item.Title, item.Year,
		nullable(item.Condition), nullable(item.Location), status, item.DeletedAt,
		createdAt, item.UpdatedAt, item.ProgressPercent, item.ProgressValue, item.TotalValue,
	); err != nil {
		return err
	}

	if book, ok := item.Book(); ok {
		if err := w.replaceBookInfo(ctx, item.ID, book); err != nil {
			return err
		}
		if err := w.execAll(ctx, item.ID, deleteDvdInfo, deleteDvdCast); err != nil {
			return err
		}
	} else if dvd, ok := item.Dvd(); ok {
		if err := w.replaceDvdInfo(ctx, item.ID, dvd); err != nil {
			return err
		}
		if err := w.execAll(ctx, item.ID, deleteBookInfo, deleteBookAuthors); err != nil {
			return err
		}
	}

	return w.replaceTags(ctx, item.ID, item.Tags)
}

func (w *catalogWriter) replaceBookInfo(ctx context.Context, itemID int64, info models.BookInfo) error {
	var authorsText sql.Null[string]
	if len(info.Authors) > 0 {
		authorsText = sql.Null[string]{V: strings.Join(info.Authors, ", "), Valid: true}
	}

	if err := w.exec(ctx, upsertBookInfo, itemID, nullable(info.ISBN), info.Pages, nullable(info.Publisher), authorsText); err != nil {
		return err
	}
	if err := w.exec(ctx, deleteBookAuthors, itemID); err != nil {
		return err
	}
	for _, author := range info.Authors {
		if err := w.exec(ctx, insertBookAuthor, itemID, author); err != nil {
			return err
		}
	}
	return nil
}

func (w *catalogWriter) replaceDvdInfo(ctx context.Context, itemID int64, info models.DvdInfo) error {
	if err := w.exec(ctx, upsertDvdInfo, itemID, info.Runtime, nullable(info.Director)); err != nil {
		return err
	}
	if err := w.exec(ctx, deleteDvdCast, itemID); err != nil {
		return err
	}
	for _, member := range info.Cast {
		if err := w.exec(ctx, insertDvdMember, itemID, member); err != nil {
			return err
		}
	}
	return nil
}

// replaceTags resolves every non-blank tag name to an id, creating missing
// tags, and replaces the item's tag links with the result.
func (w *catalogWriter) replaceTags(ctx context.Context, itemID int64, tags []string) error {
	if err := w.exec(ctx, deleteItemTags, itemID); err != nil {
		return err
	}

	for _, name := range tags {
		if strings.TrimSpace(name) == "" {
			continue
		}

		var tagID int64
		if err := w.q.QueryRowContext(ctx, upsertTag, name).Scan(&tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err := w.exec(ctx, linkItemTag, itemID, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (w *catalogWriter) UpsertList(ctx context.Context, userID int64, list models.List) error {
	return w.exec(ctx, upsertList, list.ID, list.Name, userID, time.Now().UTC(), list.UpdatedAt)
}

func (w *catalogWriter) UpsertListItem(ctx context.Context, li models.ListItem) error {
	return w.exec(ctx, upsertListItem, li.ListID, li.ItemID, li.Position, li.Priority, li.UpdatedAt)
}

func (w *catalogWriter) UpsertProgressLog(ctx context.Context, p models.ProgressLog) error {
	return w.exec(ctx, upsertProgressLog,
		p.ID, p.ItemID, p.Date, p.DurationMinutes, p.PageOrMinute, p.Percent, nullable(p.ReaderName), p.UpdatedAt)
}

func (w *catalogWriter) UpsertLoan(ctx context.Context, l models.Loan) error {
	status := l.Status
	if status == "" {
		status = models.LoanActive
	}
	return w.exec(ctx, upsertLoan,
		l.ID, l.ItemID, l.ToWhom, l.StartDate, dateValue(l.DueDate), dateValue(l.ReturnedAt), string(status), l.UpdatedAt)
}

func (w *catalogWriter) UpsertExternalLink(ctx context.Context, e models.ExternalLink) error {
	return w.exec(ctx, upsertExternalLink,
		e.ID, e.ItemID, e.Provider, nullable(e.ExternalID), nullable(e.URL), e.Rating, nullable(e.Summary), e.LastSyncAt, e.UpdatedAt)
}

func (w *catalogWriter) DeleteList(ctx context.Context, listID int64) error {
	return w.execAll(ctx, listID, deleteListItemsOfList, deleteList)
}

func (w *catalogWriter) DeleteListItem(ctx context.Context, listID, itemID int64) error {
	return w.exec(ctx, deleteListItem, listID, itemID)
}

func (w *catalogWriter) ResetSequences(ctx context.Context) error {
	for _, query := range resetSequences {
		if err := w.exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (w *catalogWriter) exec(ctx context.Context, query string, args ...any) error {
	if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// execAll runs each single-argument statement with id.
func (w *catalogWriter) execAll(ctx context.Context, id int64, queries ...string) error {
	for _, query := range queries {
		if err := w.exec(ctx, query, id); err != nil {
			return err
		}
	}
	return nil
}

func dateValue(d *models.Date) sql.Null[time.Time] {
	if d == nil {
		return sql.Null[time.Time]{}
	}
	return sql.Null[time.Time]{V: d.Time, Valid: true}
}
