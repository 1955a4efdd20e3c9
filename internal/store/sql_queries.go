package store

import (
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

const (
	upsertItem = `INSERT INTO media_item (
			id, user_id, type, title, year, condition, location, status, deleted_at,
			created_at, updated_at, progress_percent, progress_value, total_value
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			type = EXCLUDED.type,
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			condition = EXCLUDED.condition,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			deleted_at = EXCLUDED.deleted_at,
			updated_at = EXCLUDED.updated_at,
			progress_percent = EXCLUDED.progress_percent,
			progress_value = EXCLUDED.progress_value,
			total_value = EXCLUDED.total_value
		WHERE media_item.user_id = EXCLUDED.user_id;`

	upsertBookInfo = `INSERT INTO book_info (item_id, isbn, pages, publisher, authors_text)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE SET
			isbn = EXCLUDED.isbn,
			pages = EXCLUDED.pages,
			publisher = EXCLUDED.publisher,
			authors_text = EXCLUDED.authors_text;`
	deleteBookInfo    = `DELETE FROM book_info WHERE item_id = $1;`
	deleteBookAuthors = `DELETE FROM book_author WHERE item_id = $1;`
	insertBookAuthor  = `INSERT INTO book_author (item_id, author) VALUES ($1, $2) ON CONFLICT DO NOTHING;`

	upsertDvdInfo = `INSERT INTO dvd_info (item_id, runtime, director)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE SET
			runtime = EXCLUDED.runtime,
			director = EXCLUDED.director;`
	deleteDvdInfo   = `DELETE FROM dvd_info WHERE item_id = $1;`
	deleteDvdCast   = `DELETE FROM dvd_cast WHERE item_id = $1;`
	insertDvdMember = `INSERT INTO dvd_cast (item_id, member) VALUES ($1, $2) ON CONFLICT DO NOTHING;`

	deleteItemTags = `DELETE FROM media_item_tag WHERE item_id = $1;`
	upsertTag      = `INSERT INTO tag (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;`
	linkItemTag = `INSERT INTO media_item_tag (item_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`

	upsertList = `INSERT INTO list (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, COALESCE((SELECT created_at FROM list WHERE id = $1), $4), $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
		WHERE list.user_id = EXCLUDED.user_id;`

	upsertListItem = `INSERT INTO list_item (list_id, item_id, position, priority, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (list_id, item_id) DO UPDATE SET
			position = EXCLUDED.position,
			priority = EXCLUDED.priority,
			updated_at = EXCLUDED.updated_at;`

	upsertProgressLog = `INSERT INTO progress_log (
			id, item_id, log_date, duration_minutes, page_or_minute, percent, reader_name, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			item_id = EXCLUDED.item_id,
			log_date = EXCLUDED.log_date,
			duration_minutes = EXCLUDED.duration_minutes,
			page_or_minute = EXCLUDED.page_or_minute,
			percent = EXCLUDED.percent,
			reader_name = EXCLUDED.reader_name,
			updated_at = EXCLUDED.updated_at;`

	upsertLoan = `INSERT INTO loan (
			id, item_id, to_whom, start_date, due_date, returned_at, status, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			item_id = EXCLUDED.item_id,
			to_whom = EXCLUDED.to_whom,
			start_date = EXCLUDED.start_date,
			due_date = EXCLUDED.due_date,
			returned_at = EXCLUDED.returned_at,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at;`

	upsertExternalLink = `INSERT INTO external_link (
			id, item_id, provider, external_id, url, rating, summary, last_sync_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			item_id = EXCLUDED.item_id,
			provider = EXCLUDED.provider,
			external_id = EXCLUDED.external_id,
			url = EXCLUDED.url,
			rating = EXCLUDED.rating,
			summary = EXCLUDED.summary,
			last_sync_at = EXCLUDED.last_sync_at,
			updated_at = EXCLUDED.updated_at;`

	deleteListItemsOfList = `DELETE FROM list_item WHERE list_id = $1;`
	deleteList            = `DELETE FROM list WHERE id = $1;`
	deleteListItem        = `DELETE FROM list_item WHERE list_id = $1 AND item_id = $2;`

	getOrCreateSyncState = `INSERT INTO sync_state (
			user_id, client_id, enabled, last_status, last_conflict_count, needs_full_sync, updated_at
		) VALUES ($1, $2, $3, $4, 0, $5, $6)
		ON CONFLICT (user_id) DO NOTHING;`
	selectSyncState = `SELECT user_id, client_id, enabled, last_sync_at, last_status,
			last_conflict_count, needs_full_sync, updated_at
		FROM sync_state
		WHERE user_id = $1;`
	saveSyncState = `UPDATE sync_state SET
			client_id = $2,
			enabled = $3,
			last_sync_at = $4,
			last_status = $5,
			last_conflict_count = $6,
			needs_full_sync = $7,
			updated_at = $8
		WHERE user_id = $1;`
	selectEnabledSyncStates = `SELECT user_id, client_id, enabled, last_sync_at, last_status,
			last_conflict_count, needs_full_sync, updated_at
		FROM sync_state
		WHERE enabled
		ORDER BY user_id;`
	markNeedsFullSync = `UPDATE sync_state SET needs_full_sync = TRUE, updated_at = $2 WHERE user_id = $1;`

	insertOutboxEntry = `INSERT INTO sync_outbox (user_id, entity_type, entity_key, operation, queued_at)
		VALUES ($1, $2, $3, $4, $5);`
	selectOutboxSince = `SELECT id, user_id, entity_type, entity_key, operation, queued_at
		FROM sync_outbox
		WHERE user_id = $1 AND queued_at > $2
		ORDER BY queued_at ASC, id ASC;`
	deleteOutboxUpTo = `DELETE FROM sync_outbox WHERE user_id = $1 AND queued_at <= $2;`
	deleteOutboxAll  = `DELETE FROM sync_outbox WHERE user_id = $1;`
)

// resetSequences realigns every identity sequence after synced rows were
// inserted with explicit ids.
var resetSequences = []string{
	`SELECT setval(pg_get_serial_sequence('media_item','id'), COALESCE(MAX(id), 1)) FROM media_item;`,
	`SELECT setval(pg_get_serial_sequence('list','id'), COALESCE(MAX(id), 1)) FROM list;`,
	`SELECT setval(pg_get_serial_sequence('progress_log','id'), COALESCE(MAX(id), 1)) FROM progress_log;`,
	`SELECT setval(pg_get_serial_sequence('loan','id'), COALESCE(MAX(id), 1)) FROM loan;`,
	`SELECT setval(pg_get_serial_sequence('external_link','id'), COALESCE(MAX(id), 1)) FROM external_link;`,
	`SELECT setval(pg_get_serial_sequence('tag','id'), COALESCE(MAX(id), 1)) FROM tag;`,
}

// entityTables maps a numeric-keyed entity type to its table.
var entityTables = map[models.EntityType]string{
	models.EntityItem:         "media_item",
	models.EntityList:         "list",
	models.EntityProgressLog:  "progress_log",
	models.EntityLoan:         "loan",
	models.EntityExternalLink: "external_link",
}

// ownedDirectly reports whether the entity carries its own user_id column.
func ownedDirectly(entity models.EntityType) bool {
	return entity == models.EntityItem || entity == models.EntityList
}

// withSince narrows q to rows whose column is strictly after since.
func withSince(q sq.SelectBuilder, column string, since *time.Time) sq.SelectBuilder {
	if since == nil {
		return q
	}
	return q.Where(sq.Gt{column: since.UTC()})
}

func buildSelectItemsQuery(b sq.StatementBuilderType, userID int64, since *time.Time) (string, []any, error) {
	q := b.Select(
		"mi.id", "mi.type", "mi.title", "mi.year", "mi.condition", "mi.location", "mi.status",
		"mi.deleted_at", "mi.created_at", "mi.updated_at",
		"mi.progress_percent", "mi.progress_value", "mi.total_value",
		"bi.item_id IS NOT NULL", "bi.isbn", "bi.pages", "bi.publisher",
		"di.item_id IS NOT NULL", "di.runtime", "di.director",
	).
		From("media_item mi").
		LeftJoin("book_info bi ON bi.item_id = mi.id").
		LeftJoin("dvd_info di ON di.item_id = mi.id").
		Where(sq.Eq{"mi.user_id": userID})

	return withSince(q, "mi.updated_at", since).OrderBy("mi.id").ToSql()
}

// buildSelectItemValuesQuery selects (item_id, value) pairs of a
// multi-valued item attribute such as authors, cast members or tag names.
func buildSelectItemValuesQuery(b sq.StatementBuilderType, from, valueColumn, itemColumn string, itemIDs []int64) (string, []any, error) {
	return b.Select(itemColumn, valueColumn).
		From(from).
		Where(sq.Eq{itemColumn: itemIDs}).
		OrderBy(itemColumn, valueColumn).
		ToSql()
}

func buildSelectListsQuery(b sq.StatementBuilderType, userID int64, since *time.Time) (string, []any, error) {
	q := b.Select("id", "name", "updated_at").
		From("list").
		Where(sq.Eq{"user_id": userID})

	return withSince(q, "updated_at", since).OrderBy("id").ToSql()
}

func buildSelectListItemsQuery(b sq.StatementBuilderType, userID int64, since *time.Time) (string, []any, error) {
	q := b.Select("li.list_id", "li.item_id", "li.position", "li.priority", "li.updated_at").
		From("list_item li").
		Join("list l ON l.id = li.list_id").
		Where(sq.Eq{"l.user_id": userID})

	return withSince(q, "li.updated_at", since).OrderBy("li.list_id", "li.position").ToSql()
}

// buildSelectItemChildrenQuery selects rows of a table hanging off
// media_item, scoped to the items of userID.
func buildSelectItemChildrenQuery(b sq.StatementBuilderType, table string, columns []string, userID int64, since *time.Time) (string, []any, error) {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "t." + c
	}

	q := b.Select(cols...).
		From(table + " t").
		Join("media_item mi ON mi.id = t.item_id").
		Where(sq.Eq{"mi.user_id": userID})

	return withSince(q, "t.updated_at", since).OrderBy("t.id").ToSql()
}

func buildOwnedQuery(b sq.StatementBuilderType, table string, id, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildOwnedByOtherUserQuery(b sq.StatementBuilderType, entity models.EntityType, id, userID int64) (string, []any, error) {
	table, ok := entityTables[entity]
	if !ok {
		return "", nil, ErrUnsupportedEntity
	}

	if ownedDirectly(entity) {
		return b.Select("COUNT(*)").
			From(table).
			Where(sq.Eq{"id": id}).
			Where(sq.NotEq{"user_id": userID}).
			ToSql()
	}

	return b.Select("COUNT(*)").
		From(table + " t").
		Join("media_item mi ON mi.id = t.item_id").
		Where(sq.Eq{"t.id": id}).
		Where(sq.NotEq{"mi.user_id": userID}).
		ToSql()
}

func buildUpdatedAtQuery(b sq.StatementBuilderType, entity models.EntityType, key string, userID int64) (string, []any, error) {
	if entity == models.EntityListItem {
		listID, itemID, err := models.ParseListItemKey(key)
		if err != nil {
			return "", nil, err
		}
		return b.Select("li.updated_at").
			From("list_item li").
			Join("list l ON l.id = li.list_id").
			Where(sq.Eq{"li.list_id": listID, "li.item_id": itemID, "l.user_id": userID}).
			ToSql()
	}

	table, ok := entityTables[entity]
	if !ok {
		return "", nil, ErrUnsupportedEntity
	}

	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	q := b.Select("updated_at").From(table).Where(sq.Eq{"id": id})
	if ownedDirectly(entity) {
		q = q.Where(sq.Eq{"user_id": userID})
	}

	return q.ToSql()
}
