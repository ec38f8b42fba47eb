package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"campus_connect/internal/domain"
)

// Store implements the query shapes shared by both opportunity tables.
// T is the row type scanned from the table.
type Store[T any] struct {
	db          *sqlx.DB
	table       Table
	upsert      string
	columns     string
	wasInserted func(*T) bool
}

func newStore[T any](db *sqlx.DB, table Table, wasInserted func(*T) bool) *Store[T] {
	return &Store[T]{
		db:          db,
		table:       table,
		upsert:      table.upsertSQL(),
		columns:     table.selectList(),
		wasInserted: wasInserted,
	}
}

// Upsert inserts row or refreshes the existing row with the same
// (type, apply_url) and reports which of the two happened.
func (s *Store[T]) Upsert(ctx context.Context, row *T) (*T, domain.Action, error) {
	rows, err := sqlx.NamedQueryContext(ctx, GetExecutor(ctx, s.db), s.upsert, row)
	if err != nil {
		return nil, "", fmt.Errorf("upsert %s: %w", s.table.Name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, "", fmt.Errorf("upsert %s: %w", s.table.Name, err)
		}
		return nil, "", fmt.Errorf("upsert %s: no row returned", s.table.Name)
	}

	var out T
	if err := rows.StructScan(&out); err != nil {
		return nil, "", fmt.Errorf("scan upserted %s: %w", s.table.Name, err)
	}

	action := domain.ActionUpdated
	if s.wasInserted(&out) {
		action = domain.ActionCreated
	}
	return &out, action, nil
}

// List returns one page of rows matching q and the pagination for the full
// match set.
func (s *Store[T]) List(ctx context.Context, q domain.ListQuery) ([]T, domain.Pagination, error) {
	clauses, args, next := s.table.Filters.Compile(q.Filters, 1)
	order := CompileSort(q.Sort, q.Order, s.table.Sortable)
	return s.page(ctx, clauses, args, next, order, q.Page)
}

// page counts the matches, then fetches one page of them. The two queries are
// not in one transaction, so total may be stale by concurrent writes.
func (s *Store[T]) page(ctx context.Context, clauses []string, args []any, next int, order string, req domain.PageRequest) ([]T, domain.Pagination, error) {
	countSQL, dataSQL := s.listQueries(clauses, order, next)
	ex := GetExecutor(ctx, s.db)

	var total int
	if err := sqlx.GetContext(ctx, ex, &total, countSQL, args...); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("count %s: %w", s.table.Name, err)
	}

	dataArgs := make([]any, 0, len(args)+2)
	dataArgs = append(dataArgs, args...)
	dataArgs = append(dataArgs, req.Limit, req.Offset())

	items := make([]T, 0, req.Limit)
	if err := sqlx.SelectContext(ctx, ex, &items, dataSQL, dataArgs...); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list %s: %w", s.table.Name, err)
	}

	return items, domain.NewPagination(req, total), nil
}

func (s *Store[T]) listQueries(clauses []string, order string, next int) (string, string) {
	where := Where(clauses)
	countSQL := "SELECT COUNT(*) FROM " + s.table.Name + where
	dataSQL := "SELECT " + s.columns + " FROM " + s.table.Name + where + order +
		" LIMIT $" + strconv.Itoa(next) + " OFFSET $" + strconv.Itoa(next+1)
	return countSQL, dataSQL
}

func (s *Store[T]) Get(ctx context.Context, id string) (*T, error) {
	query := "SELECT " + s.columns + " FROM " + s.table.Name + " WHERE id = $1"

	var out T
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s %s: %w", s.table.Name, id, err)
	}
	return &out, nil
}

// Patch applies fields to the row with id and returns the updated row.
// Every key must be a writable column of the table.
func (s *Store[T]) Patch(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("patch %s: no fields", s.table.Name)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !s.table.Writable[k] {
			return nil, fmt.Errorf("patch %s: column %q is not writable", s.table.Name, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		sets = append(sets, k+" = $"+strconv.Itoa(i+1))
		args = append(args, fields[k])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := "UPDATE " + s.table.Name + " SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + s.columns

	var out T
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("patch %s %s: %w", s.table.Name, id, err)
	}
	return &out, nil
}

// Delete removes the row, or archives it when the table keeps history.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	var (
		query string
		args  []any
	)
	if s.table.Archive {
		query = "UPDATE " + s.table.Name + " SET status = $1, updated_at = NOW() WHERE id = $2"
		args = []any{string(domain.StatusArchived), id}
	} else {
		query = "DELETE FROM " + s.table.Name + " WHERE id = $1"
		args = []any{id}
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", s.table.Name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", s.table.Name, id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps view_count atomically and returns the row after the bump.
func (s *Store[T]) IncrementViews(ctx context.Context, id string) (*T, error) {
	query := "UPDATE " + s.table.Name + " SET view_count = view_count + 1 WHERE id = $1 RETURNING " + s.columns

	var out T
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("increment views %s %s: %w", s.table.Name, id, err)
	}
	return &out, nil
}

// Featured returns up to limit active featured rows of typ, newest first.
func (s *Store[T]) Featured(ctx context.Context, typ domain.OpportunityType, limit int) ([]T, error) {
	query := "SELECT " + s.columns + " FROM " + s.table.Name +
		" WHERE " + s.table.TypeColumn + " = $1 AND is_featured = TRUE AND status = $2" +
		" ORDER BY posted_at DESC, id ASC LIMIT $3"

	items := make([]T, 0, limit)
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query,
		string(typ), string(domain.StatusActive), limit); err != nil {
		return nil, fmt.Errorf("featured %s: %w", s.table.Name, err)
	}
	return items, nil
}

// Stats aggregates row and view counts per type and status.
func (s *Store[T]) Stats(ctx context.Context) ([]domain.StatRow, error) {
	query := "SELECT " + s.table.TypeColumn + " AS type, status, COUNT(*) AS count," +
		" COALESCE(SUM(view_count), 0) AS views FROM " + s.table.Name +
		" GROUP BY " + s.table.TypeColumn + ", status ORDER BY 1, 2"

	rows := make([]domain.StatRow, 0)
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, fmt.Errorf("stats %s: %w", s.table.Name, err)
	}
	return rows, nil
}
