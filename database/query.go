package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/constructco-site-backend/errs"
)

const defaultOrderColumn = "created_at"

// ListOptions narrows a list query: equality filters, one ordering column and a row limit.
// A zero Limit returns every row; a zero OrderBy sorts newest first.
type ListOptions struct {
	Filters   map[string]any
	OrderBy   string
	Ascending bool
	Limit     int
}

// Where adds an equality filter and returns the options for chaining
func (o ListOptions) Where(column string, value any) ListOptions {
	filters := make(map[string]any, len(o.Filters)+1)
	for k, v := range o.Filters {
		filters[k] = v
	}
	filters[column] = value
	o.Filters = filters
	return o
}

// table holds the query plumbing shared by every repository
type table[T any] struct {
	db      *gorm.DB
	entity  string
	columns map[string]bool
}

func newTable[T any](db *gorm.DB, entity string, columns ...string) table[T] {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	return table[T]{db: db, entity: entity, columns: allowed}
}

func (t table[T]) scoped(ctx context.Context, opts ListOptions) (*gorm.DB, error) {
	tx := t.db.WithContext(ctx).Model(new(T))

	keys := make([]string, 0, len(opts.Filters))
	for k := range opts.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, column := range keys {
		if !t.columns[column] {
			return nil, errs.NewInvalidFieldError(column, "cannot be used to filter "+t.entity)
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: opts.Filters[column]})
	}

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = defaultOrderColumn
	}
	if orderBy != defaultOrderColumn && !t.columns[orderBy] {
		return nil, errs.NewInvalidFieldError(orderBy, "cannot be used to order "+t.entity)
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}, Desc: !opts.Ascending})
	// Stable paging when timestamps collide
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: !opts.Ascending})

	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	return tx, nil
}

func (t table[T]) list(ctx context.Context, opts ListOptions) ([]*T, error) {
	tx, err := t.scoped(ctx, opts)
	if err != nil {
		return nil, err
	}
	rows := []*T{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t table[T]) findByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	result := t.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, t.notFound(id)
	}
	return &row, nil
}

func (t table[T]) add(ctx context.Context, row *T) error {
	return t.db.WithContext(ctx).Create(row).Error
}

// update writes the named columns from values (a struct or map) to the row with the given id
func (t table[T]) update(ctx context.Context, id uuid.UUID, values any, columns ...string) error {
	tx := t.db.WithContext(ctx).Model(new(T)).Where("id = ?", id)
	if len(columns) > 0 {
		tx = tx.Select(columns)
	}
	result := tx.Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return t.notFound(id)
	}
	return nil
}

func (t table[T]) delete(ctx context.Context, id uuid.UUID) error {
	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return t.notFound(id)
	}
	return nil
}

func (t table[T]) count(ctx context.Context) (int64, error) {
	var n int64
	err := t.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func (t table[T]) notFound(id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", t.entity, id, errs.ErrNotFound)
}
