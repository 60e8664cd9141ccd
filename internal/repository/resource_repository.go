package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/persistence"
)

// ResourceRepository exposes the five uniform operations over one entity
// table. All five entity kinds share this implementation, parameterized by a
// domain.Resource descriptor.
type ResourceRepository interface {
	List(ctx context.Context) ([]domain.Record, error)
	GetByID(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, fields domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, fields domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id string) (domain.Record, error)
}

type resourceRepository struct {
	store    *persistence.Store
	resource domain.Resource
}

// NewResourceRepository builds the repository for one resource.
func NewResourceRepository(store *persistence.Store, resource domain.Resource) ResourceRepository {
	return &resourceRepository{store: store, resource: resource}
}

// List returns every row, newest first. id breaks ties within the timestamp
// granularity since it is monotonic with creation order.
func (r *resourceRepository) List(ctx context.Context) ([]domain.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY created_at DESC, id DESC", r.resource.Table)
	rows, err := r.store.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (domain.Record, error) {
	return r.getByID(ctx, r.store.DB(), id)
}

// Create inserts the allow-listed subset of fields, letting the store assign
// id, created_at, and column defaults, then re-reads the fresh row by its
// last insert id. The write lock guarantees no insert interleaves between
// the write and the re-read.
func (r *resourceRepository) Create(ctx context.Context, fields domain.Record) (domain.Record, error) {
	cols, vals := r.filterFields(fields)

	var created domain.Record
	err := r.store.WithWriteLock(func(db *sql.DB) error {
		var res sql.Result
		var err error
		if len(cols) == 0 {
			res, err = db.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", r.resource.Table))
		} else {
			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
			res, err = db.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
					r.resource.Table, strings.Join(cols, ", "), placeholders),
				vals...)
		}
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		created, err = r.getByID(ctx, db, strconv.FormatInt(id, 10))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the allow-listed fields as a partial SET against the row;
// existence is confirmed by the re-read afterwards. A body with no allowed
// fields degenerates to the re-read alone.
func (r *resourceRepository) Update(ctx context.Context, id string, fields domain.Record) (domain.Record, error) {
	cols, vals := r.filterFields(fields)

	var updated domain.Record
	err := r.store.WithWriteLock(func(db *sql.DB) error {
		if len(cols) > 0 {
			assignments := make([]string, len(cols))
			for i, col := range cols {
				assignments[i] = col + " = ?"
			}
			args := append(vals, id)
			_, err := db.ExecContext(ctx,
				fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
					r.resource.Table, strings.Join(assignments, ", ")),
				args...)
			if err != nil {
				return err
			}
		}
		var err error
		updated, err = r.getByID(ctx, db, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete reads the row first so it can be returned as confirmation, then
// removes it.
func (r *resourceRepository) Delete(ctx context.Context, id string) (domain.Record, error) {
	var deleted domain.Record
	err := r.store.WithWriteLock(func(db *sql.DB) error {
		var err error
		deleted, err = r.getByID(ctx, db, id)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.resource.Table), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *resourceRepository) getByID(ctx context.Context, db *sql.DB, id string) (domain.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = ?", r.resource.Table)
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, sql.ErrNoRows
	}
	return records[0], nil
}

// filterFields keeps the intersection of the caller's keys with the
// resource's allow-list, in allow-list order. Unknown keys are dropped, not
// rejected; a present key with a null value still sets the column.
func (r *resourceRepository) filterFields(fields domain.Record) ([]string, []any) {
	cols := make([]string, 0, len(r.resource.Fields))
	vals := make([]any, 0, len(r.resource.Fields))
	for _, f := range r.resource.Fields {
		if v, ok := fields[f]; ok {
			cols = append(cols, f)
			vals = append(vals, v)
		}
	}
	return cols, vals
}

// scanRecords turns a result set into wire-shaped records. Column types are
// whatever sqlite reports; byte slices become strings so JSON encoding stays
// textual.
func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(domain.Record, len(cols))
		for i, col := range cols {
			switch v := values[i].(type) {
			case []byte:
				record[col] = string(v)
			default:
				record[col] = v
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
