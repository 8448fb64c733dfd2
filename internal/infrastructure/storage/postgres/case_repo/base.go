// Package case_repo provides PostgreSQL implementations of the domain
// repositories. Transaction lifecycle is owned by the TxManager handed in at
// construction; repositories never open connections of their own.
package case_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"juridicol/internal/core/apperror"
	"juridicol/internal/infrastructure/storage/postgres"
)

// baseRepo carries what every entity repository needs: the transaction
// manager and the table metadata extracted from the row struct's db tags.
type baseRepo struct {
	tx        *postgres.TxManager
	tableName string
	cols      []string
}

func newBaseRepo(tx *postgres.TxManager, tableName string, cols []string) baseRepo {
	return baseRepo{tx: tx, tableName: tableName, cols: cols}
}

// builder returns a squirrel builder with PostgreSQL placeholders.
func (r *baseRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(r.tableName)
}

// insert writes a column map and returns the generated id.
func (r *baseRepo) insert(ctx context.Context, data map[string]any) (int64, error) {
	delete(data, "id") // bigserial

	q := r.builder().
		Insert(r.tableName).
		SetMap(data).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, apperror.NewStorage("insert "+r.tableName, err)
	}
	return id, nil
}

// update writes a column map for one row by id.
func (r *baseRepo) update(ctx context.Context, id int64, data map[string]any) error {
	delete(data, "id")

	q := r.builder().
		Update(r.tableName).
		SetMap(data).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewStorage("update "+r.tableName, err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}

// delete removes one row by id.
func (r *baseRepo) delete(ctx context.Context, id int64) error {
	q := r.builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	res, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewStorage("delete "+r.tableName, err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}

// getOne scans a single-row select into a fresh row struct.
func getOne[T any](ctx context.Context, r *baseRepo, sel squirrel.SelectBuilder, key any) (*T, error) {
	sql, args, err := sel.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entity T
	if err := pgxscan.Get(ctx, r.tx.GetQuerier(ctx), &entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, key)
		}
		return nil, apperror.NewStorage("get "+r.tableName, err)
	}
	return &entity, nil
}
