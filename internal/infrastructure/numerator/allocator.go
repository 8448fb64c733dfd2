// Package numerator implements radicado sequence allocation on PostgreSQL.
// One counter row per (area, period) key, advanced with a two-phase
// update-then-insert protocol that tolerates first-allocation races.
package numerator

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"juridicol/internal/core/apperror"
	corenum "juridicol/internal/core/numerator"
	"juridicol/internal/infrastructure/storage/postgres"
	"juridicol/pkg/logger"
)

const pgUniqueViolation = "23505"

// Runner abstracts the transactional boundary the allocator runs in.
// Implemented by postgres.TxManager.
type Runner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
	GetQuerier(ctx context.Context) postgres.Querier
}

// Allocator mints gap-free sequence values per counter key.
//
// Same-key allocations are serialized by the row lock the conditional UPDATE
// takes; the allocator adds no locks of its own. Different keys contend only
// on whatever page-level locking the store exhibits.
type Allocator struct {
	runner Runner
}

var _ corenum.Generator = (*Allocator)(nil)

// New creates an allocator on top of a transaction runner.
func New(runner Runner) *Allocator {
	return &Allocator{runner: runner}
}

// AllocateNext implements numerator.Generator.
//
// Two-phase protocol, one transaction per call:
//  1. Conditional increment: UPDATE ... RETURNING. A matched row is the
//     common case and a single round trip.
//  2. On a missing row, INSERT the key with value 1, guarded by a savepoint.
//     A uniqueness conflict means another caller created the key between
//     steps 1 and 2; its insert has already committed, so one retried UPDATE
//     must find the row. A second miss is a storage error, not another retry.
func (a *Allocator) AllocateNext(ctx context.Context, key corenum.CounterKey) (int64, error) {
	var value int64
	err := a.runner.RunInTransaction(ctx, func(ctx context.Context) error {
		v, err := a.increment(ctx, key)
		if err == nil {
			value = v
			return nil
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		// First allocation for this key.
		insErr := a.runner.RunInSavepoint(ctx, func(ctx context.Context) error {
			return a.insertInitial(ctx, key)
		})
		if insErr == nil {
			value = 1
			return nil
		}
		if !isUniqueViolation(insErr) {
			return apperror.NewStorage("create counter", insErr).WithDetail("key", key.String())
		}

		logger.Debug(ctx, "counter creation race, retrying increment", "key", key.String())

		v, err = a.increment(ctx, key)
		if err != nil {
			return apperror.NewStorage("counter conflict did not resolve after retry", err).
				WithDetail("key", key.String())
		}
		value = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// NextRadicado implements numerator.Generator.
func (a *Allocator) NextRadicado(ctx context.Context, cfg corenum.Config, at time.Time) (string, error) {
	period := corenum.PeriodFor(at)
	n, err := a.AllocateNext(ctx, corenum.CounterKey{Area: cfg.Area, Period: period})
	if err != nil {
		return "", err
	}
	return corenum.FormatRadicado(cfg, period, n), nil
}

// increment advances an existing counter row and returns the new value.
// Absence of the row is reported as a not-found error; it is an internal
// signal of the two-phase protocol and never leaves the allocator.
func (a *Allocator) increment(ctx context.Context, key corenum.CounterKey) (int64, error) {
	var value int64
	err := a.runner.GetQuerier(ctx).QueryRow(ctx, `
        UPDATE radicado_counters
        SET value = value + 1
        WHERE area = $1 AND period = $2
        RETURNING value
	`, key.Area, key.Period).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.NewNotFound("radicado_counter", key.String())
	}
	if err != nil {
		return 0, apperror.NewStorage("increment counter", err).WithDetail("key", key.String())
	}
	return value, nil
}

func (a *Allocator) insertInitial(ctx context.Context, key corenum.CounterKey) error {
	_, err := a.runner.GetQuerier(ctx).Exec(ctx, `
        INSERT INTO radicado_counters (area, period, value)
        VALUES ($1, $2, 1)
	`, key.Area, key.Period)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
