package tablewise

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tablewise/tablewise/internal/observability"
)

// TxResult reports the outcome of an atomic execution. Execution failures
// roll the transaction back and are logged; they surface through Committed
// and Err, never as an error return of the atomic call itself. Callers that
// ignore the result keep log-only failure reporting.
type TxResult struct {
	Committed    bool
	RowsAffected int64
	Err          error
}

// UpdateAtomic runs Update inside an explicit transaction. On sqlite the
// connection is opened with _txlock=exclusive, so the transaction takes the
// write lock at BEGIN. Statement preparation failures (unknown table or
// column, closed engine) return an error; execution failures roll back,
// produce one log line and surface only through the TxResult.
func (e *Engine) UpdateAtomic(ctx context.Context, table string, data Row, conds ...Cond) (TxResult, error) {
	if err := e.ready(); err != nil {
		return TxResult{}, err
	}
	schema, err := e.Reflect(ctx, table)
	if err != nil {
		return TxResult{}, err
	}
	stmt, err := buildUpdate(e.dialect, schema, data, conds)
	if err != nil {
		return TxResult{}, err
	}
	return e.execAtomic(ctx, fmt.Sprintf("atomic update %q", table), stmt), nil
}

// execAtomic drives one statement through begin, exec and commit. Every
// failure path lands in the TxResult instead of an error return.
func (e *Engine) execAtomic(ctx context.Context, desc string, stmt statement) TxResult {
	start := time.Now()

	fail := func(stage string, err error) TxResult {
		classified := e.classifyAtomic(stage, err)
		observability.ObserveStatement(e.dialect.Name(), "atomic_update", "rollback", time.Since(start))
		e.logger.ErrorContext(ctx, "atomic update failed",
			slog.String("dialect", e.dialect.Name()),
			slog.String("statement", desc),
			slog.Any("error", classified),
		)
		return TxResult{Err: classified}
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fail("begin", err)
	}

	result, err := tx.ExecContext(ctx, stmt.sql, stmt.args...)
	if err != nil {
		_ = tx.Rollback()
		observability.RecordAtomicRollback(e.dialect.Name())
		return fail("exec", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		observability.RecordAtomicRollback(e.dialect.Name())
		return fail("rows affected", err)
	}

	if err := tx.Commit(); err != nil {
		observability.RecordAtomicRollback(e.dialect.Name())
		return fail("commit", err)
	}

	observability.ObserveStatement(e.dialect.Name(), "atomic_update", "ok", time.Since(start))
	return TxResult{Committed: true, RowsAffected: affected}
}

// classifyAtomic tags execution failures with ErrIntegrity or
// ErrTransaction.
func (e *Engine) classifyAtomic(stage string, err error) error {
	if e.dialect.IsIntegrityErr(err) {
		return fmt.Errorf("%s: %w: %w", stage, ErrIntegrity, err)
	}
	return fmt.Errorf("%s: %w: %w", stage, ErrTransaction, err)
}
