package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/malnis/cleansched/pkg/metrics"
)

// DBExecutor is the minimal query surface repositories depend on.
// Implemented by *sql.DB, *sql.Tx and the instrumented *DB wrapper.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// WithExecutor returns a context carrying an executor (normally a transaction).
// Repositories pick it up via GetExecutor.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor returns the executor stored in the context, or fallback when
// the context carries none.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// DB wraps *sql.DB and records query metrics for every call.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap creates an instrumented DB.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault creates an instrumented DB and starts a background
// collector publishing connection pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetPoolStats(stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

func (d *DB) observe(kind string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(kind, status, time.Since(start))
}

// ExecContext runs a statement and records its duration.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext runs a query and records its duration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext runs a single-row query and records its duration.
// Errors surface at Scan time, so only the duration is recorded here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx opens a transaction on the underlying database.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}
