package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type ConnectConfig struct {
	DriverName   string `toml:"driver_name"`
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// SqlExecutor is satisfied by both *sqlx.DB and *sqlx.Tx so store code
// stays unaware of whether it runs inside a transaction.
type SqlExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Get(dest any, query string, args ...any) error
	Select(dest any, query string, args ...any) error
}

type SqlProvider struct {
	db *sqlx.DB
}

func MustSetupProvider(cfg ConnectConfig) *SqlProvider {
	driver := cfg.DriverName
	if driver == "" {
		driver = "sqlite3"
	}

	db, err := sqlx.Connect(driver, cfg.DSN)
	if err != nil {
		panic(err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	return &SqlProvider{db: db}
}

type transactionKey struct{}

// GetMaster resolves the executor for writes. Inside Transaction the
// ctx carries the open tx and all writes join it.
func (p *SqlProvider) GetMaster(ctx ...context.Context) SqlExecutor {
	if len(ctx) > 0 {
		if tx, ok := ctx[0].Value(transactionKey{}).(*sqlx.Tx); ok {
			return tx
		}
	}
	return p.db
}

// GetReplica resolves the executor for reads. The embedded database has
// a single handle, the split only preserves call-site intent.
func (p *SqlProvider) GetReplica(ctx ...context.Context) SqlExecutor {
	return p.GetMaster(ctx...)
}

func (p *SqlProvider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(transactionKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := p.db.Beginx()
	if err != nil {
		return err
	}

	if err = fn(context.WithValue(ctx, transactionKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}

func (p *SqlProvider) Close() error {
	return p.db.Close()
}
