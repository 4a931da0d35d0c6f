// Package storage opens the client store: a single kv table in a local
// sqlite file or a postgres database, migrated with goose on open.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/krishi/internal/client/migrations"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/dbx"
	"github.com/dmitrijs2005/krishi/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// Store bundles the open database with its kv repository.
type Store struct {
	DB      *sql.DB
	Dialect dbx.Dialect
	kv      kv.Repository
}

// Open connects to the store named by driver and dsn and applies pending
// migrations. For sqlite the parent directory of dsn is created first.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		sqlDriver string
		dialect   dbx.Dialect
		dir       string
	)

	switch driver {
	case DriverSQLite, "":
		sqlDriver, dialect, dir = "sqlite", dbx.DialectSQLite, "sqlite"
		if !isMemoryDSN(dsn) {
			if _, err := filex.EnsureParentDir(dsn); err != nil {
				return nil, err
			}
		}
	case DriverPostgres:
		sqlDriver, dialect, dir = "pgx", dbx.DialectPostgres, "postgres"
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if dialect == dbx.DialectSQLite {
		// one writer; also keeps a ":memory:" database alive across calls
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		DB:      db,
		Dialect: dialect,
		kv:      kv.NewSQLRepository(db, dialect),
	}, nil
}

// RunMigrations applies the embedded migrations in dir using dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// KV returns the repository bound to the database handle itself.
func (s *Store) KV() kv.Repository {
	return s.kv
}

// Atomic runs fn with a kv repository bound to a single transaction.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, kv.NewSQLRepository(tx, s.Dialect))
	})
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
