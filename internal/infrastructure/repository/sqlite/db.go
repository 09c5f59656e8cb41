// Package sqlite implements the domain repositories on a single SQLite file.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	fantadb "github.com/riskibarqy/fantacalcio/db"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const driverName = "sqlite3"

// Options configures Open.
type Options struct {
	Path           string
	MaxOpenConns   int
	BusyTimeout    time.Duration
	DBName         string
	QueryFormatter func(query string) string
}

// DSN builds a mattn/go-sqlite3 connection string. Every write transaction
// starts with BEGIN IMMEDIATE so concurrent auctions serialize on the write lock.
func DSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))
	q.Set("_journal_mode", "WAL")
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}

// Open connects to the database file, creating its directory when missing.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(opts.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory %s: %w", dir, err)
		}
	}

	otelOpts := []otelsql.Option{otelsql.WithDBSystem("sqlite")}
	if opts.DBName != "" {
		otelOpts = append(otelOpts, otelsql.WithDBName(opts.DBName))
	}
	if opts.QueryFormatter != nil {
		otelOpts = append(otelOpts, otelsql.WithQueryFormatter(opts.QueryFormatter))
	}

	db, err := otelsqlx.Open(driverName, DSN(opts.Path, opts.BusyTimeout), otelOpts...)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", opts.Path, err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 4
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", opts.Path, err)
	}

	return db, nil
}

// Migrate applies every pending embedded migration and returns the schema version.
// The migrator is not closed because closing it would close db.
func Migrate(db *sqlx.DB) (uint, error) {
	m, err := NewMigrator(db)
	if err != nil {
		return 0, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// NewMigrator binds golang-migrate to db using the embedded migrations.
func NewMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(fantadb.Migrations, fantadb.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("init sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// schemaScripts returns the embedded down scripts newest first and the up scripts oldest first.
func schemaScripts() (down []string, up []string, err error) {
	read := func(pattern string) ([]string, error) {
		names, err := fs.Glob(fantadb.Migrations, fantadb.MigrationsDir+"/"+pattern)
		if err != nil {
			return nil, err
		}
		sort.Strings(names)
		out := make([]string, 0, len(names))
		for _, name := range names {
			body, err := fs.ReadFile(fantadb.Migrations, name)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			out = append(out, string(body))
		}
		return out, nil
	}

	if down, err = read("*.down.sql"); err != nil {
		return nil, nil, err
	}
	for i, j := 0, len(down)-1; i < j; i, j = i+1, j-1 {
		down[i], down[j] = down[j], down[i]
	}
	if up, err = read("*.up.sql"); err != nil {
		return nil, nil, err
	}
	return down, up, nil
}
