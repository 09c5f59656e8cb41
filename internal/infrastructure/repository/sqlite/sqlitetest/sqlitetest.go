// Package sqlitetest opens migrated throwaway databases for tests.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/infrastructure/repository/sqlite"
)

// New returns a migrated database stored under t.TempDir, closed on cleanup.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), sqlite.Options{
		Path:         filepath.Join(t.TempDir(), "fantacalcio.db"),
		MaxOpenConns: 2,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := sqlite.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// Exec runs seed statements and fails the test on the first error.
func Exec(t testing.TB, db *sqlx.DB, statements ...string) {
	t.Helper()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}
