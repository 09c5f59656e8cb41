package sqlite

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches unique constraint", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("matches primary key constraint", func(t *testing.T) {
		err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for primary key violation")
		}
	})

	t.Run("ignores foreign key constraint", func(t *testing.T) {
		err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(errors.New("UNIQUE constraint failed")) {
			t.Fatalf("expected false for non sqlite error")
		}
	})
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/fanta.db", 0)
	for _, want := range []string{"file:/tmp/fanta.db?", "_foreign_keys=on", "_busy_timeout=5000", "_journal_mode=WAL", "_txlock=immediate"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}

func TestSchemaScripts(t *testing.T) {
	down, up, err := schemaScripts()
	if err != nil {
		t.Fatalf("schema scripts: %v", err)
	}
	if len(down) == 0 || len(up) == 0 {
		t.Fatalf("expected embedded migrations, got down=%d up=%d", len(down), len(up))
	}
	if !strings.Contains(down[0], "DROP TABLE") {
		t.Fatalf("expected down script to drop tables")
	}
	if !strings.Contains(up[0], "CREATE TABLE") {
		t.Fatalf("expected up script to create tables")
	}
}
