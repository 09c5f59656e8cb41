package sqlite

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/backup"
)

type BackupRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewBackupRepository(db *sqlx.DB) *BackupRepository {
	return &BackupRepository{db: db, now: time.Now}
}

// Dump reads every table inside one deferred read transaction. Under WAL it sees
// a single snapshot without holding the write lock, so writers are not blocked.
func (r *BackupRepository) Dump(ctx context.Context) (backup.Snapshot, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("acquire dump connection: %w", err)
	}
	defer conn.Close()

	// BeginTxx would start with BEGIN IMMEDIATE because of _txlock.
	if _, err := conn.ExecContext(ctx, "BEGIN DEFERRED"); err != nil {
		return backup.Snapshot{}, fmt.Errorf("begin dump tx: %w", err)
	}
	finished := false
	defer func() {
		if finished {
			return
		}
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "ROLLBACK"); err != nil {
			// Never hand a connection with an open transaction back to the pool.
			_ = conn.Raw(func(any) error { return driver.ErrBadConn })
		}
	}()

	snap := backup.Snapshot{Tables: make([]backup.Table, 0, len(backup.TableOrder))}
	for _, name := range backup.TableOrder {
		table, err := dumpTable(ctx, conn, name, backup.TableColumns[name])
		if err != nil {
			return backup.Snapshot{}, err
		}
		snap.Tables = append(snap.Tables, table)
	}

	if _, err := conn.ExecContext(context.WithoutCancel(ctx), "COMMIT"); err != nil {
		return backup.Snapshot{}, fmt.Errorf("end dump tx: %w", err)
	}
	finished = true
	return snap, nil
}

func dumpTable(ctx context.Context, q sqlx.QueryerContext, name string, columns []string) (backup.Table, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id ASC", strings.Join(columns, ", "), name)
	rows, err := q.QueryxContext(ctx, query)
	if err != nil {
		return backup.Table{}, fmt.Errorf("dump %s: %w", name, err)
	}
	defer rows.Close()

	table := backup.Table{Name: name, Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return backup.Table{}, fmt.Errorf("scan %s row: %w", name, err)
		}
		row := make([]backup.Value, len(values))
		for i, v := range values {
			row[i] = backup.FromDriver(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return backup.Table{}, fmt.Errorf("iterate %s rows: %w", name, err)
	}
	return table, nil
}

// Restore replaces the whole database with snap. The schema is dropped and
// recreated from the embedded migrations inside the same transaction, so any
// failure leaves the previous data in place.
func (r *BackupRepository) Restore(ctx context.Context, snap backup.Snapshot) (backup.RestoreSummary, error) {
	if _, err := backup.Validate(snap); err != nil {
		return backup.RestoreSummary{}, err
	}
	down, up, err := schemaScripts()
	if err != nil {
		return backup.RestoreSummary{}, fmt.Errorf("load schema scripts: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return backup.RestoreSummary{}, fmt.Errorf("begin restore tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, script := range append(down, up...) {
		if _, err := tx.ExecContext(ctx, script); err != nil {
			return backup.RestoreSummary{}, fmt.Errorf("reset schema: %w", err)
		}
	}

	summary := backup.RestoreSummary{Rows: make(map[string]int, len(backup.TableOrder))}
	for _, name := range backup.TableOrder {
		table, ok := snap.Table(name)
		if !ok {
			summary.Rows[name] = 0
			continue
		}
		n, err := restoreTable(ctx, tx, table)
		if err != nil {
			return backup.RestoreSummary{}, err
		}
		summary.Rows[name] = n
	}

	if err := refreshBudgetCache(ctx, tx, nil, r.now().UTC()); err != nil {
		return backup.RestoreSummary{}, err
	}

	if err := tx.Commit(); err != nil {
		return backup.RestoreSummary{}, fmt.Errorf("commit restore tx: %w", err)
	}
	return summary, nil
}

func restoreTable(ctx context.Context, tx *sqlx.Tx, table backup.Table) (int, error) {
	if len(table.Rows) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table.Name, strings.Join(table.Columns, ", "), placeholders)

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare restore %s: %w", table.Name, err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		args := make([]any, len(row))
		for j, v := range row {
			args[j] = v.Arg()
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("restore %s row %d: %w", table.Name, i+1, err)
		}
	}
	return len(table.Rows), nil
}
