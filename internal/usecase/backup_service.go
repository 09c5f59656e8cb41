package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantacalcio/internal/domain/backup"
	idgen "github.com/riskibarqy/fantacalcio/internal/platform/id"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

// Backup is an encoded database dump ready to be served.
type Backup struct {
	RunID     string
	FileName  string
	CreatedAt time.Time
	Content   []byte
	Rows      map[string]int
}

type BackupService struct {
	repo    backup.Repository
	idGen   idgen.Generator
	workers int
	logger  *logging.Logger
	now     func() time.Time
}

func NewBackupService(repo backup.Repository, idGen idgen.Generator, logger *logging.Logger) *BackupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BackupService{
		repo:    repo,
		idGen:   idGen,
		workers: len(backup.TableOrder),
		logger:  logger,
		now:     time.Now,
	}
}

// CreateBackup dumps every table from one snapshot and encodes the sections in parallel.
func (s *BackupService) CreateBackup(ctx context.Context) (Backup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackupService.CreateBackup")
	defer span.End()

	runID, err := s.newRunID()
	if err != nil {
		return Backup{}, err
	}

	snap, err := s.repo.Dump(ctx)
	if err != nil {
		return Backup{}, fmt.Errorf("dump database: %w", err)
	}

	sections := make([][]byte, len(snap.Tables))
	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return Backup{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for i, table := range snap.Tables {
		i, table := i, table
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			buf := bytebufferpool.Get()
			defer bytebufferpool.Put(buf)
			backup.AppendTable(buf, table)
			sections[i] = append([]byte(nil), buf.B...)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return Backup{}, fmt.Errorf("submit section %s to worker pool: %w", table.Name, err)
		}
	}
	workers.Wait()

	rows := make(map[string]int, len(snap.Tables))
	for _, table := range snap.Tables {
		rows[table.Name] = len(table.Rows)
	}

	createdAt := s.now().UTC()
	out := Backup{
		RunID:     runID,
		FileName:  BackupFileName(createdAt),
		CreatedAt: createdAt,
		Content:   bytes.Join(sections, nil),
		Rows:      rows,
	}
	s.logger.InfoContext(ctx, "backup created", "run_id", runID, "bytes", len(out.Content), "rows", rows)
	return out, nil
}

// Restore parses the whole file before touching the database; any failure leaves it unchanged.
func (s *BackupService) Restore(ctx context.Context, r io.Reader) (backup.RestoreSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackupService.Restore")
	defer span.End()

	runID, err := s.newRunID()
	if err != nil {
		return backup.RestoreSummary{}, err
	}
	logger := s.logger.With("run_id", runID)

	snap, err := backup.Decode(r)
	if err != nil {
		return backup.RestoreSummary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	skipped, err := backup.Validate(snap)
	if err != nil {
		return backup.RestoreSummary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, name := range skipped {
		logger.WarnContext(ctx, "skipping unknown backup section", "table", name)
	}

	summary, err := s.repo.Restore(ctx, snap)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return backup.RestoreSummary{}, err
		}
		logger.ErrorContext(ctx, "restore failed, database left unchanged", "error", err)
		return backup.RestoreSummary{}, fmt.Errorf("restore database: %w", err)
	}
	summary.Skipped = skipped

	logger.InfoContext(ctx, "backup restored", "rows", summary.Rows, "skipped", skipped)
	return summary, nil
}

func (s *BackupService) newRunID() (string, error) {
	if s.idGen == nil {
		return "", nil
	}
	runID, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate backup run id: %w", err)
	}
	return runID, nil
}

func BackupFileName(at time.Time) string {
	return "fantacalcio-backup-" + at.UTC().Format("20060102-150405") + ".csv"
}
