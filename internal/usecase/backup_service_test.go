package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/team"
	"github.com/riskibarqy/fantacalcio/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/fantacalcio/internal/infrastructure/repository/sqlite/sqlitetest"
	idgen "github.com/riskibarqy/fantacalcio/internal/platform/id"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

func TestBackupService_CreateAndRestore(t *testing.T) {
	db := sqlitetest.New(t)
	ctx := context.Background()
	teams := sqlite.NewTeamRepository(db)
	players := sqlite.NewPlayerRepository(db)
	auctions := sqlite.NewAuctionRepository(db)
	service := NewBackupService(sqlite.NewBackupRepository(db), idgen.NewUUIDGenerator(), logging.NewNop())
	service.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }

	created, err := teams.Create(ctx, team.Team{Name: `Team "Quoted", Inc`, Owner: "Anna", Budget: 300})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	p := player.Player{ID: "mike_maignan_milan", Name: "Mike Maignan", Club: "Milan", Role: player.RoleGoalkeeper, Status: player.StatusAvailable}
	if err := players.Create(ctx, p); err != nil {
		t.Fatalf("create player: %v", err)
	}
	if _, err := auctions.Assign(ctx, auction.AssignRequest{PlayerID: p.ID, TeamID: created.ID, Price: 45}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	out, err := service.CreateBackup(ctx)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if out.FileName != "fantacalcio-backup-20261016-093000.csv" {
		t.Fatalf("unexpected file name: %s", out.FileName)
	}
	if !bytes.HasPrefix(out.Content, []byte("# squadre\n")) {
		t.Fatalf("backup must start with squadre section: %q", out.Content[:20])
	}
	if out.Rows["acquisti"] != 1 {
		t.Fatalf("unexpected row counts: %+v", out.Rows)
	}

	if _, err := auctions.Release(ctx, p.ID, created.ID); err != nil {
		t.Fatalf("release: %v", err)
	}

	summary, err := service.Restore(ctx, bytes.NewReader(out.Content))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if summary.Rows["squadre"] != 1 || summary.Rows["acquisti"] != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	got, _, err := teams.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Name != created.Name || got.Remaining() != 255 {
		t.Fatalf("restore did not reproduce team state: %+v", got)
	}
}

func TestBackupService_RestoreMalformedLeavesDatabase(t *testing.T) {
	db := sqlitetest.New(t)
	ctx := context.Background()
	teams := sqlite.NewTeamRepository(db)
	service := NewBackupService(sqlite.NewBackupRepository(db), idgen.NewUUIDGenerator(), logging.NewNop())

	if _, err := teams.Create(ctx, team.Team{Name: "Survivor", Budget: 500}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	malformed := "# squadre\nid,nome\n1,\"unterminated\n"
	if _, err := service.Restore(ctx, strings.NewReader(malformed)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	unknownColumn := "# squadre\nid,colore\n1,\"rosso\"\n\n"
	if _, err := service.Restore(ctx, strings.NewReader(unknownColumn)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown column, got %v", err)
	}

	list, err := teams.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Survivor" {
		t.Fatalf("database changed after failed restore: %+v", list)
	}
}

func TestBackupService_RestoreSkipsUnknownSections(t *testing.T) {
	db := sqlitetest.New(t)
	service := NewBackupService(sqlite.NewBackupRepository(db), nil, logging.NewNop())

	content := "# legacy_table\nfoo\n1\n\n# squadre\nid,nome,budget\n4,\"Nuova\",500\n\n"
	summary, err := service.Restore(context.Background(), strings.NewReader(content))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0] != "legacy_table" {
		t.Fatalf("expected legacy_table skipped, got %+v", summary.Skipped)
	}
	if summary.Rows["squadre"] != 1 {
		t.Fatalf("unexpected rows: %+v", summary.Rows)
	}
}
