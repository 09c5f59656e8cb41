package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	"github.com/riskibarqy/fantacalcio/internal/domain/wishlist"
	"github.com/riskibarqy/fantacalcio/internal/platform/csvrows"
	idgen "github.com/riskibarqy/fantacalcio/internal/platform/id"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

const (
	ImportActionCreated   = "created"
	ImportActionUpdated   = "updated"
	ImportActionUnchanged = "unchanged"

	msgPlayerNotFound = "Giocatore non trovato"
	msgMissingKey     = "Nome e Squadra sono obbligatori"
)

type ImportRowResult struct {
	Row           int    `json:"row"`
	PlayerID      string `json:"playerId"`
	Name          string `json:"nome"`
	Club          string `json:"squadra"`
	Action        string `json:"action"`
	WishlistAdded bool   `json:"wishlistAdded,omitempty"`
}

type ImportRowError struct {
	Row   int    `json:"row"`
	Name  string `json:"nome,omitempty"`
	Club  string `json:"squadra,omitempty"`
	Error string `json:"error"`
}

type ImportSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// ImportReport is best effort: each row succeeds or fails on its own.
// fantactl prints it as is, so it carries the same keys as the API.
type ImportReport struct {
	RunID   string            `json:"runId"`
	Results []ImportRowResult `json:"results"`
	Errors  []ImportRowError  `json:"errors"`
	Summary ImportSummary     `json:"summary"`
}

func (r *ImportReport) ok(row ImportRowResult) {
	r.Results = append(r.Results, row)
	r.Summary.Successful++
}

func (r *ImportReport) fail(rec csvrows.Record, name, club, msg string) {
	r.Errors = append(r.Errors, ImportRowError{Row: rec.Row, Name: name, Club: club, Error: msg})
	r.Summary.Failed++
}

type ImportService struct {
	playerRepo    player.Repository
	quotationRepo quotation.Repository
	wishlistRepo  wishlist.Repository
	idGen         idgen.Generator
	logger        *logging.Logger
	now           func() time.Time
}

func NewImportService(
	playerRepo player.Repository,
	quotationRepo quotation.Repository,
	wishlistRepo wishlist.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		playerRepo:    playerRepo,
		quotationRepo: quotationRepo,
		wishlistRepo:  wishlistRepo,
		idGen:         idGen,
		logger:        logger,
		now:           time.Now,
	}
}

// ImportQuotations merges a quotazioni CSV into the stored quotations. Blank
// cells keep the stored value. Only a row's own preferito cell adds a wishlist
// entry, and the importer never removes one.
func (s *ImportService) ImportQuotations(ctx context.Context, r io.Reader) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportQuotations")
	defer span.End()

	records, report, err := s.begin(r)
	if err != nil {
		return ImportReport{}, err
	}
	logger := s.logger.With("run_id", report.RunID, "kind", "quotazioni")

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name, club := rowKey(rec)
		if name == "" || club == "" {
			report.fail(rec, name, club, msgMissingKey)
			continue
		}

		p, found, err := s.playerRepo.GetByNameAndClub(ctx, name, club)
		if err != nil {
			logger.WarnContext(ctx, "resolve player failed", "row", rec.Row, "error", err)
			report.fail(rec, name, club, err.Error())
			continue
		}
		if !found {
			report.fail(rec, name, club, msgPlayerNotFound)
			continue
		}

		existing, exists, err := s.quotationRepo.GetByPlayerID(ctx, p.ID)
		if err != nil {
			logger.ErrorContext(ctx, "load quotation failed", "row", rec.Row, "player_id", p.ID, "error", err)
			report.fail(rec, name, club, err.Error())
			continue
		}
		if !exists {
			existing = quotation.Quotation{PlayerID: p.ID}
		}

		merged, err := quotation.Merge(existing, rec)
		if err != nil {
			report.fail(rec, name, club, err.Error())
			continue
		}

		action := ImportActionUpdated
		if exists {
			err = s.quotationRepo.Update(ctx, merged)
		} else {
			action = ImportActionCreated
			_, err = s.quotationRepo.Insert(ctx, merged)
		}
		if err != nil {
			logger.WarnContext(ctx, "save quotation failed", "row", rec.Row, "player_id", p.ID, "error", err)
			report.fail(rec, name, club, err.Error())
			continue
		}

		row := ImportRowResult{Row: rec.Row, PlayerID: p.ID, Name: p.Name, Club: p.Club, Action: action}
		if quotation.RowFavourite(rec) {
			_, added, err := s.wishlistRepo.Add(ctx, p.ID, s.now().UTC())
			if err != nil {
				logger.WarnContext(ctx, "wishlist add failed", "row", rec.Row, "player_id", p.ID, "error", err)
			}
			row.WishlistAdded = added
		}
		report.ok(row)
	}

	logger.InfoContext(ctx, "quotation import finished",
		"total", report.Summary.Total,
		"successful", report.Summary.Successful,
		"failed", report.Summary.Failed,
	)
	return report, nil
}

// ImportPlayers upserts the listone: missing players are created and a changed ruolo is updated.
func (s *ImportService) ImportPlayers(ctx context.Context, r io.Reader) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportPlayers")
	defer span.End()

	records, report, err := s.begin(r)
	if err != nil {
		return ImportReport{}, err
	}
	logger := s.logger.With("run_id", report.RunID, "kind", "giocatori")

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name, club := rowKey(rec)
		if name == "" || club == "" {
			report.fail(rec, name, club, msgMissingKey)
			continue
		}
		rawRole, _ := rec.Get("Ruolo")
		role, ok := player.ParseRole(rawRole)
		if !ok {
			report.fail(rec, name, club, fmt.Sprintf("Ruolo non valido: %q", strings.TrimSpace(rawRole)))
			continue
		}

		playerID := player.DeriveID(name, club)
		current, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			logger.WarnContext(ctx, "load player failed", "row", rec.Row, "player_id", playerID, "error", err)
			report.fail(rec, name, club, err.Error())
			continue
		}

		row := ImportRowResult{Row: rec.Row, PlayerID: playerID, Name: name, Club: club}
		switch {
		case !exists:
			p := player.Player{ID: playerID, Name: name, Club: club, Role: role, Status: player.StatusAvailable}
			if err := p.Validate(); err != nil {
				report.fail(rec, name, club, err.Error())
				continue
			}
			if err := s.playerRepo.Create(ctx, p); err != nil {
				if errors.Is(err, player.ErrAlreadyExists) {
					report.fail(rec, name, club, "Giocatore duplicato")
					continue
				}
				report.fail(rec, name, club, err.Error())
				continue
			}
			row.Action = ImportActionCreated
		case current.Role != role:
			if err := s.playerRepo.UpdateRole(ctx, playerID, role); err != nil {
				report.fail(rec, name, club, err.Error())
				continue
			}
			row.Action = ImportActionUpdated
		default:
			row.Action = ImportActionUnchanged
		}
		report.ok(row)
	}

	logger.InfoContext(ctx, "player import finished",
		"total", report.Summary.Total,
		"successful", report.Summary.Successful,
		"failed", report.Summary.Failed,
	)
	return report, nil
}

func (s *ImportService) begin(r io.Reader) ([]csvrows.Record, ImportReport, error) {
	records, err := csvrows.Read(r)
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	runID := ""
	if s.idGen != nil {
		if runID, err = s.idGen.NewID(); err != nil {
			return nil, ImportReport{}, fmt.Errorf("generate import run id: %w", err)
		}
	}

	return records, ImportReport{
		RunID:   runID,
		Results: make([]ImportRowResult, 0, len(records)),
		Errors:  make([]ImportRowError, 0),
		Summary: ImportSummary{Total: len(records)},
	}, nil
}

func rowKey(rec csvrows.Record) (string, string) {
	name, _ := rec.Get("Nome")
	club, _ := rec.Get("Squadra")
	return strings.TrimSpace(name), strings.TrimSpace(club)
}
