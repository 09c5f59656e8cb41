package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

// UpdateNotesInput changes only the fields that are set; a blank string clears the field.
type UpdateNotesInput struct {
	PlayerID  string
	Note      *string
	Consiglio *string
	Fascia    *string
}

type QuotationService struct {
	quotationRepo quotation.Repository
	playerRepo    player.Repository
	logger        *logging.Logger
}

func NewQuotationService(quotationRepo quotation.Repository, playerRepo player.Repository, logger *logging.Logger) *QuotationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &QuotationService{
		quotationRepo: quotationRepo,
		playerRepo:    playerRepo,
		logger:        logger,
	}
}

func (s *QuotationService) ListQuotations(ctx context.Context) ([]quotation.Quotation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuotationService.ListQuotations")
	defer span.End()

	items, err := s.quotationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	return items, nil
}

func (s *QuotationService) GetQuotation(ctx context.Context, playerID string) (quotation.Quotation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuotationService.GetQuotation")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return quotation.Quotation{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.quotationRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return quotation.Quotation{}, wrapQuotationErr("get quotation", err)
	}
	if !exists {
		return quotation.Quotation{}, fmt.Errorf("%w: quotazione for giocatore=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *QuotationService) UpdateNotes(ctx context.Context, input UpdateNotesInput) (quotation.Quotation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuotationService.UpdateNotes")
	defer span.End()

	return s.upsert(ctx, input.PlayerID, func(q *quotation.Quotation) error {
		if input.Note != nil {
			q.Note = trimmedOrNil(input.Note)
		}
		if input.Consiglio != nil {
			q.Consiglio = trimmedOrNil(input.Consiglio)
		}
		if input.Fascia != nil {
			q.Fascia = trimmedOrNil(input.Fascia)
		}
		return nil
	})
}

// UpdateRating sets mia_valutazione; nil clears it.
func (s *QuotationService) UpdateRating(ctx context.Context, playerID string, rating *int) (quotation.Quotation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuotationService.UpdateRating")
	defer span.End()

	if err := quotation.ValidateRating(rating); err != nil {
		return quotation.Quotation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.upsert(ctx, playerID, func(q *quotation.Quotation) error {
		q.MyRating = rating
		return nil
	})
}

// upsert creates the quotation lazily the first time the user edits a player.
func (s *QuotationService) upsert(ctx context.Context, playerID string, mutate func(q *quotation.Quotation) error) (quotation.Quotation, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return quotation.Quotation{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return quotation.Quotation{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return quotation.Quotation{}, fmt.Errorf("%w: giocatore=%s", ErrNotFound, playerID)
	}

	current, found, err := s.quotationRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return quotation.Quotation{}, wrapQuotationErr("get quotation", err)
	}
	if !found {
		current = quotation.Quotation{PlayerID: playerID}
	}
	if err := mutate(&current); err != nil {
		return quotation.Quotation{}, err
	}
	if err := current.Validate(); err != nil {
		return quotation.Quotation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !found {
		created, err := s.quotationRepo.Insert(ctx, current)
		if err != nil {
			return quotation.Quotation{}, wrapQuotationErr("insert quotation", err)
		}
		return created, nil
	}
	if err := s.quotationRepo.Update(ctx, current); err != nil {
		return quotation.Quotation{}, wrapQuotationErr("update quotation", err)
	}

	updated, _, err := s.quotationRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return quotation.Quotation{}, wrapQuotationErr("reload quotation", err)
	}
	return updated, nil
}

func wrapQuotationErr(op string, err error) error {
	if errors.Is(err, quotation.ErrDuplicateQuotation) {
		return fmt.Errorf("%w: %s: %v", ErrIntegrity, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
