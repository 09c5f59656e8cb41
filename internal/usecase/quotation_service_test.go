package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	playermock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/player"
	quotationmock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/quotation"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestQuotationService_UpdateRatingOutOfRange(t *testing.T) {
	t.Parallel()

	service := NewQuotationService(quotationmock.NewRepository(t), playermock.NewRepository(t), logging.NewNop())

	for _, v := range []int{0, 11} {
		rating := v
		if _, err := service.UpdateRating(context.Background(), "rossi_inter", &rating); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %d: expected ErrInvalidInput, got %v", v, err)
		}
	}
}

func TestQuotationService_UpdateNotesCreatesLazily(t *testing.T) {
	t.Parallel()

	quotationRepo := quotationmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewQuotationService(quotationRepo, playerRepo, logging.NewNop())
	note := "  rigorista  "

	playerRepo.On("GetByID", mock.Anything, "rossi_inter").Return(player.View{Player: player.Player{ID: "rossi_inter"}}, true, nil).Once()
	quotationRepo.On("GetByPlayerID", mock.Anything, "rossi_inter").Return(quotation.Quotation{}, false, nil).Once()
	quotationRepo.
		On("Insert", mock.Anything, mock.MatchedBy(func(q quotation.Quotation) bool {
			return q.PlayerID == "rossi_inter" && q.Note != nil && *q.Note == "rigorista" && q.Fascia == nil
		})).
		Return(func(_ context.Context, q quotation.Quotation) (quotation.Quotation, error) {
			q.ID = 1
			return q, nil
		}).
		Once()

	got, err := service.UpdateNotes(context.Background(), UpdateNotesInput{PlayerID: "rossi_inter", Note: &note})
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if got.ID != 1 || got.Note == nil || *got.Note != "rigorista" {
		t.Fatalf("unexpected quotation: %+v", got)
	}
}

func TestQuotationService_UpdateNotesKeepsAbsentFields(t *testing.T) {
	t.Parallel()

	quotationRepo := quotationmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewQuotationService(quotationRepo, playerRepo, logging.NewNop())
	fascia := "top"
	consiglio := "prendere"
	newConsiglio := "evitare"
	existing := quotation.Quotation{ID: 3, PlayerID: "rossi_inter", Fascia: &fascia, Consiglio: &consiglio}

	playerRepo.On("GetByID", mock.Anything, "rossi_inter").Return(player.View{Player: player.Player{ID: "rossi_inter"}}, true, nil).Once()
	quotationRepo.On("GetByPlayerID", mock.Anything, "rossi_inter").Return(existing, true, nil).Once()
	quotationRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(q quotation.Quotation) bool {
			return q.Fascia != nil && *q.Fascia == "top" && q.Consiglio != nil && *q.Consiglio == "evitare"
		})).
		Return(nil).
		Once()
	quotationRepo.On("GetByPlayerID", mock.Anything, "rossi_inter").Return(existing, true, nil).Once()

	if _, err := service.UpdateNotes(context.Background(), UpdateNotesInput{PlayerID: "rossi_inter", Consiglio: &newConsiglio}); err != nil {
		t.Fatalf("update notes: %v", err)
	}
}

func TestQuotationService_DuplicateIsIntegrityError(t *testing.T) {
	t.Parallel()

	quotationRepo := quotationmock.NewRepository(t)
	service := NewQuotationService(quotationRepo, playermock.NewRepository(t), logging.NewNop())

	quotationRepo.On("GetByPlayerID", mock.Anything, "rossi_inter").Return(quotation.Quotation{}, false, quotation.ErrDuplicateQuotation).Once()

	if _, err := service.GetQuotation(context.Background(), "rossi_inter"); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}
