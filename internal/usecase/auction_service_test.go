package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	auctionmock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/auction"
	playermock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestAuctionService_AssignRejectsInvalidPrice(t *testing.T) {
	t.Parallel()

	auctionRepo := auctionmock.NewRepository(t)
	service := NewAuctionService(auctionRepo, playermock.NewRepository(t), logging.NewNop())

	_, err := service.Assign(context.Background(), AssignInput{PlayerID: "rossi_inter", TeamID: 1, Price: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuctionService_AssignPassesDomainErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auctionRepo := auctionmock.NewRepository(t)
	service := NewAuctionService(auctionRepo, playermock.NewRepository(t), logging.NewNop())

	auctionRepo.
		On("Assign", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(req auction.AssignRequest) bool {
			return req.PlayerID == "rossi_inter" && req.TeamID == 2 && req.Price == 600 && !req.At.IsZero()
		})).
		Return(auction.AssignResult{}, auction.ErrInsufficientBudget).
		Once()

	_, err := service.Assign(ctx, AssignInput{PlayerID: " rossi_inter ", TeamID: 2, Price: 600})
	if !errors.Is(err, auction.ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}
}

func TestAuctionService_SetOwner(t *testing.T) {
	t.Parallel()

	teamID := int64(3)
	price := int64(42)

	t.Run("assigns when team is set", func(t *testing.T) {
		auctionRepo := auctionmock.NewRepository(t)
		service := NewAuctionService(auctionRepo, playermock.NewRepository(t), logging.NewNop())

		auctionRepo.
			On("Assign", mock.Anything, mock.MatchedBy(func(req auction.AssignRequest) bool { return req.TeamID == teamID && req.Price == price })).
			Return(auction.AssignResult{RemainingBudget: 458}, nil).
			Once()

		got, err := service.SetOwner(context.Background(), SetOwnerInput{PlayerID: "rossi_inter", TeamID: &teamID, Price: &price})
		if err != nil {
			t.Fatalf("set owner: %v", err)
		}
		if got.Assigned == nil || got.Assigned.RemainingBudget != 458 || got.Released != nil {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("requires price to assign", func(t *testing.T) {
		service := NewAuctionService(auctionmock.NewRepository(t), playermock.NewRepository(t), logging.NewNop())

		_, err := service.SetOwner(context.Background(), SetOwnerInput{PlayerID: "rossi_inter", TeamID: &teamID})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("releases from current owner when team is null", func(t *testing.T) {
		auctionRepo := auctionmock.NewRepository(t)
		playerRepo := playermock.NewRepository(t)
		service := NewAuctionService(auctionRepo, playerRepo, logging.NewNop())

		playerRepo.
			On("GetByID", mock.Anything, "rossi_inter").
			Return(player.View{Player: player.Player{ID: "rossi_inter", TeamID: &teamID, Status: player.StatusPurchased}}, true, nil).
			Once()
		auctionRepo.
			On("Release", mock.Anything, "rossi_inter", teamID).
			Return(auction.ReleaseResult{PlayerID: "rossi_inter", TeamID: teamID, RefundedPrice: 42}, nil).
			Once()

		got, err := service.SetOwner(context.Background(), SetOwnerInput{PlayerID: "rossi_inter"})
		if err != nil {
			t.Fatalf("set owner: %v", err)
		}
		if got.Released == nil || got.Released.RefundedPrice != 42 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("release without owner", func(t *testing.T) {
		playerRepo := playermock.NewRepository(t)
		service := NewAuctionService(auctionmock.NewRepository(t), playerRepo, logging.NewNop())

		playerRepo.
			On("GetByID", mock.Anything, "bianchi_roma").
			Return(player.View{Player: player.Player{ID: "bianchi_roma", Status: player.StatusAvailable}}, true, nil).
			Once()

		_, err := service.SetOwner(context.Background(), SetOwnerInput{PlayerID: "bianchi_roma"})
		if !errors.Is(err, auction.ErrPlayerWithoutOwnerTeam) {
			t.Fatalf("expected ErrPlayerWithoutOwnerTeam, got %v", err)
		}
	})

	t.Run("release unknown player", func(t *testing.T) {
		playerRepo := playermock.NewRepository(t)
		service := NewAuctionService(auctionmock.NewRepository(t), playerRepo, logging.NewNop())

		playerRepo.On("GetByID", mock.Anything, "ghost").Return(player.View{}, false, nil).Once()

		_, err := service.SetOwner(context.Background(), SetOwnerInput{PlayerID: "ghost"})
		if !errors.Is(err, auction.ErrPlayerNotFound) {
			t.Fatalf("expected ErrPlayerNotFound, got %v", err)
		}
	})
}
