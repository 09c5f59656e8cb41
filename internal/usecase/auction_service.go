package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

type AssignInput struct {
	PlayerID string
	TeamID   int64
	Price    int64
}

type ReleaseInput struct {
	PlayerID string
	TeamID   int64
}

// SetOwnerInput assigns when TeamID is set and releases from the current owner otherwise.
type SetOwnerInput struct {
	PlayerID string
	TeamID   *int64
	Price    *int64
}

// SetOwnerResult holds exactly one of Assigned or Released.
type SetOwnerResult struct {
	Assigned *auction.AssignResult
	Released *auction.ReleaseResult
}

type AuctionService struct {
	auctionRepo auction.Repository
	playerRepo  player.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewAuctionService(auctionRepo auction.Repository, playerRepo player.Repository, logger *logging.Logger) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuctionService{
		auctionRepo: auctionRepo,
		playerRepo:  playerRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AuctionService) Assign(ctx context.Context, input AssignInput) (auction.AssignResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Assign")
	defer span.End()

	req := auction.AssignRequest{
		PlayerID: strings.TrimSpace(input.PlayerID),
		TeamID:   input.TeamID,
		Price:    input.Price,
		At:       s.now().UTC(),
	}
	if err := req.Validate(); err != nil {
		return auction.AssignResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result, err := s.auctionRepo.Assign(ctx, req)
	if err != nil {
		return auction.AssignResult{}, err
	}

	s.logger.InfoContext(ctx, "player assigned",
		"player_id", req.PlayerID,
		"team_id", req.TeamID,
		"price", req.Price,
		"remaining_budget", result.RemainingBudget,
		"wishlist_removed", result.WishlistRemoved,
	)
	return result, nil
}

func (s *AuctionService) Release(ctx context.Context, input ReleaseInput) (auction.ReleaseResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Release")
	defer span.End()

	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return auction.ReleaseResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.TeamID <= 0 {
		return auction.ReleaseResult{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}

	result, err := s.auctionRepo.Release(ctx, playerID, input.TeamID)
	if err != nil {
		if errors.Is(err, auction.ErrPurchaseRecordMissing) {
			s.logger.ErrorContext(ctx, "purchase record missing for owned player", "player_id", playerID, "team_id", input.TeamID, "error", err)
		}
		return auction.ReleaseResult{}, err
	}

	s.logger.InfoContext(ctx, "player released",
		"player_id", playerID,
		"team_id", input.TeamID,
		"refunded", result.RefundedPrice,
		"remaining_budget", result.RemainingBudget,
	)
	return result, nil
}

func (s *AuctionService) SetOwner(ctx context.Context, input SetOwnerInput) (SetOwnerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.SetOwner")
	defer span.End()

	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return SetOwnerResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if input.TeamID != nil {
		if input.Price == nil {
			return SetOwnerResult{}, fmt.Errorf("%w: prezzo is required to assign a player", ErrInvalidInput)
		}
		assigned, err := s.Assign(ctx, AssignInput{PlayerID: playerID, TeamID: *input.TeamID, Price: *input.Price})
		if err != nil {
			return SetOwnerResult{}, err
		}
		return SetOwnerResult{Assigned: &assigned}, nil
	}

	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return SetOwnerResult{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return SetOwnerResult{}, fmt.Errorf("%w: giocatore %s", auction.ErrPlayerNotFound, playerID)
	}
	if current.TeamID == nil {
		return SetOwnerResult{}, fmt.Errorf("%w: giocatore %s", auction.ErrPlayerWithoutOwnerTeam, playerID)
	}

	released, err := s.Release(ctx, ReleaseInput{PlayerID: playerID, TeamID: *current.TeamID})
	if err != nil {
		return SetOwnerResult{}, err
	}
	return SetOwnerResult{Released: &released}, nil
}

func (s *AuctionService) ListPurchases(ctx context.Context) ([]auction.Purchase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.ListPurchases")
	defer span.End()

	purchases, err := s.auctionRepo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}
