package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/wishlist"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

type WishlistService struct {
	wishlistRepo wishlist.Repository
	playerRepo   player.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewWishlistService(wishlistRepo wishlist.Repository, playerRepo player.Repository, logger *logging.Logger) *WishlistService {
	if logger == nil {
		logger = logging.Default()
	}

	return &WishlistService{
		wishlistRepo: wishlistRepo,
		playerRepo:   playerRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *WishlistService) List(ctx context.Context) ([]wishlist.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WishlistService.List")
	defer span.End()

	items, err := s.wishlistRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

// Add reports added=false when the player was already tracked.
func (s *WishlistService) Add(ctx context.Context, playerID string) (wishlist.Entry, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WishlistService.Add")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return wishlist.Entry{}, false, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return wishlist.Entry{}, false, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return wishlist.Entry{}, false, fmt.Errorf("%w: giocatore=%s", ErrNotFound, playerID)
	}

	entry, added, err := s.wishlistRepo.Add(ctx, playerID, s.now().UTC())
	if err != nil {
		return wishlist.Entry{}, false, fmt.Errorf("add wishlist entry: %w", err)
	}
	return entry, added, nil
}

func (s *WishlistService) Remove(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WishlistService.Remove")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	removed, err := s.wishlistRepo.Remove(ctx, playerID)
	if err != nil {
		return fmt.Errorf("remove wishlist entry: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: giocatore %s is not in wishlist", ErrNotFound, playerID)
	}
	return nil
}

func (s *WishlistService) IsMember(ctx context.Context, playerID string) (bool, error) {
	ok, err := s.wishlistRepo.Contains(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return false, fmt.Errorf("check wishlist: %w", err)
	}
	return ok, nil
}
