package auction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrTeamNotFound           = errors.New("team not found")
	ErrPlayerNotAvailable     = errors.New("player not available")
	ErrInsufficientBudget     = errors.New("insufficient budget")
	ErrPlayerNotOwnedByTeam   = errors.New("player not owned by team")
	ErrPurchaseRecordMissing  = errors.New("purchase record missing")
	ErrInvalidPrice           = errors.New("price must be greater than zero")
	ErrPlayerWithoutOwnerTeam = errors.New("player has no fantasquadra")
)

// Purchase records a player bought by a team at auction.
type Purchase struct {
	ID          int64
	PlayerID    string
	TeamID      int64
	Price       int64
	PurchasedAt time.Time

	PlayerName string
	PlayerClub string
	PlayerRole string
	TeamName   string
}

// AssignRequest asks to buy a player for a team.
type AssignRequest struct {
	PlayerID string
	TeamID   int64
	Price    int64
	At       time.Time
}

func (r AssignRequest) Validate() error {
	if strings.TrimSpace(r.PlayerID) == "" {
		return fmt.Errorf("player id is required")
	}
	if r.TeamID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if r.Price <= 0 {
		return ErrInvalidPrice
	}

	return nil
}

// AssignResult is the outcome of a committed purchase.
type AssignResult struct {
	Purchase        Purchase
	RemainingBudget int64
	WishlistRemoved bool
}

// ReleaseResult is the outcome of a committed release.
type ReleaseResult struct {
	PlayerID        string
	TeamID          int64
	RefundedPrice   int64
	RemainingBudget int64
}
