package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
)

// DefaultBudget is the auction credit each fantasquadra starts with.
const DefaultBudget int64 = 500

// Team is a fantasquadra taking part in the auction.
type Team struct {
	ID          int64
	Name        string
	Owner       string
	Budget      int64
	Spent       int64
	PlayerCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Remaining is the residual budget; it is always derived from purchases.
func (t Team) Remaining() int64 {
	return t.Budget - t.Spent
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Budget < 0 {
		return fmt.Errorf("team budget must be >= 0")
	}

	return nil
}

// Details is a team together with its roster.
type Details struct {
	Team
	Players []player.View
}

// DeleteResult reports what a cascading team delete released.
type DeleteResult struct {
	TeamID            int64
	ReleasedPlayerIDs []string
	PurchasesRemoved  int
	WishlistRemoved   int
}
