package team

import (
	"context"
	"errors"
)

// ErrBudgetBelowSpent is returned when a budget update would leave a negative residual.
var ErrBudgetBelowSpent = errors.New("budget lower than amount already spent")

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) (Team, bool, error)
	// Delete releases every player owned by the team and removes the team in one transaction.
	Delete(ctx context.Context, teamID int64) (DeleteResult, bool, error)
}
