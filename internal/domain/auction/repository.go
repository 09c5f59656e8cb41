package auction

import "context"

// Repository runs purchase bookkeeping atomically. Implementations must apply every
// step of Assign and Release in a single transaction and roll back on any failure.
type Repository interface {
	Assign(ctx context.Context, req AssignRequest) (AssignResult, error)
	Release(ctx context.Context, playerID string, teamID int64) (ReleaseResult, error)
	ListPurchases(ctx context.Context) ([]Purchase, error)
}
