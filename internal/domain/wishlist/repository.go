package wishlist

import (
	"context"
	"time"
)

// Repository describes wishlist persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	// Add inserts the entry unless present; added reports whether a row was created.
	Add(ctx context.Context, playerID string, at time.Time) (entry Entry, added bool, err error)
	Remove(ctx context.Context, playerID string) (bool, error)
	Contains(ctx context.Context, playerID string) (bool, error)
}
