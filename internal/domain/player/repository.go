package player

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned by Create when the derived id or (name, club) pair is taken.
var ErrAlreadyExists = errors.New("player already exists")

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]View, error)
	GetByID(ctx context.Context, playerID string) (View, bool, error)
	GetByNameAndClub(ctx context.Context, name, club string) (Player, bool, error)
	Create(ctx context.Context, p Player) error
	UpdateRole(ctx context.Context, playerID string, role Role) error
}
