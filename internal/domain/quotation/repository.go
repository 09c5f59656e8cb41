package quotation

import "context"

// Repository describes quotation persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Quotation, error)
	// GetByPlayerID returns ErrDuplicateQuotation when more than one row matches.
	GetByPlayerID(ctx context.Context, playerID string) (Quotation, bool, error)
	Insert(ctx context.Context, q Quotation) (Quotation, error)
	Update(ctx context.Context, q Quotation) error
}
