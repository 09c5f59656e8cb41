package quotation

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateQuotation signals more than one quotation row for a player.
var ErrDuplicateQuotation = errors.New("multiple quotations for player")

// Quotation holds a player's external valuation and the user's own notes.
type Quotation struct {
	ID        int64
	PlayerID  string
	Gazzetta  *float64
	Fascia    *string
	Consiglio *string
	Voto      *float64
	MyRating  *int
	Note      *string
	Favourite bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	MinRating = 1
	MaxRating = 10
)

func ValidateRating(v *int) error {
	if v == nil {
		return nil
	}
	if *v < MinRating || *v > MaxRating {
		return fmt.Errorf("mia_valutazione must be between %d and %d", MinRating, MaxRating)
	}

	return nil
}

func (q Quotation) Validate() error {
	if q.PlayerID == "" {
		return fmt.Errorf("quotation player id is required")
	}
	return ValidateRating(q.MyRating)
}
