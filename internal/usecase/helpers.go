package usecase

import (
	"errors"
	"strings"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
)

func isAlreadyExists(err error) bool {
	return errors.Is(err, player.ErrAlreadyExists)
}

// trimmedOrNil turns blank strings into nil so the column is cleared.
func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
