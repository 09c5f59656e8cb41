package id

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Generator creates opaque IDs for import and backup runs.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// Slug joins parts into a lowercase snake_case identifier with diacritics folded:
// Slug("Lautaro Martínez", "Inter") == "lautaro_martinez_inter".
func Slug(parts ...string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	words := make([]string, 0, len(parts)*2)
	for _, part := range parts {
		folded, _, err := transform.String(folder, part)
		if err != nil {
			folded = part
		}
		words = append(words, strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})...)
	}

	return strings.Join(words, "_")
}
