package quotation

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one CSV data row keyed by header; lookups are case-insensitive.
type Record interface {
	Get(column string) (string, bool)
}

// FieldSource maps a quotation field to candidate CSV columns in priority order.
// The first candidate holding a non-blank cell wins; when every candidate is blank
// or absent the stored value is preserved.
type FieldSource struct {
	Field   string
	Columns []string
	apply   func(q *Quotation, cell string) error
}

// Extract returns the winning cell for this field.
func (s FieldSource) Extract(rec Record) (string, bool) {
	for _, column := range s.Columns {
		cell, ok := rec.Get(column)
		if !ok {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell != "" {
			return cell, true
		}
	}
	return "", false
}

// FieldSources is the importer's column mapping. voto and mia_valutazione are never imported.
var FieldSources = []FieldSource{
	{
		Field:   "gazzetta",
		Columns: []string{"Fantagazzetta", "Gazzetta", "Quotazione"},
		apply: func(q *Quotation, cell string) error {
			v, err := ParseDecimal(cell)
			if err != nil {
				return err
			}
			q.Gazzetta = &v
			return nil
		},
	},
	{
		Field:   "fascia",
		Columns: []string{"Fascia"},
		apply: func(q *Quotation, cell string) error {
			q.Fascia = &cell
			return nil
		},
	},
	{
		Field:   "consiglio",
		Columns: []string{"Consiglio"},
		apply: func(q *Quotation, cell string) error {
			q.Consiglio = &cell
			return nil
		},
	},
	{
		Field:   "note",
		Columns: []string{"Note"},
		apply: func(q *Quotation, cell string) error {
			q.Note = &cell
			return nil
		},
	},
	{
		Field:   "preferito",
		Columns: []string{"Preferito", "Preferiti", "Wishlist"},
		apply: func(q *Quotation, cell string) error {
			v, err := ParseFlag(cell)
			if err != nil {
				return err
			}
			q.Favourite = v
			return nil
		},
	},
}

// Merge applies the row on top of existing with preserve-if-blank semantics and
// returns the merged quotation. existing is not modified.
func Merge(existing Quotation, rec Record) (Quotation, error) {
	merged := existing
	for _, source := range FieldSources {
		cell, ok := source.Extract(rec)
		if !ok {
			continue
		}
		if err := source.apply(&merged, cell); err != nil {
			return existing, fmt.Errorf("column %s: %w", source.Field, err)
		}
	}

	return merged, nil
}

// RowFavourite reports whether the row itself marks the player preferito.
// A blank or missing cell is false whatever the stored flag says.
func RowFavourite(rec Record) bool {
	for _, source := range FieldSources {
		if source.Field != "preferito" {
			continue
		}
		cell, ok := source.Extract(rec)
		if !ok {
			return false
		}
		v, err := ParseFlag(cell)
		return err == nil && v
	}
	return false
}

// ParseDecimal accepts both "85.5" and the Italian "85,5".
func ParseDecimal(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

// ParseFlag reads the preferito column.
func ParseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "si", "sì", "s", "x", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid flag %q", raw)
	}
}
