package backup

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// TableOrder is the dump order and the restore insert order; parents come first.
var TableOrder = []string{"squadre", "giocatori", "quotazioni", "acquisti", "wishlist"}

// TableColumns is the restore whitelist, matching the current schema.
var TableColumns = map[string][]string{
	"squadre":    {"id", "nome", "proprietario", "budget", "budget_residuo", "created_at", "updated_at"},
	"giocatori":  {"id", "nome", "squadra", "ruolo", "fantasquadra", "status", "created_at", "updated_at"},
	"quotazioni": {"id", "giocatore_id", "gazzetta", "fascia", "consiglio", "voto", "mia_valutazione", "note", "preferito", "created_at", "updated_at"},
	"acquisti":   {"id", "giocatore_id", "squadra_id", "prezzo", "data_acquisto"},
	"wishlist":   {"id", "giocatore_id", "created_at"},
}

// Value is one cell. An unquoted empty cell is NULL; quoted cells are strings.
type Value struct {
	Text   string
	Quoted bool
}

func (v Value) IsNull() bool {
	return !v.Quoted && v.Text == ""
}

// Arg converts the cell into a database argument.
func (v Value) Arg() any {
	if v.Quoted {
		return v.Text
	}
	if v.Text == "" {
		return nil
	}
	if n, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v.Text, 64); err == nil {
		return f
	}
	return v.Text
}

// FromDriver converts a scanned database value into a cell.
func FromDriver(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case int64:
		return Value{Text: strconv.FormatInt(x, 10)}
	case int:
		return Value{Text: strconv.Itoa(x)}
	case float64:
		return Value{Text: strconv.FormatFloat(x, 'f', -1, 64)}
	case bool:
		if x {
			return Value{Text: "1"}
		}
		return Value{Text: "0"}
	case []byte:
		return Value{Text: string(x), Quoted: true}
	case string:
		return Value{Text: x, Quoted: true}
	case time.Time:
		return Value{Text: x.UTC().Format(time.RFC3339Nano), Quoted: true}
	default:
		return Value{Text: fmt.Sprint(x), Quoted: true}
	}
}

type Table struct {
	Name    string
	Columns []string
	Rows    [][]Value
}

// Snapshot is a full dump of the application tables.
type Snapshot struct {
	Tables []Table
}

func (s Snapshot) Table(name string) (Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// RestoreSummary counts restored rows per table.
type RestoreSummary struct {
	Rows    map[string]int
	Skipped []string
}

// Repository dumps and restores the whole database.
type Repository interface {
	// Dump reads every table in TableOrder from one consistent snapshot.
	Dump(ctx context.Context) (Snapshot, error)
	// Restore drops and recreates the schema then loads the snapshot, all or nothing.
	Restore(ctx context.Context, snap Snapshot) (RestoreSummary, error)
}
