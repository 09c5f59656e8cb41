package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("g.id", "g.nome", "s.nome AS squadra_nome").
		From("giocatori g").
		LeftJoin("squadre s", "s.id = g.fantasquadra").
		Where(Eq("g.ruolo", "portiere"), IsNull("g.fantasquadra")).
		OrderBy("g.nome").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT g.id, g.nome, s.nome AS squadra_nome FROM giocatori g LEFT JOIN squadre s ON s.id = g.fantasquadra WHERE g.ruolo = ? AND g.fantasquadra IS NULL ORDER BY g.nome LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "portiere" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InOrAndLike(t *testing.T) {
	query, args, err := Select("id").
		From("giocatori").
		Where(
			In("status", []any{"acquistato", "venduto"}),
			Or(Eq("fantasquadra", int64(2)), Expr("id IN (SELECT giocatore_id FROM acquisti WHERE squadra_id = ?)", int64(2))),
			ContainsFold("nome", "50%_Mart"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := `SELECT id FROM giocatori WHERE status IN (?, ?) AND (fantasquadra = ? OR id IN (SELECT giocatore_id FROM acquisti WHERE squadra_id = ?)) AND LOWER(nome) LIKE ? ESCAPE '\'`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[4] != `%50\%\_mart%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").From("giocatori").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM giocatori WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("wishlist").
		Columns("giocatore_id", "created_at").
		Values("rossi_inter", "2026-10-16").
		Suffix("ON CONFLICT (giocatore_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO wishlist (giocatore_id, created_at) VALUES (?, ?) ON CONFLICT (giocatore_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "rossi_inter" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowLengthMismatch(t *testing.T) {
	if _, _, err := InsertInto("wishlist").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for row length mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("giocatori").
		Set("status", "acquistato").
		Set("fantasquadra", int64(3)).
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		Where(Eq("id", "rossi_inter"), Eq("status", "disponibile")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE giocatori SET status = ?, fantasquadra = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "rossi_inter" || args[3] != "disponibile" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("acquisti").Where(Eq("squadra_id", int64(4))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM acquisti WHERE squadra_id = ?" || len(args) != 1 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}

	if _, _, err := DeleteFrom("acquisti").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}
}

func TestInsertModel_OmitEmpty(t *testing.T) {
	type row struct {
		ID     int64  `db:"id,omitempty"`
		Nome   string `db:"nome"`
		Ignore string `db:"-"`
	}

	query, args, err := InsertModel("squadre", row{Nome: "Alpha"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO squadre (nome) VALUES (?)" || len(args) != 1 || args[0] != "Alpha" {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}

	query, _, err = InsertModel("squadre", &row{ID: 9, Nome: "Alpha"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO squadre (id, nome) VALUES (?, ?)" {
		t.Fatalf("unexpected query %q", query)
	}
}
