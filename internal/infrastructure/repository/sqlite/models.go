package sqlite

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID        string        `db:"id"`
	Name      string        `db:"nome"`
	Club      string        `db:"squadra"`
	Role      string        `db:"ruolo"`
	TeamID    sql.NullInt64 `db:"fantasquadra"`
	Status    string        `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type playerViewRow struct {
	playerTableModel

	TeamName     string          `db:"team_name"`
	Price        sql.NullInt64   `db:"prezzo"`
	PurchasedAt  sql.NullTime    `db:"data_acquisto"`
	Gazzetta     sql.NullFloat64 `db:"gazzetta"`
	Fascia       sql.NullString  `db:"fascia"`
	Consiglio    sql.NullString  `db:"consiglio"`
	Voto         sql.NullFloat64 `db:"voto"`
	MyRating     sql.NullInt64   `db:"mia_valutazione"`
	Note         sql.NullString  `db:"note"`
	Favourite    bool            `db:"preferito"`
	WishlistedAt sql.NullTime    `db:"wishlisted_at"`
}

type teamTableModel struct {
	ID          int64          `db:"id,omitempty"`
	Name        string         `db:"nome"`
	Owner       sql.NullString `db:"proprietario"`
	Budget      int64          `db:"budget"`
	BudgetCache int64          `db:"budget_residuo"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type teamRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"nome"`
	Owner       sql.NullString `db:"proprietario"`
	Budget      int64          `db:"budget"`
	Spent       int64          `db:"spesa_totale"`
	PlayerCount int            `db:"numero_giocatori"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type quotationTableModel struct {
	ID        int64           `db:"id,omitempty"`
	PlayerID  string          `db:"giocatore_id"`
	Gazzetta  sql.NullFloat64 `db:"gazzetta"`
	Fascia    sql.NullString  `db:"fascia"`
	Consiglio sql.NullString  `db:"consiglio"`
	Voto      sql.NullFloat64 `db:"voto"`
	MyRating  sql.NullInt64   `db:"mia_valutazione"`
	Note      sql.NullString  `db:"note"`
	Favourite bool            `db:"preferito"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type purchaseTableModel struct {
	ID          int64     `db:"id,omitempty"`
	PlayerID    string    `db:"giocatore_id"`
	TeamID      int64     `db:"squadra_id"`
	Price       int64     `db:"prezzo"`
	PurchasedAt time.Time `db:"data_acquisto"`
}

type purchaseRow struct {
	purchaseTableModel

	PlayerName string `db:"player_name"`
	PlayerClub string `db:"player_club"`
	PlayerRole string `db:"player_role"`
	TeamName   string `db:"team_name"`
}

type wishlistRow struct {
	ID           int64           `db:"id"`
	PlayerID     string          `db:"giocatore_id"`
	CreatedAt    time.Time       `db:"created_at"`
	PlayerName   string          `db:"player_name"`
	PlayerClub   string          `db:"player_club"`
	PlayerRole   string          `db:"player_role"`
	PlayerStatus string          `db:"player_status"`
	Gazzetta     sql.NullFloat64 `db:"gazzetta"`
}
