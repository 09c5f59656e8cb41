package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	qb "github.com/riskibarqy/fantacalcio/internal/platform/querybuilder"
)

var playerViewColumns = []string{
	"g.id", "g.nome", "g.squadra", "g.ruolo", "g.fantasquadra", "g.status", "g.created_at", "g.updated_at",
	"COALESCE(s.nome, '') AS team_name",
	"a.prezzo", "a.data_acquisto",
	"q.gazzetta", "q.fascia", "q.consiglio", "q.voto", "q.mia_valutazione", "q.note",
	"COALESCE(q.preferito, 0) AS preferito",
	"w.created_at AS wishlisted_at",
}

const roleOrderExpr = "CASE g.ruolo WHEN 'portiere' THEN 0 WHEN 'difensore' THEN 1 WHEN 'centrocampista' THEN 2 ELSE 3 END"

type PlayerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db, now: time.Now}
}

func playerViewQuery() *qb.SelectBuilder {
	return qb.Select(playerViewColumns...).
		From("giocatori g").
		LeftJoin("squadre s", "s.id = g.fantasquadra").
		LeftJoin("acquisti a", "a.giocatore_id = g.id").
		LeftJoin("quotazioni q", "q.giocatore_id = g.id").
		LeftJoin("wishlist w", "w.giocatore_id = g.id")
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.View, error) {
	query := playerViewQuery()
	if filter.Role != "" {
		query.Where(qb.Eq("g.ruolo", string(filter.Role)))
	}
	if club := strings.TrimSpace(filter.Club); club != "" {
		query.Where(qb.Expr("LOWER(g.squadra) = LOWER(?)", club))
	}
	if filter.Status != "" {
		query.Where(qb.Eq("g.status", string(filter.Status)))
	}
	if filter.TeamID != nil {
		query.Where(qb.Eq("g.fantasquadra", *filter.TeamID))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query.Where(qb.Or(qb.ContainsFold("g.nome", search), qb.ContainsFold("g.squadra", search)))
	}
	query.OrderBy(roleOrderExpr, "q.gazzetta IS NULL", "q.gazzetta DESC", "g.nome ASC")

	sqlQuery, args, err := query.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerViewRow
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.View, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.View, bool, error) {
	sqlQuery, args, err := playerViewQuery().
		Where(qb.Eq("g.id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.View{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerViewRow
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return player.View{}, false, nil
		}
		return player.View{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByNameAndClub(ctx context.Context, name, club string) (player.Player, bool, error) {
	sqlQuery, args, err := qb.Select("id", "nome", "squadra", "ruolo", "fantasquadra", "status", "created_at", "updated_at").
		From("giocatori").
		Where(qb.Eq("nome", strings.TrimSpace(name)), qb.Eq("squadra", strings.TrimSpace(club))).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by name and club: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	now := r.now().UTC()
	if p.Status == "" {
		p.Status = player.StatusAvailable
	}
	model := playerTableModel{
		ID:        p.ID,
		Name:      strings.TrimSpace(p.Name),
		Club:      strings.TrimSpace(p.Club),
		Role:      string(p.Role),
		TeamID:    nullInt64(p.TeamID),
		Status:    string(p.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	sqlQuery, args, err := qb.InsertModel("giocatori", model, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", player.ErrAlreadyExists, p.ID)
		}
		return fmt.Errorf("insert player %s: %w", p.ID, err)
	}
	return nil
}

func (r *PlayerRepository) UpdateRole(ctx context.Context, playerID string, role player.Role) error {
	res, err := execBuilder(ctx, r.db, qb.Update("giocatori").
		Set("ruolo", string(role)).
		Set("updated_at", r.now().UTC()).
		Where(qb.Eq("id", playerID)), "update player role")
	if err != nil {
		return err
	}
	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update player role: player %s not found", playerID)
	}
	return nil
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		Club:      m.Club,
		Role:      player.Role(m.Role),
		TeamID:    int64Ptr(m.TeamID),
		Status:    player.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r playerViewRow) toDomain() player.View {
	return player.View{
		Player:       r.playerTableModel.toDomain(),
		TeamName:     r.TeamName,
		Price:        int64Ptr(r.Price),
		PurchasedAt:  timePtr(r.PurchasedAt),
		Gazzetta:     float64Ptr(r.Gazzetta),
		Fascia:       stringPtr(r.Fascia),
		Consiglio:    stringPtr(r.Consiglio),
		Voto:         float64Ptr(r.Voto),
		MyRating:     intPtr(r.MyRating),
		Note:         stringPtr(r.Note),
		Favourite:    r.Favourite,
		InWishlist:   r.WishlistedAt.Valid,
		WishlistedAt: timePtr(r.WishlistedAt),
	}
}
