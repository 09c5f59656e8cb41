package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/team"
	qb "github.com/riskibarqy/fantacalcio/internal/platform/querybuilder"
)

var teamColumns = []string{
	"s.id", "s.nome", "s.proprietario", "s.budget",
	"COALESCE((SELECT SUM(a.prezzo) FROM acquisti a WHERE a.squadra_id = s.id), 0) AS spesa_totale",
	"(SELECT COUNT(*) FROM acquisti a WHERE a.squadra_id = s.id) AS numero_giocatori",
	"s.created_at", "s.updated_at",
}

type TeamRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db, now: time.Now}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).
		From("squadre s").
		OrderBy("s.nome ASC", "s.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return getTeam(ctx, r.db, teamID)
}

func getTeam(ctx context.Context, q sqlx.QueryerContext, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).
		From("squadre s").
		Where(qb.Eq("s.id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamRow
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	now := r.now().UTC()
	model := teamTableModel{
		Name:        strings.TrimSpace(t.Name),
		Owner:       nullString(t.Owner),
		Budget:      t.Budget,
		BudgetCache: t.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query, args, err := qb.InsertModel("squadre", model, "")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return team.Team{}, fmt.Errorf("read inserted team id: %w", err)
	}

	return team.Team{
		ID:        id,
		Name:      model.Name,
		Owner:     model.Owner.String,
		Budget:    model.Budget,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) (team.Team, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("begin update team tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, ok, err := getTeam(ctx, tx, t.ID)
	if err != nil {
		return team.Team{}, false, err
	}
	if !ok {
		return team.Team{}, false, nil
	}
	if t.Budget < current.Spent {
		return team.Team{}, true, fmt.Errorf("%w: budget=%d spent=%d", team.ErrBudgetBelowSpent, t.Budget, current.Spent)
	}

	now := r.now().UTC()
	if _, err := execBuilder(ctx, tx, qb.Update("squadre").
		Set("nome", strings.TrimSpace(t.Name)).
		Set("proprietario", nullString(t.Owner)).
		Set("budget", t.Budget).
		Set("updated_at", now).
		Where(qb.Eq("id", t.ID)), "update team"); err != nil {
		return team.Team{}, true, err
	}
	if err := refreshBudgetCache(ctx, tx, &t.ID, now); err != nil {
		return team.Team{}, true, err
	}

	updated, _, err := getTeam(ctx, tx, t.ID)
	if err != nil {
		return team.Team{}, true, err
	}
	if err := tx.Commit(); err != nil {
		return team.Team{}, true, fmt.Errorf("commit update team tx: %w", err)
	}
	return updated, true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) (team.DeleteResult, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.DeleteResult{}, false, fmt.Errorf("begin delete team tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists int
	if err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM squadre WHERE id = ?`, teamID); err != nil {
		return team.DeleteResult{}, false, fmt.Errorf("check team exists: %w", err)
	}
	if exists == 0 {
		return team.DeleteResult{}, false, nil
	}

	var playerIDs []string
	if err := tx.SelectContext(ctx, &playerIDs, `
SELECT id FROM giocatori WHERE fantasquadra = ?
UNION
SELECT giocatore_id FROM acquisti WHERE squadra_id = ?
ORDER BY 1`, teamID, teamID); err != nil {
		return team.DeleteResult{}, true, fmt.Errorf("select players owned by team: %w", err)
	}

	result := team.DeleteResult{TeamID: teamID, ReleasedPlayerIDs: playerIDs}
	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		if _, err := execBuilder(ctx, tx, qb.Update("giocatori").
			Set("status", string(player.StatusAvailable)).
			Set("fantasquadra", nil).
			Set("updated_at", r.now().UTC()).
			Where(qb.In("id", ids)), "release team players"); err != nil {
			return team.DeleteResult{}, true, err
		}

		res, err := execBuilder(ctx, tx, qb.DeleteFrom("wishlist").Where(qb.In("giocatore_id", ids)), "delete wishlist of team players")
		if err != nil {
			return team.DeleteResult{}, true, err
		}
		n, err := affected(res)
		if err != nil {
			return team.DeleteResult{}, true, err
		}
		result.WishlistRemoved = int(n)
	}

	res, err := execBuilder(ctx, tx, qb.DeleteFrom("acquisti").Where(qb.Eq("squadra_id", teamID)), "delete team purchases")
	if err != nil {
		return team.DeleteResult{}, true, err
	}
	n, err := affected(res)
	if err != nil {
		return team.DeleteResult{}, true, err
	}
	result.PurchasesRemoved = int(n)

	if _, err := execBuilder(ctx, tx, qb.DeleteFrom("squadre").Where(qb.Eq("id", teamID)), "delete team"); err != nil {
		return team.DeleteResult{}, true, err
	}

	if err := tx.Commit(); err != nil {
		return team.DeleteResult{}, true, fmt.Errorf("commit delete team tx: %w", err)
	}
	return result, true, nil
}

func (r teamRow) toDomain() team.Team {
	return team.Team{
		ID:          r.ID,
		Name:        r.Name,
		Owner:       r.Owner.String,
		Budget:      r.Budget,
		Spent:       r.Spent,
		PlayerCount: r.PlayerCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func nullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
