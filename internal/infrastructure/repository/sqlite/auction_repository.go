package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	qb "github.com/riskibarqy/fantacalcio/internal/platform/querybuilder"
)

type AuctionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAuctionRepository(db *sqlx.DB) *AuctionRepository {
	return &AuctionRepository{db: db, now: time.Now}
}

// Assign buys a player for a team. Every read and write runs on the same
// immediate transaction so the budget and availability checks cannot go stale.
func (r *AuctionRepository) Assign(ctx context.Context, req auction.AssignRequest) (auction.AssignResult, error) {
	at := req.At
	if at.IsZero() {
		at = r.now()
	}
	at = at.UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.AssignResult{}, fmt.Errorf("begin assign tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	t, ok, err := getTeam(ctx, tx, req.TeamID)
	if err != nil {
		return auction.AssignResult{}, err
	}
	if !ok {
		return auction.AssignResult{}, fmt.Errorf("%w: squadra %d", auction.ErrTeamNotFound, req.TeamID)
	}

	p, ok, err := getPlayerRow(ctx, tx, req.PlayerID)
	if err != nil {
		return auction.AssignResult{}, err
	}
	if !ok {
		return auction.AssignResult{}, fmt.Errorf("%w: giocatore %s", auction.ErrPlayerNotFound, req.PlayerID)
	}
	if player.Status(p.Status) != player.StatusAvailable {
		return auction.AssignResult{}, fmt.Errorf("%w: giocatore %s is %s", auction.ErrPlayerNotAvailable, req.PlayerID, p.Status)
	}
	if remaining := t.Remaining(); req.Price > remaining {
		return auction.AssignResult{}, fmt.Errorf("%w: price=%d remaining=%d", auction.ErrInsufficientBudget, req.Price, remaining)
	}

	res, err := execBuilder(ctx, tx, qb.Update("giocatori").
		Set("status", string(player.StatusPurchased)).
		Set("fantasquadra", req.TeamID).
		Set("updated_at", at).
		Where(qb.Eq("id", req.PlayerID), qb.Eq("status", string(player.StatusAvailable))), "mark player purchased")
	if err != nil {
		return auction.AssignResult{}, err
	}
	n, err := affected(res)
	if err != nil {
		return auction.AssignResult{}, err
	}
	if n == 0 {
		return auction.AssignResult{}, fmt.Errorf("%w: giocatore %s", auction.ErrPlayerNotAvailable, req.PlayerID)
	}

	purchase := purchaseTableModel{
		PlayerID:    req.PlayerID,
		TeamID:      req.TeamID,
		Price:       req.Price,
		PurchasedAt: at,
	}
	query, args, err := qb.InsertModel("acquisti", purchase, "")
	if err != nil {
		return auction.AssignResult{}, fmt.Errorf("build insert purchase query: %w", err)
	}
	res, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return auction.AssignResult{}, fmt.Errorf("%w: giocatore %s already has a purchase", auction.ErrPlayerNotAvailable, req.PlayerID)
		}
		return auction.AssignResult{}, fmt.Errorf("insert purchase: %w", err)
	}
	purchase.ID, err = res.LastInsertId()
	if err != nil {
		return auction.AssignResult{}, fmt.Errorf("read inserted purchase id: %w", err)
	}

	if err := refreshBudgetCache(ctx, tx, &req.TeamID, at); err != nil {
		return auction.AssignResult{}, err
	}

	res, err = execBuilder(ctx, tx, qb.DeleteFrom("wishlist").Where(qb.Eq("giocatore_id", req.PlayerID)), "remove purchased player from wishlist")
	if err != nil {
		return auction.AssignResult{}, err
	}
	removed, err := affected(res)
	if err != nil {
		return auction.AssignResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return auction.AssignResult{}, fmt.Errorf("commit assign tx: %w", err)
	}

	return auction.AssignResult{
		Purchase: auction.Purchase{
			ID:          purchase.ID,
			PlayerID:    req.PlayerID,
			TeamID:      req.TeamID,
			Price:       req.Price,
			PurchasedAt: at,
			PlayerName:  p.Name,
			PlayerClub:  p.Club,
			PlayerRole:  p.Role,
			TeamName:    t.Name,
		},
		RemainingBudget: t.Remaining() - req.Price,
		WishlistRemoved: removed > 0,
	}, nil
}

// Release returns a purchased player to the pool and refunds the team.
func (r *AuctionRepository) Release(ctx context.Context, playerID string, teamID int64) (auction.ReleaseResult, error) {
	now := r.now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.ReleaseResult{}, fmt.Errorf("begin release tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	t, ok, err := getTeam(ctx, tx, teamID)
	if err != nil {
		return auction.ReleaseResult{}, err
	}
	if !ok {
		return auction.ReleaseResult{}, fmt.Errorf("%w: squadra %d", auction.ErrTeamNotFound, teamID)
	}

	p, ok, err := getPlayerRow(ctx, tx, playerID)
	if err != nil {
		return auction.ReleaseResult{}, err
	}
	if !ok {
		return auction.ReleaseResult{}, fmt.Errorf("%w: giocatore %s", auction.ErrPlayerNotFound, playerID)
	}
	if player.Status(p.Status) != player.StatusPurchased || !p.TeamID.Valid || p.TeamID.Int64 != teamID {
		return auction.ReleaseResult{}, fmt.Errorf("%w: giocatore %s squadra %d", auction.ErrPlayerNotOwnedByTeam, playerID, teamID)
	}

	var purchase purchaseTableModel
	if err := tx.GetContext(ctx, &purchase,
		`SELECT id, giocatore_id, squadra_id, prezzo, data_acquisto FROM acquisti WHERE giocatore_id = ? AND squadra_id = ?`,
		playerID, teamID,
	); err != nil {
		if isNotFound(err) {
			return auction.ReleaseResult{}, fmt.Errorf("%w: giocatore %s squadra %d", auction.ErrPurchaseRecordMissing, playerID, teamID)
		}
		return auction.ReleaseResult{}, fmt.Errorf("get purchase: %w", err)
	}

	res, err := execBuilder(ctx, tx, qb.Update("giocatori").
		Set("status", string(player.StatusAvailable)).
		Set("fantasquadra", nil).
		Set("updated_at", now).
		Where(
			qb.Eq("id", playerID),
			qb.Eq("status", string(player.StatusPurchased)),
			qb.Eq("fantasquadra", teamID),
		), "reset released player")
	if err != nil {
		return auction.ReleaseResult{}, err
	}
	n, err := affected(res)
	if err != nil {
		return auction.ReleaseResult{}, err
	}
	if n == 0 {
		return auction.ReleaseResult{}, fmt.Errorf("%w: giocatore %s squadra %d", auction.ErrPlayerNotOwnedByTeam, playerID, teamID)
	}

	if _, err := execBuilder(ctx, tx, qb.DeleteFrom("acquisti").Where(qb.Eq("id", purchase.ID)), "delete purchase"); err != nil {
		return auction.ReleaseResult{}, err
	}
	if err := refreshBudgetCache(ctx, tx, &teamID, now); err != nil {
		return auction.ReleaseResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return auction.ReleaseResult{}, fmt.Errorf("commit release tx: %w", err)
	}

	return auction.ReleaseResult{
		PlayerID:        playerID,
		TeamID:          teamID,
		RefundedPrice:   purchase.Price,
		RemainingBudget: t.Remaining() + purchase.Price,
	}, nil
}

func (r *AuctionRepository) ListPurchases(ctx context.Context) ([]auction.Purchase, error) {
	query, args, err := qb.Select(
		"a.id", "a.giocatore_id", "a.squadra_id", "a.prezzo", "a.data_acquisto",
		"g.nome AS player_name", "g.squadra AS player_club", "g.ruolo AS player_role",
		"s.nome AS team_name",
	).
		From("acquisti a").
		Join("giocatori g", "g.id = a.giocatore_id").
		Join("squadre s", "s.id = a.squadra_id").
		OrderBy("a.data_acquisto DESC", "a.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list purchases query: %w", err)
	}

	var rows []purchaseRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select purchases: %w", err)
	}

	out := make([]auction.Purchase, 0, len(rows))
	for _, row := range rows {
		out = append(out, auction.Purchase{
			ID:          row.ID,
			PlayerID:    row.PlayerID,
			TeamID:      row.TeamID,
			Price:       row.Price,
			PurchasedAt: row.PurchasedAt,
			PlayerName:  row.PlayerName,
			PlayerClub:  row.PlayerClub,
			PlayerRole:  row.PlayerRole,
			TeamName:    row.TeamName,
		})
	}
	return out, nil
}

func getPlayerRow(ctx context.Context, q sqlx.QueryerContext, playerID string) (playerTableModel, bool, error) {
	var row playerTableModel
	err := sqlx.GetContext(ctx, q, &row,
		`SELECT id, nome, squadra, ruolo, fantasquadra, status, created_at, updated_at FROM giocatori WHERE id = ?`,
		playerID,
	)
	if err != nil {
		if isNotFound(err) {
			return playerTableModel{}, false, nil
		}
		return playerTableModel{}, false, fmt.Errorf("get player %s: %w", playerID, err)
	}
	return row, true, nil
}
