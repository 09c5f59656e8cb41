package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/wishlist"
	qb "github.com/riskibarqy/fantacalcio/internal/platform/querybuilder"
)

type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) List(ctx context.Context) ([]wishlist.Item, error) {
	query, args, err := qb.Select(
		"w.id", "w.giocatore_id", "w.created_at",
		"g.nome AS player_name", "g.squadra AS player_club", "g.ruolo AS player_role", "g.status AS player_status",
		"q.gazzetta",
	).
		From("wishlist w").
		Join("giocatori g", "g.id = w.giocatore_id").
		LeftJoin("quotazioni q", "q.giocatore_id = w.giocatore_id").
		OrderBy("w.created_at DESC", "w.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list wishlist query: %w", err)
	}

	var rows []wishlistRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select wishlist: %w", err)
	}

	out := make([]wishlist.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, wishlist.Item{
			Entry: wishlist.Entry{
				ID:        row.ID,
				PlayerID:  row.PlayerID,
				CreatedAt: row.CreatedAt,
			},
			PlayerName:   row.PlayerName,
			PlayerClub:   row.PlayerClub,
			PlayerRole:   row.PlayerRole,
			PlayerStatus: row.PlayerStatus,
			Gazzetta:     float64Ptr(row.Gazzetta),
		})
	}
	return out, nil
}

// Add relies on UNIQUE(giocatore_id): a duplicate insert is ignored and reported as added=false.
func (r *WishlistRepository) Add(ctx context.Context, playerID string, at time.Time) (wishlist.Entry, bool, error) {
	res, err := execBuilder(ctx, r.db, qb.InsertOrIgnore("wishlist").
		Columns("giocatore_id", "created_at").
		Values(playerID, at.UTC()), "insert wishlist entry")
	if err != nil {
		return wishlist.Entry{}, false, err
	}
	n, err := affected(res)
	if err != nil {
		return wishlist.Entry{}, false, err
	}

	var entry struct {
		ID        int64     `db:"id"`
		PlayerID  string    `db:"giocatore_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &entry, `SELECT id, giocatore_id, created_at FROM wishlist WHERE giocatore_id = ?`, playerID); err != nil {
		return wishlist.Entry{}, false, fmt.Errorf("get wishlist entry: %w", err)
	}

	return wishlist.Entry{ID: entry.ID, PlayerID: entry.PlayerID, CreatedAt: entry.CreatedAt}, n > 0, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, playerID string) (bool, error) {
	res, err := execBuilder(ctx, r.db, qb.DeleteFrom("wishlist").Where(qb.Eq("giocatore_id", playerID)), "delete wishlist entry")
	if err != nil {
		return false, err
	}
	n, err := affected(res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *WishlistRepository) Contains(ctx context.Context, playerID string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM wishlist WHERE giocatore_id = ?`, playerID); err != nil {
		return false, fmt.Errorf("check wishlist entry: %w", err)
	}
	return count > 0, nil
}
