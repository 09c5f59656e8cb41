package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/statistics"
)

type StatisticsRepository struct {
	db *sqlx.DB
}

func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// ListPurchaseFacts returns purchases in insertion order so ranking ties stay stable.
func (r *StatisticsRepository) ListPurchaseFacts(ctx context.Context) ([]statistics.PurchaseFact, error) {
	var rows []struct {
		PurchaseID  int64     `db:"id"`
		PlayerID    string    `db:"giocatore_id"`
		PlayerName  string    `db:"player_name"`
		PlayerClub  string    `db:"player_club"`
		Role        string    `db:"ruolo"`
		TeamID      int64     `db:"squadra_id"`
		TeamName    string    `db:"team_name"`
		Price       int64     `db:"prezzo"`
		PurchasedAt time.Time `db:"data_acquisto"`
	}
	const query = `
SELECT a.id, a.giocatore_id, g.nome AS player_name, g.squadra AS player_club, g.ruolo,
       a.squadra_id, s.nome AS team_name, a.prezzo, a.data_acquisto
FROM acquisti a
JOIN giocatori g ON g.id = a.giocatore_id
JOIN squadre s ON s.id = a.squadra_id
ORDER BY a.id ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select purchase facts: %w", err)
	}

	out := make([]statistics.PurchaseFact, 0, len(rows))
	for _, row := range rows {
		out = append(out, statistics.PurchaseFact{
			PurchaseID:  row.PurchaseID,
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			PlayerClub:  row.PlayerClub,
			Role:        player.Role(row.Role),
			TeamID:      row.TeamID,
			TeamName:    row.TeamName,
			Price:       row.Price,
			PurchasedAt: row.PurchasedAt,
		})
	}
	return out, nil
}

func (r *StatisticsRepository) ListTeamFacts(ctx context.Context) ([]statistics.TeamFact, error) {
	var rows []struct {
		ID     int64  `db:"id"`
		Name   string `db:"nome"`
		Budget int64  `db:"budget"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, nome, budget FROM squadre ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("select team facts: %w", err)
	}

	out := make([]statistics.TeamFact, 0, len(rows))
	for _, row := range rows {
		out = append(out, statistics.TeamFact{ID: row.ID, Name: row.Name, Budget: row.Budget})
	}
	return out, nil
}

func (r *StatisticsRepository) CountPlayersByStatus(ctx context.Context) (map[player.Status]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS total FROM giocatori GROUP BY status`); err != nil {
		return nil, fmt.Errorf("count players by status: %w", err)
	}

	out := make(map[player.Status]int, len(rows))
	for _, row := range rows {
		out[player.Status(row.Status)] = row.Count
	}
	return out, nil
}
