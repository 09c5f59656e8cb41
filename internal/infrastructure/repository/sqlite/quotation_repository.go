package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	qb "github.com/riskibarqy/fantacalcio/internal/platform/querybuilder"
)

var quotationColumns = []string{
	"id", "giocatore_id", "gazzetta", "fascia", "consiglio", "voto", "mia_valutazione", "note", "preferito", "created_at", "updated_at",
}

type QuotationRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewQuotationRepository(db *sqlx.DB) *QuotationRepository {
	return &QuotationRepository{db: db, now: time.Now}
}

func (r *QuotationRepository) List(ctx context.Context) ([]quotation.Quotation, error) {
	query, args, err := qb.Select(quotationColumns...).
		From("quotazioni").
		OrderBy("giocatore_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list quotations query: %w", err)
	}

	var rows []quotationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select quotations: %w", err)
	}

	out := make([]quotation.Quotation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *QuotationRepository) GetByPlayerID(ctx context.Context, playerID string) (quotation.Quotation, bool, error) {
	// LIMIT 2 so a second row surfaces as an integrity error instead of being hidden.
	query, args, err := qb.Select(quotationColumns...).
		From("quotazioni").
		Where(qb.Eq("giocatore_id", playerID)).
		OrderBy("id ASC").
		Limit(2).
		ToSQL()
	if err != nil {
		return quotation.Quotation{}, false, fmt.Errorf("build get quotation query: %w", err)
	}

	var rows []quotationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return quotation.Quotation{}, false, fmt.Errorf("get quotation by player id: %w", err)
	}
	switch len(rows) {
	case 0:
		return quotation.Quotation{}, false, nil
	case 1:
		return rows[0].toDomain(), true, nil
	default:
		return quotation.Quotation{}, false, fmt.Errorf("%w: giocatore_id=%s", quotation.ErrDuplicateQuotation, playerID)
	}
}

func (r *QuotationRepository) Insert(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	now := r.now().UTC()
	model := quotationFromDomain(q)
	model.ID = 0
	model.CreatedAt = now
	model.UpdatedAt = now

	query, args, err := qb.InsertModel("quotazioni", model, "")
	if err != nil {
		return quotation.Quotation{}, fmt.Errorf("build insert quotation query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return quotation.Quotation{}, fmt.Errorf("%w: giocatore_id=%s", quotation.ErrDuplicateQuotation, q.PlayerID)
		}
		return quotation.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return quotation.Quotation{}, fmt.Errorf("read inserted quotation id: %w", err)
	}

	q.ID = id
	q.CreatedAt = now
	q.UpdatedAt = now
	return q, nil
}

// Update rewrites every mutable column of the row and bumps updated_at.
func (r *QuotationRepository) Update(ctx context.Context, q quotation.Quotation) error {
	model := quotationFromDomain(q)
	res, err := execBuilder(ctx, r.db, qb.Update("quotazioni").
		Set("gazzetta", model.Gazzetta).
		Set("fascia", model.Fascia).
		Set("consiglio", model.Consiglio).
		Set("voto", model.Voto).
		Set("mia_valutazione", model.MyRating).
		Set("note", model.Note).
		Set("preferito", model.Favourite).
		Set("updated_at", r.now().UTC()).
		Where(qb.Eq("giocatore_id", q.PlayerID)), "update quotation")
	if err != nil {
		return err
	}
	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update quotation: no row for giocatore_id=%s", q.PlayerID)
	}
	return nil
}

func quotationFromDomain(q quotation.Quotation) quotationTableModel {
	model := quotationTableModel{
		ID:        q.ID,
		PlayerID:  q.PlayerID,
		Favourite: q.Favourite,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if q.Gazzetta != nil {
		model.Gazzetta = sql.NullFloat64{Float64: *q.Gazzetta, Valid: true}
	}
	if q.Voto != nil {
		model.Voto = sql.NullFloat64{Float64: *q.Voto, Valid: true}
	}
	if q.MyRating != nil {
		model.MyRating = sql.NullInt64{Int64: int64(*q.MyRating), Valid: true}
	}
	if q.Fascia != nil {
		model.Fascia = sql.NullString{String: *q.Fascia, Valid: true}
	}
	if q.Consiglio != nil {
		model.Consiglio = sql.NullString{String: *q.Consiglio, Valid: true}
	}
	if q.Note != nil {
		model.Note = sql.NullString{String: *q.Note, Valid: true}
	}
	return model
}

func (m quotationTableModel) toDomain() quotation.Quotation {
	return quotation.Quotation{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		Gazzetta:  float64Ptr(m.Gazzetta),
		Fascia:    stringPtr(m.Fascia),
		Consiglio: stringPtr(m.Consiglio),
		Voto:      float64Ptr(m.Voto),
		MyRating:  intPtr(m.MyRating),
		Note:      stringPtr(m.Note),
		Favourite: m.Favourite,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
