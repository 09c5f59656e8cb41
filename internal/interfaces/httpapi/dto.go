package httpapi

import (
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/backup"
	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	"github.com/riskibarqy/fantacalcio/internal/domain/statistics"
	"github.com/riskibarqy/fantacalcio/internal/domain/team"
	"github.com/riskibarqy/fantacalcio/internal/domain/wishlist"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

type createPlayerRequest struct {
	Nome    string `json:"nome" validate:"required,max=100"`
	Squadra string `json:"squadra" validate:"required,max=100"`
	Ruolo   string `json:"ruolo" validate:"required"`
}

type updateNotesRequest struct {
	Note      *string `json:"note"`
	Consiglio *string `json:"consiglio"`
	Fascia    *string `json:"fascia"`
}

type updateRatingRequest struct {
	MiaValutazione *int `json:"mia_valutazione" validate:"omitempty,min=1,max=10"`
}

type setOwnerRequest struct {
	SquadraID *int64 `json:"squadraId" validate:"omitempty,gt=0"`
	Prezzo    *int64 `json:"prezzo" validate:"omitempty,gt=0"`
}

type createTeamRequest struct {
	Nome         string `json:"nome" validate:"required,max=100"`
	Proprietario string `json:"proprietario" validate:"max=100"`
	Budget       *int64 `json:"budget" validate:"omitempty,gte=0"`
}

type updateTeamRequest struct {
	Nome         string `json:"nome" validate:"required,max=100"`
	Proprietario string `json:"proprietario" validate:"max=100"`
	Budget       int64  `json:"budget" validate:"gte=0"`
}

type assignRequest struct {
	GiocatoreID string `json:"giocatoreId" validate:"required"`
	SquadraID   int64  `json:"squadraId" validate:"required,gt=0"`
	Prezzo      int64  `json:"prezzo" validate:"required,gt=0"`
}

type releaseRequest struct {
	GiocatoreID string `json:"giocatoreId" validate:"required"`
	SquadraID   int64  `json:"squadraId" validate:"required,gt=0"`
}

type wishlistAddRequest struct {
	GiocatoreID string `json:"giocatoreId" validate:"required"`
}

type playerDTO struct {
	ID               string     `json:"id"`
	Nome             string     `json:"nome"`
	Squadra          string     `json:"squadra"`
	Ruolo            string     `json:"ruolo"`
	Status           string     `json:"status"`
	Fantasquadra     *int64     `json:"fantasquadra"`
	FantasquadraNome string     `json:"fantasquadra_nome,omitempty"`
	Prezzo           *int64     `json:"prezzo"`
	DataAcquisto     *time.Time `json:"data_acquisto,omitempty"`
	Gazzetta         *float64   `json:"gazzetta"`
	Fascia           *string    `json:"fascia"`
	Consiglio        *string    `json:"consiglio"`
	Voto             *float64   `json:"voto"`
	MiaValutazione   *int       `json:"mia_valutazione"`
	Note             *string    `json:"note"`
	Preferito        bool       `json:"preferito"`
	InWishlist       *bool      `json:"in_wishlist,omitempty"`
	WishlistAt       *time.Time `json:"wishlist_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toPlayerDTO(p player.View, withWishlist bool) playerDTO {
	out := playerDTO{
		ID:               p.ID,
		Nome:             p.Name,
		Squadra:          p.Club,
		Ruolo:            string(p.Role),
		Status:           string(p.Status),
		Fantasquadra:     p.TeamID,
		FantasquadraNome: p.TeamName,
		Prezzo:           p.Price,
		DataAcquisto:     p.PurchasedAt,
		Gazzetta:         p.Gazzetta,
		Fascia:           p.Fascia,
		Consiglio:        p.Consiglio,
		Voto:             p.Voto,
		MiaValutazione:   p.MyRating,
		Note:             p.Note,
		Preferito:        p.Favourite,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if withWishlist {
		inWishlist := p.InWishlist
		out.InWishlist = &inWishlist
		out.WishlistAt = p.WishlistedAt
	}
	return out
}

func toPlayerDTOs(items []player.View, withWishlist bool) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toPlayerDTO(item, withWishlist))
	}
	return out
}

type teamDTO struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Proprietario    string    `json:"proprietario"`
	Budget          int64     `json:"budget"`
	BudgetResiduo   int64     `json:"budget_residuo"`
	SpesaTotale     int64     `json:"spesa_totale"`
	NumeroGiocatori int       `json:"numero_giocatori"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toTeamDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:              t.ID,
		Nome:            t.Name,
		Proprietario:    t.Owner,
		Budget:          t.Budget,
		BudgetResiduo:   t.Remaining(),
		SpesaTotale:     t.Spent,
		NumeroGiocatori: t.PlayerCount,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type teamDetailsDTO struct {
	teamDTO
	Giocatori []playerDTO `json:"giocatori"`
}

type teamDeleteDTO struct {
	SquadraID           int64    `json:"squadra_id"`
	GiocatoriSvincolati []string `json:"giocatori_svincolati"`
	AcquistiRimossi     int      `json:"acquisti_rimossi"`
	WishlistRimossi     int      `json:"wishlist_rimossi"`
}

func toTeamDeleteDTO(r team.DeleteResult) teamDeleteDTO {
	released := r.ReleasedPlayerIDs
	if released == nil {
		released = []string{}
	}
	return teamDeleteDTO{
		SquadraID:           r.TeamID,
		GiocatoriSvincolati: released,
		AcquistiRimossi:     r.PurchasesRemoved,
		WishlistRimossi:     r.WishlistRemoved,
	}
}

type purchaseDTO struct {
	ID               int64     `json:"id"`
	GiocatoreID      string    `json:"giocatore_id"`
	SquadraID        int64     `json:"squadra_id"`
	Prezzo           int64     `json:"prezzo"`
	DataAcquisto     time.Time `json:"data_acquisto"`
	GiocatoreNome    string    `json:"giocatore_nome,omitempty"`
	GiocatoreSquadra string    `json:"giocatore_squadra,omitempty"`
	GiocatoreRuolo   string    `json:"giocatore_ruolo,omitempty"`
	SquadraNome      string    `json:"squadra_nome,omitempty"`
}

func toPurchaseDTO(p auction.Purchase) purchaseDTO {
	return purchaseDTO{
		ID:               p.ID,
		GiocatoreID:      p.PlayerID,
		SquadraID:        p.TeamID,
		Prezzo:           p.Price,
		DataAcquisto:     p.PurchasedAt,
		GiocatoreNome:    p.PlayerName,
		GiocatoreSquadra: p.PlayerClub,
		GiocatoreRuolo:   p.PlayerRole,
		SquadraNome:      p.TeamName,
	}
}

type assignDTO struct {
	Acquisto        purchaseDTO `json:"acquisto"`
	BudgetResiduo   int64       `json:"budget_residuo"`
	WishlistRimosso bool        `json:"wishlist_rimosso"`
}

func toAssignDTO(r auction.AssignResult) assignDTO {
	return assignDTO{
		Acquisto:        toPurchaseDTO(r.Purchase),
		BudgetResiduo:   r.RemainingBudget,
		WishlistRimosso: r.WishlistRemoved,
	}
}

type releaseDTO struct {
	GiocatoreID      string `json:"giocatore_id"`
	SquadraID        int64  `json:"squadra_id"`
	PrezzoRimborsato int64  `json:"prezzo_rimborsato"`
	BudgetResiduo    int64  `json:"budget_residuo"`
}

func toReleaseDTO(r auction.ReleaseResult) releaseDTO {
	return releaseDTO{
		GiocatoreID:      r.PlayerID,
		SquadraID:        r.TeamID,
		PrezzoRimborsato: r.RefundedPrice,
		BudgetResiduo:    r.RemainingBudget,
	}
}

type quotationDTO struct {
	ID             int64     `json:"id"`
	GiocatoreID    string    `json:"giocatore_id"`
	Gazzetta       *float64  `json:"gazzetta"`
	Fascia         *string   `json:"fascia"`
	Consiglio      *string   `json:"consiglio"`
	Voto           *float64  `json:"voto"`
	MiaValutazione *int      `json:"mia_valutazione"`
	Note           *string   `json:"note"`
	Preferito      bool      `json:"preferito"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toQuotationDTO(q quotation.Quotation) quotationDTO {
	return quotationDTO{
		ID:             q.ID,
		GiocatoreID:    q.PlayerID,
		Gazzetta:       q.Gazzetta,
		Fascia:         q.Fascia,
		Consiglio:      q.Consiglio,
		Voto:           q.Voto,
		MiaValutazione: q.MyRating,
		Note:           q.Note,
		Preferito:      q.Favourite,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

type wishlistItemDTO struct {
	ID          int64     `json:"id"`
	GiocatoreID string    `json:"giocatore_id"`
	CreatedAt   time.Time `json:"created_at"`
	Nome        string    `json:"nome"`
	Squadra     string    `json:"squadra"`
	Ruolo       string    `json:"ruolo"`
	Status      string    `json:"status"`
	Gazzetta    *float64  `json:"gazzetta"`
}

func toWishlistItemDTO(item wishlist.Item) wishlistItemDTO {
	return wishlistItemDTO{
		ID:          item.ID,
		GiocatoreID: item.PlayerID,
		CreatedAt:   item.CreatedAt,
		Nome:        item.PlayerName,
		Squadra:     item.PlayerClub,
		Ruolo:       item.PlayerRole,
		Status:      item.PlayerStatus,
		Gazzetta:    item.Gazzetta,
	}
}

type wishlistAddDTO struct {
	ID          int64     `json:"id"`
	GiocatoreID string    `json:"giocatore_id"`
	CreatedAt   time.Time `json:"created_at"`
	Added       bool      `json:"added"`
}

type wishlistMembershipDTO struct {
	GiocatoreID string `json:"giocatore_id"`
	InWishlist  bool   `json:"in_wishlist"`
}

// Import reports keep the camelCase keys the frontend reads.
type importRowDTO struct {
	Row           int    `json:"row"`
	PlayerID      string `json:"playerId"`
	Nome          string `json:"nome"`
	Squadra       string `json:"squadra"`
	Action        string `json:"action"`
	WishlistAdded bool   `json:"wishlistAdded,omitempty"`
}

type importErrorDTO struct {
	Row     int    `json:"row"`
	Nome    string `json:"nome,omitempty"`
	Squadra string `json:"squadra,omitempty"`
	Error   string `json:"error"`
}

type importSummaryDTO struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type importReportDTO struct {
	RunID   string           `json:"runId"`
	Results []importRowDTO   `json:"results"`
	Errors  []importErrorDTO `json:"errors"`
	Summary importSummaryDTO `json:"summary"`
}

func toImportReportDTO(r usecase.ImportReport) importReportDTO {
	out := importReportDTO{
		RunID:   r.RunID,
		Results: make([]importRowDTO, 0, len(r.Results)),
		Errors:  make([]importErrorDTO, 0, len(r.Errors)),
		Summary: importSummaryDTO{
			Total:      r.Summary.Total,
			Successful: r.Summary.Successful,
			Failed:     r.Summary.Failed,
		},
	}
	for _, row := range r.Results {
		out.Results = append(out.Results, importRowDTO{
			Row:           row.Row,
			PlayerID:      row.PlayerID,
			Nome:          row.Name,
			Squadra:       row.Club,
			Action:        row.Action,
			WishlistAdded: row.WishlistAdded,
		})
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, importErrorDTO{
			Row:     e.Row,
			Nome:    e.Name,
			Squadra: e.Club,
			Error:   e.Error,
		})
	}
	return out
}

type roleCountDTO struct {
	Ruolo  string `json:"ruolo"`
	Numero int    `json:"numero"`
}

type teamCountDTO struct {
	SquadraID int64  `json:"squadra_id"`
	Nome      string `json:"nome"`
	Numero    int    `json:"numero"`
}

type generalStatsDTO struct {
	TotaleAcquisti       int            `json:"totale_acquisti"`
	SpesaTotale          int64          `json:"spesa_totale"`
	PrezzoMedio          float64        `json:"prezzo_medio"`
	GiocatoriTotali      int            `json:"giocatori_totali"`
	GiocatoriDisponibili int            `json:"giocatori_disponibili"`
	GiocatoriAcquistati  int            `json:"giocatori_acquistati"`
	GiocatoriVenduti     int            `json:"giocatori_venduti"`
	PerRuolo             []roleCountDTO `json:"per_ruolo"`
	PerSquadra           []teamCountDTO `json:"per_squadra"`
}

func toGeneralStatsDTO(g statistics.General) generalStatsDTO {
	out := generalStatsDTO{
		TotaleAcquisti:       g.TotalPurchases,
		SpesaTotale:          g.TotalSpent,
		PrezzoMedio:          g.AveragePrice,
		GiocatoriTotali:      g.TotalPlayers,
		GiocatoriDisponibili: g.AvailablePlayers,
		GiocatoriAcquistati:  g.PurchasedPlayers,
		GiocatoriVenduti:     g.SoldPlayers,
		PerRuolo:             make([]roleCountDTO, 0, len(g.ByRole)),
		PerSquadra:           make([]teamCountDTO, 0, len(g.ByTeam)),
	}
	for _, rc := range g.ByRole {
		out.PerRuolo = append(out.PerRuolo, roleCountDTO{Ruolo: string(rc.Role), Numero: rc.Count})
	}
	for _, tc := range g.ByTeam {
		out.PerSquadra = append(out.PerSquadra, teamCountDTO{SquadraID: tc.TeamID, Nome: tc.TeamName, Numero: tc.Count})
	}
	return out
}

type purchaseFactDTO struct {
	AcquistoID   int64     `json:"acquisto_id"`
	GiocatoreID  string    `json:"giocatore_id"`
	Nome         string    `json:"nome"`
	Squadra      string    `json:"squadra"`
	SquadraID    int64     `json:"squadra_id"`
	SquadraNome  string    `json:"squadra_nome"`
	Prezzo       int64     `json:"prezzo"`
	DataAcquisto time.Time `json:"data_acquisto"`
}

type roleTopDTO struct {
	Ruolo     string            `json:"ruolo"`
	Giocatori []purchaseFactDTO `json:"giocatori"`
}

type roleSummaryDTO struct {
	Ruolo       string  `json:"ruolo"`
	Numero      int     `json:"numero"`
	SpesaTotale int64   `json:"spesa_totale"`
	PrezzoMedio float64 `json:"prezzo_medio"`
}

type roleSpendDTO struct {
	Ruolo  string `json:"ruolo"`
	Numero int    `json:"numero"`
	Spesa  int64  `json:"spesa"`
}

type teamSummaryDTO struct {
	SquadraID       int64          `json:"squadra_id"`
	Nome            string         `json:"nome"`
	Budget          int64          `json:"budget"`
	SpesaTotale     int64          `json:"spesa_totale"`
	BudgetResiduo   int64          `json:"budget_residuo"`
	NumeroGiocatori int            `json:"numero_giocatori"`
	Ruoli           []roleSpendDTO `json:"ruoli"`
}

type leagueStatsDTO struct {
	TopPerRuolo []roleTopDTO     `json:"top_per_ruolo"`
	Ruoli       []roleSummaryDTO `json:"ruoli"`
	Squadre     []teamSummaryDTO `json:"squadre"`
}

func toRoleSpendDTOs(items []statistics.RoleSpend) []roleSpendDTO {
	out := make([]roleSpendDTO, 0, len(items))
	for _, rs := range items {
		out = append(out, roleSpendDTO{Ruolo: string(rs.Role), Numero: rs.Count, Spesa: rs.Spent})
	}
	return out
}

func toLeagueStatsDTO(l statistics.League) leagueStatsDTO {
	out := leagueStatsDTO{
		TopPerRuolo: make([]roleTopDTO, 0, len(l.TopByRole)),
		Ruoli:       make([]roleSummaryDTO, 0, len(l.Roles)),
		Squadre:     make([]teamSummaryDTO, 0, len(l.Teams)),
	}
	for _, top := range l.TopByRole {
		players := make([]purchaseFactDTO, 0, len(top.Players))
		for _, p := range top.Players {
			players = append(players, purchaseFactDTO{
				AcquistoID:   p.PurchaseID,
				GiocatoreID:  p.PlayerID,
				Nome:         p.PlayerName,
				Squadra:      p.PlayerClub,
				SquadraID:    p.TeamID,
				SquadraNome:  p.TeamName,
				Prezzo:       p.Price,
				DataAcquisto: p.PurchasedAt,
			})
		}
		out.TopPerRuolo = append(out.TopPerRuolo, roleTopDTO{Ruolo: string(top.Role), Giocatori: players})
	}
	for _, rs := range l.Roles {
		out.Ruoli = append(out.Ruoli, roleSummaryDTO{
			Ruolo:       string(rs.Role),
			Numero:      rs.Count,
			SpesaTotale: rs.TotalSpent,
			PrezzoMedio: rs.AveragePrice,
		})
	}
	for _, ts := range l.Teams {
		out.Squadre = append(out.Squadre, teamSummaryDTO{
			SquadraID:       ts.TeamID,
			Nome:            ts.TeamName,
			Budget:          ts.Budget,
			SpesaTotale:     ts.TotalSpent,
			BudgetResiduo:   ts.RemainingBudget,
			NumeroGiocatori: ts.PlayerCount,
			Ruoli:           toRoleSpendDTOs(ts.Roles),
		})
	}
	return out
}

type teamComparisonDTO struct {
	SquadraID       int64          `json:"squadra_id"`
	Nome            string         `json:"nome"`
	Budget          int64          `json:"budget"`
	SpesaTotale     int64          `json:"spesa_totale"`
	BudgetResiduo   int64          `json:"budget_residuo"`
	NumeroGiocatori int            `json:"numero_giocatori"`
	PrezzoMedio     float64        `json:"prezzo_medio"`
	Efficienza      float64        `json:"efficienza"`
	Ruoli           []roleSpendDTO `json:"ruoli"`
}

func toTeamComparisonDTOs(items []statistics.TeamComparison) []teamComparisonDTO {
	out := make([]teamComparisonDTO, 0, len(items))
	for _, c := range items {
		out = append(out, teamComparisonDTO{
			SquadraID:       c.TeamID,
			Nome:            c.TeamName,
			Budget:          c.Budget,
			SpesaTotale:     c.TotalSpent,
			BudgetResiduo:   c.RemainingBudget,
			NumeroGiocatori: c.PlayerCount,
			PrezzoMedio:     c.AveragePrice,
			Efficienza:      c.Efficiency,
			Ruoli:           toRoleSpendDTOs(c.Roles),
		})
	}
	return out
}

type restoreDTO struct {
	Righe           map[string]int `json:"righe"`
	SezioniIgnorate []string       `json:"sezioni_ignorate,omitempty"`
}

func toRestoreDTO(s backup.RestoreSummary) restoreDTO {
	return restoreDTO{Righe: s.Rows, SezioniIgnorate: s.Skipped}
}
