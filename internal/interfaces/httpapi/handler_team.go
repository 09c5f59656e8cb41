package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toTeamDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailsDTO{
		teamDTO:   toTeamDTO(details.Team),
		Giocatori: toPlayerDTOs(details.Players, false),
	})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:   req.Nome,
		Owner:  req.Proprietario,
		Budget: req.Budget,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "nome", req.Nome, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "Squadra creata", toTeamDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateTeam(ctx, usecase.UpdateTeamInput{
		ID:     teamID,
		Name:   req.Nome,
		Owner:  req.Proprietario,
		Budget: req.Budget,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Squadra aggiornata", toTeamDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.DeleteTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Squadra eliminata", toTeamDeleteDTO(result))
}

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayer")
	defer span.End()

	var req assignRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auctionService.Assign(ctx, usecase.AssignInput{
		PlayerID: req.GiocatoreID,
		TeamID:   req.SquadraID,
		Price:    req.Prezzo,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Giocatore assegnato", toAssignDTO(result))
}

func (h *Handler) ReleasePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReleasePlayer")
	defer span.End()

	var req releaseRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auctionService.Release(ctx, usecase.ReleaseInput{
		PlayerID: req.GiocatoreID,
		TeamID:   req.SquadraID,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Giocatore svincolato", toReleaseDTO(result))
}

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPurchases")
	defer span.End()

	items, err := h.auctionService.ListPurchases(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]purchaseDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toPurchaseDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
