package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	withWishlist, err := queryBool(r, "withWishlist")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	input := usecase.ListPlayersInput{
		Role:   query.Get("ruolo"),
		Club:   query.Get("squadra"),
		Status: query.Get("status"),
		Search: query.Get("q"),
	}
	if raw := strings.TrimSpace(query.Get("fantasquadra")); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || teamID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: fantasquadra must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		input.TeamID = &teamID
	}

	items, err := h.playerService.ListPlayers(ctx, input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTOs(items, withWishlist))
}

// GetPlayerByKey serves both /api/giocatori/{ruolo} and /api/giocatori/{id}:
// a key naming a role lists that role, anything else is a player id.
func (h *Handler) GetPlayerByKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByKey")
	defer span.End()

	key := strings.TrimSpace(r.PathValue("key"))
	if role, ok := player.ParseRole(key); ok {
		items, err := h.playerService.ListPlayersByRole(ctx, role)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, toPlayerDTOs(items, true))
		return
	}

	item, err := h.playerService.GetPlayer(ctx, key)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(item, true))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name: req.Nome,
		Club: req.Squadra,
		Role: req.Ruolo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "nome", req.Nome, "squadra", req.Squadra, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "Giocatore creato", toPlayerDTO(item, false))
}

func (h *Handler) ExportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayers")
	defer span.End()

	var buf bytes.Buffer
	count, err := h.playerService.ExportCSV(ctx, &buf)
	if err != nil {
		h.logger.ErrorContext(ctx, "export players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", usecase.ExportFileName(time.Now())))
	w.Header().Set("X-Total-Count", strconv.Itoa(count))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) UploadPlayersCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadPlayersCSV")
	defer span.End()

	file, header, err := h.openUpload(w, r, "csv")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	report, err := h.importService.ImportPlayers(ctx, file)
	if err != nil {
		h.logger.WarnContext(ctx, "player import rejected", "file", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, importMessage(report), toImportReportDTO(report))
}

func (h *Handler) UpdatePlayerNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerNotes")
	defer span.End()

	var req updateNotesRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.quotationService.UpdateNotes(ctx, usecase.UpdateNotesInput{
		PlayerID:  r.PathValue("id"),
		Note:      req.Note,
		Consiglio: req.Consiglio,
		Fascia:    req.Fascia,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Note aggiornate", toQuotationDTO(item))
}

func (h *Handler) UpdatePlayerRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerRating")
	defer span.End()

	var req updateRatingRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.quotationService.UpdateRating(ctx, r.PathValue("id"), req.MiaValutazione)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Valutazione aggiornata", toQuotationDTO(item))
}

// SetPlayerOwner assigns the player when squadraId is set and releases it otherwise.
func (h *Handler) SetPlayerOwner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerOwner")
	defer span.End()

	var req setOwnerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auctionService.SetOwner(ctx, usecase.SetOwnerInput{
		PlayerID: r.PathValue("id"),
		TeamID:   req.SquadraID,
		Price:    req.Prezzo,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if result.Assigned != nil {
		writeMessage(ctx, w, http.StatusOK, "Giocatore assegnato", toAssignDTO(*result.Assigned))
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Giocatore svincolato", toReleaseDTO(*result.Released))
}

func importMessage(report usecase.ImportReport) string {
	return fmt.Sprintf("Import completato: %d righe elaborate, %d errori", report.Summary.Successful, report.Summary.Failed)
}
