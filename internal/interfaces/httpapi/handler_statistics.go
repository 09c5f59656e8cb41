package httpapi

import (
	"net/http"
)

func (h *Handler) GetGeneralStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGeneralStatistics")
	defer span.End()

	stats, err := h.statisticsService.General(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGeneralStatsDTO(stats))
}

func (h *Handler) GetLeagueStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStatistics")
	defer span.End()

	topN, err := queryInt(r, "top")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statisticsService.League(ctx, topN)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueStatsDTO(stats))
}

func (h *Handler) GetComparativeStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetComparativeStatistics")
	defer span.End()

	query := r.URL.Query()
	items, err := h.statisticsService.Comparative(ctx, query.Get("sortBy"), query.Get("order"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamComparisonDTOs(items))
}
