package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/giocatori", handler.ListPlayers)
	mux.HandleFunc("POST /api/giocatori", handler.CreatePlayer)
	mux.HandleFunc("GET /api/giocatori/export", handler.ExportPlayers)
	mux.HandleFunc("POST /api/giocatori/upload-csv", handler.UploadPlayersCSV)
	mux.HandleFunc("GET /api/giocatori/{key}", handler.GetPlayerByKey)
	mux.HandleFunc("PATCH /api/giocatori/{id}/note", handler.UpdatePlayerNotes)
	mux.HandleFunc("PATCH /api/giocatori/{id}/valutazione", handler.UpdatePlayerRating)
	mux.HandleFunc("PATCH /api/giocatori/{id}/fantasquadra", handler.SetPlayerOwner)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/squadre", handler.ListTeams)
	mux.HandleFunc("POST /api/squadre", handler.CreateTeam)
	mux.HandleFunc("GET /api/squadre/{id}", handler.GetTeam)
	mux.HandleFunc("PUT /api/squadre/{id}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/squadre/{id}", handler.DeleteTeam)
	mux.HandleFunc("POST /api/squadre/assegna-giocatore", handler.AssignPlayer)
	mux.HandleFunc("POST /api/squadre/svincola-giocatore", handler.ReleasePlayer)
	mux.HandleFunc("GET /api/squadre/wishlist", handler.ListWishlist)
	mux.HandleFunc("POST /api/squadre/wishlist", handler.AddToWishlist)
	mux.HandleFunc("GET /api/squadre/wishlist/{giocatoreId}", handler.GetWishlistMembership)
	mux.HandleFunc("DELETE /api/squadre/wishlist/{giocatoreId}", handler.RemoveFromWishlist)
	mux.HandleFunc("GET /api/acquisti", handler.ListPurchases)
}

func registerQuotationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/quotazioni", handler.ListQuotations)
	mux.HandleFunc("GET /api/quotazioni/{giocatoreId}", handler.GetQuotation)
	mux.HandleFunc("POST /api/quotazioni/upload-csv", handler.UploadQuotationsCSV)
}

func registerStatisticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/statistiche", handler.GetGeneralStatistics)
	mux.HandleFunc("GET /api/statistiche/lega", handler.GetLeagueStatistics)
	mux.HandleFunc("GET /api/statistiche/comparative", handler.GetComparativeStatistics)
}

func registerBackupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/backup/download", handler.DownloadBackup)
	mux.HandleFunc("POST /api/backup/restore", handler.RestoreBackup)
}
