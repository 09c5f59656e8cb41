package httpapi

import (
	"net/http"
)

func (h *Handler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWishlist")
	defer span.End()

	items, err := h.wishlistService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]wishlistItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toWishlistItemDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddToWishlist")
	defer span.End()

	var req wishlistAddRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, added, err := h.wishlistService.Add(ctx, req.GiocatoreID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	status, message := http.StatusCreated, "Giocatore aggiunto alla wishlist"
	if !added {
		status, message = http.StatusOK, "Giocatore già nella wishlist"
	}
	writeMessage(ctx, w, status, message, wishlistAddDTO{
		ID:          entry.ID,
		GiocatoreID: entry.PlayerID,
		CreatedAt:   entry.CreatedAt,
		Added:       added,
	})
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFromWishlist")
	defer span.End()

	playerID := r.PathValue("giocatoreId")
	if err := h.wishlistService.Remove(ctx, playerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Giocatore rimosso dalla wishlist", map[string]string{"giocatore_id": playerID})
}

func (h *Handler) GetWishlistMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWishlistMembership")
	defer span.End()

	playerID := r.PathValue("giocatoreId")
	member, err := h.wishlistService.IsMember(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wishlistMembershipDTO{GiocatoreID: playerID, InWishlist: member})
}
