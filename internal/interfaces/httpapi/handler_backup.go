package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
)

func (h *Handler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DownloadBackup")
	defer span.End()

	out, err := h.backupService.CreateBackup(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "create backup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Content)
}

// RestoreBackup replaces the whole database with the uploaded file; nothing changes on failure.
func (h *Handler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreBackup")
	defer span.End()

	file, header, err := h.openUpload(w, r, "backup")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	summary, err := h.backupService.Restore(ctx, file)
	if err != nil {
		h.logger.WarnContext(ctx, "restore rejected", "file", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Backup ripristinato", toRestoreDTO(summary))
}
