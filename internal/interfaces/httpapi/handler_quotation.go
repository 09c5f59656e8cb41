package httpapi

import (
	"net/http"
)

func (h *Handler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListQuotations")
	defer span.End()

	items, err := h.quotationService.ListQuotations(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]quotationDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toQuotationDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetQuotation")
	defer span.End()

	item, err := h.quotationService.GetQuotation(ctx, r.PathValue("giocatoreId"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toQuotationDTO(item))
}

func (h *Handler) UploadQuotationsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadQuotationsCSV")
	defer span.End()

	file, header, err := h.openUpload(w, r, "csv")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	report, err := h.importService.ImportQuotations(ctx, file)
	if err != nil {
		h.logger.WarnContext(ctx, "quotation import rejected", "file", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, importMessage(report), toImportReportDTO(report))
}
