package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/ReviewDeskGo/internal/service"
	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
)

// ExportHandler streams review exports.
type ExportHandler struct {
	export *service.ExportService
	logger *slog.Logger
}

func NewExportHandler(export *service.ExportService, l *slog.Logger) *ExportHandler {
	return &ExportHandler{export: export, logger: l}
}

// Reviews handles GET /export/reviews, honoring the same query filters as
// the review listing.
func (h *ExportHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="reviews-export.csv"`)

	if err := h.export.WriteCSV(r.Context(), w, filter); err != nil {
		// Headers may already be sent; log instead of writing a JSON error.
		h.logger.ErrorContext(r.Context(), "csv export failed", slog.String("error", err.Error()))
	}
}
