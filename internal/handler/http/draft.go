package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/ReviewDeskGo/internal/service"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
	"github.com/utafrali/ReviewDeskGo/pkg/validator"
)

// DraftHandler serves in-progress response drafts.
type DraftHandler struct {
	drafts *service.DraftService
	logger *slog.Logger
}

func NewDraftHandler(drafts *service.DraftService, l *slog.Logger) *DraftHandler {
	return &DraftHandler{drafts: drafts, logger: l}
}

// Save handles PUT /reviews/{id}/draft.
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.SaveDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	draft, err := h.drafts.Save(r.Context(), id, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: draft})
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	draft, err := h.drafts.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: draft})
}

func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.drafts.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
