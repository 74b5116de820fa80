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

// ResponseHandler serves response history records.
type ResponseHandler struct {
	responses *service.ResponseService
	logger    *slog.Logger
}

func NewResponseHandler(responses *service.ResponseService, l *slog.Logger) *ResponseHandler {
	return &ResponseHandler{responses: responses, logger: l}
}

func (h *ResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateResponseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	response, err := h.responses.Create(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: response})
}

// ListByReview handles GET /reviews/{id}/responses.
func (h *ResponseHandler) ListByReview(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	responses, err := h.responses.ListByReview(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: responses})
}
