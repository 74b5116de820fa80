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

// SuggestionHandler serves AI response drafting.
type SuggestionHandler struct {
	suggestions *service.SuggestionService
	logger      *slog.Logger
}

func NewSuggestionHandler(suggestions *service.SuggestionService, l *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions, logger: l}
}

// Generate handles POST /reviews/{id}/suggestions.
func (h *SuggestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	suggestions, err := h.suggestions.Generate(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]any{"suggestions": suggestions},
	})
}

type improveRequest struct {
	Response      string `json:"response" validate:"required"`
	ReviewContent string `json:"reviewContent" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// Improve handles POST /ai/improve-response.
func (h *SuggestionHandler) Improve(w http.ResponseWriter, r *http.Request) {
	var input improveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	improved, err := h.suggestions.Improve(r.Context(), input.Response, input.ReviewContent, input.Rating)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"improvedResponse": improved},
	})
}
