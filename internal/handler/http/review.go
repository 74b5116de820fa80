// Package http exposes the review desk over a chi-routed REST API.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
	"github.com/utafrali/ReviewDeskGo/internal/service"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
	"github.com/utafrali/ReviewDeskGo/pkg/validator"
)

// ReviewHandler serves review listing, creation, and response submission.
type ReviewHandler struct {
	reviews *service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(reviews *service.ReviewService, l *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: l}
}

func (h *ReviewHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/response", h.SubmitResponse)
}

// List handles GET /reviews with rating, status, search, and dateRange
// query filters.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	reviews, err := h.reviews.List(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	review, err := h.reviews.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.reviews.Create(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// SubmitResponse handles PATCH /reviews/{id}/response.
func (h *ReviewHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.SubmitResponseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.reviews.SubmitResponse(r.Context(), id, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

func filterFromQuery(r *http.Request) (repository.ReviewFilter, error) {
	q := r.URL.Query()
	filter := repository.ReviewFilter{
		Status:    q.Get("status"),
		Search:    q.Get("search"),
		DateRange: q.Get("dateRange"),
	}

	if raw := q.Get("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.InvalidInput("rating must be a number")
		}
		filter.Rating = &rating
	}
	return filter, nil
}
