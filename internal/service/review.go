// Package service implements the business rules of the review desk on top
// of the repository contracts.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/event"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/logger"
)

// CreateReviewInput carries the fields needed to record a new review.
type CreateReviewInput struct {
	CustomerName string  `json:"customerName" validate:"required,max=200"`
	Rating       int     `json:"rating" validate:"required,gte=1,lte=5"`
	Content      string  `json:"content" validate:"required"`
	Platform     string  `json:"platform"`
	Category     *string `json:"category"`
	SourceID     *string `json:"sourceId"`
}

// SubmitResponseInput carries a response submission. Status selects the
// transition target: draft keeps the response private, responded publishes
// it. IsAIGenerated marks responses that came out of the suggestion
// engine, so the history keeps their provenance.
type SubmitResponseInput struct {
	Response      string `json:"response" validate:"required"`
	Status        string `json:"status" validate:"required"`
	Tone          string `json:"tone"`
	IsAIGenerated bool   `json:"isAiGenerated"`
}

// ReviewService manages reviews and the response lifecycle.
type ReviewService struct {
	reviews   repository.ReviewRepository
	responses repository.ResponseRepository
	drafts    repository.DraftStore
	publisher event.Publisher
	logger    *slog.Logger
}

func NewReviewService(
	reviews repository.ReviewRepository,
	responses repository.ResponseRepository,
	drafts repository.DraftStore,
	publisher event.Publisher,
	l *slog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		responses: responses,
		drafts:    drafts,
		publisher: publisher,
		logger:    l,
	}
}

// Create records a new review in pending status.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Rating:       input.Rating,
		Content:      input.Content,
		DatePosted:   time.Now().UTC(),
		Status:       domain.StatusPending,
		Platform:     input.Platform,
		Category:     input.Category,
		SourceID:     input.SourceID,
	}
	review.CustomerInitials = review.Initials()
	if review.Platform == "" {
		review.Platform = "google"
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.publisher.ReviewCreated(ctx, review); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish review.created",
			slog.Int64("review_id", review.ID), slog.String("error", err.Error()))
	}
	return review, nil
}

// Get returns a review joined with its response history. Responses is
// always non-nil.
func (s *ReviewService) Get(ctx context.Context, id int64) (*domain.ReviewWithResponses, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withResponses(ctx, review)
}

// List returns reviews matching the filter, newest first, each joined
// with its response history.
func (s *ReviewService) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.ReviewWithResponses, error) {
	if filter.Rating != nil && (*filter.Rating < 1 || *filter.Rating > 5) {
		return nil, apperrors.InvalidInput("rating filter must be between 1 and 5")
	}

	reviews, err := s.reviews.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	result := make([]domain.ReviewWithResponses, 0, len(reviews))
	for i := range reviews {
		joined, err := s.withResponses(ctx, &reviews[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *joined)
	}
	return result, nil
}

// SubmitResponse attaches a response to a review and moves its status.
// Validation happens before any write: an empty response, an unknown
// target status, or a disallowed transition leaves the review untouched.
// The response date is set only when the response is published.
func (s *ReviewService) SubmitResponse(ctx context.Context, id int64, input SubmitResponseInput) (*domain.Review, error) {
	response := strings.TrimSpace(input.Response)
	if response == "" {
		return nil, apperrors.InvalidInput("response text must not be empty")
	}
	if input.Status != domain.StatusDraft && input.Status != domain.StatusResponded {
		return nil, apperrors.InvalidInput(
			fmt.Sprintf("status must be %q or %q", domain.StatusDraft, domain.StatusResponded))
	}

	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionTo(review.Status, input.Status) {
		return nil, apperrors.InvalidInput(
			fmt.Sprintf("cannot move review from %q to %q", review.Status, input.Status))
	}

	update := repository.ResponseUpdate{Response: response, Status: input.Status}
	if input.Status == domain.StatusResponded {
		now := time.Now().UTC()
		update.ResponseDate = &now
	}

	updated, err := s.reviews.UpdateResponse(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update review response: %w", err)
	}

	if input.Status == domain.StatusResponded {
		tone := input.Tone
		if tone == "" {
			tone = domain.ToneProfessional
		}
		record := &domain.Response{
			ReviewID:      id,
			Content:       response,
			Tone:          tone,
			IsAIGenerated: input.IsAIGenerated,
			SentAt:        update.ResponseDate,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.responses.Create(ctx, record); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "failed to record response history",
				slog.Int64("review_id", id), slog.String("error", err.Error()))
		}

		if err := s.drafts.Delete(ctx, id); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "failed to clear draft",
				slog.Int64("review_id", id), slog.String("error", err.Error()))
		}

		if err := s.publisher.ReviewResponded(ctx, updated, tone); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "failed to publish review.responded",
				slog.Int64("review_id", id), slog.String("error", err.Error()))
		}
	}

	return updated, nil
}

func (s *ReviewService) withResponses(ctx context.Context, review *domain.Review) (*domain.ReviewWithResponses, error) {
	responses, err := s.responses.ListByReview(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("list responses for review %d: %w", review.ID, err)
	}
	if responses == nil {
		responses = []domain.Response{}
	}
	return &domain.ReviewWithResponses{Review: *review, Responses: responses}, nil
}
