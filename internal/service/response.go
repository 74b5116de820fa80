package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// CreateResponseInput carries a standalone response history record.
type CreateResponseInput struct {
	ReviewID      int64      `json:"reviewId" validate:"required,gt=0"`
	Content       string     `json:"content" validate:"required"`
	Tone          string     `json:"tone" validate:"omitempty,oneof=professional friendly apologetic grateful"`
	IsAIGenerated bool       `json:"isAiGenerated"`
	SentAt        *time.Time `json:"sentAt"`
}

// ResponseService manages response history records. Records must point at
// an existing review.
type ResponseService struct {
	responses repository.ResponseRepository
	reviews   repository.ReviewRepository
}

func NewResponseService(responses repository.ResponseRepository, reviews repository.ReviewRepository) *ResponseService {
	return &ResponseService{responses: responses, reviews: reviews}
}

func (s *ResponseService) Create(ctx context.Context, input CreateResponseInput) (*domain.Response, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.InvalidInput("response content must not be empty")
	}

	if _, err := s.reviews.GetByID(ctx, input.ReviewID); err != nil {
		return nil, err
	}

	tone := input.Tone
	if tone == "" {
		tone = domain.ToneProfessional
	}

	response := &domain.Response{
		ReviewID:      input.ReviewID,
		Content:       input.Content,
		Tone:          tone,
		IsAIGenerated: input.IsAIGenerated,
		SentAt:        input.SentAt,
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("create response: %w", err)
	}
	return response, nil
}

func (s *ResponseService) ListByReview(ctx context.Context, reviewID int64) ([]domain.Response, error) {
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}

	responses, err := s.responses.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	if responses == nil {
		responses = []domain.Response{}
	}
	return responses, nil
}
