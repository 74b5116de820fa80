package service

import (
	"context"
	"strings"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// SaveDraftInput carries an in-progress response draft.
type SaveDraftInput struct {
	Content string `json:"content" validate:"required"`
	Tone    string `json:"tone" validate:"omitempty,oneof=professional friendly apologetic grateful"`
}

// DraftService caches in-progress response drafts so composing survives a
// page reload. Drafts must belong to an existing review.
type DraftService struct {
	drafts  repository.DraftStore
	reviews repository.ReviewRepository
}

func NewDraftService(drafts repository.DraftStore, reviews repository.ReviewRepository) *DraftService {
	return &DraftService{drafts: drafts, reviews: reviews}
}

func (s *DraftService) Save(ctx context.Context, reviewID int64, input SaveDraftInput) (*repository.Draft, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.InvalidInput("draft content must not be empty")
	}
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}

	draft := repository.Draft{
		ReviewID: reviewID,
		Content:  input.Content,
		Tone:     input.Tone,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, apperrors.Wrap(err, "save draft")
	}
	return &draft, nil
}

func (s *DraftService) Get(ctx context.Context, reviewID int64) (*repository.Draft, error) {
	return s.drafts.Get(ctx, reviewID)
}

func (s *DraftService) Delete(ctx context.Context, reviewID int64) error {
	return s.drafts.Delete(ctx, reviewID)
}
