package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

func TestDraftService_Save(t *testing.T) {
	reviews := new(mockReviewRepo)
	drafts := new(mockDraftStore)
	svc := NewDraftService(drafts, reviews)

	t.Run("rejects blank content", func(t *testing.T) {
		_, err := svc.Save(context.Background(), 1, SaveDraftInput{Content: "  "})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		drafts.AssertNotCalled(t, "Save")
	})

	t.Run("rejects missing review", func(t *testing.T) {
		reviews.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.NotFound("review", 42)).Once()

		_, err := svc.Save(context.Background(), 42, SaveDraftInput{Content: "draft text"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("saves for existing review", func(t *testing.T) {
		reviews.On("GetByID", mock.Anything, int64(1)).Return(pendingReview(1), nil).Once()
		drafts.On("Save", mock.Anything, mock.MatchedBy(func(d repository.Draft) bool {
			return d.ReviewID == 1 && d.Content == "draft text" && !d.SavedAt.IsZero()
		})).Return(nil).Once()

		draft, err := svc.Save(context.Background(), 1, SaveDraftInput{Content: "draft text", Tone: "friendly"})
		require.NoError(t, err)
		assert.Equal(t, "friendly", draft.Tone)
		drafts.AssertExpectations(t)
	})
}

func TestResponseService_Create_RequiresExistingReview(t *testing.T) {
	reviews := new(mockReviewRepo)
	responses := new(mockResponseRepo)
	svc := NewResponseService(responses, reviews)

	reviews.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.NotFound("review", 42))

	_, err := svc.Create(context.Background(), CreateResponseInput{ReviewID: 42, Content: "orphan"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	responses.AssertNotCalled(t, "Create")
}

func TestResponseService_Create_DefaultsTone(t *testing.T) {
	reviews := new(mockReviewRepo)
	responses := new(mockResponseRepo)
	svc := NewResponseService(responses, reviews)

	reviews.On("GetByID", mock.Anything, int64(1)).Return(pendingReview(1), nil)
	responses.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Response) bool {
		return r.Tone == domain.ToneProfessional
	})).Return(nil)

	got, err := svc.Create(context.Background(), CreateResponseInput{ReviewID: 1, Content: "Thanks!"})
	require.NoError(t, err)
	assert.Equal(t, domain.ToneProfessional, got.Tone)
}
