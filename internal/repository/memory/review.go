package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type reviewRepo struct {
	store *Store
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextReviewID++
	review.ID = r.store.nextReviewID
	if review.Status == "" {
		review.Status = domain.StatusPending
	}
	if review.DatePosted.IsZero() {
		review.DatePosted = time.Now().UTC()
	}
	r.store.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, apperrors.NotFound("review", id)
	}
	return &review, nil
}

func (r *reviewRepo) GetBySourceID(ctx context.Context, sourceID string) (*domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, review := range r.store.reviews {
		if review.SourceID != nil && *review.SourceID == sourceID {
			return &review, nil
		}
	}
	return nil, apperrors.NotFoundMsg("review with source id " + sourceID + " not found")
}

// List returns matching reviews sorted by date posted, newest first.
func (r *reviewRepo) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cutoff := dateCutoff(filter.DateRange, time.Now().UTC())
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	reviews := make([]domain.Review, 0, len(r.store.reviews))
	for _, review := range r.store.reviews {
		if filter.Rating != nil && review.Rating != *filter.Rating {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && review.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(review.CustomerName), search) &&
			!strings.Contains(strings.ToLower(review.Content), search) {
			continue
		}
		if review.DatePosted.Before(cutoff) {
			continue
		}
		reviews = append(reviews, review)
	}

	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].DatePosted.Equal(reviews[j].DatePosted) {
			return reviews[i].ID > reviews[j].ID
		}
		return reviews[i].DatePosted.After(reviews[j].DatePosted)
	})
	return reviews, nil
}

func (r *reviewRepo) UpdateResponse(ctx context.Context, id int64, update repository.ResponseUpdate) (*domain.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, apperrors.NotFound("review", id)
	}

	response := update.Response
	review.Response = &response
	review.Status = update.Status
	review.ResponseDate = update.ResponseDate
	r.store.reviews[id] = review
	return &review, nil
}

// dateCutoff resolves a named range to its inclusive lower bound. Unknown
// ranges match all dates.
func dateCutoff(dateRange string, now time.Time) time.Time {
	switch dateRange {
	case "last-7-days":
		return now.AddDate(0, 0, -7)
	case "last-30-days":
		return now.AddDate(0, 0, -30)
	case "last-3-months":
		return now.AddDate(0, 0, -90)
	default:
		return time.Time{}
	}
}
