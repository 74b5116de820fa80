package memory

import (
	"context"
	"sort"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
)

type responseRepo struct {
	store *Store
}

func (r *responseRepo) Create(ctx context.Context, response *domain.Response) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextResponseID++
	response.ID = r.store.nextResponseID
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}
	r.store.responses[response.ID] = *response
	return nil
}

// ListByReview returns the response history for a review in the order the
// replies were recorded, oldest first.
func (r *responseRepo) ListByReview(ctx context.Context, reviewID int64) ([]domain.Response, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	responses := make([]domain.Response, 0)
	for _, response := range r.store.responses {
		if response.ReviewID == reviewID {
			responses = append(responses, response)
		}
	}

	sort.Slice(responses, func(i, j int) bool {
		if responses[i].CreatedAt.Equal(responses[j].CreatedAt) {
			return responses[i].ID < responses[j].ID
		}
		return responses[i].CreatedAt.Before(responses[j].CreatedAt)
	})
	return responses, nil
}
