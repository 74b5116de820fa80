package repository

import (
	"context"
	"time"
)

// Draft is an unsaved response being composed for a review. Drafts are
// scratch state with a TTL; submitting a response is what persists.
type Draft struct {
	ReviewID int64     `json:"reviewId"`
	Content  string    `json:"content"`
	Tone     string    `json:"tone"`
	SavedAt  time.Time `json:"savedAt"`
}

// DraftStore caches in-progress response drafts keyed by review id.
type DraftStore interface {
	Save(ctx context.Context, draft Draft) error
	Get(ctx context.Context, reviewID int64) (*Draft, error)
	Delete(ctx context.Context, reviewID int64) error
}
