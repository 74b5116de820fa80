// Package rediscache implements the draft store on Redis with a TTL so
// abandoned drafts expire on their own.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

const defaultDraftTTL = 72 * time.Hour

// DraftStore caches drafts under review:draft:<id> keys.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl == 0 {
		ttl = defaultDraftTTL
	}
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(reviewID int64) string {
	return fmt.Sprintf("review:draft:%d", reviewID)
}

func (s *DraftStore) Save(ctx context.Context, draft repository.Draft) error {
	if draft.SavedAt.IsZero() {
		draft.SavedAt = time.Now().UTC()
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(draft.ReviewID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Get(ctx context.Context, reviewID int64) (*repository.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(reviewID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("draft for review %d", reviewID))
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft repository.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, reviewID int64) error {
	if err := s.client.Del(ctx, draftKey(reviewID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
