package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// DraftStore keeps drafts in a map with lazy TTL expiry. Used when the
// deployment runs without Redis.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[int64]draftEntry
	ttl    time.Duration
}

type draftEntry struct {
	draft     repository.Draft
	expiresAt time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	if ttl == 0 {
		ttl = 72 * time.Hour
	}
	return &DraftStore{drafts: make(map[int64]draftEntry), ttl: ttl}
}

func (s *DraftStore) Save(ctx context.Context, draft repository.Draft) error {
	if draft.SavedAt.IsZero() {
		draft.SavedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ReviewID] = draftEntry{draft: draft, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *DraftStore) Get(ctx context.Context, reviewID int64) (*repository.Draft, error) {
	s.mu.RLock()
	entry, ok := s.drafts[reviewID]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("draft for review %d", reviewID))
	}
	draft := entry.draft
	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, reviewID)
	return nil
}
