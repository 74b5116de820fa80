package gmb

import (
	"context"
	"sync"
	"time"
)

// StubClient serves canned GMB data for deployments without API access.
// Google gates the GMB API behind a project approval process, so local and
// demo environments run against the stub.
type StubClient struct {
	mu      sync.Mutex
	replies map[string]ReviewReply
}

func NewStubClient() *StubClient {
	return &StubClient{replies: make(map[string]ReviewReply)}
}

func (s *StubClient) ListAccounts(ctx context.Context) ([]Account, error) {
	return []Account{
		{
			Name:        "accounts/12345",
			AccountName: "My Business Account",
			Type:        "PERSONAL",
			Role:        "OWNER",
		},
	}, nil
}

func (s *StubClient) ListLocations(ctx context.Context, accountName string) ([]Location, error) {
	return []Location{
		{
			Name:         accountName + "/locations/67890",
			LocationName: "Main Street Location",
			PrimaryPhone: "+1 555-0100",
			WebsiteURL:   "https://example.com",
		},
	}, nil
}

func (s *StubClient) ListReviews(ctx context.Context, locationName string) ([]Review, error) {
	now := time.Now().UTC()
	reviews := []Review{
		{
			Name:       locationName + "/reviews/review1",
			ReviewID:   "review1",
			Reviewer:   Reviewer{DisplayName: "Alex Rivera"},
			StarRating: "FIVE",
			Comment:    "Fantastic experience from start to finish. The team went above and beyond!",
			CreateTime: now.Add(-48 * time.Hour),
			UpdateTime: now.Add(-48 * time.Hour),
		},
		{
			Name:       locationName + "/reviews/review2",
			ReviewID:   "review2",
			Reviewer:   Reviewer{DisplayName: "Priya Patel"},
			StarRating: "FOUR",
			Comment:    "Really enjoyed my visit. A little busy on weekends but worth the wait.",
			CreateTime: now.Add(-72 * time.Hour),
			UpdateTime: now.Add(-72 * time.Hour),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range reviews {
		if reply, ok := s.replies[reviews[i].Name]; ok {
			r := reply
			reviews[i].Reply = &r
		}
	}
	return reviews, nil
}

func (s *StubClient) ReplyToReview(ctx context.Context, reviewName, comment string) (*ReviewReply, error) {
	reply := ReviewReply{Comment: comment, UpdateTime: time.Now().UTC()}
	s.mu.Lock()
	s.replies[reviewName] = reply
	s.mu.Unlock()
	return &reply, nil
}
