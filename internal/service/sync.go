package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/event"
	"github.com/utafrali/ReviewDeskGo/internal/gmb"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/logger"
)

// SyncResult summarizes one sync run.
type SyncResult struct {
	AccountName  string `json:"accountName"`
	LocationName string `json:"locationName"`
	Fetched      int    `json:"fetched"`
	Imported     int    `json:"imported"`
	Skipped      int    `json:"skipped"`
}

// SyncService imports platform reviews into the local store and pushes
// replies back to the platform.
type SyncService struct {
	client    gmb.Client
	reviews   repository.ReviewRepository
	responses repository.ResponseRepository
	publisher event.Publisher
	logger    *slog.Logger
}

func NewSyncService(
	client gmb.Client,
	reviews repository.ReviewRepository,
	responses repository.ResponseRepository,
	publisher event.Publisher,
	l *slog.Logger,
) *SyncService {
	return &SyncService{
		client:    client,
		reviews:   reviews,
		responses: responses,
		publisher: publisher,
		logger:    l,
	}
}

// ListAccounts returns the GMB accounts visible to the authorized user.
func (s *SyncService) ListAccounts(ctx context.Context) ([]gmb.Account, error) {
	accounts, err := s.client.ListAccounts(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("google my business", err)
	}
	return accounts, nil
}

// ListLocations returns the locations under an account.
func (s *SyncService) ListLocations(ctx context.Context, accountName string) ([]gmb.Location, error) {
	locations, err := s.client.ListLocations(ctx, accountName)
	if err != nil {
		return nil, apperrors.Unavailable("google my business", err)
	}
	return locations, nil
}

// SyncLocation imports a location's reviews. Each platform review is
// imported at most once, keyed by its source id; already imported reviews
// are skipped. A review that arrives with a platform reply lands directly
// in responded status with the reply recorded.
func (s *SyncService) SyncLocation(ctx context.Context, accountName, locationName string) (*SyncResult, error) {
	platformReviews, err := s.client.ListReviews(ctx, locationName)
	if err != nil {
		return nil, apperrors.Unavailable("google my business", err)
	}

	result := &SyncResult{AccountName: accountName, LocationName: locationName, Fetched: len(platformReviews)}
	log := logger.FromContext(ctx)

	for _, pr := range platformReviews {
		sourceID := pr.Name
		if sourceID == "" {
			sourceID = pr.ReviewID
		}
		if sourceID == "" {
			result.Skipped++
			continue
		}

		_, err := s.reviews.GetBySourceID(ctx, sourceID)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("check review by source id: %w", err)
		}

		review, err := s.importReview(ctx, pr, sourceID)
		if err != nil {
			return nil, err
		}
		result.Imported++

		if err := s.publisher.ReviewSynced(ctx, review); err != nil {
			log.WarnContext(ctx, "failed to publish review.synced",
				slog.Int64("review_id", review.ID), slog.String("error", err.Error()))
		}
	}

	log.InfoContext(ctx, "location sync completed",
		slog.String("location", locationName),
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

// SubmitReply publishes a reply on the platform first, then records it
// locally. A platform failure leaves the local review untouched.
func (s *SyncService) SubmitReply(ctx context.Context, reviewID int64, comment string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.SourceID == nil || *review.SourceID == "" {
		return nil, apperrors.InvalidInput("review is not linked to a platform review")
	}

	reply, err := s.client.ReplyToReview(ctx, *review.SourceID, comment)
	if err != nil {
		return nil, apperrors.Unavailable("google my business", err)
	}

	replyTime := reply.UpdateTime
	if replyTime.IsZero() {
		replyTime = time.Now().UTC()
	}

	updated, err := s.reviews.UpdateResponse(ctx, reviewID, repository.ResponseUpdate{
		Response:     reply.Comment,
		Status:       domain.StatusResponded,
		ResponseDate: &replyTime,
	})
	if err != nil {
		return nil, fmt.Errorf("record platform reply: %w", err)
	}

	record := &domain.Response{
		ReviewID:  reviewID,
		Content:   reply.Comment,
		Tone:      domain.ToneProfessional,
		SentAt:    &replyTime,
		CreatedAt: replyTime,
	}
	if err := s.responses.Create(ctx, record); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to record reply history",
			slog.Int64("review_id", reviewID), slog.String("error", err.Error()))
	}

	if err := s.publisher.ReviewResponded(ctx, updated, domain.ToneProfessional); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish review.responded",
			slog.Int64("review_id", reviewID), slog.String("error", err.Error()))
	}
	return updated, nil
}

func (s *SyncService) importReview(ctx context.Context, pr gmb.Review, sourceID string) (*domain.Review, error) {
	customerName := pr.Reviewer.DisplayName
	if customerName == "" {
		customerName = "Anonymous"
	}

	datePosted := pr.CreateTime
	if datePosted.IsZero() {
		datePosted = time.Now().UTC()
	}

	review := &domain.Review{
		CustomerName: customerName,
		Rating:       gmb.StarToRating(pr.StarRating),
		Content:      pr.Comment,
		DatePosted:   datePosted,
		Status:       domain.StatusPending,
		Platform:     "google",
		SourceID:     &sourceID,
	}
	review.CustomerInitials = review.Initials()

	if pr.Reply != nil {
		review.Status = domain.StatusResponded
		review.Response = &pr.Reply.Comment
		replyTime := pr.Reply.UpdateTime
		if replyTime.IsZero() {
			replyTime = time.Now().UTC()
		}
		review.ResponseDate = &replyTime
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("import platform review: %w", err)
	}

	if pr.Reply != nil {
		record := &domain.Response{
			ReviewID:  review.ID,
			Content:   pr.Reply.Comment,
			Tone:      domain.ToneProfessional,
			SentAt:    review.ResponseDate,
			CreatedAt: *review.ResponseDate,
		}
		if err := s.responses.Create(ctx, record); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "failed to record imported reply",
				slog.Int64("review_id", review.ID), slog.String("error", err.Error()))
		}
	}
	return review, nil
}
