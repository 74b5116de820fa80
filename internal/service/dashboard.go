package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

// DashboardService aggregates review data into the dashboard snapshot.
type DashboardService struct {
	reviews repository.ReviewRepository
	now     func() time.Time
}

func NewDashboardService(reviews repository.ReviewRepository) *DashboardService {
	return &DashboardService{reviews: reviews, now: time.Now}
}

// GetStats computes the dashboard snapshot over all reviews. Pending
// includes priority reviews since both await a response. Growth compares
// the trailing 30 days against the 30 days before; an empty prior window
// reports zero growth.
func (s *DashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	reviews, err := s.reviews.List(ctx, repository.ReviewFilter{})
	if err != nil {
		return nil, fmt.Errorf("list reviews for stats: %w", err)
	}

	stats := &domain.DashboardStats{TotalReviews: len(reviews)}

	var ratingSum, respondedCount int
	for _, r := range reviews {
		ratingSum += r.Rating
		switch r.Status {
		case domain.StatusPending, domain.StatusPriority:
			stats.PendingCount++
		case domain.StatusResponded:
			respondedCount++
		}
	}

	if len(reviews) > 0 {
		stats.AverageRating = math.Round(float64(ratingSum)/float64(len(reviews))*10) / 10
		stats.ResponseRate = int(math.Round(float64(respondedCount) / float64(len(reviews)) * 100))
	}

	stats.MonthlyGrowth = s.monthlyGrowth(reviews)
	return stats, nil
}

func (s *DashboardService) monthlyGrowth(reviews []domain.Review) domain.MonthlyGrowth {
	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -30)
	priorStart := now.AddDate(0, 0, -60)

	var curCount, prevCount int
	var curRatingSum, prevRatingSum int
	var curResponded, prevResponded int

	for _, r := range reviews {
		switch {
		case !r.DatePosted.Before(windowStart):
			curCount++
			curRatingSum += r.Rating
		case !r.DatePosted.Before(priorStart):
			prevCount++
			prevRatingSum += r.Rating
		}

		if r.Status == domain.StatusResponded && r.ResponseDate != nil {
			switch {
			case !r.ResponseDate.Before(windowStart):
				curResponded++
			case !r.ResponseDate.Before(priorStart):
				prevResponded++
			}
		}
	}

	growth := domain.MonthlyGrowth{
		Reviews:   percentChange(float64(curCount), float64(prevCount)),
		Responses: percentChange(float64(curResponded), float64(prevResponded)),
	}
	if curCount > 0 && prevCount > 0 {
		curAvg := float64(curRatingSum) / float64(curCount)
		prevAvg := float64(prevRatingSum) / float64(prevCount)
		growth.Rating = percentChange(curAvg, prevAvg)
	}
	return growth
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current - previous) / previous * 100)
}
