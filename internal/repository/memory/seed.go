package memory

import (
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
)

// seedDefaultTemplates installs the response templates every deployment
// ships with. They are marked default and cannot be deleted.
func (s *Store) seedDefaultTemplates() {
	defaults := []domain.Template{
		{
			Name:      "Thank You Response",
			Content:   "Thank you so much for your wonderful review! We're thrilled that you had such a positive experience with us. Your feedback means the world to our team, and we look forward to serving you again soon!",
			Category:  "positive",
			IsDefault: true,
		},
		{
			Name:      "Service Improvement",
			Content:   "Thank you for taking the time to share your feedback. We appreciate your constructive comments and are actively working to improve in the areas you mentioned. We'd love the opportunity to provide you with a better experience in the future.",
			Category:  "neutral",
			IsDefault: true,
		},
		{
			Name:      "Apology Response",
			Content:   "We sincerely apologize for not meeting your expectations. Your experience doesn't reflect our usual standards, and we take your feedback very seriously. Please contact us directly so we can make this right and ensure it doesn't happen again.",
			Category:  "negative",
			IsDefault: true,
		},
		{
			Name:      "Anniversary/Special Occasion",
			Content:   "Thank you for choosing us for your special celebration! We're absolutely delighted that we could be part of your memorable moment. It means the world to us that you had such a wonderful experience.",
			Category:  "special",
			IsDefault: true,
		},
	}

	for _, tmpl := range defaults {
		s.nextTemplateID++
		tmpl.ID = s.nextTemplateID
		s.templates[tmpl.ID] = tmpl
	}
}

// SeedDemoData loads a handful of sample reviews covering every status so
// a fresh instance has something to show. Intended for local development.
func (s *Store) SeedDemoData() {
	now := time.Now().UTC()
	str := func(v string) *string { return &v }
	at := func(t time.Time) *time.Time { return &t }

	samples := []domain.Review{
		{
			CustomerName: "Sarah Miller",
			Rating:       5,
			Content:      "Excellent service! The food was delicious and the staff was incredibly friendly. Will definitely be back!",
			DatePosted:   now.Add(-2 * 24 * time.Hour),
			Status:       domain.StatusResponded,
			Response:     str("Thank you so much for the kind words, Sarah! We're thrilled you enjoyed your experience. Looking forward to welcoming you back soon!"),
			ResponseDate: at(now.Add(-24 * time.Hour)),
			Platform:     "google",
			Category:     str("positive"),
		},
		{
			CustomerName: "John Davis",
			Rating:       4,
			Content:      "Great atmosphere and good food. Service was a bit slow during peak hours but overall a pleasant experience.",
			DatePosted:   now.Add(-4 * time.Hour),
			Status:       domain.StatusPending,
			Platform:     "google",
			Category:     str("neutral"),
		},
		{
			CustomerName: "Mike Johnson",
			Rating:       2,
			Content:      "Food was cold when it arrived and the order was wrong. Had to wait 20 minutes for them to fix it. Not impressed with the service.",
			DatePosted:   now.Add(-6 * time.Hour),
			Status:       domain.StatusPriority,
			Platform:     "google",
			Category:     str("negative"),
		},
		{
			CustomerName: "Lisa Wilson",
			Rating:       5,
			Content:      "Amazing experience! The ambiance was perfect for our anniversary dinner. Thank you for making our evening special!",
			DatePosted:   now.Add(-24 * time.Hour),
			Status:       domain.StatusDraft,
			Response:     str("Thank you so much for choosing us for your anniversary, Lisa! We're absolutely delighted that we could be part of your special celebration. It means the world to us that you had such a wonderful experience."),
			Platform:     "google",
			Category:     str("special"),
		},
		{
			CustomerName: "David Chen",
			Rating:       5,
			Content:      "Outstanding quality and presentation. The chef's special was absolutely perfect. Highly recommend!",
			DatePosted:   now.Add(-3 * 24 * time.Hour),
			Status:       domain.StatusResponded,
			Response:     str("Thank you, David! We're so pleased you enjoyed the chef's special. Your recommendation means everything to us!"),
			ResponseDate: at(now.Add(-2 * 24 * time.Hour)),
			Platform:     "google",
			Category:     str("positive"),
		},
		{
			CustomerName: "Emma Thompson",
			Rating:       3,
			Content:      "Decent food but the wait time was longer than expected. The staff was apologetic though.",
			DatePosted:   now.Add(-8 * time.Hour),
			Status:       domain.StatusPending,
			Platform:     "google",
			Category:     str("neutral"),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, review := range samples {
		s.nextReviewID++
		review.ID = s.nextReviewID
		review.CustomerInitials = review.Initials()
		s.reviews[review.ID] = review
	}
}
