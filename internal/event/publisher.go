// Package event publishes review lifecycle events to Kafka. Publishing is
// best effort; callers log failures and never fail the request over them.
package event

import (
	"context"
	"strconv"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/pkg/kafka"
)

// Event types emitted on the reviews topic.
const (
	TypeReviewCreated   = "review.created"
	TypeReviewResponded = "review.responded"
	TypeReviewSynced    = "review.synced"
)

// Topic carries all review lifecycle events, keyed by review id.
const Topic = "reviewdesk.reviews"

// Publisher emits review lifecycle events. Services depend on this
// interface so tests can substitute a mock.
type Publisher interface {
	ReviewCreated(ctx context.Context, review *domain.Review) error
	ReviewResponded(ctx context.Context, review *domain.Review, tone string) error
	ReviewSynced(ctx context.Context, review *domain.Review) error
}

// ReviewPayload is the wire payload for review events.
type ReviewPayload struct {
	ReviewID     int64      `json:"review_id"`
	CustomerName string     `json:"customer_name"`
	Rating       int        `json:"rating"`
	Status       string     `json:"status"`
	Platform     string     `json:"platform"`
	Tone         string     `json:"tone,omitempty"`
	ResponseDate *time.Time `json:"response_date,omitempty"`
}

type producer interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

// KafkaPublisher emits events through the shared Kafka producer.
type KafkaPublisher struct {
	producer producer
}

func NewKafkaPublisher(p *kafka.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: p}
}

func (p *KafkaPublisher) ReviewCreated(ctx context.Context, review *domain.Review) error {
	return p.publish(ctx, TypeReviewCreated, review, "")
}

func (p *KafkaPublisher) ReviewResponded(ctx context.Context, review *domain.Review, tone string) error {
	return p.publish(ctx, TypeReviewResponded, review, tone)
}

func (p *KafkaPublisher) ReviewSynced(ctx context.Context, review *domain.Review) error {
	return p.publish(ctx, TypeReviewSynced, review, "")
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, review *domain.Review, tone string) error {
	payload := ReviewPayload{
		ReviewID:     review.ID,
		CustomerName: review.CustomerName,
		Rating:       review.Rating,
		Status:       review.Status,
		Platform:     review.Platform,
		Tone:         tone,
		ResponseDate: review.ResponseDate,
	}
	return p.producer.Publish(ctx, eventType, strconv.FormatInt(review.ID, 10), payload)
}

// NoopPublisher drops all events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) ReviewCreated(ctx context.Context, review *domain.Review) error { return nil }
func (NoopPublisher) ReviewResponded(ctx context.Context, review *domain.Review, tone string) error {
	return nil
}
func (NoopPublisher) ReviewSynced(ctx context.Context, review *domain.Review) error { return nil }
