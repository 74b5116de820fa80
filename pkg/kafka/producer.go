package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/utafrali/ReviewDeskGo/pkg/logger"
)

// Producer publishes events to a single topic.
type Producer struct {
	writer *kafkago.Writer
	source string
	logger *slog.Logger
}

// NewProducer creates a producer for the given topic. Messages are keyed by
// the caller so events for one entity stay ordered within a partition.
func NewProducer(brokers []string, topic, source string, l *slog.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Compression:  kafkago.Snappy,
	}
	return &Producer{writer: writer, source: source, logger: l}
}

// Publish wraps payload in an Event envelope and writes it keyed by key.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) error {
	event, err := NewEvent(eventType, p.source, payload)
	if err != nil {
		return fmt.Errorf("build event: %w", err)
	}
	event.CorrelationID = logger.CorrelationIDFromContext(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", eventType),
		slog.String("key", key),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
