// Package events publishes decision events to Kafka so downstream consumers
// (analytics, notifications, model retraining) can react to every decision.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/marginiq/marginiq-api/internal/application/ports"
)

var _ ports.DecisionEventPublisher = (*KafkaDecisionPublisher)(nil)

// KafkaDecisionPublisher writes decision events to a Kafka topic, keyed by
// company id so a company's decisions stay ordered within a partition.
type KafkaDecisionPublisher struct {
	writer *kafka.Writer
}

// NewKafkaDecisionPublisher builds a publisher for the given brokers and topic.
func NewKafkaDecisionPublisher(brokers []string, topic string) *KafkaDecisionPublisher {
	return &KafkaDecisionPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends one decision event.
func (p *KafkaDecisionPublisher) Publish(ctx context.Context, event ports.DecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode decision event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CompanyID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("publish decision event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaDecisionPublisher) Close() error {
	return p.writer.Close()
}

// NoopDecisionPublisher discards events. Used when no brokers are configured.
type NoopDecisionPublisher struct{}

// Publish drops the event.
func (NoopDecisionPublisher) Publish(context.Context, ports.DecisionEvent) error { return nil }
