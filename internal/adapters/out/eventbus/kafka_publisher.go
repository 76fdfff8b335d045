// Package eventbus contains the ports.EventPublisher adapters: Kafka, Prometheus,
// log and a fan-out that combines them.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 2 * time.Second

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every event as one JSON message keyed by event name.
type KafkaPublisher struct {
	writer MessageWriter
	logger *slog.Logger
}

// NewKafkaWriter returns a writer for topic balanced with LeastBytes.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer MessageWriter, logger *slog.Logger) (*KafkaPublisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, e := range evts {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.EventName(), err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.EventName()),
			Value: value,
			Time:  e.OccurredAt(),
		})
	}

	ctx, cancel := context.WithTimeout(ctx, kafkaWriteTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, "failed to write events", "count", len(msgs), "error", err)
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
