package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single topic, keyed by user ID so a
// user's events stay ordered within a partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// DefaultPublishTimeout caps how long a publish may hold up the caller.
const DefaultPublishTimeout = 2 * time.Second

// NewKafkaPublisher creates a synchronous publisher for topic. Each
// publish gives up after DefaultPublishTimeout.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: DefaultPublishTimeout,
			MaxAttempts:  2,
		},
		timeout: DefaultPublishTimeout,
	}
}

func (p *KafkaPublisher) PublishExerciseLogged(ctx context.Context, evt ExerciseLogged) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode exercise event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("exercise.logged")},
		},
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish exercise event: %w", err)
	}
	return nil
}

// Close flushes and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
