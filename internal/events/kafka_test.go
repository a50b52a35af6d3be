package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingWriter struct {
	msgs     []kafka.Message
	err      error
	closed   bool
	deadline time.Time
	block    bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.deadline, _ = ctx.Deadline()
	if w.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() ExerciseLogged {
	user := &domain.User{ID: primitive.NewObjectID(), Username: "alice"}
	ex := &domain.Exercise{
		ID:          primitive.NewObjectID(),
		Username:    "alice",
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	return NewExerciseLogged(user, ex, time.Date(2023, time.January, 10, 8, 0, 0, 0, time.UTC))
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}
	evt := sampleEvent()

	require.NoError(t, p.PublishExerciseLogged(context.Background(), evt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, evt.UserID, string(w.msgs[0].Key))

	var decoded ExerciseLogged
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, evt, decoded)
	assert.Equal(t, "2023-01-10", decoded.Date)
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &recordingWriter{err: boom}}

	err := p.PublishExerciseLogged(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, boom)
}

func TestKafkaPublisherClose(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, (&KafkaPublisher{writer: w}).Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherBoundsSlowBroker(t *testing.T) {
	w := &recordingWriter{block: true}
	p := &KafkaPublisher{writer: w, timeout: 20 * time.Millisecond}

	start := time.Now()
	err := p.PublishExerciseLogged(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewKafkaPublisherSetsDeadline(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "exercise.logged")
	w := &recordingWriter{}
	p.writer = w

	before := time.Now()
	require.NoError(t, p.PublishExerciseLogged(context.Background(), sampleEvent()))

	require.False(t, w.deadline.IsZero())
	assert.WithinDuration(t, before.Add(DefaultPublishTimeout), w.deadline, time.Second)
}
