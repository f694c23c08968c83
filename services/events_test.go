package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingKafkaProducer struct {
	events []models.OrderEvent
	err    error
}

func (r *recordingKafkaProducer) SendOrderEvent(ctx context.Context, event models.OrderEvent) error {
	r.events = append(r.events, event)
	return r.err
}

type recordingSNSPublisher struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (r *recordingSNSPublisher) Publish(ctx context.Context, topicArn string, payload []byte) error {
	r.topics = append(r.topics, topicArn)
	r.payloads = append(r.payloads, payload)
	return r.err
}

func TestPublishFansOut(t *testing.T) {
	producer := &recordingKafkaProducer{}
	sns := &recordingSNSPublisher{}
	publisher := NewOrderEventPublisher(producer, sns, "arn:aws:sns:eu-west-1:000000000000:orders", zap.NewNop())

	publisher.Publish(context.Background(), models.OrderEvent{
		Type:     models.OrderEventCreated,
		OrderID:  "order-1",
		UserID:   "user-1",
		Amount:   35.50,
		Currency: "eur",
	})

	require.Len(t, producer.events, 1)
	assert.Equal(t, models.OrderEventCreated, producer.events[0].Type)
	assert.False(t, producer.events[0].Timestamp.IsZero())

	require.Len(t, sns.payloads, 1)
	var decoded models.OrderEvent
	require.NoError(t, json.Unmarshal(sns.payloads[0], &decoded))
	assert.Equal(t, "order-1", decoded.OrderID)
}

func TestPublishSurvivesTargetFailures(t *testing.T) {
	producer := &recordingKafkaProducer{err: errDatabaseDown}
	sns := &recordingSNSPublisher{err: errDatabaseDown}
	publisher := NewOrderEventPublisher(producer, sns, "arn:aws:sns:eu-west-1:000000000000:orders", zap.NewNop())

	// Failures are logged, never surfaced.
	publisher.Publish(context.Background(), models.OrderEvent{Type: models.OrderEventCompleted, OrderID: "order-1"})

	assert.Len(t, producer.events, 1)
	assert.Len(t, sns.payloads, 1)
}

func TestPublishWithoutTargets(t *testing.T) {
	publisher := NewOrderEventPublisher(nil, nil, "", zap.NewNop())
	publisher.Publish(context.Background(), models.OrderEvent{Type: models.OrderEventCreated})
}
