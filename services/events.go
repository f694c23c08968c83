package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jorotodorovv/art-on-display/awsx"
	"github.com/jorotodorovv/art-on-display/models"

	"go.uber.org/zap"
)

// OrderEventSink receives order lifecycle events. Publishing is strictly
// best-effort; implementations must not fail the calling request.
type OrderEventSink interface {
	Publish(ctx context.Context, event models.OrderEvent)
}

// KafkaOrderProducer is implemented by the kafka package.
type KafkaOrderProducer interface {
	SendOrderEvent(ctx context.Context, event models.OrderEvent) error
}

// OrderEventPublisher fans an event out to Kafka and, when configured, SNS.
// Either target may be absent.
type OrderEventPublisher struct {
	kafka       KafkaOrderProducer
	sns         awsx.SNSPublisher
	snsTopicArn string
	logger      *zap.Logger
}

func NewOrderEventPublisher(kafka KafkaOrderProducer, sns awsx.SNSPublisher, snsTopicArn string, logger *zap.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		kafka:       kafka,
		sns:         sns,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
}

// Publish sends the event to every configured target, logging failures.
func (p *OrderEventPublisher) Publish(ctx context.Context, event models.OrderEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if p.kafka != nil {
		if err := p.kafka.SendOrderEvent(publishCtx, event); err != nil {
			p.logger.Warn("Kafka order event publish failed",
				zap.String("type", event.Type),
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
		}
	}

	if p.sns != nil && p.snsTopicArn != "" {
		payload, err := json.Marshal(event)
		if err != nil {
			p.logger.Warn("Failed to marshal order event", zap.Error(err))
			return
		}
		if err := p.sns.Publish(publishCtx, p.snsTopicArn, payload); err != nil {
			p.logger.Warn("SNS order event publish failed",
				zap.String("type", event.Type),
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
		}
	}
}
