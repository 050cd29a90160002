package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/config"
)

// KafkaPublisher forwards domain events to a Kafka topic for downstream
// consumers (HR desk, data warehouse). Publishing failures are logged, never
// propagated: the ticket flow must not depend on broker availability.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher builds a publisher for the configured brokers and topic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// RegisterHandlers subscribes the publisher to every ticket event type.
func (p *KafkaPublisher) RegisterHandlers(dispatcher Dispatcher) {
	types := []EventType{
		EventTicketSubmitted,
		EventTicketAutoResolved,
		EventTicketEscalated,
		EventTicketOverridden,
		EventFeedbackReceived,
	}
	for _, t := range types {
		dispatcher.Subscribe(t, p.forward)
	}
}

func (p *KafkaPublisher) forward(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("encode event for kafka", zap.Error(err), zap.String("event_type", string(event.Type)))
		return nil
	}
	msg := kafka.Message{
		Key:   []byte(event.TicketID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("kafka publish failed",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("ticket_id", event.TicketID))
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
