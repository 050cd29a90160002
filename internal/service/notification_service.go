package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/events"
)

// NotificationService reacts to escalations and feedback. Escalated tickets
// are surfaced to the HR queue; sensitive escalations carry the priority
// contact path with its tighter response target.
type NotificationService struct {
	logger *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{logger: logger}
}

// RegisterHandlers subscribes the notification hooks on the dispatcher.
func (s *NotificationService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventTicketEscalated, s.onEscalated)
	dispatcher.Subscribe(events.EventTicketOverridden, s.onOverridden)
	dispatcher.Subscribe(events.EventFeedbackReceived, s.onFeedback)
}

func (s *NotificationService) onEscalated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketRoutedPayload)
	if !ok {
		return nil
	}
	fields := []zap.Field{
		zap.String("ticket_id", event.TicketID),
		zap.String("department", string(payload.Department)),
		zap.String("category", string(payload.Category)),
		zap.String("urgency", string(payload.Urgency)),
		zap.String("reason", string(payload.Reason)),
		zap.String("response_sla", payload.ResponseSLA),
	}
	if payload.PriorityContact {
		s.logger.Info("sensitive escalation routed to priority contact", fields...)
		return nil
	}
	s.logger.Info("ticket escalated to human queue", fields...)
	return nil
}

func (s *NotificationService) onOverridden(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketOverriddenPayload)
	if !ok {
		return nil
	}
	s.logger.Info("employee requested a human",
		zap.String("ticket_id", event.TicketID),
		zap.String("previous_status", string(payload.PreviousStatus)),
	)
	return nil
}

func (s *NotificationService) onFeedback(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.FeedbackReceivedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("resolution feedback received",
		zap.String("ticket_id", event.TicketID),
		zap.Bool("helpful", payload.Helpful),
	)
	return nil
}
