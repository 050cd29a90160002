package events

import (
	"time"

	"github.com/spec-kit/hr-triage-service/internal/domain"
	"github.com/spec-kit/hr-triage-service/internal/triage"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketSubmitted    EventType = "ticket_submitted"
	EventTicketAutoResolved EventType = "ticket_auto_resolved"
	EventTicketEscalated    EventType = "ticket_escalated"
	EventTicketOverridden   EventType = "ticket_overridden"
	EventFeedbackReceived   EventType = "feedback_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketRoutedPayload describes a triage verdict.
type TicketRoutedPayload struct {
	Department      domain.Department   `json:"department"`
	Category        domain.Category     `json:"category"`
	Urgency         domain.Urgency      `json:"urgency"`
	Confidence      int                 `json:"confidence"`
	Status          domain.TicketStatus `json:"status"`
	Reason          triage.RouteReason  `json:"reason"`
	PriorityContact bool                `json:"priority_contact"`
	ResponseSLA     string              `json:"response_sla,omitempty"`
	PIIDetected     []string            `json:"pii_detected,omitempty"`
}

// TicketOverriddenPayload describes an employee override to a human.
type TicketOverriddenPayload struct {
	PreviousStatus domain.TicketStatus `json:"previous_status"`
}

// FeedbackReceivedPayload describes resolution feedback.
type FeedbackReceivedPayload struct {
	Helpful bool `json:"helpful"`
}
