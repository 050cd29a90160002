package triage

import (
	"github.com/spec-kit/hr-triage-service/internal/classifier"
	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// Confidence thresholds for the routing bands. Below ApprovalThreshold a
// ticket routes straight to a human; between the two a suggested resolution
// waits for human approval; at or above AutoResolveThreshold the engine's
// resolution is shown directly.
const (
	AutoResolveThreshold = 85
	ApprovalThreshold    = 70
)

// Response-time commitments shown to the employee on escalation.
const (
	SLASensitive = "2 hours"
	SLAStandard  = "4 hours"
)

// RouteReason explains why a ticket escalated.
type RouteReason string

const (
	ReasonAutoResolved      RouteReason = "auto_resolved"
	ReasonSensitive         RouteReason = "sensitive_topic"
	ReasonPendingApproval   RouteReason = "pending_human_approval"
	ReasonLowConfidence     RouteReason = "low_confidence"
	ReasonMissingResolution RouteReason = "missing_resolution"
)

// Outcome is the routing verdict for one classification result.
type Outcome struct {
	Status          domain.TicketStatus
	AutoResolved    bool
	Reason          RouteReason
	PriorityContact bool
	ResponseSLA     string
	ShowResolution  bool
}

// Route applies the decision table to a classification result. Rules are
// evaluated top to bottom, first match wins; the sensitive flag beats every
// confidence band.
func Route(result classifier.Result) Outcome {
	switch {
	case result.Sensitive:
		return Outcome{
			Status:          domain.TicketStatusEscalated,
			Reason:          ReasonSensitive,
			PriorityContact: true,
			ResponseSLA:     SLASensitive,
		}
	case result.Confidence >= AutoResolveThreshold && result.Resolution != nil:
		return Outcome{
			Status:         domain.TicketStatusResolved,
			AutoResolved:   true,
			Reason:         ReasonAutoResolved,
			ShowResolution: true,
		}
	case result.Confidence >= AutoResolveThreshold:
		// High confidence without a resolution should not occur; escalating
		// under-resolves rather than mis-resolves.
		return Outcome{
			Status:      domain.TicketStatusEscalated,
			Reason:      ReasonMissingResolution,
			ResponseSLA: SLAStandard,
		}
	case result.Confidence >= ApprovalThreshold:
		return Outcome{
			Status:      domain.TicketStatusEscalated,
			Reason:      ReasonPendingApproval,
			ResponseSLA: SLAStandard,
		}
	default:
		return Outcome{
			Status:      domain.TicketStatusEscalated,
			Reason:      ReasonLowConfidence,
			ResponseSLA: SLAStandard,
		}
	}
}
