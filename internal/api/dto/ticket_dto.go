package dto

import (
	"time"

	"github.com/spec-kit/hr-triage-service/internal/domain"
	"github.com/spec-kit/hr-triage-service/internal/pii"
	"github.com/spec-kit/hr-triage-service/internal/triage"
)

// SubmitTicketRequest is the employee's ticket form payload.
type SubmitTicketRequest struct {
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Description  string `json:"description"`
}

// FeedbackRequest records the employee's reaction to a shown resolution.
type FeedbackRequest struct {
	Helpful bool   `json:"helpful"`
	Comment string `json:"comment"`
}

// ResolutionResponse is the engine's answer as shown to the employee.
type ResolutionResponse struct {
	Text    string                    `json:"text"`
	Steps   []string                  `json:"steps,omitempty"`
	Sources []domain.ResolutionSource `json:"sources,omitempty"`
}

// FeedbackResponse is the recorded feedback on a resolved ticket.
type FeedbackResponse struct {
	Helpful     bool      `json:"helpful"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TicketResponse is the portal view of one ticket. The description is always
// the redacted form; the raw submission never leaves the service.
type TicketResponse struct {
	ID              string              `json:"id"`
	EmployeeName    string              `json:"employee_name"`
	Department      domain.Department   `json:"department"`
	Description     string              `json:"description"`
	Category        domain.Category     `json:"category"`
	Urgency         domain.Urgency      `json:"urgency"`
	UrgencyBadge    domain.BadgeVariant `json:"urgency_badge"`
	Confidence      int                 `json:"confidence"`
	Status          domain.TicketStatus `json:"status"`
	StatusBadge     domain.BadgeVariant `json:"status_badge"`
	AutoResolved    bool                `json:"auto_resolved"`
	Overridden      bool                `json:"overridden"`
	PIIDetected     string              `json:"pii_detected,omitempty"`
	PIINotice       string              `json:"pii_notice,omitempty"`
	PriorityContact bool                `json:"priority_contact"`
	ResponseSLA     string              `json:"response_sla,omitempty"`
	Resolution      *ResolutionResponse `json:"resolution,omitempty"`
	Feedback        *FeedbackResponse   `json:"feedback,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	ResolvedAt      *time.Time          `json:"resolved_at,omitempty"`
}

// TicketListResponse wraps a filtered listing.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Count   int              `json:"count"`
}

// NewTicketResponse maps a domain ticket to its portal view.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID,
		EmployeeName: t.EmployeeName,
		Department:   t.Department,
		Description:  t.RedactedDescription,
		Category:     t.Category,
		Urgency:      t.Urgency,
		UrgencyBadge: domain.UrgencyBadge(t.Urgency),
		Confidence:   t.Confidence,
		Status:       t.Status,
		StatusBadge:  domain.StatusBadge(t.Status),
		AutoResolved: t.AutoResolved,
		Overridden:   t.Overridden,
		PIIDetected:  pii.Present(t.PIIDetected),
		PIINotice:    pii.Notice(t.PIIDetected),
		CreatedAt:    t.CreatedAt,
		ResolvedAt:   t.ResolvedAt,
	}
	if t.Status == domain.TicketStatusEscalated {
		if t.Sensitive {
			resp.PriorityContact = true
			resp.ResponseSLA = triage.SLASensitive
		} else {
			resp.ResponseSLA = triage.SLAStandard
		}
	}
	if t.Resolution != nil {
		resp.Resolution = &ResolutionResponse{
			Text:    t.Resolution.Text,
			Steps:   t.Resolution.Steps,
			Sources: t.Resolution.Sources,
		}
	}
	if t.Feedback != nil {
		resp.Feedback = &FeedbackResponse{
			Helpful:     t.Feedback.Helpful,
			Comment:     t.Feedback.Comment,
			SubmittedAt: t.Feedback.SubmittedAt,
		}
	}
	return resp
}

// NewTicketListResponse maps a ticket slice to the listing view.
func NewTicketListResponse(tickets []domain.Ticket) TicketListResponse {
	out := TicketListResponse{Tickets: make([]TicketResponse, 0, len(tickets))}
	for i := range tickets {
		out.Tickets = append(out.Tickets, NewTicketResponse(&tickets[i]))
	}
	out.Count = len(out.Tickets)
	return out
}
