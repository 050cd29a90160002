package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. In Progress is
// reserved for human-queue transitions owned by the HR desk system; triage
// itself only produces New, Resolved or Escalated.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusEscalated  TicketStatus = "Escalated"
)

// Urgency enumerates classification urgency levels.
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// Urgencies returns the four urgency levels in display order.
func Urgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
}

// ResolutionSource cites the knowledge-base location backing a resolution.
type ResolutionSource struct {
	Document string `json:"document"`
	Section  string `json:"section"`
}

// Resolution is the answer the classification engine produced for an
// auto-resolved ticket.
type Resolution struct {
	Text    string             `json:"text"`
	Steps   []string           `json:"steps,omitempty"`
	Sources []ResolutionSource `json:"sources,omitempty"`
}

// Feedback records the employee's reaction to a shown resolution. Write-once.
type Feedback struct {
	Helpful     bool
	Comment     string
	SubmittedAt time.Time
}

// Ticket is the aggregate for one employee HR request.
type Ticket struct {
	ID                  string
	EmployeeName        string
	Department          Department
	Description         string
	RedactedDescription string
	Category            Category
	Urgency             Urgency
	Confidence          int
	Status              TicketStatus
	Sensitive           bool
	PIIDetected         []string
	AutoResolved        bool
	Resolution          *Resolution
	Feedback            *Feedback
	Overridden          bool
	CreatedAt           time.Time
	ResolvedAt          *time.Time
}
