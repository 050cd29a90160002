package triage

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// Description length bounds, in runes.
const (
	MinDescriptionLen = 10
	MaxDescriptionLen = 500
)

// Stage is the submission flow state. Collecting is initial; Resolved and
// Escalated are terminal for this flow.
type Stage string

const (
	StageCollecting Stage = "collecting"
	StageAnalyzing  Stage = "analyzing"
	StageResolved   Stage = "resolved"
	StageEscalated  Stage = "escalated"
)

var (
	// ErrSubmissionInFlight rejects a second begin while a classification
	// call is outstanding.
	ErrSubmissionInFlight = errors.New("submission already analyzing")
	// ErrSubmissionFinished rejects transitions out of a terminal stage.
	ErrSubmissionFinished = errors.New("submission already finished")
	// ErrNotAnalyzing rejects completing or failing a submission that never
	// began.
	ErrNotAnalyzing = errors.New("submission is not analyzing")
	// ErrInvalidForm carries field-level validation failures.
	ErrInvalidForm = errors.New("invalid submission form")
)

// FormData is the employee's input, retained across a transport failure so
// the form can be resubmitted unchanged.
type FormData struct {
	EmployeeName string
	Department   domain.Department
	Description  string
}

// ValidateForm returns field-keyed messages for every invalid field, or nil
// when the form may be submitted. A non-nil result blocks the classifier
// call entirely.
func ValidateForm(form FormData) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(form.EmployeeName) == "" {
		fields["employee_name"] = "name is required"
	}
	if form.Department == "" {
		fields["department"] = "department is required"
	} else if !domain.ValidDepartment(form.Department) {
		fields["department"] = "unknown department"
	}
	switch n := utf8.RuneCountInString(strings.TrimSpace(form.Description)); {
	case n < MinDescriptionLen:
		fields["description"] = "description must be at least 10 characters"
	case n > MaxDescriptionLen:
		fields["description"] = "description must be at most 500 characters"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Submission tracks one ticket through the four-stage flow. The
// Collecting -> Analyzing transition is a one-way gate: no second submission
// is accepted until the flow reaches a terminal stage or fails back to
// Collecting.
type Submission struct {
	stage Stage
	form  FormData
}

// NewSubmission starts a flow in Collecting.
func NewSubmission() *Submission {
	return &Submission{stage: StageCollecting}
}

// Stage returns the current flow stage.
func (s *Submission) Stage() Stage {
	return s.stage
}

// Form returns the retained form data.
func (s *Submission) Form() FormData {
	return s.form
}

// Begin validates the form and moves Collecting -> Analyzing. The caller
// invokes the classification engine after a successful Begin.
func (s *Submission) Begin(form FormData) error {
	switch s.stage {
	case StageAnalyzing:
		return ErrSubmissionInFlight
	case StageResolved, StageEscalated:
		return ErrSubmissionFinished
	}
	if fields := ValidateForm(form); fields != nil {
		return ErrInvalidForm
	}
	s.form = form
	s.stage = StageAnalyzing
	return nil
}

// Complete applies the routing outcome, moving Analyzing -> Resolved or
// Analyzing -> Escalated. The transition out of Analyzing happens exactly
// once per submission.
func (s *Submission) Complete(outcome Outcome) error {
	if s.stage != StageAnalyzing {
		return ErrNotAnalyzing
	}
	if outcome.Status == domain.TicketStatusResolved {
		s.stage = StageResolved
	} else {
		s.stage = StageEscalated
	}
	return nil
}

// Fail handles a transport failure: Analyzing -> Collecting with the form
// preserved. No ticket record exists after a failed submission.
func (s *Submission) Fail() error {
	if s.stage != StageAnalyzing {
		return ErrNotAnalyzing
	}
	s.stage = StageCollecting
	return nil
}
