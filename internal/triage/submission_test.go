package triage

import (
	"errors"
	"strings"
	"testing"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

func validForm() FormData {
	return FormData{
		EmployeeName: "Sarah Chen",
		Department:   domain.DepartmentEngineering,
		Description:  "How do I request PTO for next week?",
	}
}

func TestValidateFormRejectsShortDescription(t *testing.T) {
	form := validForm()
	form.Description = "too short"
	fields := ValidateForm(form)
	if fields == nil {
		t.Fatal("expected validation failure")
	}
	if _, ok := fields["description"]; !ok {
		t.Fatalf("expected description error, got %v", fields)
	}
}

func TestValidateFormRejectsLongDescription(t *testing.T) {
	form := validForm()
	form.Description = strings.Repeat("a", MaxDescriptionLen+1)
	if fields := ValidateForm(form); fields == nil {
		t.Fatal("expected validation failure for oversized description")
	}
}

func TestValidateFormRejectsMissingFields(t *testing.T) {
	fields := ValidateForm(FormData{Description: validForm().Description})
	for _, key := range []string{"employee_name", "department"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected %s error, got %v", key, fields)
		}
	}
}

func TestValidateFormRejectsUnknownDepartment(t *testing.T) {
	form := validForm()
	form.Department = "Legal"
	fields := ValidateForm(form)
	if _, ok := fields["department"]; !ok {
		t.Fatalf("expected department error, got %v", fields)
	}
}

func TestValidateFormAcceptsValidInput(t *testing.T) {
	if fields := ValidateForm(validForm()); fields != nil {
		t.Fatalf("expected valid form, got %v", fields)
	}
}

func TestSubmissionHappyPathResolved(t *testing.T) {
	sub := NewSubmission()
	if sub.Stage() != StageCollecting {
		t.Fatalf("expected collecting, got %s", sub.Stage())
	}
	if err := sub.Begin(validForm()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if sub.Stage() != StageAnalyzing {
		t.Fatalf("expected analyzing, got %s", sub.Stage())
	}
	if err := sub.Complete(Outcome{Status: domain.TicketStatusResolved, AutoResolved: true}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if sub.Stage() != StageResolved {
		t.Fatalf("expected resolved, got %s", sub.Stage())
	}
}

func TestSubmissionEscalation(t *testing.T) {
	sub := NewSubmission()
	if err := sub.Begin(validForm()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sub.Complete(Outcome{Status: domain.TicketStatusEscalated}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if sub.Stage() != StageEscalated {
		t.Fatalf("expected escalated, got %s", sub.Stage())
	}
}

func TestSubmissionGateBlocksSecondBegin(t *testing.T) {
	sub := NewSubmission()
	if err := sub.Begin(validForm()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sub.Begin(validForm()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected in-flight error, got %v", err)
	}
}

func TestSubmissionTransportFailurePreservesForm(t *testing.T) {
	sub := NewSubmission()
	form := validForm()
	if err := sub.Begin(form); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sub.Fail(); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if sub.Stage() != StageCollecting {
		t.Fatalf("expected collecting after failure, got %s", sub.Stage())
	}
	if sub.Form() != form {
		t.Fatalf("form data must survive a transport failure: %+v", sub.Form())
	}
	// Retry is allowed immediately.
	if err := sub.Begin(form); err != nil {
		t.Fatalf("retry Begin: %v", err)
	}
}

func TestSubmissionTerminalStagesReject(t *testing.T) {
	sub := NewSubmission()
	if err := sub.Begin(validForm()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sub.Complete(Outcome{Status: domain.TicketStatusResolved}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := sub.Begin(validForm()); !errors.Is(err, ErrSubmissionFinished) {
		t.Fatalf("expected finished error, got %v", err)
	}
	if err := sub.Complete(Outcome{Status: domain.TicketStatusEscalated}); !errors.Is(err, ErrNotAnalyzing) {
		t.Fatalf("expected not-analyzing error, got %v", err)
	}
	if err := sub.Fail(); !errors.Is(err, ErrNotAnalyzing) {
		t.Fatalf("expected not-analyzing error, got %v", err)
	}
}

func TestSubmissionBeginRejectsInvalidForm(t *testing.T) {
	sub := NewSubmission()
	form := validForm()
	form.Description = "short"
	if err := sub.Begin(form); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected invalid-form error, got %v", err)
	}
	if sub.Stage() != StageCollecting {
		t.Fatalf("invalid form must not advance the flow, got %s", sub.Stage())
	}
}
