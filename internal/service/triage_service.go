package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/classifier"
	"github.com/spec-kit/hr-triage-service/internal/domain"
	"github.com/spec-kit/hr-triage-service/internal/events"
	"github.com/spec-kit/hr-triage-service/internal/query"
	"github.com/spec-kit/hr-triage-service/internal/repository"
	"github.com/spec-kit/hr-triage-service/internal/triage"
	"github.com/spec-kit/hr-triage-service/pkg/util"
)

// TriageService coordinates the submit -> classify -> route flow and the
// ticket read paths.
type TriageService struct {
	tickets    repository.TicketRepository
	feedback   repository.FeedbackRepository
	classifier classifier.Classifier
	dispatcher events.Dispatcher
	metrics    metricsRecorder
	logger     *zap.Logger
}

// metricsRecorder is the subset of counters the service records.
type metricsRecorder interface {
	RecordSubmission(autoResolved bool)
	RecordTransportFailure()
}

// TriageDependencies bundles collaborators for the triage service.
type TriageDependencies struct {
	TicketRepo   repository.TicketRepository
	FeedbackRepo repository.FeedbackRepository
	Classifier   classifier.Classifier
	Dispatcher   events.Dispatcher
	Metrics      metricsRecorder
	Logger       *zap.Logger
}

// SubmitInput is the employee's ticket form.
type SubmitInput struct {
	EmployeeName string
	Department   domain.Department
	Description  string
}

// ListInput scopes a ticket listing.
type ListInput struct {
	Filter query.Filter
	Search string
	Limit  int
}

// NewTriageService constructs the service.
func NewTriageService(deps TriageDependencies) *TriageService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriageService{
		tickets:    deps.TicketRepo,
		feedback:   deps.FeedbackRepo,
		classifier: deps.Classifier,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// Submit runs one submission through the lifecycle: validate, classify,
// route, persist. A transport failure returns the flow to Collecting with
// nothing persisted so the employee can retry the same form immediately.
func (s *TriageService) Submit(ctx context.Context, input SubmitInput) (*domain.Ticket, error) {
	form := triage.FormData{
		EmployeeName: input.EmployeeName,
		Department:   input.Department,
		Description:  input.Description,
	}
	if fields := triage.ValidateForm(form); fields != nil {
		details := make(map[string]any, len(fields))
		for field, msg := range fields {
			details[field] = msg
		}
		return nil, util.NewValidationError("invalid submission", details)
	}

	submission := triage.NewSubmission()
	if err := submission.Begin(form); err != nil {
		return nil, util.MapError(err)
	}

	result, err := s.classifier.Classify(ctx, classifier.Request{
		Description:  form.Description,
		Department:   string(form.Department),
		EmployeeName: form.EmployeeName,
	})
	if err != nil {
		_ = submission.Fail()
		if s.metrics != nil {
			s.metrics.RecordTransportFailure()
		}
		if classifier.IsTransportError(err) {
			s.logger.Warn("classification unavailable", zap.Error(err))
			return nil, util.NewUnavailable("classification service unavailable, please retry", err)
		}
		return nil, util.MapError(err)
	}

	outcome := triage.Route(*result)
	if outcome.Reason == triage.ReasonMissingResolution {
		s.logger.Warn("classification result missing resolution at high confidence",
			zap.Int("confidence", result.Confidence),
			zap.String("category", string(result.Category)))
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:                  uuid.NewString(),
		EmployeeName:        form.EmployeeName,
		Department:          form.Department,
		Description:         form.Description,
		RedactedDescription: redactedOrOriginal(result, form.Description),
		Category:            result.Category,
		Urgency:             result.Urgency,
		Confidence:          result.Confidence,
		Status:              outcome.Status,
		Sensitive:           result.Sensitive,
		PIIDetected:         result.PIIDetected,
		AutoResolved:        outcome.AutoResolved,
		CreatedAt:           now,
	}
	if outcome.AutoResolved {
		ticket.Resolution = result.Resolution
		resolvedAt := now
		ticket.ResolvedAt = &resolvedAt
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		_ = submission.Fail()
		return nil, util.MapError(err)
	}
	if err := submission.Complete(outcome); err != nil {
		return nil, util.MapError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordSubmission(outcome.AutoResolved)
	}
	s.publishRouted(ctx, ticket, outcome)
	return ticket, nil
}

// ListTickets loads a recent snapshot and applies the filter engine.
func (s *TriageService) ListTickets(ctx context.Context, input ListInput) ([]domain.Ticket, error) {
	snapshot, err := s.tickets.ListRecent(ctx, input.Limit)
	if err != nil {
		return nil, util.MapError(err)
	}
	return query.Apply(snapshot, input.Filter, input.Search), nil
}

// GetTicket fetches one ticket by ID.
func (s *TriageService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	return ticket, nil
}

// Override escalates a ticket to a human at the employee's request,
// regardless of the original routing outcome.
func (s *TriageService) Override(ctx context.Context, id string) (*domain.Ticket, error) {
	existing, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	previous := existing.Status
	updated, err := s.tickets.MarkEscalated(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketOverridden,
		TicketID: id,
		Payload:  events.TicketOverriddenPayload{PreviousStatus: previous},
	})
	return updated, nil
}

// SubmitFeedback attaches write-once feedback to a resolved ticket. A second
// submission is rejected; the ticket's status is unaffected either way.
func (s *TriageService) SubmitFeedback(ctx context.Context, ticketID string, helpful bool, comment string) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return util.MapError(err)
	}
	if ticket.Status != domain.TicketStatusResolved {
		return util.NewValidationError("feedback is only accepted on resolved tickets", nil)
	}
	err = s.feedback.Create(ctx, ticketID, domain.Feedback{
		Helpful:     helpful,
		Comment:     comment,
		SubmittedAt: time.Now().UTC(),
	})
	if err == repository.ErrFeedbackExists {
		return util.NewConflict("FEEDBACK_EXISTS", "feedback already recorded for this ticket", nil)
	}
	if err != nil {
		return util.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventFeedbackReceived,
		TicketID: ticketID,
		Payload:  events.FeedbackReceivedPayload{Helpful: helpful},
	})
	return nil
}

func (s *TriageService) publishRouted(ctx context.Context, ticket *domain.Ticket, outcome triage.Outcome) {
	payload := events.TicketRoutedPayload{
		Department:      ticket.Department,
		Category:        ticket.Category,
		Urgency:         ticket.Urgency,
		Confidence:      ticket.Confidence,
		Status:          ticket.Status,
		Reason:          outcome.Reason,
		PriorityContact: outcome.PriorityContact,
		ResponseSLA:     outcome.ResponseSLA,
		PIIDetected:     ticket.PIIDetected,
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketSubmitted,
		TicketID: ticket.ID,
		Payload:  payload,
	})
	routedType := events.EventTicketEscalated
	if outcome.AutoResolved {
		routedType = events.EventTicketAutoResolved
	}
	s.publishEvent(ctx, events.Event{
		Type:     routedType,
		TicketID: ticket.ID,
		Payload:  payload,
	})
}

func (s *TriageService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// redactedOrOriginal keeps the engine's redacted string when detection found
// anything; otherwise the raw description doubles as the display string.
func redactedOrOriginal(result *classifier.Result, original string) string {
	if result.RedactedDescription != "" {
		return result.RedactedDescription
	}
	return original
}
