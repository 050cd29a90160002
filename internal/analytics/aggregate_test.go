package analytics

import (
	"testing"
	"time"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

var (
	windowEnd   = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	windowStart = windowEnd.AddDate(0, 0, -29)
)

func testCost() CostModel {
	return CostModel{HandlingMinutes: 20.8, HourlyCost: 45}
}

func ticketAt(day int, status domain.TicketStatus, autoResolved bool) domain.Ticket {
	created := windowStart.AddDate(0, 0, day)
	t := domain.Ticket{
		Category:     domain.CategoryPTOLeaveRequests,
		Urgency:      domain.UrgencyLow,
		Status:       status,
		AutoResolved: autoResolved,
		CreatedAt:    created,
	}
	if status == domain.TicketStatusResolved {
		resolved := created.Add(90 * time.Second)
		t.ResolvedAt = &resolved
	}
	return t
}

func TestAggregateEmptyWindow(t *testing.T) {
	summary := Aggregate(nil, windowStart, windowEnd, testCost())
	if summary.TotalTickets != 0 || summary.DeflectionRate != 0 {
		t.Fatalf("empty window must produce zeros, got %+v", summary)
	}
	if summary.AvgResolutionTimeSeconds != 0 || summary.AvgCSATScore != 0 {
		t.Fatalf("means over no samples must be zero, got %+v", summary)
	}
	if len(summary.CategoryDistribution) != 15 {
		t.Fatalf("expected all 15 category keys, got %d", len(summary.CategoryDistribution))
	}
	if len(summary.UrgencyDistribution) != 4 {
		t.Fatalf("expected all 4 urgency keys, got %d", len(summary.UrgencyDistribution))
	}
	if len(summary.DepartmentDistribution) != 6 {
		t.Fatalf("expected all 6 department keys, got %d", len(summary.DepartmentDistribution))
	}
	if len(summary.DailyVolumes) != 30 {
		t.Fatalf("expected 30 daily entries, got %d", len(summary.DailyVolumes))
	}
}

func TestAggregateDeflectionRate(t *testing.T) {
	tickets := []domain.Ticket{
		ticketAt(0, domain.TicketStatusResolved, true),
		ticketAt(1, domain.TicketStatusResolved, true),
		ticketAt(2, domain.TicketStatusEscalated, false),
	}
	summary := Aggregate(tickets, windowStart, windowEnd, testCost())
	if summary.TotalTickets != 3 || summary.AutoResolvedCount != 2 || summary.EscalatedCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	// round(100 * 2/3) = 67
	if summary.DeflectionRate != 67 {
		t.Fatalf("expected deflection rate 67, got %d", summary.DeflectionRate)
	}
	if summary.DeflectionRate < 0 || summary.DeflectionRate > 100 {
		t.Fatalf("deflection rate out of range: %d", summary.DeflectionRate)
	}
}

func TestAggregateResolutionTime(t *testing.T) {
	tickets := []domain.Ticket{
		ticketAt(0, domain.TicketStatusResolved, true),
		ticketAt(1, domain.TicketStatusResolved, true),
		ticketAt(2, domain.TicketStatusEscalated, false),
	}
	summary := Aggregate(tickets, windowStart, windowEnd, testCost())
	if summary.AvgResolutionTimeSeconds != 90 {
		t.Fatalf("expected 90s mean resolution time, got %v", summary.AvgResolutionTimeSeconds)
	}
}

func TestAggregateCSATMapping(t *testing.T) {
	helpful := ticketAt(0, domain.TicketStatusResolved, true)
	helpful.Feedback = &domain.Feedback{Helpful: true}
	unhelpful := ticketAt(1, domain.TicketStatusResolved, true)
	unhelpful.Feedback = &domain.Feedback{Helpful: false}
	noFeedback := ticketAt(2, domain.TicketStatusEscalated, false)

	summary := Aggregate([]domain.Ticket{helpful, unhelpful, noFeedback}, windowStart, windowEnd, testCost())
	// helpful=5, unhelpful=1, mean over tickets with feedback only.
	if summary.AvgCSATScore != 3 {
		t.Fatalf("expected CSAT 3.0, got %v", summary.AvgCSATScore)
	}
}

func TestAggregateDistributionsKeepAllKeys(t *testing.T) {
	tickets := []domain.Ticket{ticketAt(5, domain.TicketStatusResolved, true)}
	summary := Aggregate(tickets, windowStart, windowEnd, testCost())
	if len(summary.CategoryDistribution) != 15 || len(summary.ResolutionRateByCategory) != 15 {
		t.Fatalf("category maps must carry all 15 keys: %d / %d",
			len(summary.CategoryDistribution), len(summary.ResolutionRateByCategory))
	}
	if summary.CategoryDistribution[domain.CategoryPTOLeaveRequests] != 1 {
		t.Fatalf("expected one PTO ticket, got %d", summary.CategoryDistribution[domain.CategoryPTOLeaveRequests])
	}
	if summary.CategoryDistribution[domain.CategoryPayrollIssues] != 0 {
		t.Fatal("zero-count categories must still be present")
	}
	if summary.ResolutionRateByCategory[domain.CategoryPTOLeaveRequests] != 100 {
		t.Fatalf("expected 100%% resolution rate for PTO, got %d",
			summary.ResolutionRateByCategory[domain.CategoryPTOLeaveRequests])
	}
}

func TestAggregateDepartmentDistribution(t *testing.T) {
	engineering := ticketAt(0, domain.TicketStatusResolved, true)
	engineering.Department = domain.DepartmentEngineering
	sales := ticketAt(1, domain.TicketStatusEscalated, false)
	sales.Department = domain.DepartmentSales
	salesAgain := ticketAt(2, domain.TicketStatusResolved, true)
	salesAgain.Department = domain.DepartmentSales

	summary := Aggregate([]domain.Ticket{engineering, sales, salesAgain}, windowStart, windowEnd, testCost())
	if len(summary.DepartmentDistribution) != 6 {
		t.Fatalf("department map must carry all 6 keys, got %d", len(summary.DepartmentDistribution))
	}
	if summary.DepartmentDistribution[domain.DepartmentSales] != 2 {
		t.Fatalf("expected 2 sales tickets, got %d", summary.DepartmentDistribution[domain.DepartmentSales])
	}
	if summary.DepartmentDistribution[domain.DepartmentFinance] != 0 {
		t.Fatal("zero-count departments must still be present")
	}
}

func TestAggregateBucketsUnknownCategory(t *testing.T) {
	rogue := ticketAt(0, domain.TicketStatusResolved, true)
	rogue.Category = domain.Category("Astral Projection Requests")

	summary := Aggregate([]domain.Ticket{rogue}, windowStart, windowEnd, testCost())
	if len(summary.CategoryDistribution) != 15 {
		t.Fatalf("unknown category must not add a key, got %d", len(summary.CategoryDistribution))
	}
	if summary.CategoryDistribution[domain.CategoryGeneralHRInquiries] != 1 {
		t.Fatalf("unknown category should bucket into General HR Inquiries, got %d",
			summary.CategoryDistribution[domain.CategoryGeneralHRInquiries])
	}
	if summary.ResolutionRateByCategory[domain.CategoryGeneralHRInquiries] != 100 {
		t.Fatalf("bucketed resolution must count toward the bucket's rate, got %d",
			summary.ResolutionRateByCategory[domain.CategoryGeneralHRInquiries])
	}
}

func TestAggregateDailyVolumesHaveNoGaps(t *testing.T) {
	tickets := []domain.Ticket{
		ticketAt(0, domain.TicketStatusResolved, true),
		ticketAt(0, domain.TicketStatusEscalated, false),
		ticketAt(29, domain.TicketStatusResolved, true),
	}
	summary := Aggregate(tickets, windowStart, windowEnd, testCost())
	if len(summary.DailyVolumes) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(summary.DailyVolumes))
	}
	for i := 1; i < len(summary.DailyVolumes); i++ {
		prev, _ := time.Parse("2006-01-02", summary.DailyVolumes[i-1].Date)
		cur, _ := time.Parse("2006-01-02", summary.DailyVolumes[i].Date)
		if cur.Sub(prev) != 24*time.Hour {
			t.Fatalf("gap between %s and %s", summary.DailyVolumes[i-1].Date, summary.DailyVolumes[i].Date)
		}
	}
	if summary.DailyVolumes[0].Count != 2 {
		t.Fatalf("expected 2 tickets on day 0, got %d", summary.DailyVolumes[0].Count)
	}
	if summary.DailyVolumes[29].Count != 1 {
		t.Fatalf("expected 1 ticket on day 29, got %d", summary.DailyVolumes[29].Count)
	}
	if summary.DailyVolumes[15].Count != 0 {
		t.Fatalf("expected zero-filled middle day, got %d", summary.DailyVolumes[15].Count)
	}
}

func TestAggregateIgnoresTicketsOutsideWindow(t *testing.T) {
	before := ticketAt(0, domain.TicketStatusResolved, true)
	before.CreatedAt = windowStart.AddDate(0, 0, -5)
	inWindow := ticketAt(3, domain.TicketStatusResolved, true)
	summary := Aggregate([]domain.Ticket{before, inWindow}, windowStart, windowEnd, testCost())
	if summary.TotalTickets != 1 {
		t.Fatalf("expected only in-window ticket, got %d", summary.TotalTickets)
	}
}

func TestAggregateCostSavings(t *testing.T) {
	tickets := []domain.Ticket{
		ticketAt(0, domain.TicketStatusResolved, true),
		ticketAt(1, domain.TicketStatusResolved, true),
	}
	summary := Aggregate(tickets, windowStart, windowEnd, testCost())
	// 2 * 20.8 * 45 / 60 = 31.2
	if diff := summary.EstimatedCostSavings - 31.2; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected savings 31.2, got %v", summary.EstimatedCostSavings)
	}
}
