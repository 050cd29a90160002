// Package analytics derives dashboard KPIs from ticket history. Aggregation
// is stateless: callers hand in a snapshot and a window, nothing is cached
// here, and insufficient data degrades to zeros rather than errors.
package analytics

import (
	"math"
	"time"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// CostModel holds the human-handling constants behind the estimated savings
// figure. These are configuration inputs, never derived from ticket data.
type CostModel struct {
	HandlingMinutes float64
	HourlyCost      float64
}

// DailyVolume is one calendar day's ticket count.
type DailyVolume struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary is the aggregated KPI set for one trailing window.
type Summary struct {
	TotalTickets             int                         `json:"total_tickets"`
	AutoResolvedCount        int                         `json:"auto_resolved_count"`
	EscalatedCount           int                         `json:"escalated_count"`
	DeflectionRate           int                         `json:"deflection_rate"`
	AvgResolutionTimeSeconds float64                     `json:"avg_resolution_time_seconds"`
	AvgCSATScore             float64                     `json:"avg_csat_score"`
	CategoryDistribution     map[domain.Category]int     `json:"category_distribution"`
	UrgencyDistribution      map[domain.Urgency]int      `json:"urgency_distribution"`
	DepartmentDistribution   map[domain.Department]int   `json:"department_distribution"`
	ResolutionRateByCategory map[domain.Category]int     `json:"resolution_rate_by_category"`
	DailyVolumes             []DailyVolume               `json:"daily_volumes"`
	EstimatedCostSavings     float64                     `json:"estimated_cost_savings"`
	WindowStart              time.Time                   `json:"window_start"`
	WindowEnd                time.Time                   `json:"window_end"`
	GeneratedAt              time.Time                   `json:"generated_at"`
}

// Binary feedback maps onto the 1-5 satisfaction scale as helpful=5,
// unhelpful=1. This is the one place that mapping exists.
func csatScore(helpful bool) float64 {
	if helpful {
		return 5
	}
	return 1
}

const dateLayout = "2006-01-02"

// Aggregate computes the KPI summary for tickets created inside
// [windowStart, windowEnd]. Distributions always carry every canonical
// category and urgency key, and the daily series covers every calendar day
// of the window ascending with no gaps.
func Aggregate(tickets []domain.Ticket, windowStart, windowEnd time.Time, cost CostModel) Summary {
	summary := Summary{
		CategoryDistribution:     make(map[domain.Category]int, len(domain.Categories())),
		UrgencyDistribution:      make(map[domain.Urgency]int, len(domain.Urgencies())),
		DepartmentDistribution:   make(map[domain.Department]int, len(domain.Departments())),
		ResolutionRateByCategory: make(map[domain.Category]int, len(domain.Categories())),
		WindowStart:              windowStart,
		WindowEnd:                windowEnd,
		GeneratedAt:              time.Now().UTC(),
	}
	for _, cat := range domain.Categories() {
		summary.CategoryDistribution[cat] = 0
		summary.ResolutionRateByCategory[cat] = 0
	}
	for _, level := range domain.Urgencies() {
		summary.UrgencyDistribution[level] = 0
	}
	for _, dep := range domain.Departments() {
		summary.DepartmentDistribution[dep] = 0
	}

	daily := map[string]int{}
	resolvedByCategory := map[domain.Category]int{}
	var resolutionSeconds float64
	var resolutionSamples int
	var csatTotal float64
	var csatSamples int

	for _, t := range tickets {
		if t.CreatedAt.Before(windowStart) || t.CreatedAt.After(windowEnd) {
			continue
		}
		summary.TotalTickets++
		if t.AutoResolved {
			summary.AutoResolvedCount++
		}
		if t.Status == domain.TicketStatusEscalated {
			summary.EscalatedCount++
		}
		if t.Category != "" {
			cat := normalizeCategory(t.Category)
			summary.CategoryDistribution[cat]++
			if t.Status == domain.TicketStatusResolved {
				resolvedByCategory[cat]++
			}
		}
		if t.Urgency != "" {
			summary.UrgencyDistribution[t.Urgency]++
		}
		if domain.ValidDepartment(t.Department) {
			summary.DepartmentDistribution[t.Department]++
		}
		if t.ResolvedAt != nil {
			resolutionSeconds += t.ResolvedAt.Sub(t.CreatedAt).Seconds()
			resolutionSamples++
		}
		if t.Feedback != nil {
			csatTotal += csatScore(t.Feedback.Helpful)
			csatSamples++
		}
		daily[t.CreatedAt.UTC().Format(dateLayout)]++
	}

	if summary.TotalTickets > 0 {
		summary.DeflectionRate = roundPercent(summary.AutoResolvedCount, summary.TotalTickets)
	}
	if resolutionSamples > 0 {
		summary.AvgResolutionTimeSeconds = resolutionSeconds / float64(resolutionSamples)
	}
	if csatSamples > 0 {
		summary.AvgCSATScore = csatTotal / float64(csatSamples)
	}
	for cat, resolved := range resolvedByCategory {
		if total := summary.CategoryDistribution[cat]; total > 0 {
			summary.ResolutionRateByCategory[cat] = roundPercent(resolved, total)
		}
	}

	summary.DailyVolumes = fillDailyVolumes(daily, windowStart, windowEnd)
	summary.EstimatedCostSavings = float64(summary.AutoResolvedCount) * cost.HandlingMinutes * cost.HourlyCost / 60

	return summary
}

// normalizeCategory buckets out-of-contract classifier output into General HR
// Inquiries so the distribution maps never grow past the canonical key set.
func normalizeCategory(c domain.Category) domain.Category {
	if domain.ValidCategory(c) {
		return c
	}
	return domain.CategoryGeneralHRInquiries
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// fillDailyVolumes emits one entry per calendar day, zero-filled, ascending.
func fillDailyVolumes(daily map[string]int, windowStart, windowEnd time.Time) []DailyVolume {
	start := windowStart.UTC().Truncate(24 * time.Hour)
	end := windowEnd.UTC().Truncate(24 * time.Hour)
	var out []DailyVolume
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		out = append(out, DailyVolume{Date: date, Count: daily[date]})
	}
	return out
}
