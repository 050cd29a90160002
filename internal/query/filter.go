// Package query filters a snapshot of the ticket collection. Functions here
// are pure and order-preserving, safe for any number of concurrent readers.
package query

import (
	"strings"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// Filter holds the exact-match predicates. Zero values match everything.
type Filter struct {
	Status     domain.TicketStatus
	Category   domain.Category
	Department domain.Department
}

// Apply returns the subsequence of tickets matching every active predicate,
// in input order. Search text of length >= 1 matches case-insensitively as a
// substring of the description or employee name; active predicates combine
// with AND. An empty result is a valid result.
func Apply(tickets []domain.Ticket, filter Filter, search string) []domain.Ticket {
	needle := strings.ToLower(search)
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Department != "" && t.Department != filter.Department {
			continue
		}
		if needle != "" && !matchesSearch(t, needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t domain.Ticket, needle string) bool {
	return strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.EmployeeName), needle)
}
