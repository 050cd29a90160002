package domain

// BadgeVariant names the visual treatment the portal applies to a status or
// urgency value. Every consumer renders from this one table.
type BadgeVariant string

const BadgeDefault BadgeVariant = "default"

var statusBadges = map[TicketStatus]BadgeVariant{
	TicketStatusNew:        "new",
	TicketStatusInProgress: "inProgress",
	TicketStatusResolved:   "resolved",
	TicketStatusEscalated:  "escalated",
}

var urgencyBadges = map[Urgency]BadgeVariant{
	UrgencyLow:      "low",
	UrgencyMedium:   "medium",
	UrgencyHigh:     "high",
	UrgencyCritical: "critical",
}

// StatusBadge returns the badge variant for a ticket status.
func StatusBadge(s TicketStatus) BadgeVariant {
	if v, ok := statusBadges[s]; ok {
		return v
	}
	return BadgeDefault
}

// UrgencyBadge returns the badge variant for an urgency level.
func UrgencyBadge(u Urgency) BadgeVariant {
	if v, ok := urgencyBadges[u]; ok {
		return v
	}
	return BadgeDefault
}
