package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Filtering and search over
// the returned snapshot happen in the query package; the repository only
// scopes by creation time and caps result size.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Ticket, error)
	ListSince(ctx context.Context, from time.Time) ([]domain.Ticket, error)
	MarkEscalated(ctx context.Context, id string) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, employee_name, department, description, description_redacted,
       category, urgency, confidence, status, sensitive, pii_detected,
       auto_resolved, resolution, overridden, created_at, resolved_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	resolution, err := marshalResolution(ticket.Resolution)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO tickets (id, employee_name, department, description, description_redacted,
            category, urgency, confidence, status, sensitive, pii_detected,
            auto_resolved, resolution, overridden, created_at, resolved_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`
	_, err = r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.EmployeeName,
		ticket.Department,
		ticket.Description,
		ticket.RedactedDescription,
		ticket.Category,
		ticket.Urgency,
		ticket.Confidence,
		ticket.Status,
		ticket.Sensitive,
		ticket.PIIDetected,
		ticket.AutoResolved,
		resolution,
		ticket.Overridden,
		ticket.CreatedAt,
		ticket.ResolvedAt,
	)
	return err
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
        SELECT %s, f.helpful, f.comment, f.submitted_at
        FROM tickets t
        LEFT JOIN ticket_feedback f ON f.ticket_id = t.id
        WHERE t.id = $1`, qualifiedColumns())
	row := r.pool.QueryRow(ctx, query, id)
	return scanTicket(row)
}

func (r *ticketRepository) ListRecent(ctx context.Context, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
        SELECT %s, f.helpful, f.comment, f.submitted_at
        FROM tickets t
        LEFT JOIN ticket_feedback f ON f.ticket_id = t.id
        ORDER BY t.created_at DESC
        LIMIT %d`, qualifiedColumns(), limit)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListSince(ctx context.Context, from time.Time) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`
        SELECT %s, f.helpful, f.comment, f.submitted_at
        FROM tickets t
        LEFT JOIN ticket_feedback f ON f.ticket_id = t.id
        WHERE t.created_at >= $1
        ORDER BY t.created_at ASC`, qualifiedColumns())
	rows, err := r.pool.Query(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// MarkEscalated flips a ticket to Escalated on employee override and returns
// the updated record.
func (r *ticketRepository) MarkEscalated(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        UPDATE tickets SET status=$1, overridden=TRUE
        WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.TicketStatusEscalated, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func qualifiedColumns() string {
	return `t.id, t.employee_name, t.department, t.description, t.description_redacted,
       t.category, t.urgency, t.confidence, t.status, t.sensitive, t.pii_detected,
       t.auto_resolved, t.resolution, t.overridden, t.created_at, t.resolved_at`
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket      domain.Ticket
		resolution  []byte
		helpful     *bool
		comment     *string
		submittedAt *time.Time
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.EmployeeName,
		&ticket.Department,
		&ticket.Description,
		&ticket.RedactedDescription,
		&ticket.Category,
		&ticket.Urgency,
		&ticket.Confidence,
		&ticket.Status,
		&ticket.Sensitive,
		&ticket.PIIDetected,
		&ticket.AutoResolved,
		&resolution,
		&ticket.Overridden,
		&ticket.CreatedAt,
		&ticket.ResolvedAt,
		&helpful,
		&comment,
		&submittedAt,
	); err != nil {
		return nil, err
	}
	if len(resolution) > 0 {
		var parsed domain.Resolution
		if err := json.Unmarshal(resolution, &parsed); err != nil {
			return nil, fmt.Errorf("decode resolution: %w", err)
		}
		ticket.Resolution = &parsed
	}
	if helpful != nil {
		fb := domain.Feedback{Helpful: *helpful}
		if comment != nil {
			fb.Comment = *comment
		}
		if submittedAt != nil {
			fb.SubmittedAt = *submittedAt
		}
		ticket.Feedback = &fb
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func marshalResolution(res *domain.Resolution) ([]byte, error) {
	if res == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode resolution: %w", err)
	}
	return encoded, nil
}
