package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// ErrFeedbackExists signals a second feedback submission for the same ticket.
var ErrFeedbackExists = errors.New("feedback already recorded for ticket")

// FeedbackRepository persists write-once resolution feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, ticketID string, feedback domain.Feedback) error
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository instantiates repository.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, ticketID string, feedback domain.Feedback) error {
	submittedAt := feedback.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}
	const query = `
        INSERT INTO ticket_feedback (ticket_id, helpful, comment, submitted_at)
        VALUES ($1,$2,$3,$4)`
	_, err := r.pool.Exec(ctx, query, ticketID, feedback.Helpful, feedback.Comment, submittedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on ticket_id enforces write-once.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrFeedbackExists
		}
		return err
	}
	return nil
}
