package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TopupRepo implements ports.TopupRepository. Pending top-ups are keyed by
// the invoice's payment reference, which the settlement notification carries.
type TopupRepo struct {
	pool Pool
}

// NewTopupRepo creates a new TopupRepo.
func NewTopupRepo(pool Pool) *TopupRepo {
	return &TopupRepo{pool: pool}
}

func scanTopup(row pgx.Row) (*domain.PendingTopup, error) {
	t := &domain.PendingTopup{}
	err := row.Scan(
		&t.PaymentRef, &t.CardID, &t.Amount, &t.ExpiresAt,
		&t.Processed, &t.ProcessedAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new pending top-up.
func (r *TopupRepo) Create(ctx context.Context, t *domain.PendingTopup) error {
	query := `INSERT INTO pending_topups (payment_ref, card_id, amount, expires_at, processed, processed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		t.PaymentRef, t.CardID, t.Amount, t.ExpiresAt, t.Processed, t.ProcessedAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending topup: %w", err)
	}
	return nil
}

// GetByRef fetches a pending top-up by payment reference (without locking).
func (r *TopupRepo) GetByRef(ctx context.Context, paymentRef string) (*domain.PendingTopup, error) {
	query := `SELECT payment_ref, card_id, amount, expires_at, processed, processed_at, created_at
		FROM pending_topups WHERE payment_ref = $1`

	t, err := scanTopup(r.pool.QueryRow(ctx, query, paymentRef))
	if err != nil {
		return nil, fmt.Errorf("get pending topup: %w", err)
	}
	return t, nil
}

// GetByRefForUpdate fetches a pending top-up with pessimistic locking.
// This MUST be called within a transaction.
func (r *TopupRepo) GetByRefForUpdate(ctx context.Context, tx pgx.Tx, paymentRef string) (*domain.PendingTopup, error) {
	query := `SELECT payment_ref, card_id, amount, expires_at, processed, processed_at, created_at
		FROM pending_topups WHERE payment_ref = $1 FOR UPDATE`

	t, err := scanTopup(tx.QueryRow(ctx, query, paymentRef))
	if err != nil {
		return nil, fmt.Errorf("get pending topup for update: %w", err)
	}
	return t, nil
}

// MarkProcessed flips processed from false to true within a transaction.
// Returns false when the row was already processed, so duplicate settlement
// notifications turn into no-ops.
func (r *TopupRepo) MarkProcessed(ctx context.Context, tx pgx.Tx, paymentRef string, at time.Time) (bool, error) {
	query := `UPDATE pending_topups
		SET processed = TRUE, processed_at = $1
		WHERE payment_ref = $2 AND processed = FALSE`

	tag, err := tx.Exec(ctx, query, at, paymentRef)
	if err != nil {
		return false, fmt.Errorf("mark topup processed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteStale removes unprocessed records that expired before
// unprocessedBefore and processed records older than processedBefore.
func (r *TopupRepo) DeleteStale(ctx context.Context, unprocessedBefore, processedBefore time.Time) (int64, error) {
	query := `DELETE FROM pending_topups
		WHERE (processed = FALSE AND expires_at < $1)
		   OR (processed = TRUE AND processed_at < $2)`

	tag, err := r.pool.Exec(ctx, query, unprocessedBefore, processedBefore)
	if err != nil {
		return 0, fmt.Errorf("delete stale topups: %w", err)
	}
	return tag.RowsAffected(), nil
}
