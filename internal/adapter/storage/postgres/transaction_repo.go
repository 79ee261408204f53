package postgres

import (
	"context"
	"errors"
	"fmt"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CardTransactionRepo implements ports.CardTransactionRepository. The table
// is append-only; there is no update or delete path.
type CardTransactionRepo struct {
	pool Pool
}

// NewCardTransactionRepo creates a new CardTransactionRepo.
func NewCardTransactionRepo(pool Pool) *CardTransactionRepo {
	return &CardTransactionRepo{pool: pool}
}

// Append inserts a ledger entry within a database transaction.
func (r *CardTransactionRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.CardTransaction) error {
	query := `INSERT INTO card_transactions (id, card_id, tx_type, amount, balance_after, payment_ref, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.CardID, e.TxType, e.Amount, e.BalanceAfter, e.PaymentRef, e.Memo, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByCard returns a page of the card's ledger, newest first.
func (r *CardTransactionRepo) ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]domain.CardTransaction, error) {
	query := `SELECT id, card_id, tx_type, amount, balance_after, payment_ref, memo, created_at
		FROM card_transactions WHERE card_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, cardID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CardTransaction
	for rows.Next() {
		var e domain.CardTransaction
		if err := rows.Scan(&e.ID, &e.CardID, &e.TxType, &e.Amount, &e.BalanceAfter, &e.PaymentRef, &e.Memo, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

// GetLatest returns the card's most recent ledger entry, nil if none exist.
func (r *CardTransactionRepo) GetLatest(ctx context.Context, cardID uuid.UUID) (*domain.CardTransaction, error) {
	query := `SELECT id, card_id, tx_type, amount, balance_after, payment_ref, memo, created_at
		FROM card_transactions WHERE card_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	e := &domain.CardTransaction{}
	err := r.pool.QueryRow(ctx, query, cardID).Scan(
		&e.ID, &e.CardID, &e.TxType, &e.Amount, &e.BalanceAfter, &e.PaymentRef, &e.Memo, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest ledger entry: %w", err)
	}
	return e, nil
}
