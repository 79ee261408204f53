package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const registrationColumns = `id, owner_id, wallet_id, denomination, initial_balance,
	max_tx_amount, daily_limit, status, card_id, expires_at, created_at, completed_at`

// RegistrationRepo implements ports.RegistrationRepository.
type RegistrationRepo struct {
	pool Pool
}

// NewRegistrationRepo creates a new RegistrationRepo.
func NewRegistrationRepo(pool Pool) *RegistrationRepo {
	return &RegistrationRepo{pool: pool}
}

func scanRegistration(row pgx.Row) (*domain.PendingRegistration, error) {
	reg := &domain.PendingRegistration{}
	err := row.Scan(
		&reg.ID, &reg.OwnerID, &reg.WalletID, &reg.Denomination, &reg.InitialBalance,
		&reg.MaxTxAmount, &reg.DailyLimit, &reg.Status, &reg.CardID,
		&reg.ExpiresAt, &reg.CreatedAt, &reg.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}

// Create inserts a new pending registration.
func (r *RegistrationRepo) Create(ctx context.Context, reg *domain.PendingRegistration) error {
	query := `INSERT INTO pending_registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		reg.ID, reg.OwnerID, reg.WalletID, reg.Denomination, reg.InitialBalance,
		reg.MaxTxAmount, reg.DailyLimit, reg.Status, reg.CardID,
		reg.ExpiresAt, reg.CreatedAt, reg.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// GetByID fetches a registration by its UUID (without locking).
func (r *RegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM pending_registrations WHERE id = $1`

	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get registration by id: %w", err)
	}
	return reg, nil
}

// GetByIDForUpdate fetches a registration with pessimistic locking.
// This MUST be called within a transaction.
func (r *RegistrationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PendingRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM pending_registrations WHERE id = $1 FOR UPDATE`

	reg, err := scanRegistration(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get registration for update: %w", err)
	}
	return reg, nil
}

// MarkCompleted transitions a registration to COMPLETED and links the card,
// within a transaction.
func (r *RegistrationRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id, cardID uuid.UUID, at time.Time) error {
	query := `UPDATE pending_registrations
		SET status = $1, card_id = $2, completed_at = $3
		WHERE id = $4`

	tag, err := tx.Exec(ctx, query, domain.RegistrationStatusCompleted, cardID, at, id)
	if err != nil {
		return fmt.Errorf("mark registration completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration not found: %s", id)
	}
	return nil
}

// UpdateStatus transitions the registration's lifecycle state.
func (r *RegistrationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	query := `UPDATE pending_registrations SET status = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration not found: %s", id)
	}
	return nil
}
