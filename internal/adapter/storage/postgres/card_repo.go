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

const cardColumns = `id, owner_id, wallet_id, denomination,
	uid, encrypted_uid, uid_hash,
	encrypted_k0, encrypted_k1, encrypted_k2, encrypted_k3, encrypted_k4, key_epoch,
	last_counter, balance, max_tx_amount, daily_limit, daily_spent, daily_reset_at,
	status, created_at, activated_at, last_used_at, disabled_at`

// CardRepo implements ports.CardRepository.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	c := &domain.Card{}
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.WalletID, &c.Denomination,
		&c.UID, &c.EncryptedUID, &c.UIDHash,
		&c.EncryptedK0, &c.EncryptedK1, &c.EncryptedK2, &c.EncryptedK3, &c.EncryptedK4, &c.KeyEpoch,
		&c.LastCounter, &c.Balance, &c.MaxTxAmount, &c.DailyLimit, &c.DailySpent, &c.DailyResetAt,
		&c.Status, &c.CreatedAt, &c.ActivatedAt, &c.LastUsedAt, &c.DisabledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new card within a database transaction.
func (r *CardRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Card) error {
	query := `INSERT INTO cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.OwnerID, c.WalletID, c.Denomination,
		c.UID, c.EncryptedUID, c.UIDHash,
		c.EncryptedK0, c.EncryptedK1, c.EncryptedK2, c.EncryptedK3, c.EncryptedK4, c.KeyEpoch,
		c.LastCounter, c.Balance, c.MaxTxAmount, c.DailyLimit, c.DailySpent, c.DailyResetAt,
		c.Status, c.CreatedAt, c.ActivatedAt, c.LastUsedAt, c.DisabledAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// GetByID fetches a card by its UUID (without locking).
func (r *CardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	c, err := scanCard(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get card by id: %w", err)
	}
	return c, nil
}

// GetByUIDHash fetches a card by its keyed identity hash.
func (r *CardRepo) GetByUIDHash(ctx context.Context, hash string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE uid_hash = $1`

	c, err := scanCard(r.pool.QueryRow(ctx, query, hash))
	if err != nil {
		return nil, fmt.Errorf("get card by uid hash: %w", err)
	}
	return c, nil
}

// GetByPlaintextUID resolves legacy cards created before the hash scheme.
func (r *CardRepo) GetByPlaintextUID(ctx context.Context, uid string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE uid = $1 AND uid_hash IS NULL`

	c, err := scanCard(r.pool.QueryRow(ctx, query, uid))
	if err != nil {
		return nil, fmt.Errorf("get card by plaintext uid: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate fetches a card by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *CardRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 FOR UPDATE`

	c, err := scanCard(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get card for update: %w", err)
	}
	return c, nil
}

// UpdateSpendState writes the post-authorization counter, balance, and daily
// window state within a transaction. Must be called with the row locked.
func (r *CardRepo) UpdateSpendState(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, lastCounter, balance, dailySpent int64, dailyResetAt time.Time) error {
	query := `UPDATE cards
		SET last_counter = $1, balance = $2, daily_spent = $3, daily_reset_at = $4
		WHERE id = $5`

	tag, err := tx.Exec(ctx, query, lastCounter, balance, dailySpent, dailyResetAt, cardID)
	if err != nil {
		return fmt.Errorf("update card spend state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card not found: %s", cardID)
	}
	return nil
}

// BackfillUIDHash migrates a legacy card onto the hash scheme. The uid_hash
// guard makes concurrent backfills of the same card idempotent.
func (r *CardRepo) BackfillUIDHash(ctx context.Context, cardID uuid.UUID, uidHash, encryptedUID string) error {
	query := `UPDATE cards
		SET uid_hash = $1, encrypted_uid = $2, uid = NULL
		WHERE id = $3 AND uid_hash IS NULL`

	_, err := r.pool.Exec(ctx, query, uidHash, encryptedUID, cardID)
	if err != nil {
		return fmt.Errorf("backfill uid hash: %w", err)
	}
	return nil
}

// UpdateStatus transitions the card's lifecycle state.
func (r *CardRepo) UpdateStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus, at time.Time) error {
	query := `UPDATE cards SET status = $1, disabled_at = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, at, cardID)
	if err != nil {
		return fmt.Errorf("update card status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card not found: %s", cardID)
	}
	return nil
}

// RotateKeys installs a new key epoch and its encrypted slot keys, marking
// the card WIPED, within a transaction.
func (r *CardRepo) RotateKeys(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, epoch int32, encK0, encK1, encK2, encK3, encK4 string) error {
	query := `UPDATE cards
		SET key_epoch = $1,
			encrypted_k0 = $2, encrypted_k1 = $3, encrypted_k2 = $4,
			encrypted_k3 = $5, encrypted_k4 = $6,
			status = $7, disabled_at = NOW()
		WHERE id = $8`

	tag, err := tx.Exec(ctx, query, epoch, encK0, encK1, encK2, encK3, encK4, domain.CardStatusWiped, cardID)
	if err != nil {
		return fmt.Errorf("rotate card keys: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card not found: %s", cardID)
	}
	return nil
}

// TouchLastUsed records tap activity on the card.
func (r *CardRepo) TouchLastUsed(ctx context.Context, cardID uuid.UUID, at time.Time) error {
	query := `UPDATE cards SET last_used_at = $1 WHERE id = $2`

	_, err := r.pool.Exec(ctx, query, at, cardID)
	if err != nil {
		return fmt.Errorf("touch card: %w", err)
	}
	return nil
}
