package postgres

import (
	"context"
	"errors"
	"fmt"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IssuerKeyRepo implements ports.IssuerKeyRepository.
type IssuerKeyRepo struct {
	pool Pool
}

// NewIssuerKeyRepo creates a new IssuerKeyRepo.
func NewIssuerKeyRepo(pool Pool) *IssuerKeyRepo {
	return &IssuerKeyRepo{pool: pool}
}

// Create inserts a new issuer key record.
func (r *IssuerKeyRepo) Create(ctx context.Context, rec *domain.IssuerKeyRecord) error {
	query := `INSERT INTO issuer_keys (id, owner_id, encrypted_key, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, rec.ID, rec.OwnerID, rec.EncryptedKey, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert issuer key: %w", err)
	}
	return nil
}

// GetByOwner fetches the issuer key record for an owner.
func (r *IssuerKeyRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.IssuerKeyRecord, error) {
	query := `SELECT id, owner_id, encrypted_key, created_at, last_used_at
		FROM issuer_keys WHERE owner_id = $1`

	rec := &domain.IssuerKeyRecord{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&rec.ID, &rec.OwnerID, &rec.EncryptedKey, &rec.CreatedAt, &rec.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuer key by owner: %w", err)
	}
	return rec, nil
}

// ListAll returns every issuer key record, most recently used first so tap
// decryption usually succeeds on the first candidate.
func (r *IssuerKeyRepo) ListAll(ctx context.Context) ([]domain.IssuerKeyRecord, error) {
	query := `SELECT id, owner_id, encrypted_key, created_at, last_used_at
		FROM issuer_keys ORDER BY last_used_at DESC NULLS LAST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list issuer keys: %w", err)
	}
	defer rows.Close()

	var recs []domain.IssuerKeyRecord
	for rows.Next() {
		var rec domain.IssuerKeyRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.EncryptedKey, &rec.CreatedAt, &rec.LastUsedAt); err != nil {
			return nil, fmt.Errorf("scan issuer key: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issuer keys: %w", err)
	}
	return recs, nil
}

// TouchLastUsed records that the key just authenticated a tap.
func (r *IssuerKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE issuer_keys SET last_used_at = NOW() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("touch issuer key: %w", err)
	}
	return nil
}
