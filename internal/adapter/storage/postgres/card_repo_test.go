package postgres

import (
	"context"
	"testing"
	"time"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCard() *domain.Card {
	hash := "aabbccddeeff00112233445566778899"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Card{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		WalletID:     "wallet-1",
		Denomination: domain.DenominationSat,
		EncryptedUID: "enc_uid",
		UIDHash:      &hash,
		EncryptedK0:  "enc_k0",
		EncryptedK1:  "enc_k1",
		EncryptedK2:  "enc_k2",
		EncryptedK3:  "enc_k3",
		EncryptedK4:  "enc_k4",
		KeyEpoch:     0,
		LastCounter:  7,
		Balance:      5000,
		DailySpent:   100,
		DailyResetAt: now.Add(12 * time.Hour),
		Status:       domain.CardStatusActive,
		CreatedAt:    now,
	}
}

func cardTestColumns() []string {
	return []string{
		"id", "owner_id", "wallet_id", "denomination",
		"uid", "encrypted_uid", "uid_hash",
		"encrypted_k0", "encrypted_k1", "encrypted_k2", "encrypted_k3", "encrypted_k4", "key_epoch",
		"last_counter", "balance", "max_tx_amount", "daily_limit", "daily_spent", "daily_reset_at",
		"status", "created_at", "activated_at", "last_used_at", "disabled_at",
	}
}

func cardRow(c *domain.Card) *pgxmock.Rows {
	return pgxmock.NewRows(cardTestColumns()).AddRow(
		c.ID, c.OwnerID, c.WalletID, c.Denomination,
		c.UID, c.EncryptedUID, c.UIDHash,
		c.EncryptedK0, c.EncryptedK1, c.EncryptedK2, c.EncryptedK3, c.EncryptedK4, c.KeyEpoch,
		c.LastCounter, c.Balance, c.MaxTxAmount, c.DailyLimit, c.DailySpent, c.DailyResetAt,
		c.Status, c.CreatedAt, c.ActivatedAt, c.LastUsedAt, c.DisabledAt,
	)
}

func TestCardRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	c := newTestCard()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cards").
		WithArgs(c.ID, c.OwnerID, c.WalletID, c.Denomination,
			c.UID, c.EncryptedUID, c.UIDHash,
			c.EncryptedK0, c.EncryptedK1, c.EncryptedK2, c.EncryptedK3, c.EncryptedK4, c.KeyEpoch,
			c.LastCounter, c.Balance, c.MaxTxAmount, c.DailyLimit, c.DailySpent, c.DailyResetAt,
			c.Status, c.CreatedAt, c.ActivatedAt, c.LastUsedAt, c.DisabledAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_GetByUIDHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	c := newTestCard()

	mock.ExpectQuery("SELECT .+ FROM cards WHERE uid_hash").
		WithArgs(*c.UIDHash).
		WillReturnRows(cardRow(c))

	result, err := repo.GetByUIDHash(context.Background(), *c.UIDHash)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, c.ID, result.ID)
	assert.Equal(t, c.EncryptedK2, result.EncryptedK2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_GetByUIDHash_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM cards WHERE uid_hash").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(cardTestColumns()))

	result, err := repo.GetByUIDHash(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	c := newTestCard()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM cards WHERE id .+ FOR UPDATE").
		WithArgs(c.ID).
		WillReturnRows(cardRow(c))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, c.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_UpdateSpendState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	cardID := uuid.New()
	resetAt := time.Now().UTC().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cards").
		WithArgs(int64(8), int64(4000), int64(1100), resetAt, cardID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateSpendState(context.Background(), tx, cardID, 8, 4000, 1100, resetAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_UpdateSpendState_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	cardID := uuid.New()
	resetAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cards").
		WithArgs(int64(8), int64(4000), int64(1100), resetAt, cardID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateSpendState(context.Background(), tx, cardID, 8, 4000, 1100, resetAt)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "card not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_BackfillUIDHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	cardID := uuid.New()

	mock.ExpectExec("UPDATE cards").
		WithArgs("new_hash", "enc_uid", cardID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.BackfillUIDHash(context.Background(), cardID, "new_hash", "enc_uid")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_RotateKeys(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	cardID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cards").
		WithArgs(int32(1), "n0", "n1", "n2", "n3", "n4", domain.CardStatusWiped, cardID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RotateKeys(context.Background(), tx, cardID, 1, "n0", "n1", "n2", "n3", "n4")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
