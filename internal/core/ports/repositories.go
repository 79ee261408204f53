package ports

import (
	"context"
	"time"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// IssuerKeyRepository defines persistence for per-owner root secrets.
type IssuerKeyRepository interface {
	Create(ctx context.Context, rec *domain.IssuerKeyRecord) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.IssuerKeyRecord, error)
	// ListAll returns every issuer key record. Tap decryption iterates these
	// as candidate roots; the set is bounded by the number of owners.
	ListAll(ctx context.Context) ([]domain.IssuerKeyRecord, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}

// CardRepository defines persistence for cards.
// Methods accepting pgx.Tx run inside transaction blocks with the card row
// locked FOR UPDATE; any counter/balance mutation must go through them.
type CardRepository interface {
	Create(ctx context.Context, tx pgx.Tx, card *domain.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	GetByUIDHash(ctx context.Context, hash string) (*domain.Card, error)
	// GetByPlaintextUID resolves legacy cards created before the hash scheme.
	GetByPlaintextUID(ctx context.Context, uid string) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Card, error)
	// UpdateSpendState writes the post-authorization counter/balance/daily
	// window state. Must be called with the row locked.
	UpdateSpendState(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, lastCounter, balance, dailySpent int64, dailyResetAt time.Time) error
	// BackfillUIDHash lazily migrates a legacy card to the hash scheme.
	BackfillUIDHash(ctx context.Context, cardID uuid.UUID, uidHash, encryptedUID string) error
	UpdateStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus, at time.Time) error
	// RotateKeys installs a new key epoch and its encrypted slot keys (wipe).
	RotateKeys(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, epoch int32, encK0, encK1, encK2, encK3, encK4 string) error
	TouchLastUsed(ctx context.Context, cardID uuid.UUID, at time.Time) error
}

// CardTransactionRepository defines persistence for the append-only ledger.
type CardTransactionRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.CardTransaction) error
	ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]domain.CardTransaction, error)
	GetLatest(ctx context.Context, cardID uuid.UUID) (*domain.CardTransaction, error)
}

// RegistrationRepository defines persistence for pending registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.PendingRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRegistration, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PendingRegistration, error)
	MarkCompleted(ctx context.Context, tx pgx.Tx, id, cardID uuid.UUID, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error
}

// TopupRepository defines persistence for durable pending top-ups.
type TopupRepository interface {
	Create(ctx context.Context, t *domain.PendingTopup) error
	GetByRef(ctx context.Context, paymentRef string) (*domain.PendingTopup, error)
	GetByRefForUpdate(ctx context.Context, tx pgx.Tx, paymentRef string) (*domain.PendingTopup, error)
	// MarkProcessed flips processed=false -> true. Returns false if the row
	// was already processed (duplicate settlement notification).
	MarkProcessed(ctx context.Context, tx pgx.Tx, paymentRef string, at time.Time) (bool, error)
	// DeleteStale removes unprocessed records expired before unprocessedBefore
	// and processed records older than processedBefore. Invoked lazily.
	DeleteStale(ctx context.Context, unprocessedBefore, processedBefore time.Time) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
