package service

import (
	"context"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// staleUnprocessedAge is how long an expired, unpaid topup record is kept
	// before lazy cleanup removes it.
	staleUnprocessedAge = 24 * time.Hour
	// staleProcessedAge keeps settled records around for reconciliation.
	staleProcessedAge = 30 * 24 * time.Hour
)

// TopupServiceImpl bridges invoice issuance and asynchronous settlement.
// Pending top-ups are durable: a settlement notification that arrives after
// a restart still finds its record, and each payment reference credits the
// card exactly once.
type TopupServiceImpl struct {
	topups     ports.TopupRepository
	cards      ports.CardRepository
	spend      *SpendLimitEnforcer
	payments   ports.PaymentClient
	transactor ports.DBTransactor
	met        *metrics.Metrics
	invoiceTTL time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewTopupService creates a TopupServiceImpl.
func NewTopupService(
	topups ports.TopupRepository,
	cards ports.CardRepository,
	spend *SpendLimitEnforcer,
	payments ports.PaymentClient,
	transactor ports.DBTransactor,
	met *metrics.Metrics,
	invoiceTTL time.Duration,
	log zerolog.Logger,
) *TopupServiceImpl {
	return &TopupServiceImpl{
		topups:     topups,
		cards:      cards,
		spend:      spend,
		payments:   payments,
		transactor: transactor,
		met:        met,
		invoiceTTL: invoiceTTL,
		log:        log,
		now:        time.Now,
	}
}

// CreateInvoice issues a Lightning invoice for the card's wallet and records
// a durable pending top-up keyed by the invoice's payment reference.
func (s *TopupServiceImpl) CreateInvoice(ctx context.Context, cardID uuid.UUID, amount int64, memo string) (*ports.TopupInvoice, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	s.sweep(ctx)

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}
	if card.Status == domain.CardStatusWiped {
		return nil, apperror.ErrCardNotActive()
	}

	if memo == "" {
		memo = "Boltcard top-up"
	}
	inv, err := s.payments.CreateInvoice(ctx, card.WalletID, amount, memo)
	if err != nil {
		return nil, apperror.ErrPaymentClient(err)
	}

	now := s.now().UTC()
	pending := &domain.PendingTopup{
		PaymentRef: inv.PaymentRef,
		CardID:     card.ID,
		Amount:     amount,
		ExpiresAt:  now.Add(s.invoiceTTL),
		CreatedAt:  now,
	}
	if err := s.topups.Create(ctx, pending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pending topup: %w", err))
	}

	s.log.Info().
		Str("card_id", card.ID.String()).
		Str("payment_ref", inv.PaymentRef).
		Int64("amount", amount).
		Msg("topup invoice issued")

	return &ports.TopupInvoice{
		PaymentRef: inv.PaymentRef,
		Bolt11:     inv.Bolt11,
		Amount:     amount,
		ExpiresAt:  pending.ExpiresAt,
	}, nil
}

// Confirm applies the credit for a settled invoice exactly once. The
// processed flip and the balance credit commit in the same transaction, so a
// crash between them cannot double-credit or lose the payment. An invoice
// that settled after its nominal expiry is still honored as long as cleanup
// has not removed the record: the funds arrived either way.
func (s *TopupServiceImpl) Confirm(ctx context.Context, paymentRef string) (*domain.PendingTopup, error) {
	s.sweep(ctx)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	pending, err := s.topups.GetByRefForUpdate(ctx, dbTx, paymentRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock pending topup: %w", err))
	}
	if pending == nil {
		return nil, apperror.ErrNotFound("pending topup")
	}
	if pending.Processed {
		return pending, apperror.ErrAlreadyProcessed()
	}

	now := s.now().UTC()
	flipped, err := s.topups.MarkProcessed(ctx, dbTx, paymentRef, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark topup processed: %w", err))
	}
	if !flipped {
		return pending, apperror.ErrAlreadyProcessed()
	}

	ref := paymentRef
	entry, err := s.spend.Credit(ctx, dbTx, pending.CardID, pending.Amount, domain.CardTransactionTypeTopup, &ref, "topup settled")
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	pending.Processed = true
	pending.ProcessedAt = &now
	s.met.TopupsConfirmed.Inc()
	s.log.Info().
		Str("card_id", pending.CardID.String()).
		Str("payment_ref", paymentRef).
		Int64("amount", pending.Amount).
		Int64("balance", entry.BalanceAfter).
		Msg("topup credited")

	return pending, nil
}

// sweep lazily removes stale records. Best-effort: failures only log.
func (s *TopupServiceImpl) sweep(ctx context.Context) {
	now := s.now().UTC()
	n, err := s.topups.DeleteStale(ctx, now.Add(-staleUnprocessedAge), now.Add(-staleProcessedAge))
	if err != nil {
		s.log.Warn().Err(err).Msg("topup sweep failed")
		return
	}
	if n > 0 {
		s.log.Debug().Int64("removed", n).Msg("stale topups swept")
	}
}
