package service

import (
	"context"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// dailyWindow is the rolling daily-cap window. The reset instant is anchored
// at last-reset-plus-24h, never at a calendar boundary.
const dailyWindow = 24 * time.Hour

// SpendLimitEnforcer atomically authorizes and applies balance mutations
// against one card row. Every mutation runs with the row locked FOR UPDATE,
// so concurrent taps for the same card serialize here: the loser of a race
// observes the winner's committed counter/balance and gets the matching
// typed rejection, never a generic retry.
type SpendLimitEnforcer struct {
	cards      ports.CardRepository
	ledger     ports.CardTransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewSpendLimitEnforcer creates a SpendLimitEnforcer.
func NewSpendLimitEnforcer(
	cards ports.CardRepository,
	ledger ports.CardTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SpendLimitEnforcer {
	return &SpendLimitEnforcer{
		cards:      cards,
		ledger:     ledger,
		transactor: transactor,
		log:        log,
		now:        time.Now,
	}
}

// AuthorizeWithdraw debits amount and advances the SUN counter in a single
// atomic unit: counter advance, balance debit, daily-spent increment, and
// ledger append all commit together or not at all.
func (e *SpendLimitEnforcer) AuthorizeWithdraw(ctx context.Context, cardID uuid.UUID, counter, amount int64, memo string) (*domain.CardTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := e.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	card, err := e.cards.GetByIDForUpdate(ctx, dbTx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}
	if !card.IsActive() {
		return nil, apperror.ErrCardNotActive()
	}

	// Re-check under the lock: a concurrent tap that committed first has
	// already advanced the counter, and this attempt is now a replay.
	if counter <= card.LastCounter {
		return nil, apperror.ErrReplayOrStaleCounter()
	}

	now := e.now().UTC()
	dailySpent, dailyResetAt := card.DailySpent, card.DailyResetAt
	if !now.Before(dailyResetAt) {
		dailySpent = 0
		dailyResetAt = now.Add(dailyWindow)
	}

	if card.MaxTxAmount != nil && amount > *card.MaxTxAmount {
		return nil, apperror.ErrOverTxCap()
	}
	if card.DailyLimit != nil && dailySpent+amount > *card.DailyLimit {
		return nil, apperror.ErrOverDailyCap()
	}
	if amount > card.Balance {
		return nil, apperror.ErrInsufficientFunds()
	}

	newBalance := card.Balance - amount
	if err := e.cards.UpdateSpendState(ctx, dbTx, card.ID, counter, newBalance, dailySpent+amount, dailyResetAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update spend state: %w", err))
	}

	entry := &domain.CardTransaction{
		ID:           uuid.New(),
		CardID:       card.ID,
		TxType:       domain.CardTransactionTypeWithdraw,
		Amount:       -amount,
		BalanceAfter: newBalance,
		Memo:         memo,
		CreatedAt:    now,
	}
	if err := e.ledger.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	e.log.Info().
		Str("card_id", card.ID.String()).
		Int64("amount", amount).
		Int64("balance", newBalance).
		Int64("counter", counter).
		Msg("withdraw authorized")

	return entry, nil
}

// ReleaseWithdraw compensates a withdraw whose external payout failed after
// authorization: the amount is credited back and the daily-spent increment
// released, so card state reflects "no money moved". The consumed counter
// stays advanced — the tap can never be honored twice.
func (e *SpendLimitEnforcer) ReleaseWithdraw(ctx context.Context, cardID uuid.UUID, amount int64, memo string) (*domain.CardTransaction, error) {
	dbTx, err := e.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	card, err := e.cards.GetByIDForUpdate(ctx, dbTx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}

	dailySpent := card.DailySpent - amount
	if dailySpent < 0 {
		dailySpent = 0
	}
	newBalance := card.Balance + amount

	if err := e.cards.UpdateSpendState(ctx, dbTx, card.ID, card.LastCounter, newBalance, dailySpent, card.DailyResetAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update spend state: %w", err))
	}

	entry := &domain.CardTransaction{
		ID:           uuid.New(),
		CardID:       card.ID,
		TxType:       domain.CardTransactionTypeAdjust,
		Amount:       amount,
		BalanceAfter: newBalance,
		Memo:         memo,
		CreatedAt:    e.now().UTC(),
	}
	if err := e.ledger.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	e.log.Warn().
		Str("card_id", card.ID.String()).
		Int64("amount", amount).
		Msg("withdraw released, compensating credit applied")

	return entry, nil
}

// Credit applies a positive balance mutation inside the caller's transaction.
// Used by top-up settlement so the credit commits atomically with the
// processed flag, and by registration for the initial balance entry.
func (e *SpendLimitEnforcer) Credit(ctx context.Context, dbTx pgx.Tx, cardID uuid.UUID, amount int64, txType domain.CardTransactionType, paymentRef *string, memo string) (*domain.CardTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	card, err := e.cards.GetByIDForUpdate(ctx, dbTx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}

	newBalance := card.Balance + amount
	if err := e.cards.UpdateSpendState(ctx, dbTx, card.ID, card.LastCounter, newBalance, card.DailySpent, card.DailyResetAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update spend state: %w", err))
	}

	entry := &domain.CardTransaction{
		ID:           uuid.New(),
		CardID:       card.ID,
		TxType:       txType,
		Amount:       amount,
		BalanceAfter: newBalance,
		PaymentRef:   paymentRef,
		Memo:         memo,
		CreatedAt:    e.now().UTC(),
	}
	if err := e.ledger.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger entry: %w", err))
	}
	return entry, nil
}
