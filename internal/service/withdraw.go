package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	// minWithdrawMsat is the smallest amount a withdraw challenge offers.
	minWithdrawMsat = 1000 // 1 sat

	defaultWithdrawDescription = "Boltcard withdraw"
)

// WithdrawServiceImpl drives the two-phase withdraw protocol.
//
// Phase 1 (tap): authenticate the SUN message and mint a single-use session
// token without moving funds. Phase 2 (callback): claim the session, apply
// the atomic counter/balance mutation, then pay the invoice outside the
// card lock; a payout failure triggers a compensating credit.
type WithdrawServiceImpl struct {
	sun        ports.TapAuthenticator
	cards      ports.CardRepository
	spend      *SpendLimitEnforcer
	sessions   ports.WithdrawSessionStore
	payments   ports.PaymentClient
	met        *metrics.Metrics
	sessionTTL time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewWithdrawService creates a WithdrawServiceImpl.
func NewWithdrawService(
	sun ports.TapAuthenticator,
	cards ports.CardRepository,
	spend *SpendLimitEnforcer,
	sessions ports.WithdrawSessionStore,
	payments ports.PaymentClient,
	met *metrics.Metrics,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *WithdrawServiceImpl {
	return &WithdrawServiceImpl{
		sun:        sun,
		cards:      cards,
		spend:      spend,
		sessions:   sessions,
		payments:   payments,
		met:        met,
		sessionTTL: sessionTTL,
		log:        log,
		now:        time.Now,
	}
}

// HandleTap is phase 1: authenticate the tap, compute the withdrawable
// range from balance and caps, and mint a session token. The SUN counter is
// NOT persisted here — it advances atomically with the debit in phase 2.
func (s *WithdrawServiceImpl) HandleTap(ctx context.Context, piccDataHex, cmacHex string) (*ports.WithdrawChallenge, error) {
	tap, err := s.sun.Authenticate(ctx, piccDataHex, cmacHex)
	if err != nil {
		s.countRejected(err)
		return nil, err
	}
	card := tap.Card

	// Direct Lightning withdraws only make sense for sat-denominated cards;
	// fiat-denominated cards are quoted by the point-of-sale layer.
	if card.Denomination != domain.DenominationSat {
		return nil, apperror.Validation("card denomination does not support direct withdraw")
	}

	maxSat := s.withdrawableNow(card)
	if maxSat <= 0 {
		return nil, apperror.ErrInsufficientFunds()
	}

	k1, err := newSessionToken()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mint k1: %w", err))
	}
	session := &ports.WithdrawSession{
		K1:        k1,
		CardID:    card.ID,
		Counter:   tap.Counter,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Put(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store withdraw session: %w", err))
	}

	if err := s.cards.TouchLastUsed(ctx, card.ID, s.now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("card_id", card.ID.String()).Msg("card last-used touch failed")
	}

	s.met.TapsAccepted.Inc()
	return &ports.WithdrawChallenge{
		K1:                  k1,
		CardID:              card.ID,
		MinWithdrawableMsat: minWithdrawMsat,
		MaxWithdrawableMsat: maxSat * 1000,
		DefaultDescription:  defaultWithdrawDescription,
	}, nil
}

// HandleCallback is phase 2: claim the session (single use), authorize and
// stage the debit atomically, then pay the invoice. The payment call runs
// outside the card lock; on failure the debit is compensated and the error
// is reported as retryable.
func (s *WithdrawServiceImpl) HandleCallback(ctx context.Context, k1, bolt11 string) error {
	session, err := s.sessions.Claim(ctx, k1)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("claim withdraw session: %w", err))
	}
	if session == nil {
		return apperror.ErrSessionNotFound()
	}

	card, err := s.cards.GetByID(ctx, session.CardID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load card: %w", err))
	}
	if card == nil {
		return apperror.ErrCardNotFound()
	}

	amountMsat, err := s.payments.DecodeInvoice(ctx, bolt11)
	if err != nil {
		return apperror.Validation("invalid payment request")
	}
	if amountMsat <= 0 || amountMsat%1000 != 0 {
		return apperror.Validation("payment request must carry a whole-satoshi amount")
	}
	amountSat := amountMsat / 1000

	entry, err := s.spend.AuthorizeWithdraw(ctx, card.ID, session.Counter, amountSat, defaultWithdrawDescription)
	if err != nil {
		s.met.Withdrawals.WithLabelValues("rejected").Inc()
		return err
	}

	// Slow network call, deliberately outside the card row lock.
	paymentRef, err := s.payments.PayInvoice(ctx, card.WalletID, bolt11)
	if err != nil {
		if _, rerr := s.spend.ReleaseWithdraw(ctx, card.ID, amountSat, "payout failed, compensating credit"); rerr != nil {
			// The card is now under-credited; this needs operator attention.
			s.log.Error().Err(rerr).
				Str("card_id", card.ID.String()).
				Int64("amount", amountSat).
				Msg("compensating credit failed after payout failure")
		}
		s.met.Withdrawals.WithLabelValues("payout_failed").Inc()
		return apperror.ErrPaymentClient(err)
	}

	s.met.Withdrawals.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("card_id", card.ID.String()).
		Str("ledger_entry", entry.ID.String()).
		Str("payment_ref", paymentRef).
		Int64("amount", amountSat).
		Msg("withdraw paid")
	return nil
}

// withdrawableNow computes the maximum amount a withdraw may request right
// now: balance, capped by the per-transaction limit and by what remains of
// the rolling daily window.
func (s *WithdrawServiceImpl) withdrawableNow(card *domain.Card) int64 {
	avail := card.Balance
	if card.MaxTxAmount != nil && *card.MaxTxAmount < avail {
		avail = *card.MaxTxAmount
	}
	if card.DailyLimit != nil {
		remaining := *card.DailyLimit
		if s.now().UTC().Before(card.DailyResetAt) {
			remaining -= card.DailySpent
		}
		if remaining < 0 {
			remaining = 0
		}
		if remaining < avail {
			avail = remaining
		}
	}
	return avail
}

func (s *WithdrawServiceImpl) countRejected(err error) {
	code := "SYS_000"
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	s.met.TapsRejected.WithLabelValues(code).Inc()
}

// newSessionToken mints the k1 challenge value: 16 random bytes, hex.
func newSessionToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
