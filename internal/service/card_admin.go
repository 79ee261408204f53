package service

import (
	"context"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CardAdminServiceImpl covers owner-initiated card administration: inspect,
// list the ledger, disable, wipe. Lifecycle transitions are one-directional:
// ACTIVE -> DISABLED -> WIPED, never back.
type CardAdminServiceImpl struct {
	cards      ports.CardRepository
	ledger     ports.CardTransactionRepository
	issuerKeys ports.IssuerKeyRepository
	transactor ports.DBTransactor
	cipher     ports.SecretCipher
	keys       *KeyHierarchy
	reg        *RegistrationServiceImpl
	log        zerolog.Logger
	now        func() time.Time
}

// NewCardAdminService creates a CardAdminServiceImpl.
func NewCardAdminService(
	cards ports.CardRepository,
	ledger ports.CardTransactionRepository,
	issuerKeys ports.IssuerKeyRepository,
	transactor ports.DBTransactor,
	cipher ports.SecretCipher,
	keys *KeyHierarchy,
	reg *RegistrationServiceImpl,
	log zerolog.Logger,
) *CardAdminServiceImpl {
	return &CardAdminServiceImpl{
		cards:      cards,
		ledger:     ledger,
		issuerKeys: issuerKeys,
		transactor: transactor,
		cipher:     cipher,
		keys:       keys,
		reg:        reg,
		log:        log,
		now:        time.Now,
	}
}

// GetCard returns the card if it belongs to ownerID.
func (s *CardAdminServiceImpl) GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.Card, error) {
	return s.ownedCard(ctx, ownerID, cardID)
}

// ListLedger returns a page of the card's ledger, newest first.
func (s *CardAdminServiceImpl) ListLedger(ctx context.Context, ownerID, cardID uuid.UUID, limit, offset int) ([]domain.CardTransaction, error) {
	if _, err := s.ownedCard(ctx, ownerID, cardID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.ledger.ListByCard(ctx, cardID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return entries, nil
}

// Disable takes the card out of service. Only ACTIVE cards can be disabled;
// the transition is permanent short of a wipe.
func (s *CardAdminServiceImpl) Disable(ctx context.Context, ownerID, cardID uuid.UUID) error {
	card, err := s.ownedCard(ctx, ownerID, cardID)
	if err != nil {
		return err
	}
	if card.Status != domain.CardStatusActive {
		return apperror.ErrCardNotActive()
	}
	now := s.now().UTC()
	if err := s.cards.UpdateStatus(ctx, cardID, domain.CardStatusDisabled, now); err != nil {
		return apperror.InternalError(fmt.Errorf("disable card: %w", err))
	}
	s.log.Info().Str("card_id", cardID.String()).Msg("card disabled")
	return nil
}

// Wipe rotates the card onto a fresh key epoch and marks it WIPED. The old
// slot keys become useless for taps immediately; the returned payload lets
// the programming app reset or re-purpose the physical card. Balance and
// ledger history stay intact for reconciliation.
func (s *CardAdminServiceImpl) Wipe(ctx context.Context, ownerID, cardID uuid.UUID) (*ports.ProgramPayload, error) {
	card, err := s.ownedCard(ctx, ownerID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Status == domain.CardStatusWiped {
		return nil, apperror.ErrCardNotActive()
	}

	rec, err := s.issuerKeys.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load issuer key: %w", err))
	}
	if rec == nil {
		return nil, apperror.ErrNotFound("issuer key")
	}
	root, err := s.cipher.Decrypt(rec.EncryptedKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt issuer root: %w", err))
	}
	uid, err := s.cipher.Decrypt(card.EncryptedUID)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt uid: %w", err))
	}

	epoch := card.KeyEpoch + 1
	k0, k1, k2, k3, k4 := s.keys.CardKeys(root, uid, epoch)

	enc := make([]string, 5)
	for i, k := range [][]byte{k0, k1, k2, k3, k4} {
		if enc[i], err = s.cipher.Encrypt(k); err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt slot keys: %w", err))
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.cards.RotateKeys(ctx, dbTx, cardID, epoch, enc[0], enc[1], enc[2], enc[3], enc[4]); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("rotate keys: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("card_id", cardID.String()).
		Int32("key_epoch", epoch).
		Msg("card wiped, key epoch rotated")

	return s.reg.programPayload(cardID, k0, k1, k2, k3, k4), nil
}

// ownedCard loads the card and enforces ownership. A card belonging to a
// different owner is reported as forbidden, not as missing, because the id
// space is owner-visible.
func (s *CardAdminServiceImpl) ownedCard(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}
	if card.OwnerID != ownerID {
		return nil, apperror.ErrForbidden()
	}
	return card, nil
}
