package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistrationServiceImpl decouples card configuration from physical card
// possession: an owner pre-configures wallet, limits and balance, gets a
// scannable deeplink, and the card record is created when the programming
// app first presents the hardware id against that registration.
type RegistrationServiceImpl struct {
	regs       ports.RegistrationRepository
	cards      ports.CardRepository
	issuerKeys ports.IssuerKeyRepository
	spend      *SpendLimitEnforcer
	transactor ports.DBTransactor
	cipher     ports.SecretCipher
	keys       *KeyHierarchy
	resolver   *IdentityResolver
	baseURL    string
	ttl        time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewRegistrationService creates a RegistrationServiceImpl.
func NewRegistrationService(
	regs ports.RegistrationRepository,
	cards ports.CardRepository,
	issuerKeys ports.IssuerKeyRepository,
	spend *SpendLimitEnforcer,
	transactor ports.DBTransactor,
	cipher ports.SecretCipher,
	keys *KeyHierarchy,
	resolver *IdentityResolver,
	baseURL string,
	ttl time.Duration,
	log zerolog.Logger,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		regs:       regs,
		cards:      cards,
		issuerKeys: issuerKeys,
		spend:      spend,
		transactor: transactor,
		cipher:     cipher,
		keys:       keys,
		resolver:   resolver,
		baseURL:    strings.TrimRight(baseURL, "/"),
		ttl:        ttl,
		log:        log,
		now:        time.Now,
	}
}

// Begin creates a PendingRegistration and returns it with the deeplink the
// owner encodes in a scannable code.
func (s *RegistrationServiceImpl) Begin(ctx context.Context, req ports.BeginRegistrationRequest) (*domain.PendingRegistration, string, error) {
	switch req.Denomination {
	case domain.DenominationSat, domain.DenominationFiatCent:
	default:
		return nil, "", apperror.Validation("unknown denomination")
	}
	if req.WalletID == "" {
		return nil, "", apperror.Validation("wallet id is required")
	}
	if req.InitialBalance < 0 {
		return nil, "", apperror.ErrInvalidAmount()
	}
	if req.MaxTxAmount != nil && *req.MaxTxAmount <= 0 {
		return nil, "", apperror.ErrInvalidAmount()
	}
	if req.DailyLimit != nil && *req.DailyLimit <= 0 {
		return nil, "", apperror.ErrInvalidAmount()
	}

	now := s.now().UTC()
	reg := &domain.PendingRegistration{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		WalletID:       req.WalletID,
		Denomination:   req.Denomination,
		InitialBalance: req.InitialBalance,
		MaxTxAmount:    req.MaxTxAmount,
		DailyLimit:     req.DailyLimit,
		Status:         domain.RegistrationStatusPending,
		ExpiresAt:      now.Add(s.ttl),
		CreatedAt:      now,
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("create registration: %w", err))
	}

	completeURL := fmt.Sprintf("%s/ln/registrations/%s", s.baseURL, reg.ID)
	deeplink := "boltcard://program?url=" + url.QueryEscape(completeURL)

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("owner_id", req.OwnerID.String()).
		Time("expires_at", reg.ExpiresAt).
		Msg("registration started")

	return reg, deeplink, nil
}

// Complete binds a physical card to a pending registration. Idempotency: a
// registration completes exactly once; later attempts fail with distinct
// lifecycle errors and no side effects.
func (s *RegistrationServiceImpl) Complete(ctx context.Context, registrationID uuid.UUID, uidHex string) (*ports.ProgramPayload, error) {
	uid, err := hex.DecodeString(uidHex)
	if err != nil || len(uid) != uidLen {
		return nil, apperror.Validation("hardware id must be 7 bytes hex")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	reg, err := s.regs.GetByIDForUpdate(ctx, dbTx, registrationID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock registration: %w", err))
	}
	if reg == nil {
		return nil, apperror.ErrNotFound("registration")
	}

	switch reg.Status {
	case domain.RegistrationStatusCompleted:
		return nil, apperror.ErrAlreadyCompleted()
	case domain.RegistrationStatusCancelled:
		return nil, apperror.ErrCancelled()
	case domain.RegistrationStatusExpired:
		return nil, apperror.ErrExpired("registration")
	}

	now := s.now().UTC()
	if now.After(reg.ExpiresAt) {
		// The expiry mark runs on its own connection and must outlive this
		// rejected completion, so release the row lock first. Holding it
		// here would block the UPDATE on our own lock.
		_ = dbTx.Rollback(ctx)
		if err := s.regs.UpdateStatus(ctx, reg.ID, domain.RegistrationStatusExpired); err != nil {
			s.log.Warn().Err(err).Str("registration_id", reg.ID.String()).Msg("expire mark failed")
		}
		return nil, apperror.ErrExpired("registration")
	}

	root, err := s.ownerRoot(ctx, reg.OwnerID)
	if err != nil {
		return nil, err
	}

	uidHash := s.resolver.Hash(root, uid)
	if existing, err := s.cards.GetByUIDHash(ctx, uidHash); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check uid hash: %w", err))
	} else if existing != nil {
		return nil, apperror.Validation("card is already registered")
	}

	const epoch = int32(0)
	k0, k1, k2, k3, k4 := s.keys.CardKeys(root, uid, epoch)

	card := &domain.Card{
		ID:           uuid.New(),
		OwnerID:      reg.OwnerID,
		WalletID:     reg.WalletID,
		Denomination: reg.Denomination,
		UIDHash:      &uidHash,
		KeyEpoch:     epoch,
		LastCounter:  0,
		Balance:      0,
		MaxTxAmount:  reg.MaxTxAmount,
		DailyLimit:   reg.DailyLimit,
		DailySpent:   0,
		DailyResetAt: now.Add(dailyWindow),
		Status:       domain.CardStatusActive,
		CreatedAt:    now,
		ActivatedAt:  &now,
	}
	if card.EncryptedUID, err = s.cipher.Encrypt(uid); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt uid: %w", err))
	}
	if err := s.encryptSlots(card, k0, k1, k2, k3, k4); err != nil {
		return nil, err
	}

	if err := s.cards.Create(ctx, dbTx, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create card: %w", err))
	}

	if reg.InitialBalance > 0 {
		if _, err := s.spend.Credit(ctx, dbTx, card.ID, reg.InitialBalance, domain.CardTransactionTypeAdjust, nil, "initial balance"); err != nil {
			return nil, err
		}
	}

	if err := s.regs.MarkCompleted(ctx, dbTx, reg.ID, card.ID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark registration completed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("card_id", card.ID.String()).
		Msg("registration completed, card created")

	return s.programPayload(card.ID, k0, k1, k2, k3, k4), nil
}

// ownerRoot loads the owner's root secret, creating the issuer key record on
// first issuance.
func (s *RegistrationServiceImpl) ownerRoot(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	rec, err := s.issuerKeys.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load issuer key: %w", err))
	}
	if rec != nil {
		root, err := s.cipher.Decrypt(rec.EncryptedKey)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt issuer root: %w", err))
		}
		return root, nil
	}

	root := make([]byte, rootKeyLen)
	if _, err := rand.Read(root); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate issuer root: %w", err))
	}
	encrypted, err := s.cipher.Encrypt(root)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt issuer root: %w", err))
	}
	rec = &domain.IssuerKeyRecord{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		EncryptedKey: encrypted,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.issuerKeys.Create(ctx, rec); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create issuer key: %w", err))
	}
	s.log.Info().Str("owner_id", ownerID.String()).Msg("issuer root created")
	return root, nil
}

func (s *RegistrationServiceImpl) encryptSlots(card *domain.Card, k0, k1, k2, k3, k4 []byte) error {
	var err error
	if card.EncryptedK0, err = s.cipher.Encrypt(k0); err == nil {
		if card.EncryptedK1, err = s.cipher.Encrypt(k1); err == nil {
			if card.EncryptedK2, err = s.cipher.Encrypt(k2); err == nil {
				if card.EncryptedK3, err = s.cipher.Encrypt(k3); err == nil {
					card.EncryptedK4, err = s.cipher.Encrypt(k4)
				}
			}
		}
	}
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt slot keys: %w", err))
	}
	return nil
}

func (s *RegistrationServiceImpl) programPayload(cardID uuid.UUID, k0, k1, k2, k3, k4 []byte) *ports.ProgramPayload {
	// The card emits this template with p/c filled per tap.
	lnurlwBase := "lnurlw://" + strings.TrimPrefix(strings.TrimPrefix(s.baseURL, "https://"), "http://") + "/ln/withdraw"
	return &ports.ProgramPayload{
		CardID:     cardID,
		K0:         hex.EncodeToString(k0),
		K1:         hex.EncodeToString(k1),
		K2:         hex.EncodeToString(k2),
		K3:         hex.EncodeToString(k3),
		K4:         hex.EncodeToString(k4),
		LNURLWBase: lnurlwBase,
	}
}
