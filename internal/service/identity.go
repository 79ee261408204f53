package service

import (
	"context"
	"encoding/hex"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// IdentityResolver maps a hardware id to a stored card without persisting or
// logging the raw id outside the encrypted key material. Modern cards are
// indexed by the keyed identity hash; legacy cards created before the hash
// scheme are resolved by their stored plaintext uid and lazily migrated.
type IdentityResolver struct {
	cards  ports.CardRepository
	cipher ports.SecretCipher
	keys   *KeyHierarchy
	log    zerolog.Logger
}

// NewIdentityResolver creates an IdentityResolver.
func NewIdentityResolver(cards ports.CardRepository, cipher ports.SecretCipher, keys *KeyHierarchy, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{cards: cards, cipher: cipher, keys: keys, log: log}
}

// Hash returns the hex identity hash of uid under root.
func (r *IdentityResolver) Hash(root, uid []byte) string {
	return hex.EncodeToString(r.keys.IdentityHash(root, uid))
}

// Resolve looks up the card for a (root secret, uid) pair. Returns nil when
// no card matches; the caller decides whether that is terminal.
func (r *IdentityResolver) Resolve(ctx context.Context, root, uid []byte) (*domain.Card, error) {
	hash := r.Hash(root, uid)

	card, err := r.cards.GetByUIDHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if card != nil {
		return card, nil
	}

	// Legacy fallback: cards issued before the hash scheme carry a plaintext
	// uid and a nil hash.
	card, err = r.cards.GetByPlaintextUID(ctx, hex.EncodeToString(uid))
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	r.backfill(ctx, card, hash, uid)
	return card, nil
}

// backfill migrates a legacy card onto the hash scheme. Best-effort: a
// failed backfill never blocks resolution.
func (r *IdentityResolver) backfill(ctx context.Context, card *domain.Card, hash string, uid []byte) {
	encUID, err := r.cipher.Encrypt(uid)
	if err != nil {
		r.log.Warn().Err(err).Str("card_id", card.ID.String()).Msg("legacy uid hash backfill skipped: encrypt failed")
		return
	}
	if err := r.cards.BackfillUIDHash(ctx, card.ID, hash, encUID); err != nil {
		r.log.Warn().Err(err).Str("card_id", card.ID.String()).Msg("legacy uid hash backfill failed")
		return
	}
	card.UIDHash = &hash
	card.EncryptedUID = encUID
	r.log.Info().Str("card_id", card.ID.String()).Msg("legacy card migrated to uid hash scheme")
}
