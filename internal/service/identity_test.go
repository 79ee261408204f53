package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type identityTestDeps struct {
	resolver *IdentityResolver
	cards    *mocks.MockCardRepository
	cipher   *mocks.MockSecretCipher
	keys     *KeyHierarchy
}

func setupIdentity(t *testing.T) *identityTestDeps {
	ctrl := gomock.NewController(t)
	d := &identityTestDeps{
		cards:  mocks.NewMockCardRepository(ctrl),
		cipher: mocks.NewMockSecretCipher(ctrl),
		keys:   NewKeyHierarchy(),
	}
	d.resolver = NewIdentityResolver(d.cards, d.cipher, d.keys, zerolog.Nop())
	return d
}

func TestIdentityResolver_HashHit(t *testing.T) {
	d := setupIdentity(t)
	ctx := context.Background()
	root, uid := testRoot(), testUID()
	hash := d.resolver.Hash(root, uid)
	card := &domain.Card{ID: uuid.New(), UIDHash: &hash}

	d.cards.EXPECT().GetByUIDHash(ctx, hash).Return(card, nil)

	got, err := d.resolver.Resolve(ctx, root, uid)
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
}

func TestIdentityResolver_NoMatch(t *testing.T) {
	d := setupIdentity(t)
	ctx := context.Background()
	root, uid := testRoot(), testUID()
	hash := d.resolver.Hash(root, uid)

	d.cards.EXPECT().GetByUIDHash(ctx, hash).Return(nil, nil)
	d.cards.EXPECT().GetByPlaintextUID(ctx, hex.EncodeToString(uid)).Return(nil, nil)

	got, err := d.resolver.Resolve(ctx, root, uid)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIdentityResolver_LegacyBackfill(t *testing.T) {
	d := setupIdentity(t)
	ctx := context.Background()
	root, uid := testRoot(), testUID()
	hash := d.resolver.Hash(root, uid)
	uidHex := hex.EncodeToString(uid)
	legacy := &domain.Card{ID: uuid.New(), UID: &uidHex}

	d.cards.EXPECT().GetByUIDHash(ctx, hash).Return(nil, nil)
	d.cards.EXPECT().GetByPlaintextUID(ctx, uidHex).Return(legacy, nil)
	d.cipher.EXPECT().Encrypt(uid).Return("enc-uid", nil)
	d.cards.EXPECT().BackfillUIDHash(ctx, legacy.ID, hash, "enc-uid").Return(nil)

	got, err := d.resolver.Resolve(ctx, root, uid)
	require.NoError(t, err)
	require.NotNil(t, got.UIDHash)
	assert.Equal(t, hash, *got.UIDHash)
	assert.Equal(t, "enc-uid", got.EncryptedUID)
}

func TestIdentityResolver_BackfillFailureDoesNotBlock(t *testing.T) {
	d := setupIdentity(t)
	ctx := context.Background()
	root, uid := testRoot(), testUID()
	hash := d.resolver.Hash(root, uid)
	uidHex := hex.EncodeToString(uid)
	legacy := &domain.Card{ID: uuid.New(), UID: &uidHex}

	d.cards.EXPECT().GetByUIDHash(ctx, hash).Return(nil, nil)
	d.cards.EXPECT().GetByPlaintextUID(ctx, uidHex).Return(legacy, nil)
	d.cipher.EXPECT().Encrypt(uid).Return("enc-uid", nil)
	d.cards.EXPECT().BackfillUIDHash(ctx, legacy.ID, hash, "enc-uid").Return(errors.New("db down"))

	got, err := d.resolver.Resolve(ctx, root, uid)
	require.NoError(t, err)
	assert.Equal(t, legacy.ID, got.ID)
	assert.Nil(t, got.UIDHash)
}
