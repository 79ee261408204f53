package service

import (
	"context"
	"encoding/hex"
	"testing"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports/mocks"
	"boltcard-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sunTestDeps struct {
	sun        *SUNAuthenticator
	issuerKeys *mocks.MockIssuerKeyRepository
	cards      *mocks.MockCardRepository
	cipher     *mocks.MockSecretCipher
	keys       *KeyHierarchy
	ctrl       *gomock.Controller
}

func setupSUN(t *testing.T) *sunTestDeps {
	ctrl := gomock.NewController(t)
	d := &sunTestDeps{
		issuerKeys: mocks.NewMockIssuerKeyRepository(ctrl),
		cards:      mocks.NewMockCardRepository(ctrl),
		cipher:     mocks.NewMockSecretCipher(ctrl),
		keys:       NewKeyHierarchy(),
		ctrl:       ctrl,
	}
	resolver := NewIdentityResolver(d.cards, d.cipher, d.keys, zerolog.Nop())
	d.sun = NewSUNAuthenticator(d.issuerKeys, resolver, d.keys, d.cipher, zerolog.Nop())
	return d
}

// tapFixture builds a valid (p, c) pair plus the card that produced it.
type tapFixture struct {
	piccHex string
	macHex  string
	card    *domain.Card
	rec     domain.IssuerKeyRecord
	root    []byte
	hashHex string
}

func makeTap(t *testing.T, keys *KeyHierarchy, counter, lastCounter int64) *tapFixture {
	t.Helper()
	root, uid := testRoot(), testUID()

	envKey := keys.DeriveEnvelopeKey(root)
	piccHex, err := EncodePICCData(envKey, uid, counter, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee})
	require.NoError(t, err)

	cardKey := keys.DeriveCardKey(root, uid, 0)
	k2 := keys.DeriveSlotKey(cardKey, domain.SlotAuth)
	macHex := ComputeSUNMAC(k2, uid, counter)

	hashHex := hex.EncodeToString(keys.IdentityHash(root, uid))
	hash := hashHex
	return &tapFixture{
		piccHex: piccHex,
		macHex:  macHex,
		root:    root,
		hashHex: hashHex,
		rec: domain.IssuerKeyRecord{
			ID:           uuid.New(),
			OwnerID:      uuid.New(),
			EncryptedKey: "enc-root",
		},
		card: &domain.Card{
			ID:          uuid.New(),
			UIDHash:     &hash,
			EncryptedK2: "enc-k2",
			LastCounter: lastCounter,
			Status:      domain.CardStatusActive,
		},
	}
}

func (f *tapFixture) authKey(keys *KeyHierarchy) []byte {
	cardKey := keys.DeriveCardKey(f.root, testUID(), 0)
	return keys.DeriveSlotKey(cardKey, domain.SlotAuth)
}

func TestSUNAuthenticator_ValidTap(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 7, 3)

	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(f.root, nil)
	d.cards.EXPECT().GetByUIDHash(ctx, f.hashHex).Return(f.card, nil)
	d.cipher.EXPECT().Decrypt("enc-k2").Return(f.authKey(d.keys), nil)
	d.issuerKeys.EXPECT().TouchLastUsed(ctx, f.rec.ID).Return(nil)

	res, err := d.sun.Authenticate(ctx, f.piccHex, f.macHex)
	require.NoError(t, err)
	assert.Equal(t, f.card.ID, res.Card.ID)
	assert.Equal(t, int64(7), res.Counter)
	assert.Equal(t, testUID(), res.UID)
}

func TestSUNAuthenticator_MacMismatch(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 7, 3)

	// Flip one nibble of the presented MAC.
	badMAC := []byte(f.macHex)
	if badMAC[0] == 'f' {
		badMAC[0] = '0'
	} else {
		badMAC[0] = 'f'
	}

	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(f.root, nil)
	d.cards.EXPECT().GetByUIDHash(ctx, f.hashHex).Return(f.card, nil)
	d.cipher.EXPECT().Decrypt("enc-k2").Return(f.authKey(d.keys), nil)

	_, err := d.sun.Authenticate(ctx, f.piccHex, string(badMAC))
	requireCode(t, err, "SUN_002")
}

func TestSUNAuthenticator_ReplayedCounter(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 5, 5) // counter == last accepted

	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(f.root, nil)
	d.cards.EXPECT().GetByUIDHash(ctx, f.hashHex).Return(f.card, nil)
	d.cipher.EXPECT().Decrypt("enc-k2").Return(f.authKey(d.keys), nil)

	_, err := d.sun.Authenticate(ctx, f.piccHex, f.macHex)
	requireCode(t, err, "SUN_003")
}

func TestSUNAuthenticator_DisabledCard(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 7, 3)
	f.card.Status = domain.CardStatusDisabled

	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(f.root, nil)
	d.cards.EXPECT().GetByUIDHash(ctx, f.hashHex).Return(f.card, nil)
	d.cipher.EXPECT().Decrypt("enc-k2").Return(f.authKey(d.keys), nil)

	_, err := d.sun.Authenticate(ctx, f.piccHex, f.macHex)
	requireCode(t, err, "SUN_005")
}

func TestSUNAuthenticator_UnknownIssuer(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 7, 3)

	// The stored root differs from the one that encrypted the envelope, so
	// the decrypted block will not carry the tag byte.
	wrongRoot := testRoot()
	wrongRoot[0] ^= 0xff

	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(wrongRoot, nil)

	_, err := d.sun.Authenticate(ctx, f.piccHex, f.macHex)
	requireCode(t, err, "SUN_001")
}

func TestSUNAuthenticator_UnknownCard(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()
	f := makeTap(t, d.keys, 7, 3)

	// The root opens the envelope, but the uid is not enrolled under it.
	d.issuerKeys.EXPECT().ListAll(ctx).Return([]domain.IssuerKeyRecord{f.rec}, nil)
	d.cipher.EXPECT().Decrypt("enc-root").Return(f.root, nil)
	d.cards.EXPECT().GetByUIDHash(ctx, f.hashHex).Return(nil, nil)
	d.cards.EXPECT().GetByPlaintextUID(ctx, hex.EncodeToString(testUID())).Return(nil, nil)

	_, err := d.sun.Authenticate(ctx, f.piccHex, f.macHex)
	requireCode(t, err, "SUN_004")
}

func TestSUNAuthenticator_MalformedInput(t *testing.T) {
	d := setupSUN(t)
	ctx := context.Background()

	_, err := d.sun.Authenticate(ctx, "zz", "00112233445566")
	requireCode(t, err, "SUN_001")

	_, err = d.sun.Authenticate(ctx, "00112233445566778899aabbccddeeff", "tooshort")
	requireCode(t, err, "SUN_002")
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}
