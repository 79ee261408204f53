package service

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"

	"boltcard-gateway/internal/core/domain"

	"github.com/aead/cmac"
)

// Key diversification inputs, per the published deterministic boltcard
// scheme (AES-CMAC over fixed domain-separated prefixes).
var (
	divEnvelope = []byte{0x2d, 0x00, 0x3f, 0x77} // K1: SUN envelope encryption
	divCardKey  = []byte{0x2d, 0x00, 0x3f, 0x7a} // per-card intermediate key
	divIdentity = []byte{0x2d, 0x00, 0x3f, 0x7b} // privacy-preserving identifier
	divSlotBase = []byte{0x2d, 0x00, 0x3f, 0x7e} // K0, then K2..K4 by offset
)

const (
	rootKeyLen = 16
	uidLen     = 7
)

// KeyHierarchy derives every per-card key from an owner's 16-byte root
// secret. Derivation is pure and stateless: the same inputs always yield the
// same keys across processes and restarts. Key rotation folds an epoch
// counter into the derivation input instead of storing new secrets.
//
// Malformed input lengths are programming errors and panic.
type KeyHierarchy struct{}

// NewKeyHierarchy creates a KeyHierarchy.
func NewKeyHierarchy() *KeyHierarchy {
	return &KeyHierarchy{}
}

// DeriveEnvelopeKey derives the SUN envelope-encryption key (slot K1).
// It is issuer-scoped rather than card-scoped: the server must be able to
// decrypt a tap envelope before it knows which card produced it.
func (h *KeyHierarchy) DeriveEnvelopeKey(root []byte) []byte {
	mustLen("root secret", root, rootKeyLen)
	return aesCMAC(root, divEnvelope)
}

// DeriveCardKey derives the per-card intermediate key from the root secret,
// the card's hardware id, and the key epoch.
func (h *KeyHierarchy) DeriveCardKey(root, uid []byte, epoch int32) []byte {
	mustLen("root secret", root, rootKeyLen)
	mustLen("uid", uid, uidLen)

	msg := make([]byte, 0, len(divCardKey)+uidLen+4)
	msg = append(msg, divCardKey...)
	msg = append(msg, uid...)
	msg = binary.LittleEndian.AppendUint32(msg, uint32(epoch))
	return aesCMAC(root, msg)
}

// DeriveSlotKey derives one of the card-scoped slot keys (K0, K2, K3, K4)
// from the intermediate card key. The envelope slot (K1) is issuer-scoped
// and must come from DeriveEnvelopeKey instead.
func (h *KeyHierarchy) DeriveSlotKey(cardKey []byte, slot domain.KeySlot) []byte {
	mustLen("card key", cardKey, rootKeyLen)
	if slot == domain.SlotEnvelope {
		panic("keys: envelope slot is issuer-scoped, use DeriveEnvelopeKey")
	}
	if slot < domain.SlotAppMaster || slot > domain.SlotReserved4 {
		panic(fmt.Sprintf("keys: unknown slot %d", slot))
	}

	div := make([]byte, len(divSlotBase))
	copy(div, divSlotBase)
	// K0 uses the base prefix; K2..K4 offset the final byte past K1's gap.
	if slot > domain.SlotEnvelope {
		div[3] += byte(slot) - 1
	}
	return aesCMAC(cardKey, div)
}

// IdentityHash computes the privacy-preserving identifier of a hardware id
// under an owner's root secret: CMAC(root, prefix || uid). The hash is safe
// to index and does not permit recovery of the uid.
func (h *KeyHierarchy) IdentityHash(root, uid []byte) []byte {
	mustLen("root secret", root, rootKeyLen)
	mustLen("uid", uid, uidLen)

	msg := make([]byte, 0, len(divIdentity)+uidLen)
	msg = append(msg, divIdentity...)
	msg = append(msg, uid...)
	return aesCMAC(root, msg)
}

// CardKeys derives the full programming set for a card at the given epoch:
// K0 (app master), K1 (envelope), K2 (authentication), K3 and K4 (reserved).
func (h *KeyHierarchy) CardKeys(root, uid []byte, epoch int32) (k0, k1, k2, k3, k4 []byte) {
	cardKey := h.DeriveCardKey(root, uid, epoch)
	k0 = h.DeriveSlotKey(cardKey, domain.SlotAppMaster)
	k1 = h.DeriveEnvelopeKey(root)
	k2 = h.DeriveSlotKey(cardKey, domain.SlotAuth)
	k3 = h.DeriveSlotKey(cardKey, domain.SlotReserved3)
	k4 = h.DeriveSlotKey(cardKey, domain.SlotReserved4)
	return
}

// aesCMAC computes a full-width AES-CMAC tag.
func aesCMAC(key, msg []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(fmt.Sprintf("keys: bad AES key: %v", err))
	}
	sum, err := cmac.Sum(msg, block, block.BlockSize())
	if err != nil {
		panic(fmt.Sprintf("keys: cmac: %v", err))
	}
	return sum
}

func mustLen(name string, b []byte, want int) {
	if len(b) != want {
		panic(fmt.Sprintf("keys: %s must be %d bytes, got %d", name, want, len(b)))
	}
}
