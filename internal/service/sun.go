package service

import (
	"context"
	"crypto/aes"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	piccDataLen = 16 // one AES block: tag(1) || uid(7) || counter(3) || random(5)
	sunTagByte  = 0xC7
	sunMACLen   = 8
)

// sv2Prefix is the session-vector prefix for SUN MAC session key derivation.
var sv2Prefix = []byte{0x3c, 0xc3, 0x00, 0x01, 0x00, 0x80}

// SUNAuthenticator validates the encrypted, authenticated message a tap
// produces and extracts the trusted hardware id and usage counter.
//
// Per tap: decrypt the envelope, verify the MAC in constant time, check the
// counter is strictly greater than the stored one. Every failure path is
// terminal for the tap and mutates nothing; persisting an accepted counter
// is the caller's job, atomically with the balance mutation.
type SUNAuthenticator struct {
	issuerKeys ports.IssuerKeyRepository
	resolver   *IdentityResolver
	keys       *KeyHierarchy
	cipher     ports.SecretCipher
	log        zerolog.Logger
}

// NewSUNAuthenticator creates a SUNAuthenticator.
func NewSUNAuthenticator(
	issuerKeys ports.IssuerKeyRepository,
	resolver *IdentityResolver,
	keys *KeyHierarchy,
	cipher ports.SecretCipher,
	log zerolog.Logger,
) *SUNAuthenticator {
	return &SUNAuthenticator{
		issuerKeys: issuerKeys,
		resolver:   resolver,
		keys:       keys,
		cipher:     cipher,
		log:        log,
	}
}

// Authenticate verifies a tap's p (encrypted PICC data) and c (MAC) query
// parameters and resolves the card that produced them.
//
// The envelope key is issuer-scoped, so decryption iterates the candidate
// issuer roots until one yields a well-formed PICC block whose uid resolves
// to a card. The candidate set is bounded by the number of owners.
func (a *SUNAuthenticator) Authenticate(ctx context.Context, piccDataHex, cmacHex string) (*ports.TapResult, error) {
	piccData, err := hex.DecodeString(piccDataHex)
	if err != nil || len(piccData) != piccDataLen {
		return nil, apperror.ErrDecryptionFailed()
	}
	tapMAC, err := hex.DecodeString(cmacHex)
	if err != nil || len(tapMAC) != sunMACLen {
		return nil, apperror.ErrMacMismatch()
	}

	roots, err := a.issuerKeys.ListAll(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list issuer keys: %w", err))
	}

	unresolved := 0
	for i := range roots {
		rec := &roots[i]
		root, err := a.cipher.Decrypt(rec.EncryptedKey)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt issuer root: %w", err))
		}

		uid, counter, ok := a.openEnvelope(root, piccData)
		if !ok {
			continue
		}

		card, err := a.resolver.Resolve(ctx, root, uid)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("resolve card: %w", err))
		}
		if card == nil {
			// Tag byte can collide on a wrong root (1 in 256); keep scanning.
			unresolved++
			continue
		}

		authKey, err := a.cipher.Decrypt(card.EncryptedK2)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt auth key: %w", err))
		}
		if !verifySUNMAC(authKey, uid, counter, tapMAC) {
			return nil, apperror.ErrMacMismatch()
		}

		if !card.IsActive() {
			return nil, apperror.ErrCardNotActive()
		}
		if counter <= card.LastCounter {
			return nil, apperror.ErrReplayOrStaleCounter()
		}

		if err := a.issuerKeys.TouchLastUsed(ctx, rec.ID); err != nil {
			a.log.Warn().Err(err).Msg("issuer key last-used touch failed")
		}

		a.log.Debug().
			Str("card_id", card.ID.String()).
			Int64("counter", counter).
			Msg("tap authenticated")

		return &ports.TapResult{Card: card, UID: uid, Counter: counter}, nil
	}

	// Exactly one root opened the envelope cleanly: the tap is genuine but
	// the uid is not enrolled (wiped card, foreign fleet). More than one
	// well-formed open means a tag-byte collision and we cannot tell which
	// root was real, so report a plain decryption failure.
	if unresolved == 1 {
		return nil, apperror.ErrCardNotFound()
	}
	return nil, apperror.ErrDecryptionFailed()
}

// openEnvelope decrypts the single PICC block under the issuer's envelope
// key and extracts uid and counter. ok is false when the block does not
// carry the SUN tag byte, i.e. the root was not the issuer of this tap.
func (a *SUNAuthenticator) openEnvelope(root, piccData []byte) (uid []byte, counter int64, ok bool) {
	envKey := a.keys.DeriveEnvelopeKey(root)
	block, err := aes.NewCipher(envKey)
	if err != nil {
		return nil, 0, false
	}

	plain := make([]byte, piccDataLen)
	block.Decrypt(plain, piccData)

	if plain[0] != sunTagByte {
		return nil, 0, false
	}
	uid = plain[1:8]
	// 3-byte little-endian tap counter.
	counter = int64(plain[8]) | int64(plain[9])<<8 | int64(plain[10])<<16
	return uid, counter, true
}

// verifySUNMAC recomputes the truncated SUN MAC and compares in constant time.
func verifySUNMAC(authKey, uid []byte, counter int64, tapMAC []byte) bool {
	if len(authKey) != rootKeyLen {
		return false
	}
	return subtle.ConstantTimeCompare(sunTag(authKey, uid, counter), tapMAC) == 1
}

// sunTag computes the truncated tag a compliant card emits for the given
// state. Session key = CMAC(authKey, SV2); tag = odd-index bytes of
// CMAC(sessionKey, "").
func sunTag(authKey, uid []byte, counter int64) []byte {
	sv2 := make([]byte, 0, len(sv2Prefix)+uidLen+3)
	sv2 = append(sv2, sv2Prefix...)
	sv2 = append(sv2, uid...)
	sv2 = append(sv2, byte(counter), byte(counter>>8), byte(counter>>16))

	sessionKey := aesCMAC(authKey, sv2)
	full := aesCMAC(sessionKey, nil)

	truncated := make([]byte, sunMACLen)
	for i := 0; i < sunMACLen; i++ {
		truncated[i] = full[i*2+1]
	}
	return truncated
}

// ComputeSUNMAC is the hex form of sunTag, exported for card programming
// verification and tests.
func ComputeSUNMAC(authKey, uid []byte, counter int64) string {
	return hex.EncodeToString(sunTag(authKey, uid, counter))
}

// EncodePICCData encrypts a PICC block for the given envelope key. Exported
// for tests and the card programming simulator.
func EncodePICCData(envKey, uid []byte, counter int64, random []byte) (string, error) {
	if len(uid) != uidLen {
		return "", fmt.Errorf("uid must be %d bytes", uidLen)
	}
	if len(random) != 5 {
		return "", fmt.Errorf("random padding must be 5 bytes")
	}
	plain := make([]byte, 0, piccDataLen)
	plain = append(plain, sunTagByte)
	plain = append(plain, uid...)
	plain = append(plain, byte(counter), byte(counter>>8), byte(counter>>16))
	plain = append(plain, random...)

	block, err := aes.NewCipher(envKey)
	if err != nil {
		return "", err
	}
	out := make([]byte, piccDataLen)
	block.Encrypt(out, plain)
	return hex.EncodeToString(out), nil
}
