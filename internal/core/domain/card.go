package domain

import (
	"time"

	"github.com/google/uuid"
)

// Denomination is the closed set of currency units a card can be backed by.
// Amounts are always carried as int64 in the unit's smallest denomination
// (satoshis for SAT, cents for FIAT_CENT) — no floating point anywhere.
type Denomination string

const (
	DenominationSat      Denomination = "SAT"
	DenominationFiatCent Denomination = "FIAT_CENT"
)

// CardStatus represents the lifecycle state of a card.
// Transitions are one-directional: ACTIVE -> DISABLED -> WIPED.
// A wipe creates a new key epoch; it never reactivates the card.
type CardStatus string

const (
	CardStatusActive   CardStatus = "ACTIVE"
	CardStatusDisabled CardStatus = "DISABLED"
	CardStatusWiped    CardStatus = "WIPED"
)

// KeySlot identifies one of the functional roles the card's derived keys
// are programmed into.
type KeySlot int

const (
	SlotAppMaster KeySlot = 0 // K0: app master / change key
	SlotEnvelope  KeySlot = 1 // K1: SUN envelope encryption (issuer-scoped)
	SlotAuth      KeySlot = 2 // K2: SUN message authentication
	SlotReserved3 KeySlot = 3 // K3: reserved
	SlotReserved4 KeySlot = 4 // K4: reserved
)

// Card represents one physical tap-to-pay card bound to a wallet.
//
// The raw hardware UID is sensitive: modern cards persist it only encrypted
// (EncryptedUID) and are indexed by UIDHash. Legacy cards created before the
// hash scheme carry a plaintext UID and a nil UIDHash until lazily migrated.
type Card struct {
	ID           uuid.UUID    `json:"id"`
	OwnerID      uuid.UUID    `json:"owner_id"`
	WalletID     string       `json:"wallet_id"` // external payment-provider wallet
	Denomination Denomination `json:"denomination"`

	UID          *string `json:"-"` // plaintext hardware id, legacy rows only
	EncryptedUID string  `json:"-"` // AES-256-GCM
	UIDHash      *string `json:"-"` // keyed PRF of the UID, safe to index

	// Encrypted per-card key slots K0..K4. All are re-derivable from the
	// owner's root secret plus the UID and KeyEpoch; the stored copies exist
	// so taps can be verified without touching the issuer key record.
	EncryptedK0 string `json:"-"`
	EncryptedK1 string `json:"-"`
	EncryptedK2 string `json:"-"`
	EncryptedK3 string `json:"-"`
	EncryptedK4 string `json:"-"`
	KeyEpoch    int32  `json:"key_epoch"`

	// LastCounter is the highest accepted SUN counter. Monotonically
	// non-decreasing for the card's lifetime.
	LastCounter int64 `json:"last_counter"`

	Balance      int64      `json:"balance"`
	MaxTxAmount  *int64     `json:"max_tx_amount,omitempty"` // per-withdraw cap
	DailyLimit   *int64     `json:"daily_limit,omitempty"`   // rolling 24h cap
	DailySpent   int64      `json:"daily_spent"`
	DailyResetAt time.Time  `json:"daily_reset_at"`
	Status       CardStatus `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	DisabledAt  *time.Time `json:"disabled_at,omitempty"`
}

// IsActive returns true if the card may authorize taps.
func (c *Card) IsActive() bool {
	return c.Status == CardStatusActive
}
