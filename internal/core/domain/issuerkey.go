package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssuerKeyRecord holds the single per-owner root secret from which every
// card key for that owner is deterministically derived. Exactly one active
// record exists per owner. Only LastUsedAt is ever mutated; the record is
// never deleted while any card under it exists.
type IssuerKeyRecord struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	EncryptedKey string     `json:"-"` // AES-256-GCM of the 16-byte root secret
	CreatedAt    time.Time  `json:"created_at"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
}
