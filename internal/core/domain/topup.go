package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingTopup is a durable hold for an in-flight top-up invoice, keyed by
// the invoice's payment reference. Settlement confirmation can arrive
// arbitrarily later than issuance (including after a process restart), so
// this state is never held in memory only. A record transitions to processed
// exactly once; duplicates of the settlement notification are no-ops.
type PendingTopup struct {
	PaymentRef  string     `json:"payment_ref"`
	CardID      uuid.UUID  `json:"card_id"`
	Amount      int64      `json:"amount"`
	ExpiresAt   time.Time  `json:"expires_at"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Expired reports whether the topup invoice is past its expiry at now.
func (p *PendingTopup) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
