package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus represents the lifecycle of a pending registration.
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "PENDING"
	RegistrationStatusCompleted RegistrationStatus = "COMPLETED"
	RegistrationStatusExpired   RegistrationStatus = "EXPIRED"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
)

// PendingRegistration describes a pre-configured card that has not yet been
// bound to physical hardware. It transitions to COMPLETED exactly once, when
// a card's UID is first observed against it; otherwise it expires.
type PendingRegistration struct {
	ID             uuid.UUID          `json:"id"`
	OwnerID        uuid.UUID          `json:"owner_id"`
	WalletID       string             `json:"wallet_id"`
	Denomination   Denomination       `json:"denomination"`
	InitialBalance int64              `json:"initial_balance"`
	MaxTxAmount    *int64             `json:"max_tx_amount,omitempty"`
	DailyLimit     *int64             `json:"daily_limit,omitempty"`
	Status         RegistrationStatus `json:"status"`
	CardID         *uuid.UUID         `json:"card_id,omitempty"` // set on completion
	ExpiresAt      time.Time          `json:"expires_at"`
	CreatedAt      time.Time          `json:"created_at"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
}
