package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardTransactionType represents the kind of money movement on a card.
type CardTransactionType string

const (
	CardTransactionTypeWithdraw CardTransactionType = "WITHDRAW"
	CardTransactionTypeTopup    CardTransactionType = "TOPUP"
	CardTransactionTypeAdjust   CardTransactionType = "ADJUST"
)

// CardTransaction is an append-only ledger entry. The chain of BalanceAfter
// values is the auditable source of truth: each entry's BalanceAfter equals
// the previous entry's BalanceAfter plus this entry's signed Amount, and the
// card's balance column always equals the latest entry's BalanceAfter.
type CardTransaction struct {
	ID           uuid.UUID           `json:"id"`
	CardID       uuid.UUID           `json:"card_id"`
	TxType       CardTransactionType `json:"tx_type"`
	Amount       int64               `json:"amount"` // signed: negative for withdrawals
	BalanceAfter int64               `json:"balance_after"`
	PaymentRef   *string             `json:"payment_ref,omitempty"` // payment hash, if any
	Memo         string              `json:"memo"`
	CreatedAt    time.Time           `json:"created_at"`
}
