package dto

import (
	"time"

	"boltcard-gateway/internal/core/domain"
)

// CreateRegistrationRequest is the request body for starting a card
// registration.
type CreateRegistrationRequest struct {
	WalletID       string `json:"wallet_id" binding:"required,max=100,safe_id"`
	Denomination   string `json:"denomination" binding:"required,oneof=SAT FIAT_CENT"`
	InitialBalance int64  `json:"initial_balance" binding:"gte=0"`
	MaxTxAmount    *int64 `json:"max_tx_amount,omitempty"`
	DailyLimit     *int64 `json:"daily_limit,omitempty"`
}

// RegistrationResponse is the response body for a started registration.
type RegistrationResponse struct {
	ID        string `json:"id"`
	Deeplink  string `json:"deeplink"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
}

// CompleteRegistrationRequest is sent by the programming app when it first
// reads the card hardware. UID is the 7-byte hardware id, hex-encoded.
type CompleteRegistrationRequest struct {
	UID string `json:"uid" binding:"required,len=14,hexadecimal"`
}

// ProgramResponse carries the derived key slots the programming app writes
// to the card, plus the LNURLW template to encode.
type ProgramResponse struct {
	CardID     string `json:"card_id"`
	K0         string `json:"k0"`
	K1         string `json:"k1"`
	K2         string `json:"k2"`
	K3         string `json:"k3"`
	K4         string `json:"k4"`
	LNURLWBase string `json:"lnurlw_base"`
}

// TopupRequest is the request body for issuing a top-up invoice.
type TopupRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Memo   string `json:"memo" binding:"max=200"`
}

// TopupResponse is the response body for an issued top-up invoice.
type TopupResponse struct {
	PaymentRef string `json:"payment_ref"`
	Bolt11     string `json:"bolt11"`
	Amount     int64  `json:"amount"`
	ExpiresAt  string `json:"expires_at"`
}

// SettlementRequest is the body of the provider's settlement notification.
type SettlementRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required,max=128,safe_id"`
}

// SettlementResponse reports the post-settlement state of a top-up.
type SettlementResponse struct {
	PaymentRef string `json:"payment_ref"`
	CardID     string `json:"card_id"`
	Amount     int64  `json:"amount"`
	Processed  bool   `json:"processed"`
}

// CardResponse is the owner-facing view of a card. Key material and hardware
// identity never appear here.
type CardResponse struct {
	ID           string  `json:"id"`
	WalletID     string  `json:"wallet_id"`
	Denomination string  `json:"denomination"`
	Balance      int64   `json:"balance"`
	MaxTxAmount  *int64  `json:"max_tx_amount,omitempty"`
	DailyLimit   *int64  `json:"daily_limit,omitempty"`
	DailySpent   int64   `json:"daily_spent"`
	DailyResetAt string  `json:"daily_reset_at"`
	Status       string  `json:"status"`
	KeyEpoch     int32   `json:"key_epoch"`
	CreatedAt    string  `json:"created_at"`
	LastUsedAt   *string `json:"last_used_at,omitempty"`
}

// LedgerEntryResponse is one ledger row in owner-facing listings.
type LedgerEntryResponse struct {
	ID           string  `json:"id"`
	TxType       string  `json:"tx_type"`
	Amount       int64   `json:"amount"`
	BalanceAfter int64   `json:"balance_after"`
	PaymentRef   *string `json:"payment_ref,omitempty"`
	Memo         string  `json:"memo"`
	CreatedAt    string  `json:"created_at"`
}

// ToCardResponse maps a domain card to its owner-facing view.
func ToCardResponse(c *domain.Card) CardResponse {
	resp := CardResponse{
		ID:           c.ID.String(),
		WalletID:     c.WalletID,
		Denomination: string(c.Denomination),
		Balance:      c.Balance,
		MaxTxAmount:  c.MaxTxAmount,
		DailyLimit:   c.DailyLimit,
		DailySpent:   c.DailySpent,
		DailyResetAt: c.DailyResetAt.UTC().Format(time.RFC3339),
		Status:       string(c.Status),
		KeyEpoch:     c.KeyEpoch,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.LastUsedAt != nil {
		s := c.LastUsedAt.UTC().Format(time.RFC3339)
		resp.LastUsedAt = &s
	}
	return resp
}

// ToLedgerEntryResponse maps a ledger entry to its owner-facing view.
func ToLedgerEntryResponse(e domain.CardTransaction) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           e.ID.String(),
		TxType:       string(e.TxType),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		PaymentRef:   e.PaymentRef,
		Memo:         e.Memo,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
