package ports

import (
	"context"
	"time"

	"boltcard-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// SecretCipher wraps sensitive material at rest (AES-256-GCM). The core only
// holds decrypted bytes for the duration of one operation's stack frame.
type SecretCipher interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(ciphertext string) ([]byte, error)
}

// Invoice is a Lightning invoice issued by the payment provider.
type Invoice struct {
	Bolt11     string
	PaymentRef string // payment hash, used as the settlement key
}

// PaymentClient talks to the external Lightning wallet provider. Calls are
// the only high-latency operations in the core and must happen outside any
// card row lock.
type PaymentClient interface {
	CreateInvoice(ctx context.Context, walletID string, amountSat int64, memo string) (*Invoice, error)
	PayInvoice(ctx context.Context, walletID string, bolt11 string) (string, error) // returns payment ref
	DecodeInvoice(ctx context.Context, bolt11 string) (int64, error)                // amount in msat
}

// WithdrawSession is the phase-1 challenge state bound to a k1 token.
type WithdrawSession struct {
	K1        string    `json:"k1"`
	CardID    uuid.UUID `json:"card_id"`
	Counter   int64     `json:"counter"` // SUN counter the tap authenticated
	CreatedAt time.Time `json:"created_at"`
}

// WithdrawSessionStore holds withdraw sessions between the two protocol
// phases. Claim is single-use: a second claim of the same k1 returns nil.
type WithdrawSessionStore interface {
	Put(ctx context.Context, s *WithdrawSession, ttl time.Duration) error
	Claim(ctx context.Context, k1 string) (*WithdrawSession, error)
}

// TokenService handles JWT bearer tokens for owner-facing endpoints.
type TokenService interface {
	Generate(ownerID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OwnerID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// TapResult is the outcome of a successfully authenticated tap.
type TapResult struct {
	Card    *domain.Card
	UID     []byte // 7-byte hardware id, never logged
	Counter int64
}

// TapAuthenticator validates a SUN tap message (p/c query parameters) and
// resolves the card it belongs to. It never mutates stored state.
type TapAuthenticator interface {
	Authenticate(ctx context.Context, piccDataHex, cmacHex string) (*TapResult, error)
}

// WithdrawChallenge is the phase-1 response of the withdraw protocol.
type WithdrawChallenge struct {
	K1                  string
	CardID              uuid.UUID
	MinWithdrawableMsat int64
	MaxWithdrawableMsat int64
	DefaultDescription  string
}

// WithdrawService drives the two-phase withdraw protocol.
type WithdrawService interface {
	// HandleTap authenticates a tap and mints a session token (phase 1).
	HandleTap(ctx context.Context, piccDataHex, cmacHex string) (*WithdrawChallenge, error)
	// HandleCallback authorizes and pays the presented invoice (phase 2).
	HandleCallback(ctx context.Context, k1, bolt11 string) error
}

// BeginRegistrationRequest holds validated input for starting a registration.
type BeginRegistrationRequest struct {
	OwnerID        uuid.UUID
	WalletID       string
	Denomination   domain.Denomination
	InitialBalance int64
	MaxTxAmount    *int64
	DailyLimit     *int64
}

// ProgramPayload carries everything the programming app needs to write the
// key slots and enable SUN messaging on the physical card.
type ProgramPayload struct {
	CardID     uuid.UUID `json:"card_id"`
	K0         string    `json:"k0"` // hex
	K1         string    `json:"k1"`
	K2         string    `json:"k2"`
	K3         string    `json:"k3"`
	K4         string    `json:"k4"`
	LNURLWBase string    `json:"lnurlw_base"` // URL template the card emits per tap
}

// RegistrationService manages the deeplink card issuance flow.
type RegistrationService interface {
	Begin(ctx context.Context, req BeginRegistrationRequest) (*domain.PendingRegistration, string, error) // registration, deeplink
	Complete(ctx context.Context, registrationID uuid.UUID, uidHex string) (*ProgramPayload, error)
}

// TopupInvoice is the result of issuing a top-up invoice.
type TopupInvoice struct {
	PaymentRef string
	Bolt11     string
	Amount     int64
	ExpiresAt  time.Time
}

// TopupService bridges invoice issuance and asynchronous settlement.
type TopupService interface {
	CreateInvoice(ctx context.Context, cardID uuid.UUID, amount int64, memo string) (*TopupInvoice, error)
	// Confirm applies the credit exactly once per payment reference.
	// Duplicate notifications return domain state, not an error.
	Confirm(ctx context.Context, paymentRef string) (*domain.PendingTopup, error)
}

// CardAdminService covers owner-initiated card administration.
type CardAdminService interface {
	GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.Card, error)
	ListLedger(ctx context.Context, ownerID, cardID uuid.UUID, limit, offset int) ([]domain.CardTransaction, error)
	Disable(ctx context.Context, ownerID, cardID uuid.UUID) error
	// Wipe rotates the card onto a fresh key epoch and returns the keys
	// needed to reset the physical card. The card never returns to ACTIVE.
	Wipe(ctx context.Context, ownerID, cardID uuid.UUID) (*ProgramPayload, error)
}
