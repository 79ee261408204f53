package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- In-Memory Issuer Key Repo ---

type inMemoryIssuerKeyRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.IssuerKeyRecord
}

func newInMemoryIssuerKeyRepo() *inMemoryIssuerKeyRepo {
	return &inMemoryIssuerKeyRepo{records: make(map[uuid.UUID]*domain.IssuerKeyRecord)}
}

func (r *inMemoryIssuerKeyRepo) Create(ctx context.Context, rec *domain.IssuerKeyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.OwnerID == rec.OwnerID {
			return fmt.Errorf("issuer key already exists for owner")
		}
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *inMemoryIssuerKeyRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.IssuerKeyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryIssuerKeyRepo) ListAll(ctx context.Context) ([]domain.IssuerKeyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.IssuerKeyRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *inMemoryIssuerKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		now := time.Now().UTC()
		rec.LastUsedAt = &now
	}
	return nil
}

// --- In-Memory Card Repo ---

type inMemoryCardRepo struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]*domain.Card
}

func newInMemoryCardRepo() *inMemoryCardRepo {
	return &inMemoryCardRepo{cards: make(map[uuid.UUID]*domain.Card)}
}

func (r *inMemoryCardRepo) Create(ctx context.Context, tx pgx.Tx, card *domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *card
	r.cards[card.ID] = &cp
	return nil
}

func (r *inMemoryCardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	cp := *card
	return &cp, nil
}

func (r *inMemoryCardRepo) GetByUIDHash(ctx context.Context, hash string) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, card := range r.cards {
		if card.UIDHash != nil && *card.UIDHash == hash {
			cp := *card
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCardRepo) GetByPlaintextUID(ctx context.Context, uid string) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, card := range r.cards {
		if card.UID != nil && *card.UID == uid {
			cp := *card
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCardRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Card, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryCardRepo) UpdateSpendState(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, lastCounter, balance, dailySpent int64, dailyResetAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	if !ok {
		return fmt.Errorf("card not found")
	}
	card.LastCounter = lastCounter
	card.Balance = balance
	card.DailySpent = dailySpent
	card.DailyResetAt = dailyResetAt
	return nil
}

func (r *inMemoryCardRepo) BackfillUIDHash(ctx context.Context, cardID uuid.UUID, uidHash, encryptedUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	if !ok {
		return fmt.Errorf("card not found")
	}
	card.UIDHash = &uidHash
	card.EncryptedUID = encryptedUID
	return nil
}

func (r *inMemoryCardRepo) UpdateStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	if !ok {
		return fmt.Errorf("card not found")
	}
	card.Status = status
	if status != domain.CardStatusActive {
		card.DisabledAt = &at
	}
	return nil
}

func (r *inMemoryCardRepo) RotateKeys(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, epoch int32, encK0, encK1, encK2, encK3, encK4 string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	if !ok {
		return fmt.Errorf("card not found")
	}
	card.KeyEpoch = epoch
	card.EncryptedK0 = encK0
	card.EncryptedK1 = encK1
	card.EncryptedK2 = encK2
	card.EncryptedK3 = encK3
	card.EncryptedK4 = encK4
	card.Status = domain.CardStatusWiped
	return nil
}

func (r *inMemoryCardRepo) TouchLastUsed(ctx context.Context, cardID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if card, ok := r.cards[cardID]; ok {
		card.LastUsedAt = &at
	}
	return nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.CardTransaction
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.CardTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryLedgerRepo) ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]domain.CardTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.CardTransaction
	// Newest first, matching the SQL ordering.
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CardID == cardID {
			matched = append(matched, r.entries[i])
		}
	}
	if offset >= len(matched) {
		return []domain.CardTransaction{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *inMemoryLedgerRepo) GetLatest(ctx context.Context, cardID uuid.UUID) (*domain.CardTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CardID == cardID {
			cp := r.entries[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Registration Repo ---

type inMemoryRegistrationRepo struct {
	mu   sync.RWMutex
	regs map[uuid.UUID]*domain.PendingRegistration
}

func newInMemoryRegistrationRepo() *inMemoryRegistrationRepo {
	return &inMemoryRegistrationRepo{regs: make(map[uuid.UUID]*domain.PendingRegistration)}
}

func (r *inMemoryRegistrationRepo) Create(ctx context.Context, reg *domain.PendingRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *reg
	r.regs[reg.ID] = &cp
	return nil
}

func (r *inMemoryRegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.regs[id]
	if !ok {
		return nil, nil
	}
	cp := *reg
	return &cp, nil
}

func (r *inMemoryRegistrationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PendingRegistration, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryRegistrationRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id, cardID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[id]
	if !ok {
		return fmt.Errorf("registration not found")
	}
	reg.Status = domain.RegistrationStatusCompleted
	reg.CardID = &cardID
	reg.CompletedAt = &at
	return nil
}

func (r *inMemoryRegistrationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[id]
	if !ok {
		return fmt.Errorf("registration not found")
	}
	reg.Status = status
	return nil
}

// --- In-Memory Topup Repo ---

type inMemoryTopupRepo struct {
	mu     sync.RWMutex
	topups map[string]*domain.PendingTopup
}

func newInMemoryTopupRepo() *inMemoryTopupRepo {
	return &inMemoryTopupRepo{topups: make(map[string]*domain.PendingTopup)}
}

func (r *inMemoryTopupRepo) Create(ctx context.Context, t *domain.PendingTopup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.topups[t.PaymentRef] = &cp
	return nil
}

func (r *inMemoryTopupRepo) GetByRef(ctx context.Context, paymentRef string) (*domain.PendingTopup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.topups[paymentRef]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTopupRepo) GetByRefForUpdate(ctx context.Context, tx pgx.Tx, paymentRef string) (*domain.PendingTopup, error) {
	return r.GetByRef(ctx, paymentRef)
}

func (r *inMemoryTopupRepo) MarkProcessed(ctx context.Context, tx pgx.Tx, paymentRef string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topups[paymentRef]
	if !ok || t.Processed {
		return false, nil
	}
	t.Processed = true
	t.ProcessedAt = &at
	return true, nil
}

func (r *inMemoryTopupRepo) DeleteStale(ctx context.Context, unprocessedBefore, processedBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for ref, t := range r.topups {
		if !t.Processed && t.ExpiresAt.Before(unprocessedBefore) {
			delete(r.topups, ref)
			n++
			continue
		}
		if t.Processed && t.ProcessedAt != nil && t.ProcessedAt.Before(processedBefore) {
			delete(r.topups, ref)
			n++
		}
	}
	return n, nil
}

// --- Serializing Transactor ---

// serialTransactor emulates row-level locking with one coarse mutex: Begin
// blocks until the previous transaction commits or rolls back. Concurrent
// spend attempts therefore serialize exactly as they would against the real
// FOR UPDATE lock.
type serialTransactor struct {
	mu sync.Mutex
}

func newSerialTransactor() *serialTransactor {
	return &serialTransactor{}
}

func (t *serialTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{mu: &t.mu}, nil
}

// serialTx is a pgx.Tx stand-in whose Commit/Rollback release the
// transactor's mutex. Only the methods the services call are implemented.
type serialTx struct {
	pgx.Tx
	mu   *sync.Mutex
	done bool
}

func (t *serialTx) Commit(ctx context.Context) error {
	if !t.done {
		t.done = true
		t.mu.Unlock()
	}
	return nil
}

func (t *serialTx) Rollback(ctx context.Context) error {
	if !t.done {
		t.done = true
		t.mu.Unlock()
	}
	return nil
}

// --- Fake Payment Client ---

// fakePaymentClient is an in-process stand-in for the Lightning provider.
// Invoices minted through it (or registered via mintInvoice) decode to their
// recorded amount; payouts are recorded and can be forced to fail.
type fakePaymentClient struct {
	mu       sync.Mutex
	invoices map[string]int64 // bolt11 -> amount msat
	paid     []string
	failPay  bool
	seq      int
}

func newFakePaymentClient() *fakePaymentClient {
	return &fakePaymentClient{invoices: make(map[string]int64)}
}

func (f *fakePaymentClient) CreateInvoice(ctx context.Context, walletID string, amountSat int64, memo string) (*ports.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	bolt11 := fmt.Sprintf("lnbc-test-%d", f.seq)
	f.invoices[bolt11] = amountSat * 1000
	return &ports.Invoice{
		Bolt11:     bolt11,
		PaymentRef: fmt.Sprintf("payref-%04d", f.seq),
	}, nil
}

func (f *fakePaymentClient) PayInvoice(ctx context.Context, walletID, bolt11 string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPay {
		return "", fmt.Errorf("provider unavailable")
	}
	if _, ok := f.invoices[bolt11]; !ok {
		return "", fmt.Errorf("unknown payment request")
	}
	f.paid = append(f.paid, bolt11)
	return "paid-" + bolt11, nil
}

func (f *fakePaymentClient) DecodeInvoice(ctx context.Context, bolt11 string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msat, ok := f.invoices[bolt11]
	if !ok {
		return 0, fmt.Errorf("unknown payment request")
	}
	return msat, nil
}

// mintInvoice registers an externally-presented invoice, as a payer's wallet
// would produce for the withdraw callback.
func (f *fakePaymentClient) mintInvoice(amountMsat int64) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	bolt11 := fmt.Sprintf("lnbc-payer-%d", f.seq)
	f.invoices[bolt11] = amountMsat
	return bolt11
}

func (f *fakePaymentClient) paidCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paid)
}
