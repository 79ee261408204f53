package integration

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "boltcard-gateway/internal/adapter/http/handler"
	redisStorage "boltcard-gateway/internal/adapter/storage/redis"
	"boltcard-gateway/internal/service"
	"boltcard-gateway/pkg/logger"
	"boltcard-gateway/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://cards.example.com"

// testApp wires the full stack — real HTTP layer, real services, real crypto,
// Redis via miniredis — over in-memory postgres repos and a fake Lightning
// provider. Only the process boundary is faked.
type testApp struct {
	server *httptest.Server
	pay    *fakePaymentClient
	token  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	log := logger.NewWithWriter("error", io.Discard)
	met := metrics.NewFor(prometheus.NewRegistry())

	cipher, err := service.NewAESSecretCipher("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("integration-test-secret-32-bytes", time.Hour, "boltcard-gateway")
	keys := service.NewKeyHierarchy()

	issuerRepo := newInMemoryIssuerKeyRepo()
	cardRepo := newInMemoryCardRepo()
	ledgerRepo := newInMemoryLedgerRepo()
	regRepo := newInMemoryRegistrationRepo()
	topupRepo := newInMemoryTopupRepo()
	transactor := newSerialTransactor()
	pay := newFakePaymentClient()
	sessions := redisStorage.NewSessionStore(rdb)

	resolver := service.NewIdentityResolver(cardRepo, cipher, keys, log)
	sun := service.NewSUNAuthenticator(issuerRepo, resolver, keys, cipher, log)
	spend := service.NewSpendLimitEnforcer(cardRepo, ledgerRepo, transactor, log)

	withdrawSvc := service.NewWithdrawService(sun, cardRepo, spend, sessions, pay, met, time.Minute, log)
	regSvc := service.NewRegistrationService(regRepo, cardRepo, issuerRepo, spend, transactor, cipher, keys, resolver, testBaseURL, time.Hour, log)
	topupSvc := service.NewTopupService(topupRepo, cardRepo, spend, pay, transactor, met, time.Hour, log)
	adminSvc := service.NewCardAdminService(cardRepo, ledgerRepo, issuerRepo, transactor, cipher, keys, regSvc, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WithdrawSvc:     withdrawSvc,
		RegistrationSvc: regSvc,
		TopupSvc:        topupSvc,
		CardAdminSvc:    adminSvc,
		TokenSvc:        tokenSvc,
		BaseURL:         testBaseURL,
		Logger:          log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, _, err := tokenSvc.Generate(uuid.New())
	require.NoError(t, err)

	return &testApp{server: server, pay: pay, token: token}
}

// do performs a request against the test server and decodes the JSON body.
func (a *testApp) do(t *testing.T, method, path string, body any, authed bool) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", string(raw))
	return resp.StatusCode, decoded
}

// doQuiet is do without test assertions, safe to call from spawned
// goroutines; transport or decode failures surface as status 0.
func (a *testApp) doQuiet(method, path string, body any, authed bool) (int, map[string]any) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	if err != nil {
		return 0, nil
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, decoded
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}

// programmedCard is everything the tests need to act as the physical card.
type programmedCard struct {
	cardID  string
	uid     []byte
	envKey  []byte // slot K1
	authKey []byte // slot K2
}

// tapParams produces the p/c query values a compliant card would emit.
func (pc *programmedCard) tapParams(t *testing.T, counter int64) (string, string) {
	t.Helper()
	p, err := service.EncodePICCData(pc.envKey, pc.uid, counter, []byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	return p, service.ComputeSUNMAC(pc.authKey, pc.uid, counter)
}

// registerCard runs the full issuance flow: begin a registration, then
// complete it with a hardware id, returning the programmed key material.
func registerCard(t *testing.T, app *testApp, initialBalance int64, maxTx, dailyLimit *int64) *programmedCard {
	t.Helper()

	status, resp := app.do(t, http.MethodPost, "/api/v1/registrations", map[string]any{
		"wallet_id":       "wallet-1",
		"denomination":    "SAT",
		"initial_balance": initialBalance,
		"max_tx_amount":   maxTx,
		"daily_limit":     dailyLimit,
	}, true)
	require.Equal(t, http.StatusCreated, status)
	reg := data(t, resp)
	require.NotEmpty(t, reg["deeplink"])

	uidHex := "04a1b2c3d4e5f6"
	status, resp = app.do(t, http.MethodPost, fmt.Sprintf("/ln/registrations/%s", reg["id"]), map[string]any{
		"uid": uidHex,
	}, false)
	require.Equal(t, http.StatusOK, status)
	payload := data(t, resp)

	uid, err := hex.DecodeString(uidHex)
	require.NoError(t, err)
	envKey, err := hex.DecodeString(payload["k1"].(string))
	require.NoError(t, err)
	authKey, err := hex.DecodeString(payload["k2"].(string))
	require.NoError(t, err)

	return &programmedCard{
		cardID:  payload["card_id"].(string),
		uid:     uid,
		envKey:  envKey,
		authKey: authKey,
	}
}

func cardBalance(t *testing.T, app *testApp, cardID string) int64 {
	t.Helper()
	status, resp := app.do(t, http.MethodGet, "/api/v1/cards/"+cardID, nil, true)
	require.Equal(t, http.StatusOK, status)
	return int64(data(t, resp)["balance"].(float64))
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	status, resp := app.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", resp["status"])
}

func TestIntegration_RegisterAndProgramCard(t *testing.T) {
	app := newTestApp(t)

	status, resp := app.do(t, http.MethodPost, "/api/v1/registrations", map[string]any{
		"wallet_id":       "wallet-1",
		"denomination":    "SAT",
		"initial_balance": int64(1000),
	}, true)
	require.Equal(t, http.StatusCreated, status)
	reg := data(t, resp)
	assert.Equal(t, "PENDING", reg["status"])
	assert.Contains(t, reg["deeplink"], "boltcard://program?url=")

	status, resp = app.do(t, http.MethodPost, fmt.Sprintf("/ln/registrations/%s", reg["id"]), map[string]any{
		"uid": "04a1b2c3d4e5f6",
	}, false)
	require.Equal(t, http.StatusOK, status)
	payload := data(t, resp)
	assert.Len(t, payload["k0"], 32)
	assert.Len(t, payload["k2"], 32)
	assert.Equal(t, "lnurlw://cards.example.com/ln/withdraw", payload["lnurlw_base"])

	// The initial balance is credited on creation.
	assert.Equal(t, int64(1000), cardBalance(t, app, payload["card_id"].(string)))

	// A registration completes exactly once.
	status, _ = app.do(t, http.MethodPost, fmt.Sprintf("/ln/registrations/%s", reg["id"]), map[string]any{
		"uid": "04a1b2c3d4e5f6",
	}, false)
	assert.Equal(t, http.StatusConflict, status)
}

func TestIntegration_TopupAndSettle(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 1000, nil, nil)

	status, resp := app.do(t, http.MethodPost, "/api/v1/cards/"+card.cardID+"/topups", map[string]any{
		"amount": int64(2500),
	}, true)
	require.Equal(t, http.StatusCreated, status)
	inv := data(t, resp)
	ref := inv["payment_ref"].(string)
	require.NotEmpty(t, ref)
	require.NotEmpty(t, inv["bolt11"])

	// Settlement notification from the provider.
	status, resp = app.do(t, http.MethodPost, "/api/v1/topups/settlement", map[string]any{
		"payment_ref": ref,
	}, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, resp)["processed"])
	assert.Equal(t, int64(3500), cardBalance(t, app, card.cardID))

	// The provider retries; a duplicate must be answered 200 and not credit twice.
	status, resp = app.do(t, http.MethodPost, "/api/v1/topups/settlement", map[string]any{
		"payment_ref": ref,
	}, false)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, resp)["processed"])
	assert.Equal(t, int64(3500), cardBalance(t, app, card.cardID))

	// The ledger carries the top-up entry.
	status, resp = app.do(t, http.MethodGet, "/api/v1/cards/"+card.cardID+"/transactions", nil, true)
	require.Equal(t, http.StatusOK, status)
	entries := resp["data"].([]any)
	require.NotEmpty(t, entries)
	latest := entries[0].(map[string]any)
	assert.Equal(t, "TOPUP", latest["tx_type"])
	assert.Equal(t, float64(2500), latest["amount"])
	assert.Equal(t, float64(3500), latest["balance_after"])
}

func TestIntegration_TapAndWithdraw(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 5000, nil, nil)

	p, c := card.tapParams(t, 1)
	status, resp := app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "withdrawRequest", resp["tag"], "tap rejected: %v", resp)
	assert.Equal(t, float64(5000*1000), resp["maxWithdrawable"])
	assert.Equal(t, testBaseURL+"/ln/withdraw/cb", resp["callback"])
	k1 := resp["k1"].(string)

	bolt11 := app.pay.mintInvoice(1500 * 1000)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw/cb?k1=%s&pr=%s", k1, bolt11), nil, false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "OK", resp["status"], "callback rejected: %v", resp)

	assert.Equal(t, int64(3500), cardBalance(t, app, card.cardID))
	assert.Equal(t, 1, app.pay.paidCount())

	// The consumed counter is burned: replaying the same tap message fails.
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])

	// The next counter works.
	p2, c2 := card.tapParams(t, 2)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p2, c2), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "withdrawRequest", resp["tag"])
}

func TestIntegration_WithdrawSessionSingleUse(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 5000, nil, nil)

	p, c := card.tapParams(t, 1)
	status, resp := app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	k1 := resp["k1"].(string)

	bolt11 := app.pay.mintInvoice(1000 * 1000)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw/cb?k1=%s&pr=%s", k1, bolt11), nil, false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "OK", resp["status"])

	// The session was claimed; presenting the same k1 again fails.
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw/cb?k1=%s&pr=%s", k1, bolt11), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])
	assert.Equal(t, int64(4000), cardBalance(t, app, card.cardID))
}

func TestIntegration_SpendLimitsEnforced(t *testing.T) {
	app := newTestApp(t)
	maxTx := int64(1000)
	card := registerCard(t, app, 5000, &maxTx, nil)

	p, c := card.tapParams(t, 1)
	status, resp := app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	// The offered maximum is clamped by the per-transaction cap.
	assert.Equal(t, float64(1000*1000), resp["maxWithdrawable"])
	k1 := resp["k1"].(string)

	// An invoice over the cap is rejected and nothing moves.
	bolt11 := app.pay.mintInvoice(1500 * 1000)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw/cb?k1=%s&pr=%s", k1, bolt11), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])
	assert.Equal(t, int64(5000), cardBalance(t, app, card.cardID))
	assert.Equal(t, 0, app.pay.paidCount())
}

func TestIntegration_PayoutFailureRestoresBalance(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 5000, nil, nil)

	p, c := card.tapParams(t, 1)
	status, resp := app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	k1 := resp["k1"].(string)

	app.pay.failPay = true
	bolt11 := app.pay.mintInvoice(1000 * 1000)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw/cb?k1=%s&pr=%s", k1, bolt11), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])

	// The compensating credit restored the balance.
	assert.Equal(t, int64(5000), cardBalance(t, app, card.cardID))

	// But the counter stayed consumed: the same tap cannot be honored again.
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])

	app.pay.failPay = false
	p2, c2 := card.tapParams(t, 2)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p2, c2), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "withdrawRequest", resp["tag"])
}

func TestIntegration_DisabledCardRejectsTaps(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 5000, nil, nil)

	status, _ := app.do(t, http.MethodPost, "/api/v1/cards/"+card.cardID+"/disable", nil, true)
	require.Equal(t, http.StatusOK, status)

	p, c := card.tapParams(t, 1)
	status, resp := app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])
}

func TestIntegration_WipeRotatesKeyEpoch(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 1000, nil, nil)

	status, resp := app.do(t, http.MethodPost, "/api/v1/cards/"+card.cardID+"/wipe", nil, true)
	require.Equal(t, http.StatusOK, status)
	payload := data(t, resp)

	// The new epoch derives different card-scoped keys.
	assert.NotEqual(t, hex.EncodeToString(card.authKey), payload["k2"])

	// Taps under the old keys are dead.
	p, c := card.tapParams(t, 1)
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/ln/withdraw?p=%s&c=%s", p, c), nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERROR", resp["status"])
}

func TestIntegration_OwnerAPIRequiresAuth(t *testing.T) {
	app := newTestApp(t)
	card := registerCard(t, app, 1000, nil, nil)

	status, _ := app.do(t, http.MethodGet, "/api/v1/cards/"+card.cardID, nil, false)
	assert.Equal(t, http.StatusUnauthorized, status)
}
