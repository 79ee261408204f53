package lnbits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"boltcard-gateway/config"
	"boltcard-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Client implements ports.PaymentClient against an LNbits-compatible wallet
// API. All calls carry the request context; latency here is the gateway's
// dominant external cost and must never run under a card row lock.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates an LNbits API client.
func NewClient(cfg config.LNBitsConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type createInvoiceRequest struct {
	Out    bool   `json:"out"`
	Amount int64  `json:"amount"` // sats
	Memo   string `json:"memo"`
	Wallet string `json:"wallet,omitempty"`
}

type createInvoiceResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

type payInvoiceRequest struct {
	Out    bool   `json:"out"`
	Bolt11 string `json:"bolt11"`
	Wallet string `json:"wallet,omitempty"`
}

type payInvoiceResponse struct {
	PaymentHash string `json:"payment_hash"`
}

type decodeRequest struct {
	Data string `json:"data"`
}

type decodeResponse struct {
	AmountMsat int64 `json:"amount_msat"`
}

type apiError struct {
	Detail string `json:"detail"`
}

// CreateInvoice asks the provider to issue an invoice paying into walletID.
func (c *Client) CreateInvoice(ctx context.Context, walletID string, amountSat int64, memo string) (*ports.Invoice, error) {
	var resp createInvoiceResponse
	err := c.post(ctx, "/api/v1/payments", createInvoiceRequest{
		Out:    false,
		Amount: amountSat,
		Memo:   memo,
		Wallet: walletID,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return &ports.Invoice{
		Bolt11:     resp.PaymentRequest,
		PaymentRef: resp.PaymentHash,
	}, nil
}

// PayInvoice pays bolt11 from walletID and returns the payment reference.
func (c *Client) PayInvoice(ctx context.Context, walletID, bolt11 string) (string, error) {
	var resp payInvoiceResponse
	err := c.post(ctx, "/api/v1/payments", payInvoiceRequest{
		Out:    true,
		Bolt11: bolt11,
		Wallet: walletID,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("pay invoice: %w", err)
	}
	return resp.PaymentHash, nil
}

// DecodeInvoice returns the invoice amount in msat.
func (c *Client) DecodeInvoice(ctx context.Context, bolt11 string) (int64, error) {
	var resp decodeResponse
	err := c.post(ctx, "/api/v1/payments/decode", decodeRequest{Data: bolt11}, &resp)
	if err != nil {
		return 0, fmt.Errorf("decode invoice: %w", err)
	}
	return resp.AmountMsat, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("lnbits request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
			return fmt.Errorf("lnbits %s: %s (status %d)", path, apiErr.Detail, resp.StatusCode)
		}
		return fmt.Errorf("lnbits %s: status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
