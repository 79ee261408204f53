package handler

import (
	"fmt"
	"strings"

	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LNURLWHandler serves the withdraw protocol endpoints the card's emitted
// URL points at. Both speak the LNURL wire dialect: errors are HTTP 200 with
// a status=ERROR body.
type LNURLWHandler struct {
	withdrawSvc ports.WithdrawService
	baseURL     string
	log         zerolog.Logger
}

// NewLNURLWHandler creates a new LNURLWHandler.
func NewLNURLWHandler(withdrawSvc ports.WithdrawService, baseURL string, log zerolog.Logger) *LNURLWHandler {
	return &LNURLWHandler{
		withdrawSvc: withdrawSvc,
		baseURL:     strings.TrimRight(baseURL, "/"),
		log:         log,
	}
}

// withdrawRequestResponse is the LNURL-withdraw phase-1 object.
type withdrawRequestResponse struct {
	Tag                string `json:"tag"`
	Callback           string `json:"callback"`
	K1                 string `json:"k1"`
	MinWithdrawable    int64  `json:"minWithdrawable"` // msat
	MaxWithdrawable    int64  `json:"maxWithdrawable"` // msat
	DefaultDescription string `json:"defaultDescription"`
}

// Tap handles GET /ln/withdraw?p=...&c=... — phase 1 of the withdraw
// protocol, hit directly by the payer's wallet after reading the card.
func (h *LNURLWHandler) Tap(c *gin.Context) {
	piccData := c.Query("p")
	cmac := c.Query("c")
	if piccData == "" || cmac == "" {
		response.LNURLFail(c, apperror.ErrDecryptionFailed())
		return
	}

	challenge, err := h.withdrawSvc.HandleTap(c.Request.Context(), piccData, cmac)
	if err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("tap rejected")
		response.LNURLFail(c, err)
		return
	}

	c.JSON(200, withdrawRequestResponse{
		Tag:                "withdrawRequest",
		Callback:           fmt.Sprintf("%s/ln/withdraw/cb", h.baseURL),
		K1:                 challenge.K1,
		MinWithdrawable:    challenge.MinWithdrawableMsat,
		MaxWithdrawable:    challenge.MaxWithdrawableMsat,
		DefaultDescription: challenge.DefaultDescription,
	})
}

// Callback handles GET /ln/withdraw/cb?k1=...&pr=... — phase 2, where the
// payer's wallet presents the invoice to be paid.
func (h *LNURLWHandler) Callback(c *gin.Context) {
	k1 := c.Query("k1")
	pr := c.Query("pr")
	if k1 == "" || pr == "" {
		response.LNURLFail(c, apperror.Validation("k1 and pr are required"))
		return
	}

	if err := h.withdrawSvc.HandleCallback(c.Request.Context(), k1, pr); err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("withdraw callback rejected")
		response.LNURLFail(c, err)
		return
	}

	response.LNURLOK(c)
}
