package handler

import (
	"strconv"
	"time"

	"boltcard-gateway/internal/adapter/http/dto"
	"boltcard-gateway/internal/adapter/http/middleware"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CardHandler handles owner-facing card administration and top-up issuance.
type CardHandler struct {
	adminSvc ports.CardAdminService
	topupSvc ports.TopupService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(adminSvc ports.CardAdminService, topupSvc ports.TopupService) *CardHandler {
	return &CardHandler{adminSvc: adminSvc, topupSvc: topupSvc}
}

// Get handles GET /api/v1/cards/:id.
func (h *CardHandler) Get(c *gin.Context) {
	ownerID, cardID, ok := h.ownerAndCard(c)
	if !ok {
		return
	}

	card, err := h.adminSvc.GetCard(c.Request.Context(), ownerID, cardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToCardResponse(card))
}

// ListLedger handles GET /api/v1/cards/:id/transactions.
func (h *CardHandler) ListLedger(c *gin.Context) {
	ownerID, cardID, ok := h.ownerAndCard(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.adminSvc.ListLedger(c.Request.Context(), ownerID, cardID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToLedgerEntryResponse(e))
	}
	response.OK(c, out)
}

// Disable handles POST /api/v1/cards/:id/disable.
func (h *CardHandler) Disable(c *gin.Context) {
	ownerID, cardID, ok := h.ownerAndCard(c)
	if !ok {
		return
	}

	if err := h.adminSvc.Disable(c.Request.Context(), ownerID, cardID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"card_id": cardID.String(), "status": "DISABLED"})
}

// Wipe handles POST /api/v1/cards/:id/wipe.
func (h *CardHandler) Wipe(c *gin.Context) {
	ownerID, cardID, ok := h.ownerAndCard(c)
	if !ok {
		return
	}

	payload, err := h.adminSvc.Wipe(c.Request.Context(), ownerID, cardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ProgramResponse{
		CardID:     payload.CardID.String(),
		K0:         payload.K0,
		K1:         payload.K1,
		K2:         payload.K2,
		K3:         payload.K3,
		K4:         payload.K4,
		LNURLWBase: payload.LNURLWBase,
	})
}

// CreateTopup handles POST /api/v1/cards/:id/topups.
func (h *CardHandler) CreateTopup(c *gin.Context) {
	ownerID, cardID, ok := h.ownerAndCard(c)
	if !ok {
		return
	}

	// Ownership check happens before any invoice is issued.
	if _, err := h.adminSvc.GetCard(c.Request.Context(), ownerID, cardID); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	inv, err := h.topupSvc.CreateInvoice(c.Request.Context(), cardID, req.Amount, req.Memo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TopupResponse{
		PaymentRef: inv.PaymentRef,
		Bolt11:     inv.Bolt11,
		Amount:     inv.Amount,
		ExpiresAt:  inv.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *CardHandler) ownerAndCard(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := c.Get(middleware.CtxOwnerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, uuid.Nil, false
	}
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid card id"))
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID.(uuid.UUID), cardID, true
}
