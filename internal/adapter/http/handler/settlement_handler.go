package handler

import (
	"errors"

	"boltcard-gateway/internal/adapter/http/dto"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SettlementHandler receives the payment provider's settlement notification
// for top-up invoices. The provider retries on non-2xx, so duplicates are
// expected and answered with the current state rather than an error.
type SettlementHandler struct {
	topupSvc ports.TopupService
	log      zerolog.Logger
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(topupSvc ports.TopupService, log zerolog.Logger) *SettlementHandler {
	return &SettlementHandler{topupSvc: topupSvc, log: log}
}

// Confirm handles POST /api/v1/topups/settlement.
func (h *SettlementHandler) Confirm(c *gin.Context) {
	var req dto.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pending, err := h.topupSvc.Confirm(c.Request.Context(), req.PaymentRef)
	if err != nil {
		var appErr *apperror.AppError
		// A duplicate notification is a success from the provider's view.
		if errors.As(err, &appErr) && appErr.Code == "LIFE_003" && pending != nil {
			response.OK(c, dto.SettlementResponse{
				PaymentRef: pending.PaymentRef,
				CardID:     pending.CardID.String(),
				Amount:     pending.Amount,
				Processed:  pending.Processed,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettlementResponse{
		PaymentRef: pending.PaymentRef,
		CardID:     pending.CardID.String(),
		Amount:     pending.Amount,
		Processed:  pending.Processed,
	})
}
