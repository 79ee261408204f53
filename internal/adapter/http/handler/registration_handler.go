package handler

import (
	"time"

	"boltcard-gateway/internal/adapter/http/dto"
	"boltcard-gateway/internal/adapter/http/middleware"
	"boltcard-gateway/internal/core/domain"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistrationHandler handles the card issuance flow: the owner-facing
// begin endpoint and the programming-app-facing complete endpoint.
type RegistrationHandler struct {
	regSvc ports.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(regSvc ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

// Begin handles POST /api/v1/registrations.
func (h *RegistrationHandler) Begin(c *gin.Context) {
	ownerID, ok := c.Get(middleware.CtxOwnerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	reg, deeplink, err := h.regSvc.Begin(c.Request.Context(), ports.BeginRegistrationRequest{
		OwnerID:        ownerID.(uuid.UUID),
		WalletID:       req.WalletID,
		Denomination:   domain.Denomination(req.Denomination),
		InitialBalance: req.InitialBalance,
		MaxTxAmount:    req.MaxTxAmount,
		DailyLimit:     req.DailyLimit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegistrationResponse{
		ID:        reg.ID.String(),
		Deeplink:  deeplink,
		Status:    string(reg.Status),
		ExpiresAt: reg.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Complete handles POST /ln/registrations/:id — called by the programming
// app with the card's hardware id. No bearer auth: possession of the
// unguessable registration id within its TTL is the credential.
func (h *RegistrationHandler) Complete(c *gin.Context) {
	regID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid registration id"))
		return
	}

	var req dto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, err := h.regSvc.Complete(c.Request.Context(), regID, req.UID)
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
