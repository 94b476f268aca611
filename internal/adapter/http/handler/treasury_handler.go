package handler

import (
	"treasury-engine/internal/adapter/http/dto"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TreasuryHandler exposes the derived read models (liability, allocation)
// and the allocation confirm transition.
type TreasuryHandler struct {
	liabilitySvc ports.LiabilityService
	allocSvc     ports.AllocationService
}

// NewTreasuryHandler creates a new TreasuryHandler.
func NewTreasuryHandler(liabilitySvc ports.LiabilityService, allocSvc ports.AllocationService) *TreasuryHandler {
	return &TreasuryHandler{liabilitySvc: liabilitySvc, allocSvc: allocSvc}
}

// GetLiability handles GET /api/v1/users/:user_id/liability.
func (h *TreasuryHandler) GetLiability(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	liability, err := h.liabilitySvc.CalculateLiability(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewLiabilityResponse(liability))
}

// GetAllocation handles GET /api/v1/users/:user_id/allocation.
func (h *TreasuryHandler) GetAllocation(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	state, err := h.allocSvc.GetAllocationState(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAllocationStateResponse(state))
}

// ConfirmAllocation handles POST /api/v1/users/:user_id/allocation/confirm.
// Idempotent: confirming with nothing pending returns the current state.
func (h *TreasuryHandler) ConfirmAllocation(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	state, err := h.allocSvc.ConfirmPendingDepositAllocation(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAllocationStateResponse(state))
}
