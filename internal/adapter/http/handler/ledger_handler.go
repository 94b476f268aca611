package handler

import (
	"strconv"
	"time"

	"treasury-engine/internal/adapter/http/dto"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler exposes the append-only ledger over HTTP.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// RecordEvent handles POST /api/v1/events.
func (h *LedgerHandler) RecordEvent(c *gin.Context) {
	var req dto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	var metadata domain.EventMetadata
	if req.Country != "" || req.InvoiceRef != "" {
		metadata = domain.IncomeMetadata{Country: req.Country, InvoiceRef: req.InvoiceRef}
	}

	event, err := h.ledgerSvc.RecordLedgerEvent(c.Request.Context(), ports.RecordEventInput{
		UserID:           userID,
		EventType:        domain.EventType(req.EventType),
		Amount:           req.Amount,
		Currency:         req.Currency,
		Source:           req.Source,
		RelatedInvoiceID: req.RelatedInvoiceID,
		Metadata:         metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewEventResponse(event))
}

// ListEvents handles GET /api/v1/users/:user_id/events.
// Query params: limit (default 50, capped), before (RFC3339 cursor).
func (h *LedgerHandler) ListEvents(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
	}

	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, apperror.Validation("before must be an RFC3339 timestamp"))
			return
		}
		before = &t
	}

	events, err := h.ledgerSvc.GetEventsForUser(c.Request.Context(), userID, limit, before)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, dto.NewEventResponse(&events[i]))
	}
	response.OK(c, dto.EventListResponse{Items: items, Count: len(items)})
}
