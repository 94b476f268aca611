package dto

import (
	"time"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
)

// RecordEventRequest is the request body for recording a ledger event.
// Amounts are exact decimal strings; the service rejects anything that
// does not parse losslessly.
type RecordEventRequest struct {
	UserID           string  `json:"user_id" binding:"required,uuid"`
	EventType        string  `json:"event_type" binding:"required"`
	Amount           string  `json:"amount" binding:"required"`
	Currency         string  `json:"currency" binding:"required,min=2,max=10"`
	Source           string  `json:"source" binding:"required,safe_id,max=50"`
	RelatedInvoiceID *string `json:"related_invoice_id,omitempty"`
	Country          string  `json:"country,omitempty" binding:"omitempty,len=2"`
	InvoiceRef       string  `json:"invoice_ref,omitempty" binding:"omitempty,max=100"`
}

// EventResponse is one ledger event in API responses.
type EventResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	EventType        string  `json:"event_type"`
	Amount           string  `json:"amount"`
	Currency         string  `json:"currency"`
	Source           string  `json:"source"`
	RelatedInvoiceID *string `json:"related_invoice_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

// NewEventResponse maps a domain event to its API shape.
func NewEventResponse(e *domain.LedgerEvent) EventResponse {
	return EventResponse{
		ID:               e.ID.String(),
		UserID:           e.UserID.String(),
		EventType:        string(e.EventType),
		Amount:           e.Amount.String(),
		Currency:         e.Currency,
		Source:           e.Source,
		RelatedInvoiceID: e.RelatedInvoiceID,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// EventListResponse wraps a page of ledger events.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Count int             `json:"count"`
}

// LiabilityResponse is the computed net tax obligation for a user.
type LiabilityResponse struct {
	TotalHeld     string `json:"total_held"`
	TotalReleased string `json:"total_released"`
	Net           string `json:"net"`
}

// NewLiabilityResponse maps a liability to its API shape.
func NewLiabilityResponse(l *ports.Liability) LiabilityResponse {
	return LiabilityResponse{
		TotalHeld:     l.TotalHeld.String(),
		TotalReleased: l.TotalReleased.String(),
		Net:           l.Net.String(),
	}
}

// AllocationSplit is one bucket-wise amount split.
type AllocationSplit struct {
	Tax       string `json:"tax"`
	Liquidity string `json:"liquidity"`
	Yield     string `json:"yield"`
}

func newAllocationSplit(a domain.Allocation) AllocationSplit {
	return AllocationSplit{
		Tax:       a.Tax.String(),
		Liquidity: a.Liquidity.String(),
		Yield:     a.Yield.String(),
	}
}

// AllocationStateResponse is a user's allocation state machine snapshot.
type AllocationStateResponse struct {
	UserID               string          `json:"user_id"`
	LastObservedBalance  string          `json:"last_observed_balance"`
	PendingDepositAmount string          `json:"pending_deposit_amount"`
	PendingDepositTxHash *string         `json:"pending_deposit_tx_hash,omitempty"`
	Percentages          AllocationSplit `json:"percentages"`
	Pending              AllocationSplit `json:"pending"`
	Confirmed            AllocationSplit `json:"confirmed"`
	UpdatedAt            string          `json:"updated_at"`
}

// NewAllocationStateResponse maps allocation state to its API shape.
func NewAllocationStateResponse(s *domain.AllocationState) AllocationStateResponse {
	return AllocationStateResponse{
		UserID:               s.UserID.String(),
		LastObservedBalance:  s.LastObservedBalance.String(),
		PendingDepositAmount: s.PendingDepositAmount.String(),
		PendingDepositTxHash: s.PendingDepositTxHash,
		Percentages: AllocationSplit{
			Tax:       s.BucketPercentages.Tax.String(),
			Liquidity: s.BucketPercentages.Liquidity.String(),
			Yield:     s.BucketPercentages.Yield.String(),
		},
		Pending:   newAllocationSplit(s.PendingAllocation),
		Confirmed: newAllocationSplit(s.ConfirmedAllocation),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ReconcileResponse reports one reconciliation run.
type ReconcileResponse struct {
	WalletsScanned int `json:"wallets_scanned"`
	DepositsFound  int `json:"deposits_found"`
	SweepsExecuted int `json:"sweeps_executed"`
	SweepsSkipped  int `json:"sweeps_skipped"`
	TaxHoldsHealed int `json:"tax_holds_healed"`
	WalletsFailed  int `json:"wallets_failed"`
}

// NewReconcileResponse maps a reconcile report to its API shape.
func NewReconcileResponse(r *ports.ReconcileReport) ReconcileResponse {
	return ReconcileResponse{
		WalletsScanned: r.WalletsScanned,
		DepositsFound:  r.DepositsFound,
		SweepsExecuted: r.SweepsExecuted,
		SweepsSkipped:  r.SweepsSkipped,
		TaxHoldsHealed: r.TaxHoldsHealed,
		WalletsFailed:  r.WalletsFailed,
	}
}
