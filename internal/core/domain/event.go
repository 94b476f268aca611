package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType represents the kind of ledger event.
type EventType string

const (
	EventTypeIncome     EventType = "income"
	EventTypeWithdrawal EventType = "withdrawal"
	EventTypeTaxHold    EventType = "tax_hold"
	EventTypeTaxRelease EventType = "tax_release"
)

// IsValid returns true if the event type is a known variant.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeIncome, EventTypeWithdrawal, EventTypeTaxHold, EventTypeTaxRelease:
		return true
	}
	return false
}

// LedgerEvent is an immutable, append-only record of a financial occurrence.
// Once written it is never mutated or deleted; all derived state (liability,
// allocation) is a pure function of a user's event stream.
type LedgerEvent struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	EventType        EventType       `json:"event_type"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	RelatedInvoiceID *string         `json:"related_invoice_id,omitempty"`
	Source           string          `json:"source"` // Producer tag (invoice-detector, tax-engine, reconciler, manual)
	Metadata         EventMetadata   `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// EventMetadata is the tagged union of per-event-type payloads.
type EventMetadata interface {
	MetadataKind() string
}

// IncomeMetadata annotates income events with tax-relevant context.
type IncomeMetadata struct {
	Country    string `json:"country,omitempty"`
	InvoiceRef string `json:"invoice_ref,omitempty"`
}

func (IncomeMetadata) MetadataKind() string { return "income" }

// TaxHoldMetadata links a derived withholding back to the income event
// it was computed from, for audit replay.
type TaxHoldMetadata struct {
	OriginalEventID uuid.UUID       `json:"original_event_id"`
	Pct             decimal.Decimal `json:"pct"`
	Country         string          `json:"country"`
}

func (TaxHoldMetadata) MetadataKind() string { return "tax_hold" }

// SweepMetadata correlates a deposit's source transaction with the sweep
// that moved its allocated portion on-chain.
type SweepMetadata struct {
	DepositTxHash string `json:"deposit_tx_hash"`
	SweepTxHash   string `json:"sweep_tx_hash"`
	Bucket        string `json:"bucket"`
}

func (SweepMetadata) MetadataKind() string { return "sweep" }

type metadataEnvelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalMetadata serializes metadata with a kind discriminator.
// Nil metadata marshals to nil (stored as SQL NULL).
func MarshalMetadata(m EventMetadata) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata payload: %w", err)
	}
	return json.Marshal(metadataEnvelope{Kind: m.MetadataKind(), Payload: payload})
}

// UnmarshalMetadata decodes a kind-discriminated metadata blob.
func UnmarshalMetadata(data []byte) (EventMetadata, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var env metadataEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal metadata envelope: %w", err)
	}

	var m EventMetadata
	switch env.Kind {
	case "income":
		m = &IncomeMetadata{}
	case "tax_hold":
		m = &TaxHoldMetadata{}
	case "sweep":
		m = &SweepMetadata{}
	default:
		return nil, fmt.Errorf("unknown metadata kind %q", env.Kind)
	}
	if err := json.Unmarshal(env.Payload, m); err != nil {
		return nil, fmt.Errorf("unmarshal %s metadata: %w", env.Kind, err)
	}

	switch v := m.(type) {
	case *IncomeMetadata:
		return *v, nil
	case *TaxHoldMetadata:
		return *v, nil
	case *SweepMetadata:
		return *v, nil
	}
	return nil, fmt.Errorf("unknown metadata kind %q", env.Kind)
}

// ParseAmount parses an exact non-negative decimal amount string.
// Floats are never used for money anywhere in the engine.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q is negative", s)
	}
	return d, nil
}
