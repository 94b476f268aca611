package ports

import (
	"context"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Event Bus ---

// EventHandler consumes a recorded ledger event. Handlers own their own
// retry and error handling; the bus is fire-and-forget.
type EventHandler func(ctx context.Context, event domain.LedgerEvent)

// EventBus is the in-process publish/subscribe channel fired after each
// successful ledger write. Injected, never a package singleton, so tests
// can run isolated instances.
type EventBus interface {
	// Subscribe registers a handler. Must be called before the store
	// starts accepting writes.
	Subscribe(name string, handler EventHandler)
	// Publish dispatches the event to every subscriber without waiting
	// for handlers to finish. A failing subscriber never affects others.
	Publish(ctx context.Context, event domain.LedgerEvent)
	// Close stops dispatching and waits for in-flight handlers.
	Close()
}

// --- Ledger ---

// RecordEventInput is the validated-at-the-door input for a ledger write.
type RecordEventInput struct {
	UserID           uuid.UUID
	EventType        domain.EventType
	Amount           string // exact decimal string, validated by the service
	Currency         string
	Source           string
	RelatedInvoiceID *string
	Metadata         domain.EventMetadata
}

// LedgerService is the append-only ledger store contract.
type LedgerService interface {
	RecordLedgerEvent(ctx context.Context, input RecordEventInput) (*domain.LedgerEvent, error)
	GetEventsForUser(ctx context.Context, userID uuid.UUID, limit int, before *time.Time) ([]domain.LedgerEvent, error)
}

// --- Liability ---

// Liability is the read-side net tax obligation for a user.
type Liability struct {
	TotalHeld     decimal.Decimal `json:"total_held"`
	TotalReleased decimal.Decimal `json:"total_released"`
	Net           decimal.Decimal `json:"net"`
}

// LiabilityService computes net tax obligation from the event stream.
type LiabilityService interface {
	CalculateLiability(ctx context.Context, userID uuid.UUID) (*Liability, error)
}

// LiabilityCache memoizes computed liabilities for a short window.
// Never required for correctness: liability is always recomputable.
type LiabilityCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*Liability, error)
	Set(ctx context.Context, userID uuid.UUID, liability Liability, ttl time.Duration) error
}

// --- Allocation ---

// BalanceCheckResult reports whether an observed balance implies a new deposit.
type BalanceCheckResult struct {
	NewDeposit    bool            `json:"new_deposit"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
}

// AllocationService is the per-user allocation state machine.
type AllocationService interface {
	// CheckAndUpdateBalance compares the observed balance to the last one.
	// An increase registers a pending deposit; a decrease or no change
	// leaves pending state untouched.
	CheckAndUpdateBalance(ctx context.Context, userID uuid.UUID, observed decimal.Decimal, depositTxHash string) (*BalanceCheckResult, error)
	// CalculateAndTrackAllocation splits the pending deposit across
	// buckets and stores it as the pending allocation.
	CalculateAndTrackAllocation(ctx context.Context, userID uuid.UUID, depositAmount decimal.Decimal) (*domain.AllocationState, error)
	// ConfirmPendingDepositAllocation commits the pending allocation.
	// Idempotent: confirming with nothing pending is a no-op success.
	ConfirmPendingDepositAllocation(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error)
	GetAllocationState(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error)
}

// --- Chain & Relay ---

// ChainClient is the narrow on-chain read/submit surface. Implementations
// wrap a JSON-RPC endpoint; every call must honor ctx deadlines.
type ChainClient interface {
	// TokenBalance returns the ERC-20 balance of a wallet as an exact
	// decimal in token units, scaled by the token's decimals.
	TokenBalance(ctx context.Context, tokenAddress, walletAddress string, decimals int32) (decimal.Decimal, error)
	// AccountNonce returns the wallet's next unused on-chain nonce.
	AccountNonce(ctx context.Context, walletAddress string) (uint64, error)
	// SubmitTransaction submits a signed transaction, returning its hash.
	SubmitTransaction(ctx context.Context, tx *domain.RelayTransaction) (string, error)
	// TransactionConfirmed reports whether a transaction hash is included.
	TransactionConfirmed(ctx context.Context, txHash string) (bool, error)
}

// UserOperationReceipt is the bundler's inclusion report for an operation.
type UserOperationReceipt struct {
	OpHash  string `json:"userOpHash"`
	TxHash  string `json:"transactionHash"`
	Success bool   `json:"success"`
}

// BundlerClient submits sponsored user operations to an account-abstraction
// bundler. Submission returns an operation hash, not a transaction hash;
// callers poll GetUserOperationReceipt for inclusion.
type BundlerClient interface {
	SubmitUserOperation(ctx context.Context, op *domain.UserOperation, entryPoint string) (string, error)
	GetUserOperationReceipt(ctx context.Context, opHash string) (*UserOperationReceipt, error)
}

// TransactionSigner signs relay transactions with the engine's key.
// If signing fails, nothing is ever submitted.
type TransactionSigner interface {
	SignTransaction(tx *domain.RelayTransaction) ([]byte, error)
	SignUserOperation(op *domain.UserOperation, entryPoint string, chainID int64) (string, error)
	Address() string
}

// RelayNonceStore reserves a (wallet, chain, nonce) triple before
// submission so a given nonce is relayed at most once across the fleet.
type RelayNonceStore interface {
	// Reserve returns true if the nonce was free and is now held.
	Reserve(ctx context.Context, walletAddress string, chainID int64, nonce uint64, ttl time.Duration) (bool, error)
	// Release frees a reservation after a clean, nonce-preserving failure.
	Release(ctx context.Context, walletAddress string, chainID int64, nonce uint64) error
}

// Transfer is one intended fund movement inside a sweep.
type Transfer struct {
	TokenAddress string
	To           string
	Amount       decimal.Decimal
	Decimals     int32
	Bucket       domain.Bucket
}

// RelayResult reports the executed relay submission.
type RelayResult struct {
	TxHash string `json:"tx_hash,omitempty"` // direct path
	OpHash string `json:"op_hash,omitempty"` // sponsored path
	Path   string `json:"path"`              // direct, sponsored
}

// RelayService builds, signs and submits batched wallet transactions.
type RelayService interface {
	ExecuteTransfers(ctx context.Context, wallet *domain.CustodialWallet, transfers []Transfer) (*RelayResult, error)
}

// --- Collaborators ---

// CountryLookup resolves a user's country of residence. Supplied by the
// user-profile collaborator; empty string means unknown.
type CountryLookup interface {
	CountryOfResidence(ctx context.Context, userID uuid.UUID) (string, error)
}

// TokenService issues and validates service tokens for collaborator calls.
type TokenService interface {
	Generate(serviceName string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed service token claims.
type TokenClaims struct {
	ServiceName string
}

// --- Reconciliation ---

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	WalletsScanned int `json:"wallets_scanned"`
	DepositsFound  int `json:"deposits_found"`
	SweepsExecuted int `json:"sweeps_executed"`
	SweepsSkipped  int `json:"sweeps_skipped"`
	TaxHoldsHealed int `json:"tax_holds_healed"`
	WalletsFailed  int `json:"wallets_failed"`
}

// ReconcilerService is the scheduled trigger entrypoint. The engine does
// not self-schedule; an external scheduler invokes Run.
type ReconcilerService interface {
	Run(ctx context.Context) (*ReconcileReport, error)
}
