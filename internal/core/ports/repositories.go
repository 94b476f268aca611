package ports

import (
	"context"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepository persists the append-only ledger event stream.
// There are no update or delete operations: the event table is the
// immutable system of record and derived state is recomputed from it.
type LedgerRepository interface {
	Append(ctx context.Context, event *domain.LedgerEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEvent, error)
	// ListByUser returns events newest first. A non-nil before timestamp
	// restarts pagination from that point.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, before *time.Time) ([]domain.LedgerEvent, error)
	// SumByType sums event amounts of one type for a user.
	SumByType(ctx context.Context, userID uuid.UUID, eventType domain.EventType) (decimal.Decimal, error)
	// ListIncomeWithoutTaxHold returns income events that have no derived
	// tax_hold referencing them, for reconciliation healing.
	ListIncomeWithoutTaxHold(ctx context.Context, userID uuid.UUID) ([]domain.LedgerEvent, error)
}

// WalletRepository reads custodial wallet records. Wallets are created by
// the onboarding collaborator; the engine never writes them.
type WalletRepository interface {
	GetByUserAndType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType, chainID int64) (*domain.CustodialWallet, error)
	// ListPrimary returns every primary wallet, the reconciliation scan set.
	ListPrimary(ctx context.Context) ([]domain.CustodialWallet, error)
}

// AllocationRepository persists per-user allocation state.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking of the single state row.
type AllocationRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.AllocationState, error)
	Upsert(ctx context.Context, tx pgx.Tx, state *domain.AllocationState) error
}

// SweepRepository persists sweep correlation records, keyed by
// (deposit tx hash, bucket) so a re-run over the same deposit is a no-op.
type SweepRepository interface {
	// Create upserts on the (deposit, bucket) key; a resubmitted sweep
	// replaces the prior submission's hash. Tx-scoped so every record of
	// one relayed batch lands atomically or not at all.
	Create(ctx context.Context, tx pgx.Tx, record *domain.SweepRecord) error
	ListByDeposit(ctx context.Context, depositTxHash string) ([]domain.SweepRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
