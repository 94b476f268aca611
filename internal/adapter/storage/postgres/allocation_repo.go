package postgres

import (
	"context"
	"errors"
	"fmt"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AllocationRepo implements ports.AllocationRepository with one row per
// user. Mutations go through GetForUpdate + Upsert inside a transaction
// so concurrent balance checks for the same user serialize on the row lock.
type AllocationRepo struct {
	pool Pool
}

// NewAllocationRepo creates a new AllocationRepo.
func NewAllocationRepo(pool Pool) *AllocationRepo {
	return &AllocationRepo{pool: pool}
}

const allocationColumns = `user_id, last_observed_balance::text, pending_deposit_amount::text,
		tax_pct::text, liquidity_pct::text, yield_pct::text,
		pending_tax::text, pending_liquidity::text, pending_yield::text,
		confirmed_tax::text, confirmed_liquidity::text, confirmed_yield::text,
		pending_deposit_tx_hash, updated_at`

// Get fetches a user's allocation state without locking.
func (r *AllocationRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocation_states WHERE user_id = $1`
	return r.scanState(r.pool.QueryRow(ctx, query, userID))
}

// GetForUpdate fetches a user's allocation state with a row lock.
// Must be called within a transaction.
func (r *AllocationRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.AllocationState, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocation_states WHERE user_id = $1 FOR UPDATE`
	return r.scanState(tx.QueryRow(ctx, query, userID))
}

// Upsert writes a user's allocation state within a transaction.
func (r *AllocationRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.AllocationState) error {
	query := `INSERT INTO allocation_states (user_id, last_observed_balance, pending_deposit_amount,
			tax_pct, liquidity_pct, yield_pct,
			pending_tax, pending_liquidity, pending_yield,
			confirmed_tax, confirmed_liquidity, confirmed_yield,
			pending_deposit_tx_hash, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			last_observed_balance = EXCLUDED.last_observed_balance,
			pending_deposit_amount = EXCLUDED.pending_deposit_amount,
			tax_pct = EXCLUDED.tax_pct,
			liquidity_pct = EXCLUDED.liquidity_pct,
			yield_pct = EXCLUDED.yield_pct,
			pending_tax = EXCLUDED.pending_tax,
			pending_liquidity = EXCLUDED.pending_liquidity,
			pending_yield = EXCLUDED.pending_yield,
			confirmed_tax = EXCLUDED.confirmed_tax,
			confirmed_liquidity = EXCLUDED.confirmed_liquidity,
			confirmed_yield = EXCLUDED.confirmed_yield,
			pending_deposit_tx_hash = EXCLUDED.pending_deposit_tx_hash,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		s.UserID, s.LastObservedBalance.String(), s.PendingDepositAmount.String(),
		s.BucketPercentages.Tax.String(), s.BucketPercentages.Liquidity.String(), s.BucketPercentages.Yield.String(),
		s.PendingAllocation.Tax.String(), s.PendingAllocation.Liquidity.String(), s.PendingAllocation.Yield.String(),
		s.ConfirmedAllocation.Tax.String(), s.ConfirmedAllocation.Liquidity.String(), s.ConfirmedAllocation.Yield.String(),
		s.PendingDepositTxHash, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert allocation state: %w", err)
	}
	return nil
}

func (r *AllocationRepo) scanState(row pgx.Row) (*domain.AllocationState, error) {
	s := &domain.AllocationState{}
	var fields [12]string

	err := row.Scan(
		&s.UserID, &fields[0], &fields[1],
		&fields[2], &fields[3], &fields[4],
		&fields[5], &fields[6], &fields[7],
		&fields[8], &fields[9], &fields[10],
		&s.PendingDepositTxHash, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation state: %w", err)
	}

	decimals := make([]decimal.Decimal, 11)
	for i := 0; i < 11; i++ {
		if decimals[i], err = decimal.NewFromString(fields[i]); err != nil {
			return nil, fmt.Errorf("parse allocation decimal %q: %w", fields[i], err)
		}
	}

	s.LastObservedBalance = decimals[0]
	s.PendingDepositAmount = decimals[1]
	s.BucketPercentages = domain.BucketPercentages{Tax: decimals[2], Liquidity: decimals[3], Yield: decimals[4]}
	s.PendingAllocation = domain.Allocation{Tax: decimals[5], Liquidity: decimals[6], Yield: decimals[7]}
	s.ConfirmedAllocation = domain.Allocation{Tax: decimals[8], Liquidity: decimals[9], Yield: decimals[10]}
	return s, nil
}
