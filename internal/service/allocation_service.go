package service

import (
	"context"
	"fmt"
	"time"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AllocationServiceImpl implements ports.AllocationService. Every mutation
// runs inside a database transaction holding a FOR UPDATE lock on the
// user's single state row, so concurrent balance checks and confirmations
// serialize instead of racing.
type AllocationServiceImpl struct {
	repo       ports.AllocationRepository
	transactor ports.DBTransactor
	defaults   domain.BucketPercentages
	log        zerolog.Logger
}

// NewAllocationService creates a new AllocationServiceImpl. The default
// percentages apply to users with no stored state yet.
func NewAllocationService(repo ports.AllocationRepository, transactor ports.DBTransactor, defaults domain.BucketPercentages, log zerolog.Logger) (*AllocationServiceImpl, error) {
	if !defaults.Valid() {
		return nil, apperror.ErrInvalidBucketPercentages()
	}
	return &AllocationServiceImpl{
		repo:       repo,
		transactor: transactor,
		defaults:   defaults,
		log:        log,
	}, nil
}

// CheckAndUpdateBalance compares an observed balance against the stored
// baseline. An increase registers (or accumulates onto) a pending
// deposit. A decrease moves the baseline down without touching pending
// state, so an outgoing payment never masks the next deposit.
func (s *AllocationServiceImpl) CheckAndUpdateBalance(ctx context.Context, userID uuid.UUID, observed decimal.Decimal, depositTxHash string) (*ports.BalanceCheckResult, error) {
	if observed.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.repo.GetForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock allocation state: %w", err))
	}
	if state == nil {
		state = s.freshState(userID)
	}

	delta := observed.Sub(state.LastObservedBalance)
	result := &ports.BalanceCheckResult{DepositAmount: decimal.Zero}

	switch {
	case delta.Sign() > 0:
		// Deposits arriving while one is still pending accumulate; the
		// split is recomputed over the combined amount. The correlation
		// reference stays the first deposit's so sweep records already
		// written under it keep matching.
		state.PendingDepositAmount = state.PendingDepositAmount.Add(delta)
		if state.PendingDepositTxHash == nil {
			state.PendingDepositTxHash = &depositTxHash
		}
		state.LastObservedBalance = observed
		result.NewDeposit = true
		result.DepositAmount = delta
	case delta.Sign() < 0:
		state.LastObservedBalance = observed
	default:
		return result, nil
	}

	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, dbTx, state); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save allocation state: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if result.NewDeposit {
		s.log.Info().
			Str("user_id", userID.String()).
			Str("deposit", result.DepositAmount.String()).
			Str("pending_total", state.PendingDepositAmount.String()).
			Msg("deposit detected")
	}

	return result, nil
}

// CalculateAndTrackAllocation splits the deposit across buckets and
// stores the result as the pending allocation.
func (s *AllocationServiceImpl) CalculateAndTrackAllocation(ctx context.Context, userID uuid.UUID, depositAmount decimal.Decimal) (*domain.AllocationState, error) {
	if depositAmount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.repo.GetForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock allocation state: %w", err))
	}
	if state == nil {
		return nil, apperror.ErrNotFound("allocation state")
	}
	if !state.BucketPercentages.Valid() {
		return nil, apperror.ErrInvalidBucketPercentages()
	}

	state.PendingAllocation = domain.SplitDeposit(depositAmount, state.BucketPercentages)
	state.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, dbTx, state); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save allocation state: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("deposit", depositAmount.String()).
		Str("tax", state.PendingAllocation.Tax.String()).
		Str("liquidity", state.PendingAllocation.Liquidity.String()).
		Str("yield", state.PendingAllocation.Yield.String()).
		Msg("allocation tracked")

	return state, nil
}

// ConfirmPendingDepositAllocation commits the pending allocation into the
// confirmed totals and clears pending state. Confirming with nothing
// pending is a no-op success, so retries are harmless.
func (s *AllocationServiceImpl) ConfirmPendingDepositAllocation(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.repo.GetForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock allocation state: %w", err))
	}
	if state == nil {
		return nil, apperror.ErrNotFound("allocation state")
	}
	if !state.HasPendingDeposit() {
		return state, nil
	}

	confirmed := state.PendingDepositAmount
	state.ConfirmedAllocation = state.ConfirmedAllocation.Add(state.PendingAllocation)
	state.PendingAllocation = domain.Allocation{}
	state.PendingDepositAmount = decimal.Zero
	state.PendingDepositTxHash = nil
	state.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, dbTx, state); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save allocation state: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("confirmed_deposit", confirmed.String()).
		Msg("pending allocation confirmed")

	return state, nil
}

// GetAllocationState returns the stored state, or a fresh default view
// for users the engine has not observed yet.
func (s *AllocationServiceImpl) GetAllocationState(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error) {
	state, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get allocation state: %w", err))
	}
	if state == nil {
		return s.freshState(userID), nil
	}
	return state, nil
}

func (s *AllocationServiceImpl) freshState(userID uuid.UUID) *domain.AllocationState {
	return &domain.AllocationState{
		UserID:               userID,
		LastObservedBalance:  decimal.Zero,
		PendingDepositAmount: decimal.Zero,
		BucketPercentages:    s.defaults,
		UpdatedAt:            time.Now().UTC(),
	}
}
