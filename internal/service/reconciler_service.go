package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"treasury-engine/config"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// taxDeriver is the slice of the tax engine the reconciler needs to heal
// income events that lost their derivation (bus crash, handler panic).
type taxDeriver interface {
	DeriveHold(ctx context.Context, event domain.LedgerEvent) (bool, error)
}

// ReconcilerServiceImpl implements ports.ReconcilerService. One run scans
// every primary wallet: polls the settlement-token balance, registers new
// deposits, splits and sweeps pending ones, verifies earlier sweeps made
// it on-chain, and re-derives missing tax holds. Each wallet gets its own
// timeout so a hung RPC cannot stall the whole run, and a wallet failure
// never aborts the others.
type ReconcilerServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	sweepRepo  ports.SweepRepository
	transactor ports.DBTransactor
	allocSvc   ports.AllocationService
	relay      ports.RelayService
	chain      ports.ChainClient
	bundler    ports.BundlerClient
	tax        taxDeriver

	settlementCurrency  string
	tokenAddress        string
	tokenDecimals       int32
	walletTimeout       time.Duration
	sweepConfirmTimeout time.Duration
	log                 zerolog.Logger
}

// NewReconcilerService creates a reconciler. The first supported currency
// with a configured token address becomes the settlement token the
// worker polls and sweeps.
func NewReconcilerService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	sweepRepo ports.SweepRepository,
	transactor ports.DBTransactor,
	allocSvc ports.AllocationService,
	relay ports.RelayService,
	chain ports.ChainClient,
	bundler ports.BundlerClient,
	tax taxDeriver,
	chainCfg config.ChainConfig,
	workerCfg config.WorkerConfig,
	currencies []string,
	log zerolog.Logger,
) (*ReconcilerServiceImpl, error) {
	var currency, address string
	for _, c := range currencies {
		if addr, ok := chainCfg.TokenAddresses[c]; ok && addr != "" {
			currency, address = c, addr
			break
		}
	}
	if address == "" {
		return nil, fmt.Errorf("no settlement token address configured for currencies %v", currencies)
	}

	return &ReconcilerServiceImpl{
		walletRepo:          walletRepo,
		ledgerRepo:          ledgerRepo,
		sweepRepo:           sweepRepo,
		transactor:          transactor,
		allocSvc:            allocSvc,
		relay:               relay,
		chain:               chain,
		bundler:             bundler,
		tax:                 tax,
		settlementCurrency:  currency,
		tokenAddress:        address,
		tokenDecimals:       chainCfg.DecimalsFor(currency),
		walletTimeout:       workerCfg.WalletTimeout,
		sweepConfirmTimeout: workerCfg.SweepConfirmTimeout,
		log:                 log,
	}, nil
}

// Run executes one reconciliation pass over all primary wallets.
func (s *ReconcilerServiceImpl) Run(ctx context.Context) (*ports.ReconcileReport, error) {
	start := time.Now()
	defer func() {
		metrics.ReconcileRunDuration.Observe(time.Since(start).Seconds())
	}()

	wallets, err := s.walletRepo.ListPrimary(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list primary wallets: %w", err))
	}

	report := &ports.ReconcileReport{}
	for _, wallet := range wallets {
		if ctx.Err() != nil {
			return report, apperror.InternalError(ctx.Err())
		}
		report.WalletsScanned++

		wctx, cancel := context.WithTimeout(ctx, s.walletTimeout)
		err := s.reconcileWallet(wctx, wallet, report)
		cancel()
		if err != nil {
			report.WalletsFailed++
			s.log.Error().Err(err).
				Str("user_id", wallet.UserID.String()).
				Str("wallet", wallet.WalletAddress).
				Msg("wallet reconciliation failed")
		}
	}

	s.log.Info().
		Int("wallets_scanned", report.WalletsScanned).
		Int("deposits_found", report.DepositsFound).
		Int("sweeps_executed", report.SweepsExecuted).
		Int("sweeps_skipped", report.SweepsSkipped).
		Int("tax_holds_healed", report.TaxHoldsHealed).
		Int("wallets_failed", report.WalletsFailed).
		Dur("duration", time.Since(start)).
		Msg("reconciliation run finished")

	return report, nil
}

func (s *ReconcilerServiceImpl) reconcileWallet(ctx context.Context, wallet domain.CustodialWallet, report *ports.ReconcileReport) error {
	balance, err := s.chain.TokenBalance(ctx, s.tokenAddress, wallet.WalletAddress, s.tokenDecimals)
	if err != nil {
		return fmt.Errorf("poll balance: %w", err)
	}

	// The deposit reference correlates this detection with its sweeps.
	// It is stored on the pending state, so a failed sweep re-run reuses
	// the same reference instead of minting a new one.
	check, err := s.allocSvc.CheckAndUpdateBalance(ctx, wallet.UserID, balance, "deposit-"+uuid.NewString())
	if err != nil {
		return fmt.Errorf("balance check: %w", err)
	}
	if check.NewDeposit {
		report.DepositsFound++
	}

	state, err := s.allocSvc.GetAllocationState(ctx, wallet.UserID)
	if err != nil {
		return fmt.Errorf("get allocation state: %w", err)
	}
	if state.HasPendingDeposit() {
		if err := s.sweepPendingDeposit(ctx, wallet, state, report); err != nil {
			return err
		}
	}

	return s.healMissingTaxHolds(ctx, wallet.UserID, report)
}

// sweepPendingDeposit splits the pending deposit and drives every bucket
// toward an included on-chain sweep. A bucket with no record gets relayed;
// a bucket with an unconfirmed record waits for inclusion, or is resubmitted
// once it stays unconfirmed past the deadline. The allocation is confirmed
// only on a run where every bucket's sweep is verified included, so a
// dropped or reverted submission can never confirm funds that never moved.
func (s *ReconcilerServiceImpl) sweepPendingDeposit(ctx context.Context, wallet domain.CustodialWallet, state *domain.AllocationState, report *ports.ReconcileReport) error {
	state, err := s.allocSvc.CalculateAndTrackAllocation(ctx, wallet.UserID, state.PendingDepositAmount)
	if err != nil {
		return fmt.Errorf("track allocation: %w", err)
	}
	if state.PendingDepositTxHash == nil {
		return fmt.Errorf("pending deposit without reference for user %s", wallet.UserID)
	}
	depositRef := *state.PendingDepositTxHash

	existing, err := s.sweepRepo.ListByDeposit(ctx, depositRef)
	if err != nil {
		return fmt.Errorf("list sweep records: %w", err)
	}
	records := make(map[domain.Bucket]domain.SweepRecord, len(existing))
	for _, rec := range existing {
		records[rec.Bucket] = rec
	}

	var transfers []ports.Transfer
	awaiting := 0
	for _, bucket := range []domain.Bucket{domain.BucketTax, domain.BucketLiquidity, domain.BucketYield} {
		amount := state.PendingAllocation.Get(bucket)
		if amount.Sign() <= 0 {
			continue
		}

		if rec, ok := records[bucket]; ok {
			included, err := s.sweepIncluded(ctx, rec)
			if err != nil {
				return fmt.Errorf("check sweep inclusion: %w", err)
			}
			if included {
				report.SweepsSkipped++
				continue
			}
			if time.Since(rec.CreatedAt) < s.sweepConfirmTimeout {
				// Submitted and possibly still propagating. Never resubmit
				// a sweep that could yet land.
				awaiting++
				continue
			}
			s.log.Warn().
				Str("user_id", wallet.UserID.String()).
				Str("deposit_ref", depositRef).
				Str("bucket", string(bucket)).
				Str("sweep_tx", rec.SweepTxHash).
				Msg("sweep unconfirmed past deadline, resubmitting")
		}

		dest, err := s.walletRepo.GetByUserAndType(ctx, wallet.UserID, walletTypeFor(bucket), wallet.ChainID)
		if err != nil {
			return fmt.Errorf("find %s wallet: %w", bucket, err)
		}
		if dest == nil {
			return fmt.Errorf("user %s has no %s wallet on chain %d", wallet.UserID, bucket, wallet.ChainID)
		}

		transfers = append(transfers, ports.Transfer{
			TokenAddress: s.tokenAddress,
			To:           dest.WalletAddress,
			Amount:       amount,
			Decimals:     s.tokenDecimals,
			Bucket:       bucket,
		})
	}

	if len(transfers) > 0 {
		if err := s.relaySweep(ctx, wallet, depositRef, transfers, report); err != nil {
			return err
		}
		// Inclusion is verified on a later run before the allocation
		// confirms.
		return nil
	}

	if awaiting > 0 {
		s.log.Info().
			Str("user_id", wallet.UserID.String()).
			Str("deposit_ref", depositRef).
			Int("awaiting", awaiting).
			Msg("sweeps submitted, awaiting inclusion")
		return nil
	}

	if _, err := s.allocSvc.ConfirmPendingDepositAllocation(ctx, wallet.UserID); err != nil {
		return fmt.Errorf("confirm allocation: %w", err)
	}
	return nil
}

// relaySweep executes one batched relay for the given transfers and writes
// all their correlation records in a single transaction, so the store never
// holds a partial view of a batch that landed whole.
func (s *ReconcilerServiceImpl) relaySweep(ctx context.Context, wallet domain.CustodialWallet, depositRef string, transfers []ports.Transfer, report *ports.ReconcileReport) error {
	result, err := s.relay.ExecuteTransfers(ctx, &wallet, transfers)
	if err != nil {
		for _, t := range transfers {
			metrics.SweepsExecuted.WithLabelValues(string(t.Bucket), "failed").Inc()
		}
		if isAmbiguousSubmission(err) {
			// Funds may have moved without a sweep record. This is
			// the one state the loop cannot self-heal.
			s.log.Error().
				Err(apperror.ErrLedgerChainMismatch(err)).
				Str("user_id", wallet.UserID.String()).
				Str("deposit_ref", depositRef).
				Msg("sweep outcome unknown, manual audit required")
		}
		return fmt.Errorf("relay sweep: %w", err)
	}

	sweepHash := result.TxHash
	if sweepHash == "" {
		sweepHash = result.OpHash
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sweep record tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	for _, t := range transfers {
		record := &domain.SweepRecord{
			ID:            uuid.New(),
			UserID:        wallet.UserID,
			DepositTxHash: depositRef,
			SweepTxHash:   sweepHash,
			Path:          result.Path,
			Bucket:        t.Bucket,
			Amount:        t.Amount,
			CreatedAt:     now,
		}
		if err := s.sweepRepo.Create(ctx, dbTx, record); err != nil {
			return s.recordWriteFailed(wallet, depositRef, sweepHash, err)
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return s.recordWriteFailed(wallet, depositRef, sweepHash, err)
	}

	for _, t := range transfers {
		metrics.SweepsExecuted.WithLabelValues(string(t.Bucket), "success").Inc()
		report.SweepsExecuted++
	}

	s.log.Info().
		Str("user_id", wallet.UserID.String()).
		Str("deposit_ref", depositRef).
		Str("sweep_tx", sweepHash).
		Int("transfers", len(transfers)).
		Msg("pending deposit swept")
	return nil
}

// recordWriteFailed flags a relayed batch whose correlation records did not
// commit. The rollback keeps the store all-or-nothing, but the transfers are
// on-chain and the next run cannot know they already happened.
func (s *ReconcilerServiceImpl) recordWriteFailed(wallet domain.CustodialWallet, depositRef, sweepHash string, err error) error {
	s.log.Error().
		Err(apperror.ErrLedgerChainMismatch(err)).
		Str("user_id", wallet.UserID.String()).
		Str("deposit_ref", depositRef).
		Str("sweep_tx", sweepHash).
		Msg("sweep executed but record write failed, manual audit required")
	return fmt.Errorf("record sweep: %w", err)
}

// sweepIncluded reports whether a recorded sweep submission landed
// on-chain. Sponsored operations are resolved through the bundler's
// receipt; direct transactions through the chain's receipt. A reverted
// sponsored operation counts as not included and is eventually resubmitted.
func (s *ReconcilerServiceImpl) sweepIncluded(ctx context.Context, rec domain.SweepRecord) (bool, error) {
	if rec.Path == domain.RelayPathSponsored {
		receipt, err := s.bundler.GetUserOperationReceipt(ctx, rec.SweepTxHash)
		if err != nil {
			return false, fmt.Errorf("operation receipt %s: %w", rec.SweepTxHash, err)
		}
		return receipt != nil && receipt.Success, nil
	}
	confirmed, err := s.chain.TransactionConfirmed(ctx, rec.SweepTxHash)
	if err != nil {
		return false, fmt.Errorf("transaction receipt %s: %w", rec.SweepTxHash, err)
	}
	return confirmed, nil
}

// healMissingTaxHolds re-derives withholding for income events whose
// tax_hold never landed.
func (s *ReconcilerServiceImpl) healMissingTaxHolds(ctx context.Context, userID uuid.UUID, report *ports.ReconcileReport) error {
	missing, err := s.ledgerRepo.ListIncomeWithoutTaxHold(ctx, userID)
	if err != nil {
		return fmt.Errorf("list unheld income: %w", err)
	}

	for _, event := range missing {
		derived, err := s.tax.DeriveHold(ctx, event)
		if err != nil {
			s.log.Warn().Err(err).
				Str("event_id", event.ID.String()).
				Msg("tax hold healing failed")
			continue
		}
		if derived {
			report.TaxHoldsHealed++
			s.log.Info().
				Str("event_id", event.ID.String()).
				Str("user_id", userID.String()).
				Msg("missing tax hold healed")
		}
	}
	return nil
}

func walletTypeFor(bucket domain.Bucket) domain.WalletType {
	switch bucket {
	case domain.BucketTax:
		return domain.WalletTypeTax
	case domain.BucketLiquidity:
		return domain.WalletTypeLiquidity
	default:
		return domain.WalletTypeYield
	}
}

func isAmbiguousSubmission(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == "RLY_004"
}
