package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"treasury-engine/config"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/ethcodec"
	"treasury-engine/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	relayPathDirect    = domain.RelayPathDirect
	relayPathSponsored = domain.RelayPathSponsored
)

// RelayServiceImpl implements ports.RelayService. A batch is always
// signed before anything is submitted, and a (wallet, chain, nonce)
// triple is reserved in the nonce store first, so the same nonce is
// never relayed twice even across engine instances.
//
// Failure handling follows the nonce-safety rule: a clean endpoint
// rejection leaves the nonce free, so the same nonce is retried; an
// ambiguous failure may have consumed it, so the reservation is kept
// and a fresh nonce is fetched for the next attempt.
type RelayServiceImpl struct {
	chain   ports.ChainClient
	bundler ports.BundlerClient
	signer  ports.TransactionSigner
	nonces  ports.RelayNonceStore
	cfg     config.RelayConfig
	log     zerolog.Logger
}

// NewRelayService creates a new RelayServiceImpl.
func NewRelayService(
	chain ports.ChainClient,
	bundler ports.BundlerClient,
	signer ports.TransactionSigner,
	nonces ports.RelayNonceStore,
	cfg config.RelayConfig,
	log zerolog.Logger,
) *RelayServiceImpl {
	return &RelayServiceImpl{
		chain:   chain,
		bundler: bundler,
		signer:  signer,
		nonces:  nonces,
		cfg:     cfg,
		log:     log,
	}
}

// ExecuteTransfers batches the transfers into one wallet transaction and
// submits it via the configured path.
func (s *RelayServiceImpl) ExecuteTransfers(ctx context.Context, wallet *domain.CustodialWallet, transfers []ports.Transfer) (*ports.RelayResult, error) {
	if len(transfers) == 0 {
		return nil, apperror.ErrInvalidEvent("no transfers to relay")
	}

	calls := make([]domain.Call, 0, len(transfers))
	for _, t := range transfers {
		data, err := ethcodec.EncodeERC20Transfer(t.To, t.Amount, t.Decimals)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("encode %s transfer: %w", t.Bucket, err))
		}
		calls = append(calls, domain.Call{
			To:    t.TokenAddress,
			Value: new(big.Int),
			Data:  data,
		})
	}

	if s.cfg.Mode == relayPathSponsored {
		return s.executeSponsored(ctx, wallet, calls)
	}
	return s.executeDirect(ctx, wallet, calls)
}

func (s *RelayServiceImpl) executeDirect(ctx context.Context, wallet *domain.CustodialWallet, calls []domain.Call) (*ports.RelayResult, error) {
	nonce, err := s.chain.AccountNonce(ctx, wallet.WalletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch nonce: %w", err))
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := s.backoff(ctx, attempt); err != nil {
				return nil, apperror.InternalError(err)
			}
		}

		reserved, err := s.nonces.Reserve(ctx, wallet.WalletAddress, wallet.ChainID, nonce, s.cfg.NonceTTL)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reserve nonce: %w", err))
		}
		if !reserved {
			// Another relay holds this nonce; refetch and try again.
			lastErr = apperror.ErrNonceConflict()
			if nonce, err = s.chain.AccountNonce(ctx, wallet.WalletAddress); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("refetch nonce: %w", err))
			}
			continue
		}

		tx := &domain.RelayTransaction{
			WalletAddress: wallet.WalletAddress,
			ChainID:       wallet.ChainID,
			Calls:         calls,
			Nonce:         nonce,
			Status:        domain.RelayStatusBuilt,
		}
		sig, err := s.signer.SignTransaction(tx)
		if err != nil {
			if rerr := s.nonces.Release(ctx, wallet.WalletAddress, wallet.ChainID, nonce); rerr != nil {
				s.log.Warn().Err(rerr).Msg("failed to release nonce after signing failure")
			}
			return nil, apperror.ErrSigningFailed(err)
		}
		tx.Signature = sig
		tx.Status = domain.RelayStatusSubmitted

		txHash, err := s.chain.SubmitTransaction(ctx, tx)
		if err == nil {
			metrics.RelaySubmissions.WithLabelValues(relayPathDirect, "success").Inc()
			s.log.Info().
				Str("wallet", wallet.WalletAddress).
				Uint64("nonce", nonce).
				Str("tx_hash", txHash).
				Int("calls", len(calls)).
				Msg("relay batch submitted")
			return &ports.RelayResult{TxHash: txHash, Path: relayPathDirect}, nil
		}
		lastErr = err

		if isCleanRejection(err) {
			// Nothing executed; the nonce is still free for the retry.
			metrics.RelaySubmissions.WithLabelValues(relayPathDirect, "rejected").Inc()
			s.log.Warn().Err(err).
				Str("wallet", wallet.WalletAddress).
				Uint64("nonce", nonce).
				Msg("relay submission rejected, retrying with same nonce")
			if rerr := s.nonces.Release(ctx, wallet.WalletAddress, wallet.ChainID, nonce); rerr != nil {
				s.log.Warn().Err(rerr).Msg("failed to release nonce after rejection")
			}
			continue
		}

		// Outcome unknown: the transaction may be in flight. Keep the
		// reservation so no one reuses the nonce, and move on to a
		// fresh one.
		metrics.RelaySubmissions.WithLabelValues(relayPathDirect, "ambiguous").Inc()
		s.log.Error().Err(err).
			Str("wallet", wallet.WalletAddress).
			Uint64("nonce", nonce).
			Msg("relay submission outcome unknown, abandoning nonce")
		if nonce, err = s.chain.AccountNonce(ctx, wallet.WalletAddress); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("refetch nonce: %w", err))
		}
	}

	return nil, lastErr
}

func (s *RelayServiceImpl) executeSponsored(ctx context.Context, wallet *domain.CustodialWallet, calls []domain.Call) (*ports.RelayResult, error) {
	nonce, err := s.chain.AccountNonce(ctx, wallet.WalletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch nonce: %w", err))
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := s.backoff(ctx, attempt); err != nil {
				return nil, apperror.InternalError(err)
			}
		}

		reserved, err := s.nonces.Reserve(ctx, wallet.WalletAddress, wallet.ChainID, nonce, s.cfg.NonceTTL)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reserve nonce: %w", err))
		}
		if !reserved {
			lastErr = apperror.ErrNonceConflict()
			if nonce, err = s.chain.AccountNonce(ctx, wallet.WalletAddress); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("refetch nonce: %w", err))
			}
			continue
		}

		op, err := s.buildUserOperation(wallet, calls, nonce)
		if err != nil {
			if rerr := s.nonces.Release(ctx, wallet.WalletAddress, wallet.ChainID, nonce); rerr != nil {
				s.log.Warn().Err(rerr).Msg("failed to release nonce after build failure")
			}
			return nil, err
		}

		opHash, err := s.bundler.SubmitUserOperation(ctx, op, s.cfg.EntryPoint)
		if err == nil {
			metrics.RelaySubmissions.WithLabelValues(relayPathSponsored, "success").Inc()
			s.log.Info().
				Str("wallet", wallet.WalletAddress).
				Uint64("nonce", nonce).
				Str("op_hash", opHash).
				Int("calls", len(calls)).
				Msg("sponsored operation submitted")
			return &ports.RelayResult{OpHash: opHash, Path: relayPathSponsored}, nil
		}
		lastErr = err

		if isCleanRejection(err) {
			metrics.RelaySubmissions.WithLabelValues(relayPathSponsored, "rejected").Inc()
			s.log.Warn().Err(err).
				Str("wallet", wallet.WalletAddress).
				Uint64("nonce", nonce).
				Msg("bundler rejected operation, retrying with same nonce")
			if rerr := s.nonces.Release(ctx, wallet.WalletAddress, wallet.ChainID, nonce); rerr != nil {
				s.log.Warn().Err(rerr).Msg("failed to release nonce after rejection")
			}
			continue
		}

		metrics.RelaySubmissions.WithLabelValues(relayPathSponsored, "ambiguous").Inc()
		s.log.Error().Err(err).
			Str("wallet", wallet.WalletAddress).
			Uint64("nonce", nonce).
			Msg("bundler submission outcome unknown, abandoning nonce")
		if nonce, err = s.chain.AccountNonce(ctx, wallet.WalletAddress); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("refetch nonce: %w", err))
		}
	}

	return nil, lastErr
}

// buildUserOperation wraps the batch into a signed, paymaster-funded
// user operation.
func (s *RelayServiceImpl) buildUserOperation(wallet *domain.CustodialWallet, calls []domain.Call, nonce uint64) (*domain.UserOperation, error) {
	targets := make([]string, len(calls))
	values := make([]*big.Int, len(calls))
	datas := make([][]byte, len(calls))
	for i, call := range calls {
		targets[i] = call.To
		values[i] = call.Value
		datas[i] = call.Data
	}
	callData, err := ethcodec.EncodeExecuteBatch(targets, values, datas)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode batch call data: %w", err))
	}

	op := &domain.UserOperation{
		Sender:           wallet.WalletAddress,
		Nonce:            fmt.Sprintf("0x%x", nonce),
		CallData:         fmt.Sprintf("0x%x", callData),
		PaymasterAndData: s.cfg.Paymaster,
	}
	sig, err := s.signer.SignUserOperation(op, s.cfg.EntryPoint, wallet.ChainID)
	if err != nil {
		return nil, apperror.ErrSigningFailed(err)
	}
	op.Signature = sig
	return op, nil
}

// backoff sleeps for base * 2^(attempt-1), honoring ctx cancellation.
func (s *RelayServiceImpl) backoff(ctx context.Context, attempt int) error {
	delay := s.cfg.RetryBaseDelay * time.Duration(1<<(attempt-1))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isCleanRejection(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == "RLY_002"
}
