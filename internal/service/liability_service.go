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
)

// LiabilityServiceImpl implements ports.LiabilityService. Liability is
// always a pure function of the event stream: sum of tax_hold minus sum
// of tax_release. The cache only shortens repeated reads within its TTL;
// a cache outage degrades to recomputation, never to wrong answers.
type LiabilityServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	cache      ports.LiabilityCache
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewLiabilityService creates a new LiabilityServiceImpl.
func NewLiabilityService(ledgerRepo ports.LedgerRepository, cache ports.LiabilityCache, cacheTTL time.Duration, log zerolog.Logger) *LiabilityServiceImpl {
	return &LiabilityServiceImpl{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// CalculateLiability returns the user's net tax obligation.
func (s *LiabilityServiceImpl) CalculateLiability(ctx context.Context, userID uuid.UUID) (*ports.Liability, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("liability cache read failed, recomputing")
	}
	if cached != nil {
		return cached, nil
	}

	held, err := s.ledgerRepo.SumByType(ctx, userID, domain.EventTypeTaxHold)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum tax holds: %w", err))
	}
	released, err := s.ledgerRepo.SumByType(ctx, userID, domain.EventTypeTaxRelease)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum tax releases: %w", err))
	}

	liability := &ports.Liability{
		TotalHeld:     held,
		TotalReleased: released,
		Net:           held.Sub(released),
	}

	// A negative net means more was released than was ever held. The
	// ledger itself is immutable, so this points at a producer bug.
	if liability.Net.IsNegative() {
		s.log.Warn().
			Str("user_id", userID.String()).
			Str("held", held.String()).
			Str("released", released.String()).
			Msg("negative net liability computed")
	}

	if err := s.cache.Set(ctx, userID, *liability, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("liability cache write failed")
	}

	return liability, nil
}
