package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLiabilityTTL = 30 * time.Second

type liabilityTestDeps struct {
	svc   *LiabilityServiceImpl
	repo  *mocks.MockLedgerRepository
	cache *mocks.MockLiabilityCache
	ctrl  *gomock.Controller
}

func setupLiabilityService(t *testing.T) *liabilityTestDeps {
	ctrl := gomock.NewController(t)
	d := &liabilityTestDeps{
		repo:  mocks.NewMockLedgerRepository(ctrl),
		cache: mocks.NewMockLiabilityCache(ctrl),
		ctrl:  ctrl,
	}
	d.svc = NewLiabilityService(d.repo, d.cache, testLiabilityTTL, zerolog.Nop())
	return d
}

func TestLiabilityService_CalculateLiability_CacheHit(t *testing.T) {
	d := setupLiabilityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	cached := &ports.Liability{TotalHeld: dec("250"), TotalReleased: dec("50"), Net: dec("200")}

	d.cache.EXPECT().Get(ctx, userID).Return(cached, nil)
	// No repo access on a hit.

	liability, err := d.svc.CalculateLiability(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, cached, liability)
}

func TestLiabilityService_CalculateLiability_CacheMiss(t *testing.T) {
	d := setupLiabilityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.cache.EXPECT().Get(ctx, userID).Return(nil, nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxHold).Return(dec("250"), nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxRelease).Return(dec("50"), nil)
	d.cache.EXPECT().Set(ctx, userID, gomock.Any(), testLiabilityTTL).Return(nil)

	liability, err := d.svc.CalculateLiability(ctx, userID)
	require.NoError(t, err)
	assert.True(t, liability.TotalHeld.Equal(dec("250")))
	assert.True(t, liability.TotalReleased.Equal(dec("50")))
	assert.True(t, liability.Net.Equal(dec("200")))
}

func TestLiabilityService_CalculateLiability_CacheOutageDegrades(t *testing.T) {
	d := setupLiabilityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.cache.EXPECT().Get(ctx, userID).Return(nil, errors.New("redis down"))
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxHold).Return(dec("100"), nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxRelease).Return(dec("0"), nil)
	d.cache.EXPECT().Set(ctx, userID, gomock.Any(), testLiabilityTTL).Return(errors.New("redis down"))

	liability, err := d.svc.CalculateLiability(ctx, userID)
	require.NoError(t, err, "cache outage must not fail the read")
	assert.True(t, liability.Net.Equal(dec("100")))
}

func TestLiabilityService_CalculateLiability_NegativeNet(t *testing.T) {
	d := setupLiabilityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.cache.EXPECT().Get(ctx, userID).Return(nil, nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxHold).Return(dec("10"), nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxRelease).Return(dec("40"), nil)
	d.cache.EXPECT().Set(ctx, userID, gomock.Any(), testLiabilityTTL).Return(nil)

	liability, err := d.svc.CalculateLiability(ctx, userID)
	require.NoError(t, err, "negative net is reported, not rejected")
	assert.True(t, liability.Net.Equal(dec("-30")))
}

func TestLiabilityService_CalculateLiability_RepoError(t *testing.T) {
	d := setupLiabilityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.cache.EXPECT().Get(ctx, userID).Return(nil, nil)
	d.repo.EXPECT().SumByType(ctx, userID, domain.EventTypeTaxHold).Return(dec("0"), errors.New("db down"))

	_, err := d.svc.CalculateLiability(ctx, userID)
	require.Error(t, err)
}
