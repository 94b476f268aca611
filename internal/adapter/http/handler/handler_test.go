package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerTestDeps struct {
	router     *gin.Engine
	ledger     *mocks.MockLedgerService
	liability  *mocks.MockLiabilityService
	allocation *mocks.MockAllocationService
	reconciler *mocks.MockReconcilerService
	ctrl       *gomock.Controller
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func setupRouter(t *testing.T, checkers ...ports.HealthChecker) *routerTestDeps {
	ctrl := gomock.NewController(t)
	d := &routerTestDeps{
		ledger:     mocks.NewMockLedgerService(ctrl),
		liability:  mocks.NewMockLiabilityService(ctrl),
		allocation: mocks.NewMockAllocationService(ctrl),
		reconciler: mocks.NewMockReconcilerService(ctrl),
		ctrl:       ctrl,
	}

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good-token").
		Return(&ports.TokenClaims{ServiceName: "invoice-detector"}, nil).AnyTimes()
	tokenSvc.EXPECT().Validate(gomock.Not("good-token")).
		Return(nil, errors.New("invalid")).AnyTimes()

	d.router = SetupRouter(RouterDeps{
		LedgerSvc:      d.ledger,
		LiabilitySvc:   d.liability,
		AllocationSvc:  d.allocation,
		ReconcilerSvc:  d.reconciler,
		TokenSvc:       tokenSvc,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return d
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Unauthorized(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestRecordEvent_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	var got ports.RecordEventInput
	d.ledger.EXPECT().RecordLedgerEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input ports.RecordEventInput) (*domain.LedgerEvent, error) {
			got = input
			return &domain.LedgerEvent{
				ID:        uuid.New(),
				UserID:    input.UserID,
				EventType: input.EventType,
				Amount:    decimal.RequireFromString(input.Amount),
				Currency:  "USDC",
				Source:    input.Source,
				CreatedAt: time.Now().UTC(),
			}, nil
		})

	body := `{
		"user_id": "` + userID.String() + `",
		"event_type": "income",
		"amount": "1000.00",
		"currency": "USDC",
		"source": "invoice-detector",
		"country": "US",
		"invoice_ref": "INV-42"
	}`
	w := doRequest(d.router, http.MethodPost, "/api/v1/events", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"amount":"1000"`)

	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, domain.EventTypeIncome, got.EventType)
	meta, ok := got.Metadata.(domain.IncomeMetadata)
	require.True(t, ok)
	assert.Equal(t, "US", meta.Country)
	assert.Equal(t, "INV-42", meta.InvoiceRef)
}

func TestRecordEvent_MalformedBody(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	// Missing required amount.
	body := `{"user_id":"` + uuid.NewString() + `","event_type":"income","currency":"USDC","source":"manual"}`
	w := doRequest(d.router, http.MethodPost, "/api/v1/events", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "REQ_001")
}

func TestRecordEvent_ServiceError(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().RecordLedgerEvent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	body := `{"user_id":"` + uuid.NewString() + `","event_type":"income","amount":"10","currency":"USDC","source":"manual"}`
	w := doRequest(d.router, http.MethodPost, "/api/v1/events", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_000")
}

func TestListEvents_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	before := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	d.ledger.EXPECT().GetEventsForUser(gomock.Any(), userID, 10, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ int, got *time.Time) ([]domain.LedgerEvent, error) {
			require.NotNil(t, got)
			assert.True(t, got.Equal(before))
			return []domain.LedgerEvent{
				{ID: uuid.New(), UserID: userID, EventType: domain.EventTypeIncome,
					Amount: decimal.RequireFromString("100"), Currency: "USDC", Source: "manual"},
			}, nil
		})

	path := "/api/v1/users/" + userID.String() + "/events?limit=10&before=2026-03-01T12:00:00Z"
	w := doRequest(d.router, http.MethodGet, path, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestListEvents_BadUserID(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := doRequest(d.router, http.MethodGet, "/api/v1/users/not-a-uuid/events", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "REQ_001")
}

func TestGetLiability_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.liability.EXPECT().CalculateLiability(gomock.Any(), userID).Return(&ports.Liability{
		TotalHeld:     decimal.RequireFromString("250"),
		TotalReleased: decimal.RequireFromString("50"),
		Net:           decimal.RequireFromString("200"),
	}, nil)

	w := doRequest(d.router, http.MethodGet, "/api/v1/users/"+userID.String()+"/liability", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"net":"200"`)
}

func TestGetAllocation_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.allocation.EXPECT().GetAllocationState(gomock.Any(), userID).Return(&domain.AllocationState{
		UserID:              userID,
		LastObservedBalance: decimal.RequireFromString("1000"),
		BucketPercentages: domain.BucketPercentages{
			Tax:       decimal.RequireFromString("25"),
			Liquidity: decimal.RequireFromString("35"),
			Yield:     decimal.RequireFromString("40"),
		},
	}, nil)

	w := doRequest(d.router, http.MethodGet, "/api/v1/users/"+userID.String()+"/allocation", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"last_observed_balance":"1000"`)
	assert.Contains(t, w.Body.String(), `"tax":"25"`)
}

func TestConfirmAllocation_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.allocation.EXPECT().ConfirmPendingDepositAllocation(gomock.Any(), userID).Return(&domain.AllocationState{
		UserID: userID,
		ConfirmedAllocation: domain.Allocation{
			Tax:       decimal.RequireFromString("250"),
			Liquidity: decimal.RequireFromString("350"),
			Yield:     decimal.RequireFromString("400"),
		},
	}, nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/users/"+userID.String()+"/allocation/confirm", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"confirmed":{"tax":"250","liquidity":"350","yield":"400"}`)
}

func TestTriggerReconcile_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.reconciler.EXPECT().Run(gomock.Any()).Return(&ports.ReconcileReport{
		WalletsScanned: 4,
		DepositsFound:  1,
		SweepsExecuted: 3,
	}, nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/reconcile", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wallets_scanned":4`)
	assert.Contains(t, w.Body.String(), `"sweeps_executed":3`)
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		d := setupRouter(t, stubChecker{name: "postgresql"}, stubChecker{name: "redis"})
		defer d.ctrl.Finish()

		w := httptest.NewRecorder()
		d.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("degraded", func(t *testing.T) {
		d := setupRouter(t,
			stubChecker{name: "postgresql"},
			stubChecker{name: "redis", err: errors.New("connection refused")})
		defer d.ctrl.Finish()

		w := httptest.NewRecorder()
		d.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	})
}
