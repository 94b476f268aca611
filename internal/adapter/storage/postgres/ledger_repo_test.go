package postgres

import (
	"context"
	"testing"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(userID uuid.UUID) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		ID:        uuid.New(),
		UserID:    userID,
		EventType: domain.EventTypeIncome,
		Amount:    decimal.RequireFromString("1000.00"),
		Currency:  "USDC",
		Source:    "invoice-detector",
		Metadata:  domain.IncomeMetadata{Country: "US", InvoiceRef: "INV-1"},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func ledgerColumnNames() []string {
	return []string{"id", "user_id", "event_type", "amount", "currency", "related_invoice_id", "source", "metadata", "created_at"}
}

func ledgerRow(e *domain.LedgerEvent) *pgxmock.Rows {
	metadata, err := domain.MarshalMetadata(e.Metadata)
	if err != nil {
		panic(err)
	}
	return pgxmock.NewRows(ledgerColumnNames()).AddRow(
		e.ID, e.UserID, e.EventType, e.Amount.String(), e.Currency,
		e.RelatedInvoiceID, e.Source, metadata, e.CreatedAt,
	)
}

func TestLedgerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEvent(uuid.New())
	metadata, err := domain.MarshalMetadata(e.Metadata)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO ledger_events").
		WithArgs(e.ID, e.UserID, e.EventType, e.Amount.String(), e.Currency,
			e.RelatedInvoiceID, e.Source, metadata, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Append(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEvent(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM ledger_events WHERE id").
		WithArgs(e.ID).
		WillReturnRows(ledgerRow(e))

	result, err := repo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.True(t, e.Amount.Equal(result.Amount))
	assert.Equal(t, "income", result.Metadata.MetadataKind())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM ledger_events WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	userID := uuid.New()
	e1 := newTestEvent(userID)
	e2 := newTestEvent(userID)

	rows := ledgerRow(e1)
	metadata2, _ := domain.MarshalMetadata(e2.Metadata)
	rows.AddRow(e2.ID, e2.UserID, e2.EventType, e2.Amount.String(), e2.Currency,
		e2.RelatedInvoiceID, e2.Source, metadata2, e2.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM ledger_events WHERE user_id").
		WithArgs(userID, 50).
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), userID, 50, nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByUser_WithCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	userID := uuid.New()
	before := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM ledger_events WHERE user_id .+ AND created_at <").
		WithArgs(userID, before, 10).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames()))

	result, err := repo.ListByUser(context.Background(), userID, 10, &before)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SumByType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(userID, domain.EventTypeTaxHold).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow("250.00"))

	sum, err := repo.SumByType(context.Background(), userID, domain.EventTypeTaxHold)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250.00").Equal(sum))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListIncomeWithoutTaxHold(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	userID := uuid.New()
	e := newTestEvent(userID)

	mock.ExpectQuery("SELECT .+ FROM ledger_events e").
		WithArgs(userID).
		WillReturnRows(ledgerRow(e))

	result, err := repo.ListIncomeWithoutTaxHold(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, e.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
