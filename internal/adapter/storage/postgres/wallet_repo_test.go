package postgres

import (
	"context"
	"testing"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(userID uuid.UUID, walletType domain.WalletType) *domain.CustodialWallet {
	return &domain.CustodialWallet{
		ID:            uuid.New(),
		UserID:        userID,
		WalletAddress: "0x52908400098527886e0f7030069857d2e4169ee7",
		WalletType:    walletType,
		ChainID:       8453,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletColumnNames() []string {
	return []string{"id", "user_id", "wallet_address", "wallet_type", "chain_id", "created_at"}
}

func walletRow(w *domain.CustodialWallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletColumnNames()).AddRow(
		w.ID, w.UserID, w.WalletAddress, w.WalletType, w.ChainID, w.CreatedAt,
	)
}

func TestWalletRepo_GetByUserAndType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New(), domain.WalletTypeTax)

	mock.ExpectQuery("SELECT .+ FROM custodial_wallets").
		WithArgs(w.UserID, domain.WalletTypeTax, int64(8453)).
		WillReturnRows(walletRow(w))

	result, err := repo.GetByUserAndType(context.Background(), w.UserID, domain.WalletTypeTax, 8453)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.WalletAddress, result.WalletAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUserAndType_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM custodial_wallets").
		WithArgs(userID, domain.WalletTypeYield, int64(1)).
		WillReturnRows(pgxmock.NewRows(walletColumnNames()))

	result, err := repo.GetByUserAndType(context.Background(), userID, domain.WalletTypeYield, 1)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ListPrimary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w1 := newTestWallet(uuid.New(), domain.WalletTypePrimary)
	w2 := newTestWallet(uuid.New(), domain.WalletTypePrimary)

	rows := walletRow(w1)
	rows.AddRow(w2.ID, w2.UserID, w2.WalletAddress, w2.WalletType, w2.ChainID, w2.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM custodial_wallets").
		WillReturnRows(rows)

	result, err := repo.ListPrimary(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
