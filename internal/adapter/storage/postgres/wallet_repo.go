package postgres

import (
	"context"
	"errors"
	"fmt"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. Custodial wallets are
// created during onboarding by an external collaborator; the engine only
// reads them.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, wallet_address, wallet_type, chain_id, created_at`

// GetByUserAndType fetches a user's wallet of a given purpose on a chain.
func (r *WalletRepo) GetByUserAndType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType, chainID int64) (*domain.CustodialWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM custodial_wallets
		WHERE user_id = $1 AND wallet_type = $2 AND chain_id = $3`

	w := &domain.CustodialWallet{}
	err := r.pool.QueryRow(ctx, query, userID, walletType, chainID).Scan(
		&w.ID, &w.UserID, &w.WalletAddress, &w.WalletType, &w.ChainID, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user and type: %w", err)
	}
	return w, nil
}

// ListPrimary returns every primary wallet, the reconciliation scan set.
func (r *WalletRepo) ListPrimary(ctx context.Context) ([]domain.CustodialWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM custodial_wallets
		WHERE wallet_type = 'primary' ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list primary wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.CustodialWallet
	for rows.Next() {
		w := domain.CustodialWallet{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.WalletAddress, &w.WalletType, &w.ChainID, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}
