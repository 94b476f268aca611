package postgres

import (
	"context"
	"fmt"

	"treasury-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SweepRepo implements ports.SweepRepository. The (deposit_tx_hash, bucket)
// unique key is what makes reconciliation re-runs no-ops.
type SweepRepo struct {
	pool Pool
}

// NewSweepRepo creates a new SweepRepo.
func NewSweepRepo(pool Pool) *SweepRepo {
	return &SweepRepo{pool: pool}
}

// Create upserts a sweep correlation record inside the caller's
// transaction. The conflict branch covers resubmission of a sweep whose
// earlier submission never made it on-chain.
func (r *SweepRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.SweepRecord) error {
	query := `INSERT INTO sweep_records (id, user_id, deposit_tx_hash, sweep_tx_hash, path, bucket, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (deposit_tx_hash, bucket)
		DO UPDATE SET sweep_tx_hash = EXCLUDED.sweep_tx_hash, path = EXCLUDED.path, created_at = EXCLUDED.created_at`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.UserID, rec.DepositTxHash, rec.SweepTxHash,
		rec.Path, rec.Bucket, rec.Amount.String(), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert sweep record: %w", err)
	}
	return nil
}

// ListByDeposit returns all sweeps correlated with a deposit transaction.
func (r *SweepRepo) ListByDeposit(ctx context.Context, depositTxHash string) ([]domain.SweepRecord, error) {
	query := `SELECT id, user_id, deposit_tx_hash, sweep_tx_hash, path, bucket, amount::text, created_at
		FROM sweep_records WHERE deposit_tx_hash = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, depositTxHash)
	if err != nil {
		return nil, fmt.Errorf("list sweep records: %w", err)
	}
	defer rows.Close()

	var records []domain.SweepRecord
	for rows.Next() {
		var rec domain.SweepRecord
		var amount string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.DepositTxHash, &rec.SweepTxHash, &rec.Path, &rec.Bucket, &amount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sweep record: %w", err)
		}
		if rec.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse sweep amount %q: %w", amount, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sweep records: %w", err)
	}
	return records, nil
}
