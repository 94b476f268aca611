package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository. The ledger_events table is
// append-only: this repository deliberately has no UPDATE or DELETE.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, user_id, event_type, amount::text, currency, related_invoice_id, source, metadata, created_at`

// Append inserts a new ledger event.
func (r *LedgerRepo) Append(ctx context.Context, e *domain.LedgerEvent) error {
	metadata, err := domain.MarshalMetadata(e.Metadata)
	if err != nil {
		return fmt.Errorf("encode event metadata: %w", err)
	}

	query := `INSERT INTO ledger_events (id, user_id, event_type, amount, currency, related_invoice_id, source, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.EventType, e.Amount.String(), e.Currency,
		e.RelatedInvoiceID, e.Source, metadata, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// GetByID fetches a ledger event by UUID.
func (r *LedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEvent, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_events WHERE id = $1`

	e, err := scanLedgerEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger event by id: %w", err)
	}
	return e, nil
}

// ListByUser fetches a user's events newest first. A non-nil before
// timestamp restarts pagination from that point.
func (r *LedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int, before *time.Time) ([]domain.LedgerEvent, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_events WHERE user_id = $1`
	args := []any{userID}
	if before != nil {
		query += ` AND created_at < $2`
		args = append(args, *before)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	return collectLedgerEvents(rows)
}

// SumByType sums event amounts of one type for a user.
func (r *LedgerRepo) SumByType(ctx context.Context, userID uuid.UUID, eventType domain.EventType) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::text FROM ledger_events WHERE user_id = $1 AND event_type = $2`

	var sum string
	if err := r.pool.QueryRow(ctx, query, userID, eventType).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger events: %w", err)
	}
	d, err := decimal.NewFromString(sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse ledger sum %q: %w", sum, err)
	}
	return d, nil
}

// ListIncomeWithoutTaxHold returns income events with no tax_hold deriving
// from them, oldest first so healing replays in stream order.
func (r *LedgerRepo) ListIncomeWithoutTaxHold(ctx context.Context, userID uuid.UUID) ([]domain.LedgerEvent, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_events e
		WHERE e.user_id = $1 AND e.event_type = 'income'
		AND NOT EXISTS (
			SELECT 1 FROM ledger_events h
			WHERE h.user_id = e.user_id AND h.event_type = 'tax_hold'
			AND h.metadata->'payload'->>'original_event_id' = e.id::text
		)
		ORDER BY e.created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list income without tax hold: %w", err)
	}
	defer rows.Close()

	return collectLedgerEvents(rows)
}

func scanLedgerEvent(row pgx.Row) (*domain.LedgerEvent, error) {
	e := &domain.LedgerEvent{}
	var amount string
	var metadata []byte

	err := row.Scan(
		&e.ID, &e.UserID, &e.EventType, &amount, &e.Currency,
		&e.RelatedInvoiceID, &e.Source, &metadata, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse event amount %q: %w", amount, err)
	}
	if e.Metadata, err = domain.UnmarshalMetadata(metadata); err != nil {
		return nil, fmt.Errorf("decode event metadata: %w", err)
	}
	return e, nil
}

func collectLedgerEvents(rows pgx.Rows) ([]domain.LedgerEvent, error) {
	var events []domain.LedgerEvent
	for rows.Next() {
		e, err := scanLedgerEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
