package integration

import (
	"context"
	"sync"
	"time"

	"treasury-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu     sync.RWMutex
	events []domain.LedgerEvent
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Append(ctx context.Context, event *domain.LedgerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryLedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].ID == id {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int, before *time.Time) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEvent
	// Newest first: walk the append log backwards.
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.events[i]
		if e.UserID != userID {
			continue
		}
		if before != nil && !e.CreatedAt.Before(*before) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *inMemoryLedgerRepo) SumByType(ctx context.Context, userID uuid.UUID, eventType domain.EventType) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := decimal.Zero
	for i := range r.events {
		if r.events[i].UserID == userID && r.events[i].EventType == eventType {
			sum = sum.Add(r.events[i].Amount)
		}
	}
	return sum, nil
}

func (r *inMemoryLedgerRepo) ListIncomeWithoutTaxHold(ctx context.Context, userID uuid.UUID) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	covered := make(map[uuid.UUID]struct{})
	for i := range r.events {
		if r.events[i].EventType != domain.EventTypeTaxHold {
			continue
		}
		if meta, ok := r.events[i].Metadata.(domain.TaxHoldMetadata); ok {
			covered[meta.OriginalEventID] = struct{}{}
		}
	}

	var out []domain.LedgerEvent
	for i := range r.events {
		e := r.events[i]
		if e.UserID != userID || e.EventType != domain.EventTypeIncome {
			continue
		}
		if _, ok := covered[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- In-Memory Allocation Repo ---

type inMemoryAllocationRepo struct {
	mu     sync.RWMutex
	states map[uuid.UUID]domain.AllocationState
}

func newInMemoryAllocationRepo() *inMemoryAllocationRepo {
	return &inMemoryAllocationRepo{states: make(map[uuid.UUID]domain.AllocationState)}
}

func (r *inMemoryAllocationRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.AllocationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.states[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *inMemoryAllocationRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.AllocationState, error) {
	return r.Get(ctx, userID)
}

func (r *inMemoryAllocationRepo) Upsert(ctx context.Context, tx pgx.Tx, state *domain.AllocationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UserID] = *state
	return nil
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Static Country Lookup ---

type staticCountryLookup struct {
	countries map[uuid.UUID]string
}

func (l staticCountryLookup) CountryOfResidence(ctx context.Context, userID uuid.UUID) (string, error) {
	return l.countries[userID], nil
}
