package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bucket names a sub-portion an incoming deposit is split across.
type Bucket string

const (
	BucketTax       Bucket = "tax"
	BucketLiquidity Bucket = "liquidity"
	BucketYield     Bucket = "yield"
)

// splitOrder fixes the deterministic bucket ordering used for remainder
// assignment tie-breaks.
var splitOrder = []Bucket{BucketTax, BucketLiquidity, BucketYield}

var oneHundred = decimal.NewFromInt(100)

// BucketPercentages configures how deposits are split. The sum may be
// under 100; the unallocated portion stays in the primary wallet.
type BucketPercentages struct {
	Tax       decimal.Decimal `json:"tax"`
	Liquidity decimal.Decimal `json:"liquidity"`
	Yield     decimal.Decimal `json:"yield"`
}

// Get returns the percentage for a bucket.
func (p BucketPercentages) Get(b Bucket) decimal.Decimal {
	switch b {
	case BucketTax:
		return p.Tax
	case BucketLiquidity:
		return p.Liquidity
	case BucketYield:
		return p.Yield
	}
	return decimal.Zero
}

// Total returns the summed percentage across buckets.
func (p BucketPercentages) Total() decimal.Decimal {
	return p.Tax.Add(p.Liquidity).Add(p.Yield)
}

// Valid reports whether each percentage is non-negative and the sum is at most 100.
func (p BucketPercentages) Valid() bool {
	for _, b := range splitOrder {
		if p.Get(b).IsNegative() {
			return false
		}
	}
	return p.Total().LessThanOrEqual(oneHundred)
}

// Allocation is a concrete per-bucket amount split.
type Allocation struct {
	Tax       decimal.Decimal `json:"tax"`
	Liquidity decimal.Decimal `json:"liquidity"`
	Yield     decimal.Decimal `json:"yield"`
}

// Get returns the amount assigned to a bucket.
func (a Allocation) Get(b Bucket) decimal.Decimal {
	switch b {
	case BucketTax:
		return a.Tax
	case BucketLiquidity:
		return a.Liquidity
	case BucketYield:
		return a.Yield
	}
	return decimal.Zero
}

func (a *Allocation) set(b Bucket, v decimal.Decimal) {
	switch b {
	case BucketTax:
		a.Tax = v
	case BucketLiquidity:
		a.Liquidity = v
	case BucketYield:
		a.Yield = v
	}
}

// Total returns the summed amount across buckets.
func (a Allocation) Total() decimal.Decimal {
	return a.Tax.Add(a.Liquidity).Add(a.Yield)
}

// IsZero reports whether no bucket carries an amount.
func (a Allocation) IsZero() bool {
	return a.Total().IsZero()
}

// Add returns the bucket-wise sum of two allocations.
func (a Allocation) Add(other Allocation) Allocation {
	return Allocation{
		Tax:       a.Tax.Add(other.Tax),
		Liquidity: a.Liquidity.Add(other.Liquidity),
		Yield:     a.Yield.Add(other.Yield),
	}
}

// SplitDeposit computes per-bucket amounts for a deposit. Each bucket gets
// floor(deposit * pct / 100) at 2 decimal places; the rounding remainder is
// assigned to the bucket with the largest percentage (ties broken in
// tax, liquidity, yield order) so the amounts sum exactly to the
// floor-rounded allocatable total. No value is lost or created by rounding.
func SplitDeposit(deposit decimal.Decimal, pcts BucketPercentages) Allocation {
	var alloc Allocation
	if deposit.Sign() <= 0 {
		return alloc
	}

	allocatable := deposit.Mul(pcts.Total()).Div(oneHundred).RoundDown(2)

	largest := splitOrder[0]
	for _, b := range splitOrder {
		alloc.set(b, deposit.Mul(pcts.Get(b)).Div(oneHundred).RoundDown(2))
		if pcts.Get(b).GreaterThan(pcts.Get(largest)) {
			largest = b
		}
	}

	remainder := allocatable.Sub(alloc.Total())
	if remainder.Sign() > 0 {
		alloc.set(largest, alloc.Get(largest).Add(remainder))
	}
	return alloc
}

// AllocationState tracks one user's deposit-detection and bucket-split
// cycle: NoPendingDeposit → PendingDeposit → Confirmed → NoPendingDeposit.
// Created lazily on first balance check; mutated only under a row lock.
type AllocationState struct {
	UserID               uuid.UUID         `json:"user_id"`
	LastObservedBalance  decimal.Decimal   `json:"last_observed_balance"`
	PendingDepositAmount decimal.Decimal   `json:"pending_deposit_amount"`
	BucketPercentages    BucketPercentages `json:"bucket_percentages"`
	PendingAllocation    Allocation        `json:"pending_allocation"`
	ConfirmedAllocation  Allocation        `json:"confirmed_allocation"`
	PendingDepositTxHash *string           `json:"pending_deposit_tx_hash,omitempty"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// HasPendingDeposit reports whether a detected deposit awaits confirmation.
func (s *AllocationState) HasPendingDeposit() bool {
	return s.PendingDepositAmount.Sign() > 0
}
