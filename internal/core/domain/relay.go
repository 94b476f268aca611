package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RelayPath names the execution path a submission took. The path decides
// how inclusion is later verified: transaction receipt for direct,
// bundler operation receipt for sponsored.
const (
	RelayPathDirect    = "direct"
	RelayPathSponsored = "sponsored"
)

// RelayStatus represents the lifecycle state of a relayed transaction.
type RelayStatus string

const (
	RelayStatusBuilt     RelayStatus = "built"
	RelayStatusSubmitted RelayStatus = "submitted"
	RelayStatusConfirmed RelayStatus = "confirmed"
	RelayStatusFailed    RelayStatus = "failed"
)

// Call is a single contract invocation inside a batched wallet transaction.
type Call struct {
	To    string   `json:"to"`
	Value *big.Int `json:"value"`
	Data  []byte   `json:"data"`
}

// RelayTransaction is a batched multi-owner wallet transaction being
// executed through the relay. Transient: it exists only for execution
// bookkeeping and is never persisted. A given (WalletAddress, ChainID,
// Nonce) executes at most once on-chain.
type RelayTransaction struct {
	WalletAddress string      `json:"wallet_address"`
	ChainID       int64       `json:"chain_id"`
	Calls         []Call      `json:"calls"`
	Nonce         uint64      `json:"nonce"`
	Signature     []byte      `json:"signature,omitempty"`
	Status        RelayStatus `json:"status"`
}

// IsSigned reports whether the transaction carries an owner signature.
func (t *RelayTransaction) IsSigned() bool {
	return len(t.Signature) > 0
}

// UserOperation is the sponsored (account-abstraction) wrapping of a relay
// transaction, submitted to a bundler and paid for by a paymaster. The
// bundler returns an operation hash, not a transaction hash; callers poll
// for inclusion.
type UserOperation struct {
	Sender           string `json:"sender"`
	Nonce            string `json:"nonce"` // hex quantity
	CallData         string `json:"callData"`
	PaymasterAndData string `json:"paymasterAndData,omitempty"`
	Signature        string `json:"signature"`
}

// SweepRecord is the first-class "already swept" correlation: it ties a
// deposit's source transaction hash to the sweep submission that moved
// one bucket's portion, making reconciliation idempotent by construction.
// SweepTxHash is a transaction hash on the direct path and an operation
// hash on the sponsored path; Path tells them apart. A record means
// "submitted", not "included": inclusion is verified against the chain
// before the sweep counts as done.
type SweepRecord struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	DepositTxHash string          `json:"deposit_tx_hash"`
	SweepTxHash   string          `json:"sweep_tx_hash"`
	Path          string          `json:"path"`
	Bucket        Bucket          `json:"bucket"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}
