package chain

import (
	"context"
	"fmt"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// BundlerClient implements ports.BundlerClient against an
// account-abstraction bundler endpoint. Submission is paid for by the
// configured paymaster and returns an operation hash, not a transaction
// hash; inclusion is observed by polling the receipt.
type BundlerClient struct {
	caller rpcCaller
	log    zerolog.Logger
}

// NewBundlerClient creates a bundler client.
func NewBundlerClient(endpoint string, httpClient HTTPClient, log zerolog.Logger) *BundlerClient {
	return &BundlerClient{
		caller: rpcCaller{endpoint: endpoint, httpClient: httpClient},
		log:    log,
	}
}

// SubmitUserOperation submits a signed, sponsored user operation.
func (c *BundlerClient) SubmitUserOperation(ctx context.Context, op *domain.UserOperation, entryPoint string) (string, error) {
	if op.Signature == "" {
		return "", fmt.Errorf("refusing to submit unsigned user operation for %s", op.Sender)
	}

	var opHash string
	if err := c.caller.call(ctx, "eth_sendUserOperation", []any{op, entryPoint}, &opHash); err != nil {
		return "", classifySubmitError(err)
	}

	c.log.Debug().
		Str("sender", op.Sender).
		Str("op_hash", opHash).
		Msg("user operation submitted")
	return opHash, nil
}

type userOpReceipt struct {
	UserOpHash string `json:"userOpHash"`
	Success    bool   `json:"success"`
	Receipt    struct {
		TransactionHash string `json:"transactionHash"`
	} `json:"receipt"`
}

// GetUserOperationReceipt returns the inclusion report for an operation,
// or nil if the bundler has not included it yet.
func (c *BundlerClient) GetUserOperationReceipt(ctx context.Context, opHash string) (*ports.UserOperationReceipt, error) {
	var receipt *userOpReceipt
	if err := c.caller.call(ctx, "eth_getUserOperationReceipt", []any{opHash}, &receipt); err != nil {
		return nil, fmt.Errorf("user operation receipt for %s: %w", opHash, err)
	}
	if receipt == nil {
		return nil, nil
	}
	return &ports.UserOperationReceipt{
		OpHash:  receipt.UserOpHash,
		TxHash:  receipt.Receipt.TransactionHash,
		Success: receipt.Success,
	}, nil
}
