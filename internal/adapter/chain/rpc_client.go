package chain

import (
	"context"
	"encoding/hex"
	"fmt"

	"treasury-engine/internal/core/domain"
	"treasury-engine/pkg/ethcodec"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RPCClient implements ports.ChainClient against the wallet provider's
// JSON-RPC endpoint. Reads use standard eth_ methods; batch execution
// goes through the provider's wallet_executeBatch, which verifies the
// owner signature before executing against the wallet contract.
type RPCClient struct {
	caller rpcCaller
	log    zerolog.Logger
}

// NewRPCClient creates a chain client. The HTTP client supplies the
// request timeout; callers additionally bound each call with ctx.
func NewRPCClient(endpoint string, httpClient HTTPClient, log zerolog.Logger) *RPCClient {
	return &RPCClient{
		caller: rpcCaller{endpoint: endpoint, httpClient: httpClient},
		log:    log,
	}
}

type callParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// TokenBalance reads an ERC-20 balance via eth_call balanceOf.
func (c *RPCClient) TokenBalance(ctx context.Context, tokenAddress, walletAddress string, decimals int32) (decimal.Decimal, error) {
	data, err := ethcodec.EncodeERC20BalanceOf(walletAddress)
	if err != nil {
		return decimal.Zero, err
	}

	var result string
	err = c.caller.call(ctx, "eth_call", []any{
		callParams{To: tokenAddress, Data: "0x" + hex.EncodeToString(data)},
		"latest",
	}, &result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("token balance of %s: %w", walletAddress, err)
	}

	raw, err := hexToBig(result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("token balance of %s: %w", walletAddress, err)
	}
	return ethcodec.FromBaseUnits(raw, decimals), nil
}

// AccountNonce returns the wallet's next unused nonce, including pending
// transactions so sequential builds do not collide.
func (c *RPCClient) AccountNonce(ctx context.Context, walletAddress string) (uint64, error) {
	var result string
	if err := c.caller.call(ctx, "eth_getTransactionCount", []any{walletAddress, "pending"}, &result); err != nil {
		return 0, fmt.Errorf("account nonce of %s: %w", walletAddress, err)
	}
	v, err := hexToBig(result)
	if err != nil {
		return 0, fmt.Errorf("account nonce of %s: %w", walletAddress, err)
	}
	return v.Uint64(), nil
}

type executeBatchParams struct {
	Address   string      `json:"address"`
	ChainID   string      `json:"chainId"`
	Nonce     string      `json:"nonce"`
	Calls     []batchCall `json:"calls"`
	Signature string      `json:"signature"`
}

type batchCall struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// SubmitTransaction submits a signed batch for execution, returning the
// resulting transaction hash. Refuses unsigned transactions.
func (c *RPCClient) SubmitTransaction(ctx context.Context, tx *domain.RelayTransaction) (string, error) {
	if !tx.IsSigned() {
		return "", fmt.Errorf("refusing to submit unsigned transaction for %s", tx.WalletAddress)
	}

	params := executeBatchParams{
		Address:   tx.WalletAddress,
		ChainID:   uint64ToHex(uint64(tx.ChainID)),
		Nonce:     uint64ToHex(tx.Nonce),
		Signature: "0x" + hex.EncodeToString(tx.Signature),
	}
	for _, call := range tx.Calls {
		params.Calls = append(params.Calls, batchCall{
			To:    call.To,
			Value: bigToHex(call.Value),
			Data:  "0x" + hex.EncodeToString(call.Data),
		})
	}

	var txHash string
	if err := c.caller.call(ctx, "wallet_executeBatch", []any{params}, &txHash); err != nil {
		return "", classifySubmitError(err)
	}

	c.log.Debug().
		Str("wallet", tx.WalletAddress).
		Uint64("nonce", tx.Nonce).
		Str("tx_hash", txHash).
		Msg("batch submitted")
	return txHash, nil
}

type txReceipt struct {
	Status string `json:"status"`
}

// TransactionConfirmed reports whether a transaction hash is included
// with a success status. A missing receipt means not yet included.
func (c *RPCClient) TransactionConfirmed(ctx context.Context, txHash string) (bool, error) {
	var receipt *txReceipt
	if err := c.caller.call(ctx, "eth_getTransactionReceipt", []any{txHash}, &receipt); err != nil {
		return false, fmt.Errorf("receipt for %s: %w", txHash, err)
	}
	if receipt == nil {
		return false, nil
	}
	return receipt.Status == "0x1", nil
}
