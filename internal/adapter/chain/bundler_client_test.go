package chain

import (
	"context"
	"testing"

	"treasury-engine/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUserOp() *domain.UserOperation {
	return &domain.UserOperation{
		Sender:           "0x1111111111111111111111111111111111111111",
		Nonce:            "0x5",
		CallData:         "0xa9059cbb",
		PaymasterAndData: "0x4444444444444444444444444444444444444444",
		Signature:        "0x3044",
	}
}

func TestBundlerClient_SubmitUserOperation(t *testing.T) {
	srv, seen := rpcStub(t, map[string]string{
		"eth_sendUserOperation": `"0xophash"`,
	})
	client := NewBundlerClient(srv.URL, srv.Client(), zerolog.Nop())

	opHash, err := client.SubmitUserOperation(context.Background(), testUserOp(),
		"0x5555555555555555555555555555555555555555")
	require.NoError(t, err)
	assert.Equal(t, "0xophash", opHash)
	require.Len(t, *seen, 1)
	assert.Equal(t, "eth_sendUserOperation", (*seen)[0].Method)
}

func TestBundlerClient_SubmitUserOperation_Unsigned(t *testing.T) {
	srv, seen := rpcStub(t, nil)
	client := NewBundlerClient(srv.URL, srv.Client(), zerolog.Nop())

	op := testUserOp()
	op.Signature = ""
	_, err := client.SubmitUserOperation(context.Background(), op,
		"0x5555555555555555555555555555555555555555")
	require.Error(t, err)
	assert.Empty(t, *seen, "unsigned operation must never reach the bundler")
}

func TestBundlerClient_GetUserOperationReceipt(t *testing.T) {
	t.Run("included", func(t *testing.T) {
		srv, _ := rpcStub(t, map[string]string{
			"eth_getUserOperationReceipt": `{
				"userOpHash": "0xophash",
				"success": true,
				"receipt": {"transactionHash": "0xtxhash"}
			}`,
		})
		client := NewBundlerClient(srv.URL, srv.Client(), zerolog.Nop())

		receipt, err := client.GetUserOperationReceipt(context.Background(), "0xophash")
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, "0xophash", receipt.OpHash)
		assert.Equal(t, "0xtxhash", receipt.TxHash)
		assert.True(t, receipt.Success)
	})

	t.Run("pending", func(t *testing.T) {
		srv, _ := rpcStub(t, map[string]string{
			"eth_getUserOperationReceipt": `null`,
		})
		client := NewBundlerClient(srv.URL, srv.Client(), zerolog.Nop())

		receipt, err := client.GetUserOperationReceipt(context.Background(), "0xophash")
		require.NoError(t, err)
		assert.Nil(t, receipt)
	})
}
