package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"treasury-engine/config"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/internal/core/ports/mocks"
	"treasury-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayTestDeps struct {
	svc     *RelayServiceImpl
	chain   *mocks.MockChainClient
	bundler *mocks.MockBundlerClient
	signer  *mocks.MockTransactionSigner
	nonces  *mocks.MockRelayNonceStore
	ctrl    *gomock.Controller
}

func setupRelayService(t *testing.T, mode string) *relayTestDeps {
	ctrl := gomock.NewController(t)
	d := &relayTestDeps{
		chain:   mocks.NewMockChainClient(ctrl),
		bundler: mocks.NewMockBundlerClient(ctrl),
		signer:  mocks.NewMockTransactionSigner(ctrl),
		nonces:  mocks.NewMockRelayNonceStore(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewRelayService(d.chain, d.bundler, d.signer, d.nonces, config.RelayConfig{
		Mode:           mode,
		EntryPoint:     "0x5555555555555555555555555555555555555555",
		Paymaster:      "0x4444444444444444444444444444444444444444",
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		NonceTTL:       time.Minute,
	}, zerolog.Nop())
	return d
}

func testWallet() *domain.CustodialWallet {
	return &domain.CustodialWallet{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		WalletAddress: "0x1111111111111111111111111111111111111111",
		WalletType:    domain.WalletTypePrimary,
		ChainID:       8453,
	}
}

func testTransfers() []ports.Transfer {
	return []ports.Transfer{
		{
			TokenAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			To:           "0x2222222222222222222222222222222222222222",
			Amount:       dec("250"),
			Decimals:     6,
			Bucket:       domain.BucketTax,
		},
		{
			TokenAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			To:           "0x3333333333333333333333333333333333333333",
			Amount:       dec("350"),
			Decimals:     6,
			Bucket:       domain.BucketLiquidity,
		},
	}
}

func TestRelayService_ExecuteTransfers_DirectSuccess(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(true, nil)

	var signed *domain.RelayTransaction
	d.signer.EXPECT().SignTransaction(gomock.Any()).DoAndReturn(
		func(tx *domain.RelayTransaction) ([]byte, error) {
			signed = tx
			return []byte{0x30, 0x44}, nil
		})
	d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.RelayTransaction) (string, error) {
			assert.True(t, tx.IsSigned(), "submission must carry a signature")
			return "0xtxhash", nil
		})

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", result.TxHash)
	assert.Equal(t, relayPathDirect, result.Path)

	require.NotNil(t, signed)
	assert.Equal(t, uint64(7), signed.Nonce)
	assert.Equal(t, wallet.ChainID, signed.ChainID)
	require.Len(t, signed.Calls, 2)
	assert.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", signed.Calls[0].To)
	assert.NotEmpty(t, signed.Calls[0].Data)
}

func TestRelayService_ExecuteTransfers_NoTransfers(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	_, err := d.svc.ExecuteTransfers(context.Background(), testWallet(), nil)
	require.Error(t, err)
}

func TestRelayService_ExecuteTransfers_CleanRejectionRetriesSameNonce(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil)
	// Both attempts reserve and use the SAME nonce.
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(true, nil).Times(2)
	d.signer.EXPECT().SignTransaction(gomock.Any()).Return([]byte{0x30}, nil).Times(2)

	gomock.InOrder(
		d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).
			Return("", apperror.ErrSubmissionRejected(errors.New("underpriced"))),
		d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).Return("0xtxhash", nil),
	)
	// A clean rejection frees the reservation for the retry.
	d.nonces.EXPECT().Release(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7)).Return(nil)

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", result.TxHash)
}

func TestRelayService_ExecuteTransfers_AmbiguousFailureUsesFreshNonce(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	gomock.InOrder(
		d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil),
		d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(8), nil),
	)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(true, nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(8), time.Minute).Return(true, nil)
	d.signer.EXPECT().SignTransaction(gomock.Any()).Return([]byte{0x30}, nil).Times(2)

	gomock.InOrder(
		d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).
			Return("", apperror.ErrSubmissionAmbiguous(errors.New("timeout"))),
		d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.RelayTransaction) (string, error) {
				assert.Equal(t, uint64(8), tx.Nonce, "ambiguous failure must not reuse the nonce")
				return "0xtxhash", nil
			}),
	)
	// No Release: the possibly-consumed nonce stays reserved.

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", result.TxHash)
}

func TestRelayService_ExecuteTransfers_NonceConflictRefetches(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	gomock.InOrder(
		d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil),
		d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(8), nil),
	)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(false, nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(8), time.Minute).Return(true, nil)
	d.signer.EXPECT().SignTransaction(gomock.Any()).Return([]byte{0x30}, nil)
	d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).Return("0xtxhash", nil)

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", result.TxHash)
}

func TestRelayService_ExecuteTransfers_SigningFailure(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(true, nil)
	d.signer.EXPECT().SignTransaction(gomock.Any()).Return(nil, errors.New("hsm offline"))
	d.nonces.EXPECT().Release(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7)).Return(nil)
	// No submission after a signing failure.

	_, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RLY_001", appErr.Code)
}

func TestRelayService_ExecuteTransfers_ExhaustedRetries(t *testing.T) {
	d := setupRelayService(t, relayPathDirect)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()
	rejection := apperror.ErrSubmissionRejected(errors.New("underpriced"))

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(7), nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7), time.Minute).Return(true, nil).Times(3)
	d.signer.EXPECT().SignTransaction(gomock.Any()).Return([]byte{0x30}, nil).Times(3)
	d.chain.EXPECT().SubmitTransaction(ctx, gomock.Any()).Return("", rejection).Times(3)
	d.nonces.EXPECT().Release(ctx, wallet.WalletAddress, wallet.ChainID, uint64(7)).Return(nil).Times(3)

	_, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RLY_002", appErr.Code)
}

func TestRelayService_ExecuteTransfers_SponsoredSuccess(t *testing.T) {
	d := setupRelayService(t, relayPathSponsored)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(5), nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(5), time.Minute).Return(true, nil)

	d.signer.EXPECT().SignUserOperation(gomock.Any(), "0x5555555555555555555555555555555555555555", wallet.ChainID).DoAndReturn(
		func(op *domain.UserOperation, _ string, _ int64) (string, error) {
			assert.Equal(t, wallet.WalletAddress, op.Sender)
			assert.Equal(t, "0x5", op.Nonce)
			assert.Equal(t, "0x4444444444444444444444444444444444444444", op.PaymasterAndData)
			assert.NotEmpty(t, op.CallData)
			return "0xsig", nil
		})
	d.bundler.EXPECT().SubmitUserOperation(ctx, gomock.Any(), "0x5555555555555555555555555555555555555555").DoAndReturn(
		func(_ context.Context, op *domain.UserOperation, _ string) (string, error) {
			assert.Equal(t, "0xsig", op.Signature)
			return "0xophash", nil
		})

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xophash", result.OpHash)
	assert.Empty(t, result.TxHash)
	assert.Equal(t, relayPathSponsored, result.Path)
}

func TestRelayService_ExecuteTransfers_SponsoredRejectionRetries(t *testing.T) {
	d := setupRelayService(t, relayPathSponsored)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := testWallet()

	d.chain.EXPECT().AccountNonce(ctx, wallet.WalletAddress).Return(uint64(5), nil)
	d.nonces.EXPECT().Reserve(ctx, wallet.WalletAddress, wallet.ChainID, uint64(5), time.Minute).Return(true, nil).Times(2)
	d.signer.EXPECT().SignUserOperation(gomock.Any(), gomock.Any(), wallet.ChainID).Return("0xsig", nil).Times(2)

	gomock.InOrder(
		d.bundler.EXPECT().SubmitUserOperation(ctx, gomock.Any(), gomock.Any()).
			Return("", apperror.ErrSubmissionRejected(errors.New("paymaster deposit too low"))),
		d.bundler.EXPECT().SubmitUserOperation(ctx, gomock.Any(), gomock.Any()).Return("0xophash", nil),
	)
	d.nonces.EXPECT().Release(ctx, wallet.WalletAddress, wallet.ChainID, uint64(5)).Return(nil)

	result, err := d.svc.ExecuteTransfers(ctx, wallet, testTransfers())
	require.NoError(t, err)
	assert.Equal(t, "0xophash", result.OpHash)
}
