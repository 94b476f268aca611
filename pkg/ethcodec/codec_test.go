package ethcodec

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	// Well-known ERC-20 selectors.
	assert.Equal(t, "a9059cbb", hex.EncodeToString(Selector("transfer(address,uint256)")))
	assert.Equal(t, "70a08231", hex.EncodeToString(Selector("balanceOf(address)")))
}

func TestParseAddress(t *testing.T) {
	b, err := ParseAddress("0x000000000000000000000000000000000000dEaD")
	require.NoError(t, err)
	assert.Len(t, b, 20)

	_, err = ParseAddress("0x1234")
	assert.Error(t, err)

	_, err = ParseAddress("0x" + "zz" + "00000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestToBaseUnits(t *testing.T) {
	units, err := ToBaseUnits(decimal.RequireFromString("250.50"), 6)
	require.NoError(t, err)
	assert.Equal(t, "250500000", units.String())

	// Sub-base-unit precision must be rejected, never silently rounded.
	_, err = ToBaseUnits(decimal.RequireFromString("0.0000001"), 6)
	assert.Error(t, err)
}

func TestFromBaseUnits(t *testing.T) {
	v := FromBaseUnits(big.NewInt(1000000000), 6)
	assert.True(t, v.Equal(decimal.RequireFromString("1000")), "got %s", v)
}

func TestEncodeERC20Transfer(t *testing.T) {
	data, err := EncodeERC20Transfer("0x1111111111111111111111111111111111111111", decimal.RequireFromString("350"), 6)
	require.NoError(t, err)

	require.Len(t, data, 4+32+32)
	assert.Equal(t, "a9059cbb", hex.EncodeToString(data[:4]))
	// Recipient is left-padded into the first word.
	assert.Equal(t,
		"0000000000000000000000001111111111111111111111111111111111111111",
		hex.EncodeToString(data[4:36]))
	// 350 * 10^6 = 0x14dc9380.
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000014dc9380",
		hex.EncodeToString(data[36:]))
}

func TestEncodeERC20BalanceOf(t *testing.T) {
	data, err := EncodeERC20BalanceOf("0x2222222222222222222222222222222222222222")
	require.NoError(t, err)

	require.Len(t, data, 4+32)
	assert.Equal(t, "70a08231", hex.EncodeToString(data[:4]))
}

func TestEncodeVaultDeposit(t *testing.T) {
	data, err := EncodeVaultDeposit(decimal.RequireFromString("400"), 6, "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)

	require.Len(t, data, 4+32+32)
	assert.Equal(t, hex.EncodeToString(Selector("deposit(uint256,address)")), hex.EncodeToString(data[:4]))
}

func TestEncodeExecuteBatch(t *testing.T) {
	transfer, err := EncodeERC20Transfer("0x1111111111111111111111111111111111111111", decimal.RequireFromString("10"), 6)
	require.NoError(t, err)

	data, err := EncodeExecuteBatch(
		[]string{"0x2222222222222222222222222222222222222222"},
		[]*big.Int{big.NewInt(0)},
		[][]byte{transfer},
	)
	require.NoError(t, err)

	assert.Equal(t, hex.EncodeToString(Selector("executeBatch(address[],uint256[],bytes[])")), hex.EncodeToString(data[:4]))
	// Head: three offsets; targets array starts right after the head.
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000000060",
		hex.EncodeToString(data[4:36]))
	// targets[0] follows the length word at the first offset.
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000000001",
		hex.EncodeToString(data[4+0x60:4+0x60+32]))
	assert.Equal(t,
		"0000000000000000000000002222222222222222222222222222222222222222",
		hex.EncodeToString(data[4+0x60+32:4+0x60+64]))
	// Everything is word aligned.
	assert.Equal(t, 0, (len(data)-4)%32)
}

func TestEncodeExecuteBatch_LengthMismatch(t *testing.T) {
	_, err := EncodeExecuteBatch([]string{"0x2222222222222222222222222222222222222222"}, nil, nil)
	assert.Error(t, err)
}

func TestUint256WordBounds(t *testing.T) {
	_, err := Uint256Word(big.NewInt(-1))
	assert.Error(t, err)

	overflow := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = Uint256Word(overflow)
	assert.Error(t, err)
}
