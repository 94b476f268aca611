// Package ethcodec implements the pure encoding pieces of talking to an
// EVM chain: Keccak-256 digests, ABI call-data encoding, and exact
// decimal <-> base-unit conversion.
package ethcodec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

// WordSize is the ABI word width in bytes.
const WordSize = 32

// Keccak256 returns the Keccak-256 digest of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Selector computes the 4-byte function selector for a solidity signature,
// e.g. "transfer(address,uint256)".
func Selector(signature string) []byte {
	return Keccak256([]byte(signature))[:4]
}

// ParseAddress decodes a 0x-prefixed 20-byte hex address.
func ParseAddress(addr string) ([]byte, error) {
	s := strings.TrimPrefix(strings.ToLower(addr), "0x")
	if len(s) != 40 {
		return nil, fmt.Errorf("address %q: want 20 bytes, got %d hex chars", addr, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("address %q: %w", addr, err)
	}
	return b, nil
}

// ToBaseUnits converts a token-unit amount to its integer base-unit
// representation. The shifted amount must be integral: sub-base-unit
// precision cannot exist on-chain.
func ToBaseUnits(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	shifted := amount.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("amount %s does not fit in %d decimals", amount, decimals)
	}
	return shifted.BigInt(), nil
}

// FromBaseUnits converts an integer base-unit value to token units.
func FromBaseUnits(value *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(value, -decimals)
}

// Word left-pads bytes into one ABI word.
func Word(b []byte) []byte {
	word := make([]byte, WordSize)
	copy(word[WordSize-len(b):], b)
	return word
}

// AddressWord encodes an address into one ABI word.
func AddressWord(addr string) ([]byte, error) {
	b, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	return Word(b), nil
}

// Uint256Word encodes a non-negative integer into one ABI word.
func Uint256Word(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("uint256 cannot be negative: %s", v)
	}
	b := v.Bytes()
	if len(b) > WordSize {
		return nil, fmt.Errorf("uint256 overflow: %s", v)
	}
	return Word(b), nil
}

// EncodeERC20Transfer builds calldata for transfer(address,uint256).
func EncodeERC20Transfer(to string, amount decimal.Decimal, decimals int32) ([]byte, error) {
	toWord, err := AddressWord(to)
	if err != nil {
		return nil, fmt.Errorf("encode transfer recipient: %w", err)
	}
	units, err := ToBaseUnits(amount, decimals)
	if err != nil {
		return nil, fmt.Errorf("encode transfer amount: %w", err)
	}
	amountWord, err := Uint256Word(units)
	if err != nil {
		return nil, fmt.Errorf("encode transfer amount: %w", err)
	}

	data := Selector("transfer(address,uint256)")
	data = append(data, toWord...)
	data = append(data, amountWord...)
	return data, nil
}

// EncodeERC20BalanceOf builds calldata for balanceOf(address).
func EncodeERC20BalanceOf(owner string) ([]byte, error) {
	ownerWord, err := AddressWord(owner)
	if err != nil {
		return nil, fmt.Errorf("encode balanceOf owner: %w", err)
	}
	return append(Selector("balanceOf(address)"), ownerWord...), nil
}

// EncodeExecuteBatch builds calldata for
// executeBatch(address[],uint256[],bytes[]), the wallet contract's batch
// entrypoint used as user-operation call data on the sponsored path.
func EncodeExecuteBatch(targets []string, values []*big.Int, datas [][]byte) ([]byte, error) {
	if len(targets) != len(values) || len(targets) != len(datas) {
		return nil, fmt.Errorf("batch arrays must have equal length")
	}
	n := int64(len(targets))

	targetsEnc := Word(big.NewInt(n).Bytes())
	for _, t := range targets {
		word, err := AddressWord(t)
		if err != nil {
			return nil, fmt.Errorf("encode batch target: %w", err)
		}
		targetsEnc = append(targetsEnc, word...)
	}

	valuesEnc := Word(big.NewInt(n).Bytes())
	for _, v := range values {
		if v == nil {
			v = new(big.Int)
		}
		word, err := Uint256Word(v)
		if err != nil {
			return nil, fmt.Errorf("encode batch value: %w", err)
		}
		valuesEnc = append(valuesEnc, word...)
	}

	// bytes[] tail: per-element offsets, then each element as a
	// length-prefixed word-padded byte string.
	datasEnc := Word(big.NewInt(n).Bytes())
	offset := int64(WordSize) * n
	var elems []byte
	for _, d := range datas {
		datasEnc = append(datasEnc, Word(big.NewInt(offset).Bytes())...)
		elem := Word(big.NewInt(int64(len(d))).Bytes())
		elem = append(elem, d...)
		if pad := len(d) % WordSize; pad != 0 {
			elem = append(elem, make([]byte, WordSize-pad)...)
		}
		elems = append(elems, elem...)
		offset += int64(len(elem))
	}
	datasEnc = append(datasEnc, elems...)

	headSize := int64(3 * WordSize)
	out := Selector("executeBatch(address[],uint256[],bytes[])")
	out = append(out, Word(big.NewInt(headSize).Bytes())...)
	out = append(out, Word(big.NewInt(headSize+int64(len(targetsEnc))).Bytes())...)
	out = append(out, Word(big.NewInt(headSize+int64(len(targetsEnc)+len(valuesEnc))).Bytes())...)
	out = append(out, targetsEnc...)
	out = append(out, valuesEnc...)
	out = append(out, datasEnc...)
	return out, nil
}

// EncodeVaultDeposit builds calldata for an ERC-4626 style
// deposit(uint256,address).
func EncodeVaultDeposit(assets decimal.Decimal, decimals int32, receiver string) ([]byte, error) {
	units, err := ToBaseUnits(assets, decimals)
	if err != nil {
		return nil, fmt.Errorf("encode deposit assets: %w", err)
	}
	assetsWord, err := Uint256Word(units)
	if err != nil {
		return nil, fmt.Errorf("encode deposit assets: %w", err)
	}
	receiverWord, err := AddressWord(receiver)
	if err != nil {
		return nil, fmt.Errorf("encode deposit receiver: %w", err)
	}

	data := Selector("deposit(uint256,address)")
	data = append(data, assetsWord...)
	data = append(data, receiverWord...)
	return data, nil
}
