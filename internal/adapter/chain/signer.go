package chain

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"treasury-engine/internal/core/domain"
	"treasury-engine/pkg/ethcodec"
)

// Signer holds the engine's single-owner signing key. The relay verifies
// the batch signature before executing against the wallet contract, so a
// signing failure here guarantees nothing reaches the chain.
type Signer struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewSigner creates a signer from a hex-encoded private key scalar.
func NewSigner(hexKey string) (*Signer, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("signing key must be 32 bytes, got %d", len(raw))
	}

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(raw)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("signing key scalar out of curve order")
	}

	key := &ecdsa.PrivateKey{D: d}
	key.PublicKey.Curve = curve
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(raw)

	return &Signer{
		key:     key,
		address: deriveAddress(&key.PublicKey),
	}, nil
}

// deriveAddress computes the 20-byte address from the public key,
// ethereum-style: last 20 bytes of the keccak of the uncompressed point.
func deriveAddress(pub *ecdsa.PublicKey) string {
	point := make([]byte, 0, 64)
	point = append(point, ethcodec.Word(pub.X.Bytes())...)
	point = append(point, ethcodec.Word(pub.Y.Bytes())...)
	digest := ethcodec.Keccak256(point)
	return "0x" + hex.EncodeToString(digest[12:])
}

// Address returns the signer's derived address.
func (s *Signer) Address() string {
	return s.address
}

// SignTransaction signs the canonical digest of a batched wallet
// transaction. The digest binds chain ID, wallet address, nonce, and
// every call, so a signature cannot be replayed across chains, wallets,
// or nonces.
func (s *Signer) SignTransaction(tx *domain.RelayTransaction) ([]byte, error) {
	digest, err := BatchDigest(tx)
	if err != nil {
		return nil, fmt.Errorf("compute batch digest: %w", err)
	}
	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest)
	if err != nil {
		return nil, fmt.Errorf("sign batch digest: %w", err)
	}
	return sig, nil
}

// SignUserOperation signs the user-operation hash for the sponsored path,
// returning a hex signature for the operation's signature field.
func (s *Signer) SignUserOperation(op *domain.UserOperation, entryPoint string, chainID int64) (string, error) {
	digest, err := UserOperationDigest(op, entryPoint, chainID)
	if err != nil {
		return "", fmt.Errorf("compute user operation digest: %w", err)
	}
	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest)
	if err != nil {
		return "", fmt.Errorf("sign user operation: %w", err)
	}
	return "0x" + hex.EncodeToString(sig), nil
}

// Verify checks a batch signature against the signer's public key.
// Used by tests and by the relay's preflight self-check.
func (s *Signer) Verify(tx *domain.RelayTransaction, sig []byte) (bool, error) {
	digest, err := BatchDigest(tx)
	if err != nil {
		return false, err
	}
	return ecdsa.VerifyASN1(&s.key.PublicKey, digest, sig), nil
}

// BatchDigest computes the keccak digest of a batched transaction's
// canonical encoding: chainID || wallet || nonce || per-call (to ||
// value || keccak(data)).
func BatchDigest(tx *domain.RelayTransaction) ([]byte, error) {
	wallet, err := ethcodec.ParseAddress(tx.WalletAddress)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 64+len(tx.Calls)*84)
	buf = binary.BigEndian.AppendUint64(buf, uint64(tx.ChainID))
	buf = append(buf, wallet...)
	buf = binary.BigEndian.AppendUint64(buf, tx.Nonce)

	for _, call := range tx.Calls {
		to, err := ethcodec.ParseAddress(call.To)
		if err != nil {
			return nil, err
		}
		value := call.Value
		if value == nil {
			value = new(big.Int)
		}
		valueWord, err := ethcodec.Uint256Word(value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, to...)
		buf = append(buf, valueWord...)
		buf = append(buf, ethcodec.Keccak256(call.Data)...)
	}

	return ethcodec.Keccak256(buf), nil
}

// UserOperationDigest computes the keccak digest binding a user operation
// to its entry point and chain.
func UserOperationDigest(op *domain.UserOperation, entryPoint string, chainID int64) ([]byte, error) {
	sender, err := ethcodec.ParseAddress(op.Sender)
	if err != nil {
		return nil, err
	}
	entry, err := ethcodec.ParseAddress(entryPoint)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 128)
	buf = binary.BigEndian.AppendUint64(buf, uint64(chainID))
	buf = append(buf, entry...)
	buf = append(buf, sender...)
	buf = append(buf, []byte(op.Nonce)...)
	buf = append(buf, ethcodec.Keccak256([]byte(op.CallData))...)
	buf = append(buf, ethcodec.Keccak256([]byte(op.PaymasterAndData))...)

	return ethcodec.Keccak256(buf), nil
}
