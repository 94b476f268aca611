package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletType distinguishes a custodial wallet's purpose.
type WalletType string

const (
	WalletTypePrimary   WalletType = "primary"
	WalletTypeTax       WalletType = "tax"
	WalletTypeLiquidity WalletType = "liquidity"
	WalletTypeYield     WalletType = "yield"
)

// CustodialWallet is a multi-owner smart-contract wallet holding user funds.
// Created during onboarding by an external collaborator; read-only to the
// engine. At most one primary wallet exists per (user, chain).
type CustodialWallet struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	WalletAddress string     `json:"wallet_address"`
	WalletType    WalletType `json:"wallet_type"`
	ChainID       int64      `json:"chain_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsPrimary returns true for the deposit-receiving wallet.
func (w *CustodialWallet) IsPrimary() bool {
	return w.WalletType == WalletTypePrimary
}
