package ports

import (
	"context"

	"github.com/tdex-network/walletkit/internal/core/domain"
)

// CurrencyWallet is a wallet able to produce receive addresses.
type CurrencyWallet interface {
	ID() string
	ReceiveAddress(ctx context.Context) (domain.ReceiveAddress, error)
}
