package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// AddressService collects receive addresses from wallets.
type AddressService interface {
	// ReceiveAddresses asks all wallets for a receive address concurrently
	// and returns them keyed by wallet ID. It fails if any wallet fails.
	ReceiveAddresses(
		ctx context.Context, wallets []ports.CurrencyWallet,
	) (map[string]domain.ReceiveAddress, error)
}

type addressService struct{}

func NewAddressService() AddressService {
	return &addressService{}
}

func (s *addressService) ReceiveAddresses(
	ctx context.Context, wallets []ports.CurrencyWallet,
) (map[string]domain.ReceiveAddress, error) {
	ids := make(map[string]struct{}, len(wallets))
	for _, w := range wallets {
		id := w.ID()
		if id == "" {
			return nil, ErrMissingWalletID
		}
		if _, ok := ids[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedWallet, id)
		}
		ids[id] = struct{}{}
	}

	addresses := make(map[string]domain.ReceiveAddress, len(wallets))
	lock := &sync.Mutex{}

	eg, ctx := errgroup.WithContext(ctx)
	for _, w := range wallets {
		w := w
		eg.Go(func() error {
			addr, err := w.ReceiveAddress(ctx)
			if err != nil {
				return fmt.Errorf("wallet %s: %w", w.ID(), err)
			}

			lock.Lock()
			addresses[w.ID()] = addr
			lock.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return addresses, nil
}
