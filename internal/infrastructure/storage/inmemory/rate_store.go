package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/core/ports"
)

// RateStoreImpl represents an in memory storage of exchange rates.
type RateStoreImpl struct {
	rates map[domain.Pair]domain.ExchangeRate
	lock  *sync.RWMutex
}

// NewRateStore returns a new empty RateStoreImpl.
func NewRateStore() ports.RateStore {
	return &RateStoreImpl{
		rates: map[domain.Pair]domain.ExchangeRate{},
		lock:  &sync.RWMutex{},
	}
}

// AddRate replaces the stored quote of the rate's pair.
func (r *RateStoreImpl) AddRate(_ context.Context, rate domain.ExchangeRate) error {
	if err := rate.Pair().Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.rates[rate.Pair()] = rate
	return nil
}

// GetLatestRate ...
func (r *RateStoreImpl) GetLatestRate(
	_ context.Context, pair domain.Pair,
) (*domain.ExchangeRate, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	rate, ok := r.rates[pair]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateNotFound, pair)
	}
	return &rate, nil
}

// ListRates returns the stored quotes sorted by pair.
func (r *RateStoreImpl) ListRates(_ context.Context) ([]domain.ExchangeRate, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	rates := make([]domain.ExchangeRate, 0, len(r.rates))
	for _, rate := range r.rates {
		rates = append(rates, rate)
	}
	domain.SortRates(rates)
	return rates, nil
}

// Close ...
func (r *RateStoreImpl) Close() {}
