package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/internal/core/application"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

func TestRateUpdater(t *testing.T) {
	btcRate, err := domain.NewExchangeRate(btcUsd, decimal.NewFromInt(20000), "kraken")
	require.NoError(t, err)
	ethRate, err := domain.NewExchangeRate(ethUsd, decimal.NewFromInt(1500), "kraken")
	require.NoError(t, err)

	store := &mockRateStore{}
	store.On("AddRate", mock.Anything, *btcRate).Return(nil)
	store.On("AddRate", mock.Anything, *ethRate).Return(errors.New("disk full"))

	feed := make(chanFeed, 2)
	updater := application.NewRateUpdater(feed, store)
	updater.Start()

	feed <- *btcRate
	feed <- *ethRate
	close(feed)

	select {
	case <-updater.Done():
	case <-time.After(time.Second):
		t.Fatal("updater did not stop")
	}
	store.AssertNumberOfCalls(t, "AddRate", 2)
}
