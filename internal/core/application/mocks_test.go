package application_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

// **** Rate source ****

type mockRateSource struct {
	mock.Mock
	name string
}

func newMockRateSource(name string) *mockRateSource {
	return &mockRateSource{name: name}
}

func (m *mockRateSource) Name() string {
	return m.name
}

func (m *mockRateSource) GetRate(
	ctx context.Context, pair domain.Pair,
) (decimal.Decimal, error) {
	args := m.Called(ctx, pair)

	var res decimal.Decimal
	if a := args.Get(0); a != nil {
		res = a.(decimal.Decimal)
	}
	return res, args.Error(1)
}

// funcSource is a rate source whose behavior depends on the context, ie. to
// block until cancelled.
type funcSource struct {
	name string
	fn   func(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
}

func (s funcSource) Name() string {
	return s.name
}

func (s funcSource) GetRate(
	ctx context.Context, pair domain.Pair,
) (decimal.Decimal, error) {
	return s.fn(ctx, pair)
}

// **** Rate store ****

type mockRateStore struct {
	mock.Mock
}

func (m *mockRateStore) AddRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *mockRateStore) GetLatestRate(
	ctx context.Context, pair domain.Pair,
) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, pair)

	var res *domain.ExchangeRate
	if a := args.Get(0); a != nil {
		res = a.(*domain.ExchangeRate)
	}
	return res, args.Error(1)
}

func (m *mockRateStore) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)

	var res []domain.ExchangeRate
	if a := args.Get(0); a != nil {
		res = a.([]domain.ExchangeRate)
	}
	return res, args.Error(1)
}

func (m *mockRateStore) Close() {}

// **** Wallet ****

type mockWallet struct {
	mock.Mock
	id string
}

func newMockWallet(id string) *mockWallet {
	return &mockWallet{id: id}
}

func (m *mockWallet) ID() string {
	return m.id
}

func (m *mockWallet) ReceiveAddress(ctx context.Context) (domain.ReceiveAddress, error) {
	args := m.Called(ctx)

	var res domain.ReceiveAddress
	if a := args.Get(0); a != nil {
		res = a.(domain.ReceiveAddress)
	}
	return res, args.Error(1)
}

// **** Rate feed ****

type chanFeed chan domain.ExchangeRate

func (f chanFeed) FeedChan() <-chan domain.ExchangeRate {
	return f
}
