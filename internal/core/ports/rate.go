package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

// RateSource is an external provider of exchange rates.
type RateSource interface {
	// Name identifies the source in logs, metrics and stored quotes.
	Name() string
	// GetRate returns how many units of pair.To one unit of pair.From is
	// worth.
	GetRate(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
}

// RateStore caches the latest quote of every pair.
type RateStore interface {
	// AddRate stores the given quote, replacing any previous one for the
	// same pair.
	AddRate(ctx context.Context, rate domain.ExchangeRate) error
	// GetLatestRate returns the last stored quote for the given pair, or
	// domain.ErrRateNotFound.
	GetLatestRate(ctx context.Context, pair domain.Pair) (*domain.ExchangeRate, error)
	// ListRates returns all stored quotes.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	Close()
}

// RateFeed publishes quotes as soon as they're received.
type RateFeed interface {
	// FeedChan is closed when the feed stops.
	FeedChan() <-chan domain.ExchangeRate
}
