package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/core/ports"
	"github.com/tdex-network/walletkit/pkg/asyncutil"
	"github.com/tdex-network/walletkit/pkg/circuitbreaker"
	"github.com/tdex-network/walletkit/pkg/stats"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRateTimeout is the max time given to a single source request.
	DefaultRateTimeout = 10 * time.Second

	maxConcurrentRateFetches = 8
)

// RateService resolves exchange rates by racing the configured sources.
type RateService interface {
	// GetRate returns a fresh quote for the pair, or the latest cached one if
	// every source failed.
	GetRate(ctx context.Context, pair domain.Pair) (*domain.ExchangeRate, error)
	// Convert returns amount of from expressed in to.
	Convert(
		ctx context.Context, from, to domain.CurrencyCode, amount decimal.Decimal,
	) (decimal.Decimal, error)
	// RateBook fetches the rates of all the given pairs concurrently. Pairs
	// that can't be resolved are left out of the book.
	RateBook(ctx context.Context, pairs []domain.Pair) (domain.RateBook, error)
	// ListCachedRates returns the quotes in the rate store.
	ListCachedRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// RateServiceConfig holds the RateService tunables. Zero values fall back to
// defaults.
type RateServiceConfig struct {
	// WaterfallTimeout is how long a source is waited for before racing the
	// next one.
	WaterfallTimeout time.Duration
	// RequestTimeout caps every single source request.
	RequestTimeout time.Duration
	Metrics        *stats.RateMetrics
}

type rateSource struct {
	ports.RateSource
	cb *gobreaker.CircuitBreaker
}

type rateService struct {
	sources          []rateSource
	store            ports.RateStore
	waterfallTimeout time.Duration
	requestTimeout   time.Duration
	metrics          *stats.RateMetrics
}

// NewRateService returns a RateService querying sources in the given order
// of preference, each one behind its own circuit breaker.
func NewRateService(
	sources []ports.RateSource, store ports.RateStore, cfg RateServiceConfig,
) (RateService, error) {
	if store == nil {
		return nil, ErrNilRateStore
	}

	rs := make([]rateSource, 0, len(sources))
	for _, s := range sources {
		rs = append(rs, rateSource{s, circuitbreaker.NewCircuitBreaker(s.Name())})
	}

	waterfallTimeout := cfg.WaterfallTimeout
	if waterfallTimeout <= 0 {
		waterfallTimeout = asyncutil.DefaultWaterfallTimeout
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRateTimeout
	}

	return &rateService{
		sources:          rs,
		store:            store,
		waterfallTimeout: waterfallTimeout,
		requestTimeout:   requestTimeout,
		metrics:          cfg.Metrics,
	}, nil
}

type sourceQuote struct {
	rate   decimal.Decimal
	source string
}

func (s *rateService) GetRate(
	ctx context.Context, pair domain.Pair,
) (*domain.ExchangeRate, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	if pair.From == pair.To {
		return domain.NewExchangeRate(pair, decimal.NewFromInt(1), "identity")
	}

	quote, err := s.fetchRate(ctx, pair)
	if err != nil {
		return s.cachedRate(ctx, pair, err)
	}

	rate, err := domain.NewExchangeRate(pair, quote.rate, quote.source)
	if err != nil {
		return nil, err
	}
	if err := s.store.AddRate(ctx, *rate); err != nil {
		log.WithError(err).Warnf("failed to cache rate for %s", pair)
	}
	return rate, nil
}

func (s *rateService) cachedRate(
	ctx context.Context, pair domain.Pair, fetchErr error,
) (*domain.ExchangeRate, error) {
	if errors.Is(fetchErr, context.Canceled) {
		return nil, fetchErr
	}

	cached, err := s.store.GetLatestRate(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRateNotFound, pair, fetchErr)
	}

	s.metrics.ObserveCached(cached.Source)
	log.WithError(fetchErr).Warnf(
		"all rate sources failed for %s, serving rate cached at %s",
		pair, cached.UpdatedAt.Format(time.RFC3339),
	)
	return cached, nil
}

func (s *rateService) fetchRate(
	ctx context.Context, pair domain.Pair,
) (sourceQuote, error) {
	if len(s.sources) <= 0 {
		return sourceQuote{}, ErrNoRateSources
	}

	tasks := make([]asyncutil.Task[sourceQuote], 0, len(s.sources))
	for _, src := range s.sources {
		tasks = append(tasks, s.newRateTask(src, pair))
	}
	return asyncutil.Waterfall(ctx, s.waterfallTimeout, tasks...)
}

func (s *rateService) newRateTask(
	src rateSource, pair domain.Pair,
) asyncutil.Task[sourceQuote] {
	return func(ctx context.Context) (sourceQuote, error) {
		var (
			rate        decimal.Decimal
			canceled    error
			unsupported error
		)
		start := time.Now()
		_, err := src.cb.Execute(func() (interface{}, error) {
			r, err := asyncutil.RunWithTimeout(ctx, s.requestTimeout,
				func(ctx context.Context) (decimal.Decimal, error) {
					return src.GetRate(ctx, pair)
				},
			)
			// neither a race lost by the source nor a pair it doesn't quote
			// must open its breaker
			if err != nil && ctx.Err() != nil {
				canceled = ctx.Err()
				return nil, nil
			}
			if errors.Is(err, domain.ErrPairNotSupported) {
				unsupported = err
				return nil, nil
			}
			rate = r
			return nil, err
		})
		if canceled != nil {
			return sourceQuote{}, canceled
		}
		if unsupported != nil {
			err = unsupported
		}

		s.metrics.Observe(src.Name(), start, err)
		if err != nil {
			log.WithError(err).Debugf("rate source %s failed for %s", src.Name(), pair)
			return sourceQuote{}, fmt.Errorf("%s: %w", src.Name(), err)
		}
		if !rate.IsPositive() {
			return sourceQuote{}, fmt.Errorf("%s: %w", src.Name(), domain.ErrInvalidRate)
		}
		return sourceQuote{rate, src.Name()}, nil
	}
}

func (s *rateService) Convert(
	ctx context.Context, from, to domain.CurrencyCode, amount decimal.Decimal,
) (decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, domain.Pair{From: from, To: to})
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate.Rate), nil
}

func (s *rateService) RateBook(
	ctx context.Context, pairs []domain.Pair,
) (domain.RateBook, error) {
	book := domain.RateBook{}
	lock := &sync.Mutex{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentRateFetches)

	for _, pair := range pairs {
		pair := pair
		eg.Go(func() error {
			rate, err := s.GetRate(ctx, pair)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.WithError(err).Warnf("skipping rate for %s", pair)
				return nil
			}

			lock.Lock()
			book.Set(pair.From, pair.To, rate.Rate)
			lock.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *rateService) ListCachedRates(
	ctx context.Context,
) ([]domain.ExchangeRate, error) {
	return s.store.ListRates(ctx)
}
