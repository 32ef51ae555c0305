package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/walletkit/internal/config"
	"github.com/tdex-network/walletkit/internal/core/application"
	"github.com/tdex-network/walletkit/internal/core/ports"
	coinbaseratesource "github.com/tdex-network/walletkit/internal/infrastructure/ratesource/coinbase"
	krakenratesource "github.com/tdex-network/walletkit/internal/infrastructure/ratesource/kraken"
	staticratesource "github.com/tdex-network/walletkit/internal/infrastructure/ratesource/static"
	dbbadger "github.com/tdex-network/walletkit/internal/infrastructure/storage/badger"
	"github.com/tdex-network/walletkit/internal/infrastructure/storage/inmemory"
	"github.com/tdex-network/walletkit/pkg/stats"
)

func newRateStore() (ports.RateStore, error) {
	if config.GetString(config.DBTypeKey) == config.DBInMemory {
		return inmemory.NewRateStore(), nil
	}
	return dbbadger.NewRateStore(config.GetDbDir(), nil)
}

func newKrakenService() (*krakenratesource.Service, error) {
	return krakenratesource.NewService(
		config.GetString(config.KrakenURLKey), config.GetList(config.KrakenPairsKey),
	)
}

func startKraken(svc *krakenratesource.Service) {
	go func() {
		if err := svc.Start(); err != nil {
			log.WithError(err).Warn("kraken feed stopped")
		}
	}()
}

func newRateSources() ([]ports.RateSource, func(), error) {
	sources := make([]ports.RateSource, 0)
	cleanups := make([]func(), 0)
	cleanup := func() {
		for _, c := range cleanups {
			c()
		}
	}

	for _, name := range config.GetList(config.RateSourcesKey) {
		switch name {
		case config.SourceCoinbase:
			sources = append(sources, coinbaseratesource.NewSource(
				config.GetString(config.CoinbaseURLKey),
				config.GetInt(config.RateLimitPerSecondKey),
			))
		case config.SourceKraken:
			svc, err := newKrakenService()
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			startKraken(svc)
			sources = append(sources, svc)
			cleanups = append(cleanups, svc.Stop)
		case config.SourceStatic:
			svc, err := staticratesource.NewSourceFromStrings(
				config.GetList(config.StaticRatesKey),
			)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("invalid static rates: %w", err)
			}
			sources = append(sources, svc)
		}
	}
	return sources, cleanup, nil
}

// newRateService wires the rate service as configured. If registry is not
// nil, rate metrics are registered on it.
func newRateService(
	registry prometheus.Registerer,
) (application.RateService, func(), error) {
	store, err := newRateStore()
	if err != nil {
		return nil, nil, err
	}

	sources, stopSources, err := newRateSources()
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	cleanup := func() {
		stopSources()
		store.Close()
	}

	var metrics *stats.RateMetrics
	if registry != nil {
		if metrics, err = stats.NewRateMetrics(registry); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	svc, err := application.NewRateService(sources, store, application.RateServiceConfig{
		WaterfallTimeout: config.GetDuration(config.WaterfallTimeoutKey),
		RequestTimeout:   config.GetDuration(config.RateTimeoutKey),
		Metrics:          metrics,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
