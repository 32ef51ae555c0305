package dbbadger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const (
	ratesDir   = "rates"
	gcInterval = 30 * time.Minute
)

type rateStore struct {
	store    *badgerhold.Store
	quitChan chan struct{}
}

// NewRateStore returns a RateStore persisted in a subdirectory of baseDbDir,
// or kept in memory if baseDbDir is empty.
func NewRateStore(baseDbDir string, logger badger.Logger) (ports.RateStore, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, ratesDir)
	}

	quitChan := make(chan struct{})
	store, err := createDb(dbDir, logger, quitChan)
	if err != nil {
		return nil, fmt.Errorf("opening rates db: %w", err)
	}
	return &rateStore{store, quitChan}, nil
}

func (r *rateStore) AddRate(_ context.Context, rate domain.ExchangeRate) error {
	if err := rate.Pair().Validate(); err != nil {
		return err
	}
	return r.store.Upsert(rate.Pair().String(), &rate)
}

func (r *rateStore) GetLatestRate(
	_ context.Context, pair domain.Pair,
) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := r.store.Get(pair.String(), &rate); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRateNotFound, pair)
		}
		return nil, err
	}
	return &rate, nil
}

func (r *rateStore) ListRates(_ context.Context) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	if err := r.store.Find(&rates, nil); err != nil {
		return nil, err
	}
	domain.SortRates(rates)
	return rates, nil
}

func (r *rateStore) Close() {
	close(r.quitChan)
	if err := r.store.Close(); err != nil {
		log.WithError(err).Warn("failed to close rates db")
	}
}

func createDb(
	dbDir string, logger badger.Logger, quitChan chan struct{},
) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(gcInterval)

		go func() {
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := db.Badger().RunValueLogGC(0.5); err != nil &&
						!errors.Is(err, badger.ErrNoRewrite) {
						log.Error(err)
					}
				case <-quitChan:
					return
				}
			}
		}()
	}

	return db, nil
}
