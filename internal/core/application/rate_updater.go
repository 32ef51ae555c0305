package application

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/walletkit/internal/core/ports"
)

// RateUpdater stores every quote published by a rate feed, keeping the rate
// store warm for when sources can't be reached.
type RateUpdater struct {
	feed  ports.RateFeed
	store ports.RateStore
	done  chan struct{}
}

func NewRateUpdater(feed ports.RateFeed, store ports.RateStore) *RateUpdater {
	return &RateUpdater{
		feed:  feed,
		store: store,
		done:  make(chan struct{}),
	}
}

// Start reads the feed in background until it is closed.
func (u *RateUpdater) Start() {
	go func() {
		defer close(u.done)
		log.Debugln("reading rate feed chan started")

		for rate := range u.feed.FeedChan() {
			if err := u.store.AddRate(context.Background(), rate); err != nil {
				log.WithError(err).Errorf("cannot store rate for %s", rate.Pair())
			}
		}

		log.Debugln("reading rate feed chan stopped")
	}()
}

// Done is closed once the feed is drained.
func (u *RateUpdater) Done() <-chan struct{} {
	return u.done
}
