package main

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/config"
	"github.com/tdex-network/walletkit/internal/core/application"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/pkg/stats"
	"github.com/urfave/cli/v2"
)

var rate = cli.Command{
	Name:  "rate",
	Usage: "fetches the exchange rate of a pair from the configured sources",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "the currency code to convert from",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "the currency code to convert to, defaults to the default fiat",
		},
		&cli.StringFlag{
			Name:  "amount",
			Usage: "an optional amount of the from currency to convert",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print rate sources metrics",
		},
	},
	Action: rateAction,
}

var watch = cli.Command{
	Name:  "watch",
	Usage: "stores the quotes streamed by kraken for a while, then lists the cached rates",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "duration",
			Usage: "how long to listen for quotes",
			Value: 10 * time.Second,
		},
	},
	Action: watchAction,
}

type rateInfo struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Rate      string `json:"rate"`
	Source    string `json:"source"`
	UpdatedAt string `json:"updated_at"`
	Amount    string `json:"amount,omitempty"`
}

func newRateInfo(r domain.ExchangeRate) rateInfo {
	return rateInfo{
		From:      r.From.String(),
		To:        r.To.String(),
		Rate:      r.Rate.String(),
		Source:    r.Source,
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func rateAction(ctx *cli.Context) error {
	to := config.GetDefaultFiat()
	if s := strings.TrimSpace(ctx.String("to")); s != "" {
		to = domain.CurrencyCode(s)
	}
	from := domain.CurrencyCode(strings.TrimSpace(ctx.String("from")))
	pair := domain.Pair{From: from, To: to}

	var (
		registry   *prometheus.Registry
		registerer prometheus.Registerer
	)
	if ctx.Bool("stats") {
		registry = prometheus.NewRegistry()
		registerer = registry
	}
	svc, cleanup, err := newRateService(registerer)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := svc.GetRate(ctx.Context, pair)
	if err != nil {
		return err
	}
	info := newRateInfo(*r)

	if amountStr := ctx.String("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return err
		}
		info.Amount = amount.Mul(r.Rate).String()
	}

	if err := printJSON(ctx, info); err != nil {
		return err
	}
	if registry != nil {
		return stats.Dump(registry, ctx.App.Writer)
	}
	return nil
}

func watchAction(ctx *cli.Context) error {
	store, err := newRateStore()
	if err != nil {
		return err
	}
	defer store.Close()

	kraken, err := newKrakenService()
	if err != nil {
		return err
	}
	updater := application.NewRateUpdater(kraken, store)
	updater.Start()

	errChan := make(chan error, 1)
	go func() {
		errChan <- kraken.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case <-time.After(ctx.Duration("duration")):
	case <-ctx.Context.Done():
	}
	kraken.Stop()
	<-updater.Done()

	rates, err := store.ListRates(context.Background())
	if err != nil {
		return err
	}
	infos := make([]rateInfo, 0, len(rates))
	for _, r := range rates {
		infos = append(infos, newRateInfo(r))
	}
	return printJSON(ctx, infos)
}
