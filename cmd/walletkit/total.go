package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tdex-network/walletkit/internal/config"
	"github.com/tdex-network/walletkit/internal/core/application"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var total = cli.Command{
	Name:  "total",
	Usage: "computes the fiat value of a portfolio of wallets",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "portfolio",
			Usage:    "path of a json file with the wallets and settings",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "fiat",
			Usage: "the fiat currency of the total, defaults to the default fiat",
		},
	},
	Action: totalAction,
}

type portfolio struct {
	Wallets  map[string]domain.Wallet `json:"wallets"`
	Settings domain.Settings          `json:"settings"`
}

func readPortfolio(path string) (*portfolio, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p portfolio
	if err := json.Unmarshal(buf, &p); err != nil {
		return nil, fmt.Errorf("invalid portfolio file: %w", err)
	}
	return &p, nil
}

func totalAction(ctx *cli.Context) error {
	p, err := readPortfolio(ctx.String("portfolio"))
	if err != nil {
		return err
	}

	fiat := config.GetDefaultFiat()
	if s := ctx.String("fiat"); s != "" {
		fiat = domain.FixFiatCurrencyCode(domain.CurrencyCode(s))
	}

	rates, cleanup, err := newRateService(nil)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := application.NewPortfolioService(rates)
	amount, err := svc.TotalFiat(ctx.Context, p.Wallets, p.Settings, fiat)
	if err != nil {
		return err
	}

	return printJSON(ctx, map[string]string{
		"fiat":   fiat.String(),
		"symbol": domain.FiatSymbol(fiat),
		"total":  amount.StringFixed(2),
	})
}
