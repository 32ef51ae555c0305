package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/config"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var convert = cli.Command{
	Name:  "convert",
	Usage: "converts an amount between native and display denominations",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount to convert",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "multiplier",
			Usage: "the multiplier of the display denomination",
			Value: "100000000",
		},
		&cli.BoolFlag{
			Name:  "to_native",
			Usage: "convert from display to native amount",
		},
		&cli.IntFlag{
			Name:  "decimals",
			Usage: "truncate the display amount to the given number of decimals",
			Value: -1,
		},
	},
	Action: convertAction,
}

var truncate = cli.Command{
	Name:  "truncate",
	Usage: "truncates a decimal amount without rounding",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "input",
			Usage: "the amount to truncate",
		},
		&cli.IntFlag{
			Name:  "precision",
			Usage: "the max number of decimals",
			Value: 6,
		},
		&cli.BoolFlag{
			Name:  "allow_blank",
			Usage: "return an empty amount for empty input instead of 0",
		},
	},
	Action: truncateAction,
}

var precision = cli.Command{
	Name:  "precision",
	Usage: "computes the extra decimals to show for a primary currency",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "ratio",
			Usage:    "the price of 1 primary unit in the secondary currency",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "primary_multiplier",
			Usage: "the exchange multiplier of the primary currency",
			Value: "100000000",
		},
		&cli.StringFlag{
			Name:  "secondary_multiplier",
			Usage: "the exchange multiplier of the secondary currency",
			Value: "100",
		},
		&cli.IntFlag{
			Name:  "primary_precision",
			Usage: "the decimals of the primary display denomination",
			Value: 8,
		},
	},
	Action: precisionAction,
}

var fiats = cli.Command{
	Name:   "fiats",
	Usage:  "lists the supported fiat currencies",
	Action: fiatsAction,
}

func convertAction(ctx *cli.Context) error {
	amount := ctx.String("amount")
	multiplier := ctx.String("multiplier")
	if !domain.IsValidInput(amount) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
	}

	if ctx.Bool("to_native") {
		native, err := domain.ConvertDisplayToNative(multiplier)(amount)
		if err != nil {
			return err
		}
		return printJSON(ctx, map[string]string{"native_amount": native})
	}

	display, err := domain.ConvertNativeToDisplay(multiplier)(amount)
	if err != nil {
		return err
	}
	if decimals := ctx.Int("decimals"); decimals >= 0 {
		display = domain.TruncateDecimals(display, decimals, false)
	}
	return printJSON(ctx, map[string]string{"display_amount": display})
}

func truncateAction(ctx *cli.Context) error {
	input := ctx.String("input")
	if !domain.IsValidInput(input) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, input)
	}

	res := domain.TruncateDecimals(input, ctx.Int("precision"), ctx.Bool("allow_blank"))
	return printJSON(ctx, map[string]string{"amount": res})
}

func precisionAction(ctx *cli.Context) error {
	ratio, err := decimal.NewFromString(ctx.String("ratio"))
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, ctx.String("ratio"))
	}

	adjust, err := domain.PrecisionAdjust(domain.PrecisionAdjustParams{
		ExchangeSecondaryToPrimaryRatio: ratio,
		PrimaryExchangeMultiplier:       ctx.String("primary_multiplier"),
		SecondaryExchangeMultiplier:     ctx.String("secondary_multiplier"),
	})
	if err != nil {
		return err
	}

	return printJSON(ctx, map[string]int{
		"precision_adjust": adjust,
		"max_primary_decimals": domain.MaxPrimaryCurrencyConversionDecimals(
			ctx.Int("primary_precision"), adjust,
		),
	})
}

func fiatsAction(ctx *cli.Context) error {
	defaultFiat := config.GetDefaultFiat().TrimFiatPrefix()
	return printJSON(ctx, domain.SupportedFiats(defaultFiat))
}
