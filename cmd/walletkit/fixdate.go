package main

import (
	"time"

	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var fixdate = cli.Command{
	Name:  "fixdate",
	Usage: "fixes a transaction date reported in the wrong unit",
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:     "date",
			Usage:    "the transaction date, in seconds",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "now",
			Usage: "the current date in seconds, defaults to the system time",
		},
	},
	Action: fixdateAction,
}

func fixdateAction(ctx *cli.Context) error {
	date := ctx.Float64("date")
	now := ctx.Float64("now")
	if now <= 0 {
		now = float64(time.Now().UnixMilli()) / 1000
	}

	corrected := domain.AutoCorrectDate(date, now)
	return printJSON(ctx, map[string]interface{}{
		"date":          corrected,
		"too_far_ahead": domain.IsTooFarAhead(date, now),
		"too_far_back":  domain.IsTooFarBehind(date),
		"utc":           time.Unix(int64(corrected), 0).UTC().Format(time.RFC3339),
	})
}
