package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/pkg/mathutil"
)

// PrecisionAdjustParams are the inputs of PrecisionAdjust.
type PrecisionAdjustParams struct {
	// ExchangeSecondaryToPrimaryRatio is how many secondary (exchange) units
	// one primary unit is worth, ie. the fiat price of 1 BTC.
	ExchangeSecondaryToPrimaryRatio decimal.Decimal
	SecondaryExchangeMultiplier     string
	PrimaryExchangeMultiplier       string
}

// PrecisionAdjust returns how many extra decimals must be shown for the
// primary currency so that it stays comparable with the secondary one when
// their unit values are orders of magnitude apart.
//
// The order of magnitude of the ratio is computed exactly on its decimal
// digits, the result is 0 for non-positive ratios.
func PrecisionAdjust(params PrecisionAdjustParams) (int, error) {
	secondary, err := mathutil.Parse(params.SecondaryExchangeMultiplier)
	if err != nil {
		return 0, err
	}
	primary, err := mathutil.Parse(params.PrimaryExchangeMultiplier)
	if err != nil {
		return 0, err
	}
	if !primary.IsPositive() {
		return 0, ErrInvalidMultiplier
	}

	ratio := params.ExchangeSecondaryToPrimaryRatio
	if !ratio.IsPositive() {
		return 0, nil
	}

	orderOfMagnitude := decimal.New(1, int32(floorLog10(ratio)))
	// exchange rate expressed in tenth of pennies
	exchangeRate := orderOfMagnitude.Mul(secondary).Mul(decimal.NewFromInt(10))

	adjust, err := mathutil.DivDecimal(exchangeRate, primary, DividePrecision)
	if err != nil {
		return 0, err
	}
	if !adjust.IsPositive() || adjust.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return 0, nil
	}

	order := 1 + ceilLog10(adjust)
	if order < 0 {
		order = -order
	}
	return order, nil
}

// MaxPrimaryCurrencyConversionDecimals returns the primary precision reduced
// by the precision adjustment, never below zero.
func MaxPrimaryCurrencyConversionDecimals(
	primaryPrecision, precisionAdjustValue int,
) int {
	if p := primaryPrecision - precisionAdjustValue; p > 0 {
		return p
	}
	return 0
}

// floorLog10 returns floor(log10(d)) for a positive d.
func floorLog10(d decimal.Decimal) int {
	digits := len(d.Coefficient().String())
	return digits - 1 + int(d.Exponent())
}

// ceilLog10 returns ceil(log10(d)) for a positive d.
func ceilLog10(d decimal.Decimal) int {
	coefficient := d.Coefficient().String()
	floor := len(coefficient) - 1 + int(d.Exponent())
	if strings.TrimRight(coefficient, "0") == "1" {
		return floor
	}
	return floor + 1
}
