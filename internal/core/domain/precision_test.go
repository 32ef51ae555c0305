package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

const (
	btcMultiplier = "100000000"
	usdMultiplier = "100"
)

func TestPrecisionAdjust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ratio     string
		secondary string
		primary   string
		expected  int
	}{
		{"ratio_1000", "1000", usdMultiplier, btcMultiplier, 1},
		{"ratio_0.001", "0.001", usdMultiplier, btcMultiplier, 7},
		{"exactly_zero", "10000", usdMultiplier, btcMultiplier, 0},
		{"just_below_power_of_ten", "999", usdMultiplier, btcMultiplier, 2},
		{"just_above_power_of_ten", "1001", usdMultiplier, btcMultiplier, 1},
		{"adjust_above_one", "1000000", usdMultiplier, btcMultiplier, 0},
		{"reciprocal_ratio_1000", "1000", btcMultiplier, usdMultiplier, 0},
		{"reciprocal_ratio_0.001", "0.001", btcMultiplier, usdMultiplier, 0},
		{"zero_ratio", "0", usdMultiplier, btcMultiplier, 0},
		{"negative_ratio", "-10", usdMultiplier, btcMultiplier, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := domain.PrecisionAdjust(domain.PrecisionAdjustParams{
				ExchangeSecondaryToPrimaryRatio: decimal.RequireFromString(tt.ratio),
				SecondaryExchangeMultiplier:     tt.secondary,
				PrimaryExchangeMultiplier:       tt.primary,
			})
			require.NoError(t, err)
			require.GreaterOrEqual(t, res, 0)
			require.Equal(t, tt.expected, res)
		})
	}
}

func TestFailingPrecisionAdjust(t *testing.T) {
	t.Parallel()

	_, err := domain.PrecisionAdjust(domain.PrecisionAdjustParams{
		ExchangeSecondaryToPrimaryRatio: decimal.NewFromInt(1000),
		SecondaryExchangeMultiplier:     usdMultiplier,
		PrimaryExchangeMultiplier:       "0",
	})
	require.ErrorIs(t, err, domain.ErrInvalidMultiplier)

	_, err = domain.PrecisionAdjust(domain.PrecisionAdjustParams{
		ExchangeSecondaryToPrimaryRatio: decimal.NewFromInt(1000),
		SecondaryExchangeMultiplier:     "abc",
		PrimaryExchangeMultiplier:       btcMultiplier,
	})
	require.Error(t, err)
}

func TestMaxPrimaryCurrencyConversionDecimals(t *testing.T) {
	t.Parallel()

	require.Equal(t, 6, domain.MaxPrimaryCurrencyConversionDecimals(8, 2))
	require.Equal(t, 0, domain.MaxPrimaryCurrencyConversionDecimals(2, 7))
	require.Equal(t, 0, domain.MaxPrimaryCurrencyConversionDecimals(3, 3))
}
