package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

const usd = domain.CurrencyCode("iso:USD")

func newTestWallets() map[string]domain.Wallet {
	return map[string]domain.Wallet{
		"w1": newBtcWallet("w1", "150000000"),
		"w2": newEthWallet("w2"),
		"w3": newBtcWallet("w3", "50000000"),
		"w4": newBtcWallet("w4", "0"),
	}
}

func newTestRateBook() domain.RateBook {
	book := domain.RateBook{}
	book.Set("BTC", usd, decimal.NewFromInt(10000))
	book.Set("ETH", usd, decimal.NewFromInt(200))
	book.Set("TKN", usd, decimal.RequireFromString("0.5"))
	book.Set("USDT", usd, decimal.NewFromInt(1))
	return book
}

func TestExchangeTotals(t *testing.T) {
	t.Parallel()

	totals := domain.ExchangeTotals(newTestWallets(), newTestSettings())

	expected := map[domain.CurrencyCode]string{
		"BTC": "2",
		"ETH": "2",
		"TKN": "3",
	}
	require.Len(t, totals, len(expected))
	for code, amount := range expected {
		require.Equal(t, amount, totals[code].String(), code)
	}
}

func TestTotalFiatAmount(t *testing.T) {
	t.Parallel()

	book := newTestRateBook()

	tests := []struct {
		name     string
		wallets  map[string]domain.Wallet
		expected string
	}{
		{
			name:     "all_wallets",
			wallets:  newTestWallets(),
			expected: "20401.5",
		},
		{
			name:     "single_wallet",
			wallets:  map[string]domain.Wallet{"w1": newBtcWallet("w1", "1")},
			expected: "0.0001",
		},
		{
			name:     "no_wallets",
			wallets:  nil,
			expected: "0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total := domain.TotalFiatAmount(
				tt.wallets, newTestSettings(), usd, book.Convert,
			)
			require.Equal(t, tt.expected, total.String())
		})
	}
}

func TestTotalFiatAmountMissingRate(t *testing.T) {
	t.Parallel()

	book := newTestRateBook()
	delete(book, domain.RateKey("ETH", usd))

	total := domain.TotalFiatAmount(
		newTestWallets(), newTestSettings(), usd, book.Convert,
	)
	require.Equal(t, "20001.5", total.String())
}

func TestRateBook(t *testing.T) {
	t.Parallel()

	book := newTestRateBook()

	require.Equal(t, "BTC_iso:USD", domain.RateKey("BTC", usd))
	require.True(t, book.Rate("BTC", usd).Equal(decimal.NewFromInt(10000)))
	require.True(t, book.Rate("XYZ", usd).IsZero())
	require.True(t, book.Convert("XYZ", usd, decimal.NewFromInt(5)).IsZero())
	require.Equal(
		t, "25000", book.Convert("BTC", usd, decimal.RequireFromString("2.5")).String(),
	)
}
