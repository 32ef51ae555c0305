package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

func TestTextHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Bitcoin", domain.Capitalize("bitcoin"))
	require.Equal(t, "Éther", domain.Capitalize("éther"))
	require.Empty(t, domain.Capitalize(""))

	require.Equal(t, "hello...", domain.CutOffText("hello world", 5))
	require.Equal(t, "hi", domain.CutOffText("hi", 5))

	require.Equal(t, "mybitcoinwallet", domain.UnspacedLowercase("My Bitcoin Wallet"))

	require.Equal(t, -1, domain.AlphabeticalSort("a", "b"))
	require.Equal(t, 0, domain.AlphabeticalSort("a", "a"))
	require.Equal(t, 1, domain.AlphabeticalSort("b", "a"))
}

func TestFeeDisplayed(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5.00", domain.FeeDisplayed(5))
	require.Equal(t, "10.00", domain.FeeDisplayed(10))
	require.Equal(t, "0.123", domain.FeeDisplayed(0.123))
}

func TestItemHelpers(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "a", "c"}
	require.Equal(t, []string{"b", "c"}, domain.WithoutItem(items, "a"))
	require.Equal(t, items, domain.WithItem(items, "c"))
	require.Equal(t, []string{"a", "b", "a", "c", "d"}, domain.WithItem(items, "d"))
	require.Len(t, items, 4)
}

func TestCheckFilterWallet(t *testing.T) {
	t.Parallel()

	wallet := newEthWallet("w2")
	token := &domain.CustomToken{
		MetaToken: domain.MetaToken{CurrencyCode: "TKN", CurrencyName: "Test Token"},
	}

	require.True(t, domain.CheckFilterWallet(wallet, "ETH", "mainether", nil))
	require.True(t, domain.CheckFilterWallet(wallet, "ETH", "eth", nil))
	require.True(t, domain.CheckFilterWallet(wallet, "USDT", "tether", nil))
	require.True(t, domain.CheckFilterWallet(wallet, "TKN", "test", token))
	require.False(t, domain.CheckFilterWallet(wallet, "TKN", "bitcoin", token))
}

func TestExchangeDataIsComplete(t *testing.T) {
	t.Parallel()

	data := domain.ExchangeData{
		PrimaryDisplayAmount:   "1",
		PrimaryDisplayName:     "BTC",
		SecondaryDisplayAmount: "10000",
		SecondaryDisplaySymbol: "$",
		SecondaryCurrencyCode:  "iso:USD",
	}
	require.True(t, data.IsComplete())

	data.SecondaryDisplaySymbol = ""
	require.False(t, data.IsComplete())
}

func TestTransaction(t *testing.T) {
	t.Parallel()

	sent := domain.Transaction{NativeAmount: "-1000"}
	received := domain.Transaction{NativeAmount: "1000"}
	require.True(t, sent.IsSent())
	require.False(t, sent.IsReceived())
	require.True(t, received.IsReceived())

	category, sub := domain.SplitTransactionCategory("exchange:buy:btc")
	require.Equal(t, "exchange", category)
	require.Equal(t, "buy:btc", sub)

	category, sub = domain.SplitTransactionCategory("income")
	require.Equal(t, "income", category)
	require.Empty(t, sub)
}
