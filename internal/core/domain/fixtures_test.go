package domain_test

import (
	"github.com/tdex-network/walletkit/internal/core/domain"
)

var (
	btcDenom  = domain.Denomination{Name: "BTC", Multiplier: "100000000", Symbol: "₿"}
	mbtcDenom = domain.Denomination{Name: "mBTC", Multiplier: "100000", Symbol: "m₿"}
	bitsDenom = domain.Denomination{Name: "bits", Multiplier: "100", Symbol: "ƀ"}
	ethDenom  = domain.Denomination{Name: "ETH", Multiplier: "1000000000000000000", Symbol: "Ξ"}
	usdtDenom = domain.Denomination{Name: "USDT", Multiplier: "1000000"}
	tknDenom  = domain.Denomination{Name: "TKN", Multiplier: "1000000"}
)

func newTestSettings() domain.Settings {
	return domain.Settings{
		Currencies: map[domain.CurrencyCode]domain.CurrencySettings{
			"BTC": {
				CurrencyCode:  "BTC",
				CurrencyName:  "Bitcoin",
				Denomination:  mbtcDenom.Multiplier,
				Denominations: []domain.Denomination{btcDenom, mbtcDenom, bitsDenom},
			},
			"ETH": {
				CurrencyCode:  "ETH",
				CurrencyName:  "Ethereum",
				Denomination:  ethDenom.Multiplier,
				Denominations: []domain.Denomination{ethDenom},
			},
			"USDT": {
				CurrencyCode:  "USDT",
				CurrencyName:  "Tether",
				Denomination:  usdtDenom.Multiplier,
				Denominations: []domain.Denomination{usdtDenom},
			},
		},
		CustomTokens: []domain.CustomToken{
			{
				MetaToken: domain.MetaToken{
					CurrencyCode:  "TKN",
					CurrencyName:  "Test Token",
					Denominations: []domain.Denomination{tknDenom},
				},
				Multiplier: tknDenom.Multiplier,
			},
		},
	}
}

func newBtcWallet(id, balance string) domain.Wallet {
	return domain.Wallet{
		ID:           id,
		Name:         "My Bitcoin",
		CurrencyCode: "BTC",
		NativeBalances: map[domain.CurrencyCode]string{
			"BTC": balance,
		},
		AllDenominations: map[domain.CurrencyCode]map[string]domain.Denomination{
			"BTC": {
				btcDenom.Multiplier:  btcDenom,
				mbtcDenom.Multiplier: mbtcDenom,
				bitsDenom.Multiplier: bitsDenom,
			},
		},
		CurrencyNames: map[domain.CurrencyCode]string{"BTC": "Bitcoin"},
	}
}

func newEthWallet(id string) domain.Wallet {
	return domain.Wallet{
		ID:           id,
		Name:         "Main Ethereum",
		CurrencyCode: "ETH",
		NativeBalances: map[domain.CurrencyCode]string{
			"ETH":     "2000000000000000000",
			"USDT":    "5000000",
			"TKN":     "3000000",
			"UNKNOWN": "100",
			"BROKEN":  "not a number",
		},
		EnabledTokens: []domain.CurrencyCode{"TKN", "UNKNOWN", "BROKEN"},
		AllDenominations: map[domain.CurrencyCode]map[string]domain.Denomination{
			"ETH":  {ethDenom.Multiplier: ethDenom},
			"USDT": {usdtDenom.Multiplier: usdtDenom},
		},
		CurrencyNames: map[domain.CurrencyCode]string{
			"ETH":  "Ethereum",
			"USDT": "Tether",
		},
	}
}
