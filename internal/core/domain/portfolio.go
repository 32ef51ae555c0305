package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ConvertFunc converts an amount of the from currency into the to currency.
type ConvertFunc func(from, to CurrencyCode, amount decimal.Decimal) decimal.Decimal

// RateBook holds exchange rates keyed by "FROM_TO".
type RateBook map[string]decimal.Decimal

// RateKey returns the RateBook key of a currency pair.
func RateKey(from, to CurrencyCode) string {
	return from.String() + "_" + to.String()
}

// Set stores the rate of the given pair.
func (b RateBook) Set(from, to CurrencyCode, rate decimal.Decimal) {
	b[RateKey(from, to)] = rate
}

// Rate returns the rate of the given pair, or zero if unknown.
func (b RateBook) Rate(from, to CurrencyCode) decimal.Decimal {
	return b[RateKey(from, to)]
}

// Convert returns amount * rate(from, to). Unknown pairs convert to zero.
func (b RateBook) Convert(
	from, to CurrencyCode, amount decimal.Decimal,
) decimal.Decimal {
	return amount.Mul(b.Rate(from, to))
}

// ExchangeTotals sums the balances of all wallets per currency code, each
// expressed in its exchange denomination. Disabled tokens, zero balances and
// currencies without a resolvable exchange denomination are skipped.
func ExchangeTotals(
	wallets map[string]Wallet, settings Settings,
) map[CurrencyCode]decimal.Decimal {
	totals := make(map[CurrencyCode]decimal.Decimal)

	for _, id := range sortedKeys(wallets) {
		wallet := wallets[id]

		for _, code := range sortedCodes(wallet.NativeBalances) {
			if !wallet.IsTokenEnabled(code) {
				continue
			}
			nativeBalance, err := decimal.NewFromString(wallet.NativeBalances[code])
			if err != nil || nativeBalance.IsZero() {
				continue
			}

			lookup := settings.CurrencyExchangeDenomination(code)
			if !lookup.IsResolved() {
				continue
			}
			ratio, err := decimal.NewFromString(lookup.Denomination.Multiplier)
			if err != nil || !ratio.IsPositive() {
				continue
			}

			// native amount (ie. satoshis) to exchange amount (ie. BTC)
			amount, _ := nativeBalance.QuoRem(ratio, DividePrecision)
			totals[code] = totals[code].Add(amount)
		}
	}

	return totals
}

// TotalFiatAmount returns the value of all wallets balances in the given fiat
// currency.
func TotalFiatAmount(
	wallets map[string]Wallet, settings Settings,
	fiat CurrencyCode, convert ConvertFunc,
) decimal.Decimal {
	totals := ExchangeTotals(wallets, settings)

	total := decimal.Zero
	for _, code := range sortedCodes(totals) {
		total = total.Add(convert(code, fiat, totals[code]))
	}
	return total
}

func sortedCodes[V any](m map[CurrencyCode]V) []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
