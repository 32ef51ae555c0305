package domain

import (
	"fmt"
	"strings"
)

// CurrencyCode identifies a currency, a token or, when prefixed with iso:, a
// fiat currency.
type CurrencyCode string

func (c CurrencyCode) String() string {
	return string(c)
}

// IsFiat returns whether the code carries the iso: prefix.
func (c CurrencyCode) IsFiat() bool {
	return strings.HasPrefix(string(c), FiatPrefix)
}

// TrimFiatPrefix returns the code without the iso: prefix.
func (c CurrencyCode) TrimFiatPrefix() CurrencyCode {
	return CurrencyCode(strings.TrimPrefix(string(c), FiatPrefix))
}

// FixFiatCurrencyCode adds the iso: prefix to a currency code believed to be
// a fiat one, if missing. BTC and ETH are listed among currency symbols and
// might sneak in where a fiat code is expected, so they're left untouched.
func FixFiatCurrencyCode(code CurrencyCode) CurrencyCode {
	if code == "BTC" || code == "ETH" {
		return code
	}
	if code.IsFiat() {
		return code
	}
	return FiatPrefix + code
}

type fiatSymbol struct {
	code   CurrencyCode
	symbol string
}

// fiatCodesSymbols is ordered, SupportedFiats relies on it.
var fiatCodesSymbols = []fiatSymbol{
	{"AED", "د.إ"}, {"AFN", "؋"}, {"ALL", "L"}, {"AMD", "֏"},
	{"ARS", "$"}, {"AUD", "$"}, {"BGN", "лв"}, {"BRL", "R$"},
	{"CAD", "$"}, {"CHF", "CHF"}, {"CLP", "$"}, {"CNY", "¥"},
	{"COP", "$"}, {"CZK", "Kč"}, {"DKK", "kr"}, {"EUR", "€"},
	{"GBP", "£"}, {"HKD", "$"}, {"HUF", "Ft"}, {"IDR", "Rp"},
	{"ILS", "₪"}, {"INR", "₹"}, {"JPY", "¥"}, {"KRW", "₩"},
	{"MXN", "$"}, {"MYR", "RM"}, {"NGN", "₦"}, {"NOK", "kr"},
	{"NZD", "$"}, {"PHP", "₱"}, {"PLN", "zł"}, {"RON", "lei"},
	{"RUB", "₽"}, {"SEK", "kr"}, {"SGD", "$"}, {"THB", "฿"},
	{"TRY", "₺"}, {"UAH", "₴"}, {"USD", "$"}, {"VND", "₫"},
	{"ZAR", "R"},
}

var fiatSymbolsByCode = func() map[CurrencyCode]string {
	m := make(map[CurrencyCode]string, len(fiatCodesSymbols))
	for _, f := range fiatCodesSymbols {
		m[f.code] = f.symbol
	}
	return m
}()

// restrictedCurrencyCodes can never be used as fiat denominations.
var restrictedCurrencyCodes = map[CurrencyCode]struct{}{
	"BTC": {},
}

// SymbolFromCurrency returns the symbol of the given fiat code (with or
// without prefix), or an empty string if unknown.
func SymbolFromCurrency(code CurrencyCode) string {
	return fiatSymbolsByCode[code.TrimFiatPrefix()]
}

// FiatSymbol is an alias of SymbolFromCurrency kept for iso: prefixed codes.
func FiatSymbol(code CurrencyCode) string {
	return SymbolFromCurrency(code)
}

// DenomFromIsoCode returns the display denomination of a fiat currency. Fiat
// amounts are expressed in cents, hence the multiplier 100.
func DenomFromIsoCode(code CurrencyCode) Denomination {
	if _, ok := restrictedCurrencyCodes[code]; ok {
		return Denomination{Multiplier: "0"}
	}
	return Denomination{
		Name:       code.String(),
		Symbol:     SymbolFromCurrency(code),
		Multiplier: "100",
	}
}

// AllDenomsOfIsoCurrencies returns the denominations of all known fiat codes.
func AllDenomsOfIsoCurrencies() []Denomination {
	denoms := make([]Denomination, 0, len(fiatCodesSymbols))
	for _, f := range fiatCodesSymbols {
		denom := DenomFromIsoCode(f.code)
		if len(denom.Name) > 0 {
			denoms = append(denoms, denom)
		}
	}
	return denoms
}

// FiatOption is a selectable fiat entry, ie. "USD - $".
type FiatOption struct {
	Label string
	Value CurrencyCode
}

// SupportedFiats returns all the known fiat codes, with defaultCode first if
// it's a known one.
func SupportedFiats(defaultCode CurrencyCode) []FiatOption {
	out := make([]FiatOption, 0, len(fiatCodesSymbols))
	if symbol, ok := fiatSymbolsByCode[defaultCode]; ok {
		out = append(out, FiatOption{
			Label: fmt.Sprintf("%s - %s", defaultCode, symbol),
			Value: defaultCode,
		})
	}
	for _, f := range fiatCodesSymbols {
		if f.code == defaultCode {
			continue
		}
		out = append(out, FiatOption{
			Label: fmt.Sprintf("%s - %s", f.code, f.symbol),
			Value: f.code,
		})
	}
	return out
}
