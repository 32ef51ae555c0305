package domain

import (
	"sort"
	"strings"
)

// Wallet is a read-only snapshot of a currency wallet.
type Wallet struct {
	ID           string
	Name         string
	CurrencyCode CurrencyCode
	// NativeBalances includes both the parent currency and its tokens.
	NativeBalances map[CurrencyCode]string
	EnabledTokens  []CurrencyCode
	// AllDenominations maps a currency code to its denominations, keyed by
	// multiplier.
	AllDenominations map[CurrencyCode]map[string]Denomination
	CurrencyNames    map[CurrencyCode]string
}

// IsParentCurrency returns whether code is the wallet's own currency.
func (w Wallet) IsParentCurrency(code CurrencyCode) bool {
	return code == w.CurrencyCode
}

// IsTokenEnabled returns whether the given token is enabled on the wallet.
// The parent currency is always enabled.
func (w Wallet) IsTokenEnabled(code CurrencyCode) bool {
	if w.IsParentCurrency(code) {
		return true
	}
	for _, c := range w.EnabledTokens {
		if c == code {
			return true
		}
	}
	return false
}

// ReceiveAddress is the address returned by a wallet for receiving funds.
type ReceiveAddress struct {
	PublicAddress string
	SegwitAddress string
	LegacyAddress string
	NativeAmount  string
	Metadata      map[string]string
}

// CheckFilterWallet returns whether the wallet name, the currency code or the
// currency name match the filter text. The currency name is taken from the
// custom token if given.
func CheckFilterWallet(
	wallet Wallet, code CurrencyCode, filterText string, customToken *CustomToken,
) bool {
	walletName := UnspacedLowercase(wallet.Name)
	currencyCode := strings.ToLower(code.String())

	currencyName := wallet.CurrencyNames[code]
	if customToken != nil {
		currencyName = customToken.CurrencyName
	}
	currencyName = strings.ToLower(currencyName)

	filter := strings.ToLower(filterText)
	return strings.Contains(walletName, filter) ||
		strings.Contains(currencyCode, filter) ||
		strings.Contains(currencyName, filter)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
