package domain

import "fmt"

// CurrencySettings are the user settings of a single currency.
type CurrencySettings struct {
	CurrencyCode CurrencyCode
	CurrencyName string
	// Denomination is the multiplier of the denomination selected for display.
	Denomination  string
	Denominations []Denomination
}

// Settings holds the per-currency settings and the account custom tokens.
type Settings struct {
	Currencies   map[CurrencyCode]CurrencySettings
	CustomTokens []CustomToken
}

// Currency returns the settings of the given currency, if any.
func (s Settings) Currency(code CurrencyCode) (CurrencySettings, bool) {
	cs, ok := s.Currencies[code]
	return cs, ok
}

// CustomToken returns the custom token with the given code, if any.
func (s Settings) CustomToken(code CurrencyCode) (CustomToken, bool) {
	for _, t := range s.CustomTokens {
		if t.CurrencyCode == code {
			return t, true
		}
	}
	return CustomToken{}, false
}

// CustomTokenDenomination returns the first denomination of the custom token
// with the given code.
func (s Settings) CustomTokenDenomination(code CurrencyCode) DenominationLookup {
	token, ok := s.CustomToken(code)
	if !ok || len(token.Denominations) <= 0 {
		return unresolved()
	}
	return fromCustomToken(token.Denominations[0])
}

// DisplayDenomination returns the denomination selected in settings for the
// given currency, falling back to custom tokens.
func (s Settings) DisplayDenomination(code CurrencyCode) DenominationLookup {
	cs, ok := s.Currency(code)
	if !ok {
		return s.CustomTokenDenomination(code)
	}
	for _, d := range cs.Denominations {
		if d.Multiplier == cs.Denomination {
			return found(d)
		}
	}
	return unresolved()
}

// DefaultDenomination returns the denomination named after the currency code
// among those in settings.
func (s Settings) DefaultDenomination(code CurrencyCode) DenominationLookup {
	cs, ok := s.Currency(code)
	if !ok {
		return unresolved()
	}
	if d, ok := denominationByName(cs.Denominations, code); ok {
		return found(d)
	}
	return unresolved()
}

// CurrencyExchangeDenomination returns the exchange denomination of a
// currency, ie. the one named after its code, looking first at settings and
// then at custom tokens.
func (s Settings) CurrencyExchangeDenomination(
	code CurrencyCode,
) DenominationLookup {
	if cs, ok := s.Currency(code); ok {
		if d, ok := denominationByName(cs.Denominations, code); ok {
			return found(d)
		}
		return unresolved()
	}

	token, ok := s.CustomToken(code)
	if !ok {
		return unresolved()
	}
	if d, ok := denominationByName(token.Denominations, code); ok {
		return fromCustomToken(d)
	}
	return unresolved()
}

// ExchangeDenomination returns the exchange denomination of a currency held
// by the given wallet, falling back to custom tokens.
func (s Settings) ExchangeDenomination(
	wallet Wallet, code CurrencyCode,
) DenominationLookup {
	if denoms, ok := wallet.AllDenominations[code]; ok {
		for _, key := range sortedKeys(denoms) {
			if d := denoms[key]; d.Name == code.String() {
				return found(d)
			}
		}
	}
	return s.CustomTokenDenomination(code)
}

// CurrencyMultiplier returns the multiplier of the display denomination set
// for the currency, looked up in denominations keyed by multiplier.
func (s Settings) CurrencyMultiplier(
	code CurrencyCode, denominations map[string]Denomination,
) (string, error) {
	cs, ok := s.Currency(code)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCurrencyNotFound, code)
	}
	d, ok := denominations[cs.Denomination]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDenominationNotFound, cs.Denomination)
	}
	return d.Multiplier, nil
}

// TokenMultiplier is like CurrencyMultiplier for tokens. When no
// denominations are given, the multiplier of the custom token's first
// denomination is returned, or "1" as last resort.
func (s Settings) TokenMultiplier(
	code CurrencyCode, denominations map[string]Denomination,
) string {
	if denominations != nil {
		if multiplier, err := s.CurrencyMultiplier(code, denominations); err == nil {
			return multiplier
		}
	}
	if l := s.CustomTokenDenomination(code); l.IsResolved() {
		return l.Denomination.Multiplier
	}
	return "1"
}

// WalletDefaultDenomination returns the display denomination of the wallet
// currency, or of the given token code when not empty.
func WalletDefaultDenomination(
	wallet Wallet, settings Settings, code CurrencyCode,
) DenominationLookup {
	if code == "" {
		code = wallet.CurrencyCode
	}
	cs, ok := settings.Currency(code)
	if !ok {
		return settings.CustomTokenDenomination(code)
	}
	if d, ok := wallet.AllDenominations[code][cs.Denomination]; ok {
		return found(d)
	}
	// likely a custom token without denominations on the wallet
	if len(cs.Denominations) > 0 {
		return fromCustomToken(cs.Denominations[0])
	}
	return unresolved()
}

func denominationByName(
	denoms []Denomination, code CurrencyCode,
) (Denomination, bool) {
	for _, d := range denoms {
		if d.Name == code.String() {
			return d, true
		}
	}
	return Denomination{}, false
}
