package domain

import (
	"strconv"
	"strings"
)

// Denomination is a display unit of a currency. Multiplier is the number of
// native units contained in one unit of the denomination, as a decimal string.
type Denomination struct {
	Name       string
	Multiplier string
	Symbol     string
}

// EmptyDenomination is returned by lookups that cannot resolve anything. Its
// multiplier is 1 so that conversions degrade to identity.
var EmptyDenomination = Denomination{Multiplier: "1"}

// LookupKind tells where a denomination lookup found its result.
type LookupKind int

const (
	// LookupUnresolved means nothing matched.
	LookupUnresolved LookupKind = iota
	// LookupFound means the denomination comes from the currency settings or
	// the wallet's own denominations.
	LookupFound
	// LookupCustomToken means the denomination comes from an account-level
	// custom token.
	LookupCustomToken
)

func (k LookupKind) String() string {
	switch k {
	case LookupFound:
		return "found"
	case LookupCustomToken:
		return "custom_token"
	default:
		return "unresolved"
	}
}

// DenominationLookup is the result of resolving a denomination for a
// currency code.
type DenominationLookup struct {
	Kind         LookupKind
	Denomination Denomination
}

func found(d Denomination) DenominationLookup {
	return DenominationLookup{LookupFound, d}
}

func fromCustomToken(d Denomination) DenominationLookup {
	return DenominationLookup{LookupCustomToken, d}
}

func unresolved() DenominationLookup {
	return DenominationLookup{LookupUnresolved, EmptyDenomination}
}

// IsResolved returns whether the lookup matched a denomination.
func (l DenominationLookup) IsResolved() bool {
	return l.Kind != LookupUnresolved
}

// FindDenominationSymbol returns the symbol of the denomination with the
// given name, if any.
func FindDenominationSymbol(denoms []Denomination, name string) (string, bool) {
	for _, d := range denoms {
		if d.Name == name {
			return d.Symbol, true
		}
	}
	return "", false
}

// DenominationToDecimalPlaces returns the number of decimal places of a
// multiplier, ie. "100000000" -> "8".
func DenominationToDecimalPlaces(multiplier string) string {
	return strconv.Itoa(strings.Count(multiplier, "0"))
}

// DecimalPlacesToDenomination returns the multiplier for the given number of
// decimal places, ie. "8" -> "100000000". It returns "1" at the very least.
func DecimalPlacesToDenomination(decimalPlaces string) string {
	n, err := strconv.Atoi(strings.TrimSpace(decimalPlaces))
	if err != nil || n < 0 {
		n = 0
	}
	return "1" + strings.Repeat("0", n)
}
