package domain

import "errors"

var (
	// ErrCurrencyNotFound is returned when no settings exist for a currency code.
	ErrCurrencyNotFound = errors.New("currency not found in settings")
	// ErrDenominationNotFound is returned when the selected display
	// denomination of a currency is not among the given denominations.
	ErrDenominationNotFound = errors.New("denomination not found")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a valid decimal number")
	// ErrInvalidMultiplier ...
	ErrInvalidMultiplier = errors.New("multiplier must be a positive decimal number")
	// ErrInvalidPair ...
	ErrInvalidPair = errors.New("pair must have both currency codes")
	// ErrInvalidRate ...
	ErrInvalidRate = errors.New("rate must be a positive decimal number")
	// ErrPairNotSupported is returned by rate sources that don't quote a pair.
	ErrPairNotSupported = errors.New("pair not supported by rate source")
	// ErrRateNotFound is returned when no source nor the cache know a pair.
	ErrRateNotFound = errors.New("exchange rate not found")
)
