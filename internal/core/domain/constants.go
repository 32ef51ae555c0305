package domain

import "github.com/tdex-network/walletkit/pkg/mathutil"

const (
	// DividePrecision is the max number of decimals kept when converting a
	// native amount into another denomination.
	DividePrecision = mathutil.DividePrecision

	// FiatPrefix marks a currency code as an ISO fiat code, ie. iso:USD.
	FiatPrefix = "iso:"

	// MillisecondsPerDay ...
	MillisecondsPerDay = 86400000

	secondsPerDay = 86400
	daysPerMonth  = 30
	// dateOfBitcoinGenesisInSeconds is 2009-01-03T00:00:00.000Z
	dateOfBitcoinGenesisInSeconds = 1230940800
)
