package domain

import "time"

// IsTooFarAhead returns whether date is more than a month after now. Both
// are unix timestamps in seconds.
func IsTooFarAhead(dateInSeconds, currentDateInSeconds float64) bool {
	monthInFuture := currentDateInSeconds + secondsPerDay*daysPerMonth
	return dateInSeconds > monthInFuture
}

// IsTooFarBehind returns whether date is before the bitcoin genesis block.
func IsTooFarBehind(dateInSeconds float64) bool {
	return dateInSeconds < dateOfBitcoinGenesisInSeconds
}

// AutoCorrectDate fixes transaction dates reported in the wrong unit: dates
// too far ahead are assumed to be milliseconds, dates too far behind are
// assumed to be kiloseconds. Anything else is returned unchanged.
func AutoCorrectDate(dateInSeconds, currentDateInSeconds float64) float64 {
	if IsTooFarAhead(dateInSeconds, currentDateInSeconds) {
		return dateInSeconds / 1000
	}
	if IsTooFarBehind(dateInSeconds) {
		return dateInSeconds * 1000
	}
	return dateInSeconds
}

// AutoCorrectDateNow is AutoCorrectDate against the current time.
func AutoCorrectDateNow(dateInSeconds float64) float64 {
	now := float64(time.Now().UnixMilli()) / 1000
	return AutoCorrectDate(dateInSeconds, now)
}

// DaysBetween returns the (fractional) number of days from a to b, both in
// milliseconds.
func DaysBetween(dateInMsA, dateInMsB float64) float64 {
	return (dateInMsB - dateInMsA) / MillisecondsPerDay
}

// YesterdayRoundDownHour returns the same hour of the day before now, with
// minutes and smaller units set to zero, in RFC3339 UTC format. The hour is
// rounded down in the location of now.
func YesterdayRoundDownHour(now time.Time) string {
	y, m, d := now.Date()
	rounded := time.Date(y, m, d-1, now.Hour(), 0, 0, 0, now.Location())
	return rounded.UTC().Format("2006-01-02T15:04:05.000Z")
}
