package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pair is an ordered couple of currencies, ie. BTC -> iso:USD.
type Pair struct {
	From CurrencyCode
	To   CurrencyCode
}

// String returns the RateBook key of the pair.
func (p Pair) String() string {
	return RateKey(p.From, p.To)
}

// Validate ...
func (p Pair) Validate() error {
	if p.From == "" || p.To == "" {
		return ErrInvalidPair
	}
	return nil
}

// ExchangeRate is a quote for a pair as returned by a rate source.
type ExchangeRate struct {
	ID        string
	From      CurrencyCode
	To        CurrencyCode
	Rate      decimal.Decimal
	Source    string
	UpdatedAt time.Time
}

// NewExchangeRate returns a new quote with a random ID, timestamped now.
func NewExchangeRate(
	pair Pair, rate decimal.Decimal, source string,
) (*ExchangeRate, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, ErrInvalidRate
	}
	return &ExchangeRate{
		ID:        uuid.New().String(),
		From:      pair.From,
		To:        pair.To,
		Rate:      rate,
		Source:    source,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// Pair ...
func (r ExchangeRate) Pair() Pair {
	return Pair{r.From, r.To}
}

// IsStale returns whether the quote is older than maxAge.
func (r ExchangeRate) IsStale(maxAge time.Duration) bool {
	return time.Since(r.UpdatedAt) > maxAge
}

// SortRates sorts rates by From, then by To.
func SortRates(rates []ExchangeRate) {
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].From != rates[j].From {
			return rates[i].From < rates[j].From
		}
		return rates[i].To < rates[j].To
	})
}
