package staticratesource

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/infrastructure/ratesource"
	"github.com/tdex-network/walletkit/pkg/mathutil"
)

const sourceName = "static"

// Source quotes a fixed table of rates.
type Source struct {
	rates map[domain.Pair]decimal.Decimal
}

// NewSource returns a source quoting the given fixed rates. Inverse pairs
// are derived from them.
func NewSource(rates map[domain.Pair]decimal.Decimal) *Source {
	r := make(map[domain.Pair]decimal.Decimal, len(rates))
	for pair, rate := range rates {
		r[pair] = rate
	}
	return &Source{r}
}

// NewSourceFromStrings parses rates in the form "BTC/iso:USD=20000".
func NewSourceFromStrings(rates []string) (*Source, error) {
	parsed := make(map[domain.Pair]decimal.Decimal, len(rates))
	for _, r := range rates {
		pair, rate, err := parseRate(r)
		if err != nil {
			return nil, err
		}
		parsed[pair] = rate
	}
	return &Source{parsed}, nil
}

func (s *Source) Name() string {
	return sourceName
}

func (s *Source) GetRate(
	_ context.Context, pair domain.Pair,
) (decimal.Decimal, error) {
	if rate, ok := s.rates[pair]; ok {
		return rate, nil
	}
	inverse := domain.Pair{From: pair.To, To: pair.From}
	if rate, ok := s.rates[inverse]; ok && rate.IsPositive() {
		return mathutil.DivDecimal(decimal.NewFromInt(1), rate, mathutil.DividePrecision)
	}
	return decimal.Zero, fmt.Errorf("%w: %s", ratesource.ErrPairNotSupported, pair)
}

func parseRate(s string) (domain.Pair, decimal.Decimal, error) {
	pairStr, rateStr, ok := strings.Cut(s, "=")
	if !ok {
		return domain.Pair{}, decimal.Zero, fmt.Errorf("invalid rate %q, must be FROM/TO=RATE", s)
	}
	from, to, ok := strings.Cut(strings.TrimSpace(pairStr), "/")
	if !ok {
		return domain.Pair{}, decimal.Zero, fmt.Errorf("invalid pair in rate %q", s)
	}

	pair := domain.Pair{From: domain.CurrencyCode(from), To: domain.CurrencyCode(to)}
	if err := pair.Validate(); err != nil {
		return domain.Pair{}, decimal.Zero, err
	}
	rate, err := mathutil.Parse(rateStr)
	if err != nil {
		return domain.Pair{}, decimal.Zero, err
	}
	if !rate.IsPositive() {
		return domain.Pair{}, decimal.Zero, domain.ErrInvalidRate
	}
	return pair, rate, nil
}
