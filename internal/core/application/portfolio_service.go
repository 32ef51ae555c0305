package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

// PortfolioService values a set of wallets.
type PortfolioService interface {
	// TotalFiat returns the value of all wallets balances in the given fiat
	// currency. Currencies without a known rate count as zero.
	TotalFiat(
		ctx context.Context, wallets map[string]domain.Wallet,
		settings domain.Settings, fiat domain.CurrencyCode,
	) (decimal.Decimal, error)
}

type portfolioService struct {
	rates RateService
}

func NewPortfolioService(rates RateService) PortfolioService {
	return &portfolioService{rates}
}

func (s *portfolioService) TotalFiat(
	ctx context.Context, wallets map[string]domain.Wallet,
	settings domain.Settings, fiat domain.CurrencyCode,
) (decimal.Decimal, error) {
	fiat = domain.FixFiatCurrencyCode(fiat)

	totals := domain.ExchangeTotals(wallets, settings)
	pairs := make([]domain.Pair, 0, len(totals))
	for code := range totals {
		pairs = append(pairs, domain.Pair{From: code, To: fiat})
	}

	book, err := s.rates.RateBook(ctx, pairs)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.TotalFiatAmount(wallets, settings, fiat, book.Convert), nil
}
