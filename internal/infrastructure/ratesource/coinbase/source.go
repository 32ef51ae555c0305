package coinbaseratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/infrastructure/ratesource"
	"go.uber.org/ratelimit"
)

const (
	// DefaultURL is the base url of the Coinbase public API.
	DefaultURL = "https://api.coinbase.com"

	sourceName            = "coinbase"
	defaultRequestTimeout = 10 * time.Second
	spotPricePath         = "/v2/prices/%s-%s/spot"
)

type spotPriceResponse struct {
	Data struct {
		Base     string `json:"base"`
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	} `json:"data"`
}

// Source is a rate source backed by the Coinbase spot price API.
type Source struct {
	baseURL string
	client  *http.Client
	limiter ratelimit.Limiter
}

// NewSource returns a source fetching spot prices from the Coinbase API at
// baseURL, making at most requestsPerSecond requests per second. A
// non-positive requestsPerSecond disables the limit.
func NewSource(baseURL string, requestsPerSecond int) *Source {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}

	return &Source{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: defaultRequestTimeout},
		limiter: limiter,
	}
}

func (s *Source) Name() string {
	return sourceName
}

func (s *Source) GetRate(
	ctx context.Context, pair domain.Pair,
) (decimal.Decimal, error) {
	base := pair.From.TrimFiatPrefix().String()
	quote := pair.To.TrimFiatPrefix().String()
	url := s.baseURL + fmt.Sprintf(spotPricePath, base, quote)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	s.limiter.Take()
	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return decimal.Zero, fmt.Errorf("%w: %s", ratesource.ErrPairNotSupported, pair)
	default:
		return decimal.Zero, fmt.Errorf(
			"coinbase returned status %d: %s", resp.StatusCode, string(body),
		)
	}

	var price spotPriceResponse
	if err := json.Unmarshal(body, &price); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ratesource.ErrMalformedResponse, err)
	}
	rate, err := decimal.NewFromString(price.Data.Amount)
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf(
			"%w: invalid amount %q", ratesource.ErrMalformedResponse, price.Data.Amount,
		)
	}
	return rate, nil
}
