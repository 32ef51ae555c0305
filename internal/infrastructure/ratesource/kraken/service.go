package krakenratesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/infrastructure/ratesource"
	"github.com/tdex-network/walletkit/pkg/mathutil"
)

const (
	// DefaultURL is the url to open a connection with kraken websocket.
	DefaultURL = "wss://ws.kraken.com"

	sourceName     = "kraken"
	reconnectDelay = 2 * time.Second
	feedBufferSize = 100
)

var (
	// ErrMissingTickers ...
	ErrMissingTickers = errors.New("at least one kraken ticker is required")

	// kraken uses its own codes for a few currencies
	krakenCodes = map[string]domain.CurrencyCode{
		"XBT": "BTC",
		"XDG": "DOGE",
	}
)

// Service keeps the latest quote of the subscribed kraken tickers. It is
// both a rate source answering from that cache and a feed of quotes.
type Service struct {
	url string

	lock         *sync.RWMutex
	conn         *websocket.Conn
	pairByTicker map[string]domain.Pair
	latestRates  map[domain.Pair]decimal.Decimal

	feedChan chan domain.ExchangeRate
	quitChan chan struct{}
	quitOnce *sync.Once
}

// NewService returns a service for the given tickers, ie. XBT/USD.
func NewService(url string, tickers []string) (*Service, error) {
	if len(tickers) <= 0 {
		return nil, ErrMissingTickers
	}
	if url == "" {
		url = DefaultURL
	}

	pairByTicker := make(map[string]domain.Pair, len(tickers))
	for _, ticker := range tickers {
		pair, err := PairFromTicker(ticker)
		if err != nil {
			return nil, err
		}
		pairByTicker[ticker] = pair
	}

	return &Service{
		url:          url,
		lock:         &sync.RWMutex{},
		pairByTicker: pairByTicker,
		latestRates:  make(map[domain.Pair]decimal.Decimal),
		feedChan:     make(chan domain.ExchangeRate, feedBufferSize),
		quitChan:     make(chan struct{}),
		quitOnce:     &sync.Once{},
	}, nil
}

// PairFromTicker turns a kraken ticker into a pair, mapping kraken codes and
// prefixing fiat quotes, ie. XBT/USD -> BTC/iso:USD.
func PairFromTicker(ticker string) (domain.Pair, error) {
	base, quote, ok := strings.Cut(ticker, "/")
	if !ok || base == "" || quote == "" {
		return domain.Pair{}, fmt.Errorf("invalid kraken ticker %q", ticker)
	}
	return domain.Pair{From: fromKrakenCode(base), To: fromKrakenCode(quote)}, nil
}

func fromKrakenCode(code string) domain.CurrencyCode {
	c := domain.CurrencyCode(strings.ToUpper(code))
	if mapped, ok := krakenCodes[c.String()]; ok {
		return mapped
	}
	if domain.SymbolFromCurrency(c) != "" {
		return domain.FixFiatCurrencyCode(c)
	}
	return c
}

func (s *Service) Name() string {
	return sourceName
}

// GetRate returns the latest quote received for the pair, or the inverse of
// the quote of the opposite pair.
func (s *Service) GetRate(
	_ context.Context, pair domain.Pair,
) (decimal.Decimal, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if rate, ok := s.latestRates[pair]; ok {
		return rate, nil
	}
	inverse := domain.Pair{From: pair.To, To: pair.From}
	if rate, ok := s.latestRates[inverse]; ok {
		return mathutil.DivDecimal(decimal.NewFromInt(1), rate, mathutil.DividePrecision)
	}
	return decimal.Zero, fmt.Errorf("%w: %s", ratesource.ErrPairNotSupported, pair)
}

// FeedChan returns the channel where every new quote is published. Quotes
// are dropped when nobody keeps up with the channel. It is closed once the
// service stops.
func (s *Service) FeedChan() <-chan domain.ExchangeRate {
	return s.feedChan
}

// Start connects to kraken and reads quotes until Stop is called,
// reconnecting whenever the connection drops unexpectedly.
func (s *Service) Start() error {
	defer close(s.feedChan)

	mustReconnect, err := s.start()
	for mustReconnect {
		log.WithError(err).Warn(
			"kraken connection dropped unexpectedly. Trying to reconnect...",
		)
		select {
		case <-s.quitChan:
			return nil
		case <-time.After(reconnectDelay):
		}
		mustReconnect, err = s.start()
	}
	return err
}

// Stop makes Start return.
func (s *Service) Stop() {
	s.quitOnce.Do(func() {
		close(s.quitChan)

		s.lock.RLock()
		conn := s.conn
		s.lock.RUnlock()
		if conn != nil {
			conn.Close()
		}
	})
}

func (s *Service) isQuitting() bool {
	select {
	case <-s.quitChan:
		return true
	default:
		return false
	}
}

func (s *Service) start() (mustReconnect bool, err error) {
	tickers := make([]string, 0, len(s.pairByTicker))
	for ticker := range s.pairByTicker {
		tickers = append(tickers, ticker)
	}

	conn, err := connectAndSubscribe(s.url, tickers)
	if err != nil {
		return false, err
	}
	s.lock.Lock()
	s.conn = conn
	s.lock.Unlock()
	defer conn.Close()

	// Stop might have been called while dialing
	if s.isQuitting() {
		return false, nil
	}

	log.Debugf("subscribed to kraken tickers %v", tickers)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if s.isQuitting() {
				return false, nil
			}
			return true, err
		}

		pair, rate, ok := s.parseFeed(message)
		if !ok {
			continue
		}
		s.writeRate(pair, rate)
	}
}

func (s *Service) writeRate(pair domain.Pair, rate decimal.Decimal) {
	s.lock.Lock()
	s.latestRates[pair] = rate
	s.lock.Unlock()

	quote, err := domain.NewExchangeRate(pair, rate, sourceName)
	if err != nil {
		return
	}
	select {
	case s.feedChan <- *quote:
	default:
		log.Debugf("kraken feed full, dropping quote for %s", pair)
	}
}

// parseFeed extracts the last trade closed price from a ticker message like
// [channelID, {"c": ["price", "volume"], ...}, "ticker", "XBT/USD"].
func (s *Service) parseFeed(msg []byte) (domain.Pair, decimal.Decimal, bool) {
	var i []interface{}
	if err := json.Unmarshal(msg, &i); err != nil {
		return domain.Pair{}, decimal.Zero, false
	}
	if len(i) != 4 {
		return domain.Pair{}, decimal.Zero, false
	}

	ticker, ok := i[3].(string)
	if !ok {
		return domain.Pair{}, decimal.Zero, false
	}
	pair, ok := s.pairByTicker[ticker]
	if !ok {
		return domain.Pair{}, decimal.Zero, false
	}

	ii, ok := i[1].(map[string]interface{})
	if !ok {
		return domain.Pair{}, decimal.Zero, false
	}
	iii, ok := ii["c"].([]interface{})
	if !ok || len(iii) < 1 {
		return domain.Pair{}, decimal.Zero, false
	}
	priceStr, ok := iii[0].(string)
	if !ok {
		return domain.Pair{}, decimal.Zero, false
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || !price.IsPositive() {
		return domain.Pair{}, decimal.Zero, false
	}
	return pair, price, true
}

func connectAndSubscribe(url string, tickers []string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	msg := map[string]interface{}{
		"event": "subscribe",
		"pair":  tickers,
		"subscription": map[string]string{
			"name": "ticker",
		},
	}

	buf, _ := json.Marshal(msg)
	if err := conn.WriteMessage(websocket.TextMessage, buf); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot subscribe to given tickers: %s", err)
	}

	return conn, nil
}
