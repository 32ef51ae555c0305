package krakenratesource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/internal/core/domain"
	"github.com/tdex-network/walletkit/internal/infrastructure/ratesource"
)

var (
	tickers = []string{"XBT/USD", "ETH/USDT"}
	btcUsd  = domain.Pair{From: "BTC", To: "iso:USD"}
	ethUsdt = domain.Pair{From: "ETH", To: "USDT"}
)

func TestPairFromTicker(t *testing.T) {
	tests := []struct {
		ticker   string
		expected domain.Pair
	}{
		{"XBT/USD", btcUsd},
		{"ETH/USDT", ethUsdt},
		{"xdg/eur", domain.Pair{From: "DOGE", To: "iso:EUR"}},
	}

	for _, tt := range tests {
		pair, err := PairFromTicker(tt.ticker)
		require.NoError(t, err)
		require.Equal(t, tt.expected, pair)
	}

	for _, ticker := range []string{"XBTUSD", "/USD", "XBT/"} {
		_, err := PairFromTicker(ticker)
		require.Error(t, err, ticker)
	}
}

func TestParseFeed(t *testing.T) {
	svc, err := NewService("", tickers)
	require.NoError(t, err)

	pair, rate, ok := svc.parseFeed(
		[]byte(`[340,{"a":["20001.0",1,"1.0"],"c":["20000.5","0.1"]},"ticker","XBT/USD"]`),
	)
	require.True(t, ok)
	require.Equal(t, btcUsd, pair)
	require.Equal(t, "20000.5", rate.String())

	invalid := []string{
		`{"event":"heartbeat"}`,
		`[340,{"c":["20000.5"]},"ticker","XBT/EUR"]`,
		`[340,{"c":[]},"ticker","XBT/USD"]`,
		`[340,{"c":["abc"]},"ticker","XBT/USD"]`,
		`[340,{"c":["0"]},"ticker","XBT/USD"]`,
		`[340,"c","ticker","XBT/USD"]`,
		`not json`,
	}
	for _, msg := range invalid {
		_, _, ok := svc.parseFeed([]byte(msg))
		require.False(t, ok, msg)
	}
}

func TestNewServiceFails(t *testing.T) {
	_, err := NewService("", nil)
	require.ErrorIs(t, err, ErrMissingTickers)

	_, err = NewService("", []string{"XBTUSD"})
	require.Error(t, err)
}

func TestService(t *testing.T) {
	server := newTestServer(t, []string{
		`{"event":"systemStatus","status":"online"}`,
		`[340,{"c":["20000.5","0.1"]},"ticker","XBT/USD"]`,
		`[341,{"c":["1.0001","3"]},"ticker","ETH/USDT"]`,
	})
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	svc, err := NewService(url, tickers)
	require.NoError(t, err)
	require.Equal(t, "kraken", svc.Name())

	errChan := make(chan error, 1)
	go func() {
		errChan <- svc.Start()
	}()

	quotes := make([]domain.ExchangeRate, 0, 2)
	for len(quotes) < 2 {
		select {
		case quote := <-svc.FeedChan():
			require.Equal(t, "kraken", quote.Source)
			quotes = append(quotes, quote)
		case <-time.After(5 * time.Second):
			t.Fatal("no quotes received")
		}
	}
	require.Equal(t, btcUsd, quotes[0].Pair())
	require.Equal(t, ethUsdt, quotes[1].Pair())

	ctx := context.Background()
	rate, err := svc.GetRate(ctx, btcUsd)
	require.NoError(t, err)
	require.Equal(t, "20000.5", rate.String())

	rate, err = svc.GetRate(ctx, domain.Pair{From: "iso:USD", To: "BTC"})
	require.NoError(t, err)
	require.True(t, rate.IsPositive())

	_, err = svc.GetRate(ctx, domain.Pair{From: "ETH", To: "iso:USD"})
	require.ErrorIs(t, err, ratesource.ErrPairNotSupported)

	svc.Stop()
	select {
	case err := <-errChan:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}

	_, ok := <-svc.FeedChan()
	require.False(t, ok)
}

// newTestServer accepts a ticker subscription and replies with the given
// messages, then keeps the connection open until the client closes it.
func newTestServer(t *testing.T, messages []string) *httptest.Server {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()

			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var sub struct {
				Event string   `json:"event"`
				Pair  []string `json:"pair"`
			}
			if err := json.Unmarshal(msg, &sub); err != nil || sub.Event != "subscribe" {
				return
			}

			for _, m := range messages {
				if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
					return
				}
			}

			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		},
	))
	t.Cleanup(server.Close)
	return server
}
