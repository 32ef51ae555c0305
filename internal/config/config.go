package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdex-network/walletkit/internal/core/domain"
)

const (
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DatadirKey is the local data directory where the rates cache is stored
	DatadirKey = "DATADIR"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// RateSourcesKey is the comma separated list of rate sources, in order of
	// preference
	RateSourcesKey = "RATE_SOURCES"
	// WaterfallTimeoutKey is how long a rate source is waited for before
	// racing the next one
	WaterfallTimeoutKey = "WATERFALL_TIMEOUT"
	// RateTimeoutKey caps every single rate source request
	RateTimeoutKey = "RATE_TIMEOUT"
	// CoinbaseURLKey is the base url of the Coinbase API
	CoinbaseURLKey = "COINBASE_URL"
	// RateLimitPerSecondKey is the max number of requests per second sent to
	// Coinbase, 0 disables the limit
	RateLimitPerSecondKey = "RATE_LIMIT_PER_SECOND"
	// KrakenURLKey is the url of the Kraken websocket API
	KrakenURLKey = "KRAKEN_URL"
	// KrakenPairsKey is the comma separated list of Kraken tickers to
	// subscribe to, ie. XBT/USD
	KrakenPairsKey = "KRAKEN_PAIRS"
	// StaticRatesKey is the comma separated list of fixed rates served by the
	// static source, ie. BTC/iso:USD=20000
	StaticRatesKey = "STATIC_RATES"
	// DefaultFiatKey is the fiat currency used when none is given
	DefaultFiatKey = "DEFAULT_FIAT"

	DbLocation = "db"

	// DBBadger and DBInMemory are the supported DB_TYPE values.
	DBBadger   = "badger"
	DBInMemory = "inmemory"

	// SourceCoinbase, SourceKraken and SourceStatic are the supported
	// RATE_SOURCES values.
	SourceCoinbase = "coinbase"
	SourceKraken   = "kraken"
	SourceStatic   = "static"
)

var (
	vip *viper.Viper

	defaultDatadir = btcutil.AppDataDir("walletkit", false)

	supportedDBTypes = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
	}
	supportedSources = map[string]struct{}{
		SourceCoinbase: {},
		SourceKraken:   {},
		SourceStatic:   {},
	}
)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("WALLETKIT")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(RateSourcesKey, SourceCoinbase)
	vip.SetDefault(WaterfallTimeoutKey, 5*time.Second)
	vip.SetDefault(RateTimeoutKey, 10*time.Second)
	vip.SetDefault(CoinbaseURLKey, "https://api.coinbase.com")
	vip.SetDefault(RateLimitPerSecondKey, 10)
	vip.SetDefault(KrakenURLKey, "wss://ws.kraken.com")
	vip.SetDefault(KrakenPairsKey, "XBT/USD,ETH/USD")
	vip.SetDefault(DefaultFiatKey, "USD")

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

// Set overrides the value of the given key, ie. with a command line flag.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// GetList returns the comma separated values of the given key, trimmed and
// without empty entries.
func GetList(key string) []string {
	list := make([]string, 0)
	for _, v := range vip.GetStringSlice(key) {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
	}
	return list
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory of the rates db, or an empty string when
// the db is kept in memory.
func GetDbDir() string {
	if GetString(DBTypeKey) == DBInMemory {
		return ""
	}
	return filepath.Join(GetDatadir(), DbLocation)
}

func GetLogLevel() log.Level {
	return log.Level(GetInt(LogLevelKey))
}

func GetDefaultFiat() domain.CurrencyCode {
	return domain.FixFiatCurrencyCode(domain.CurrencyCode(GetString(DefaultFiatKey)))
}

func validate() error {
	dbType := GetString(DBTypeKey)
	if _, ok := supportedDBTypes[dbType]; !ok {
		return fmt.Errorf("unsupported db type %q", dbType)
	}

	datadir := GetString(DatadirKey)
	if dbType != DBInMemory && len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [%d, %d]",
			LogLevelKey, log.PanicLevel, log.TraceLevel)
	}

	sources := GetList(RateSourcesKey)
	for _, source := range sources {
		if _, ok := supportedSources[source]; !ok {
			return fmt.Errorf("unsupported rate source %q", source)
		}
		if source == SourceKraken && len(GetList(KrakenPairsKey)) <= 0 {
			return fmt.Errorf("kraken source requires %s", KrakenPairsKey)
		}
	}

	for _, key := range []string{WaterfallTimeoutKey, RateTimeoutKey} {
		if GetDuration(key) <= 0 {
			return fmt.Errorf("%s must be a positive duration", key)
		}
	}

	if GetInt(RateLimitPerSecondKey) < 0 {
		return fmt.Errorf("%s must not be negative", RateLimitPerSecondKey)
	}

	fiat := domain.CurrencyCode(GetString(DefaultFiatKey))
	if domain.SymbolFromCurrency(fiat) == "" {
		return fmt.Errorf("unknown default fiat %q", fiat)
	}

	return nil
}

func initDatadir() error {
	dbDir := GetDbDir()
	if dbDir == "" {
		return nil
	}
	return makeDirectoryIfNotExists(dbDir)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
