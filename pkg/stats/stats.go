package stats

import (
	"bufio"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	// OutcomeSuccess labels a rate request answered by a source.
	OutcomeSuccess = "success"
	// OutcomeFailure labels a rate request failed by a source.
	OutcomeFailure = "failure"
	// OutcomeCached labels a rate served from the store after all sources
	// failed.
	OutcomeCached = "cached"
)

// RateMetrics collects the rate source statistics.
type RateMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRateMetrics creates the rate metrics and registers them on reg. A nil
// reg defaults to prometheus.DefaultRegisterer.
func NewRateMetrics(reg prometheus.Registerer) (*RateMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &RateMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "walletkit",
			Name:      "rate_requests_total",
			Help:      "Number of exchange rate requests per source and outcome.",
		}, []string{"source", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "walletkit",
			Name:      "rate_request_duration_seconds",
			Help:      "Time taken by rate sources to answer.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records the outcome of a request to the given source.
func (m *RateMetrics) Observe(source string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.requests.WithLabelValues(source, outcome).Inc()
	m.latency.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// ObserveCached records a rate served from the store.
func (m *RateMetrics) ObserveCached(source string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(source, OutcomeCached).Inc()
}

// Requests returns the counter of the given source and outcome.
func (m *RateMetrics) Requests(source, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(source, outcome)
}

// Dump writes all the metrics gathered by g to w.
func Dump(g prometheus.Gatherer, w io.Writer) error {
	metricFamilies, err := g.Gather()
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(w)
	for _, v := range metricFamilies {
		if _, err := writer.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		log.WithError(err).Warn("failed to flush metrics")
		return err
	}
	return nil
}
