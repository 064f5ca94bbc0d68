package netstats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	txcommon "github.com/txlens/txlens/common"
)

// Metrics exposes the latest Stats as prometheus gauges on a private
// registry.
type Metrics struct {
	registry    *prometheus.Registry
	blockNumber prometheus.Gauge
	gasPrice    prometheus.Gauge
	tps         prometheus.Gauge
	blockAge    prometheus.Gauge
}

func NewMetrics(network string) *Metrics {
	labels := prometheus.Labels{"network": network}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		blockNumber: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "txlens_block_number",
			Help:        "Latest block number seen.",
			ConstLabels: labels,
		}),
		gasPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "txlens_gas_price_gwei",
			Help:        "Suggested gas price in gwei.",
			ConstLabels: labels,
		}),
		tps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "txlens_tps",
			Help:        "Transactions per second of the latest block.",
			ConstLabels: labels,
		}),
		blockAge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "txlens_block_age_seconds",
			Help:        "Seconds since the latest block was produced.",
			ConstLabels: labels,
		}),
	}
	m.registry.MustRegister(m.blockNumber, m.gasPrice, m.tps, m.blockAge)
	return m
}

func (m *Metrics) Observe(s *Stats) {
	if s == nil {
		return
	}
	m.blockNumber.Set(float64(s.BlockNumber))
	m.gasPrice.Set(txcommon.WeiToGwei(s.GasPrice))
	m.tps.Set(s.TPS)
	m.blockAge.Set(s.BlockAge.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on port until ctx is done.
func (m *Metrics) Serve(ctx context.Context, port int, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", port),
		Handler:        mux,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	logger.Info("serving metrics", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
