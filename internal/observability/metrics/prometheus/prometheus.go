package prometheus

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

var requestMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.With(
		prometheus.Labels{
			"status": strconv.Itoa(status),
			"op":     op,
		},
	).Observe(d.Seconds())
}

type Metric struct {
	srv *http.Server
}

func New(port int) *Metric {
	prometheus.MustRegister(requestMetrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metric{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (m *Metric) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := m.srv.Shutdown(context.Background()); err != nil {
			zap.L().Warn("Error shutting down metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
