package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/campus-assist/campus-assist/pkg/metrics"
)

type Metrics struct {
	apiResponseTime *prometheus.HistogramVec
	apiErrorCounter *prometheus.CounterVec
	nlpRequestTime  *prometheus.HistogramVec
	nlpErrorCounter *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime: metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter: metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		nlpRequestTime:  metrics.NewHistogramVec("nlp_request_time", nil),
		nlpErrorCounter: metrics.NewCounterVec("nlp_error", []string{"type"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) NLPRequestTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.nlpRequestTime.WithLabelValues())
}

func (m *Metrics) NLPErrorInc(types string) {
	m.nlpErrorCounter.WithLabelValues(types).Inc()
}
