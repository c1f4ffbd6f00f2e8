package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 指标注册在全局Registry，测试只断言增量

func TestCounter(t *testing.T) {
	before := counterValue(t, BooksCreatedTotal)

	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)

	assert.Equal(t, before+3, counterValue(t, BooksCreatedTotal))
}

func TestCounterVec(t *testing.T) {
	get := map[string]string{"method": "GET", "route": "/api/books", "status": "200"}
	post := map[string]string{"method": "POST", "route": "/api/book", "status": "200"}

	before := counterValue(t, HTTPRequestsTotal.With(get))

	IncCounterVec(HTTPRequestsTotal, get)
	IncCounterVec(HTTPRequestsTotal, post)
	IncCounterVec(HTTPRequestsTotal, get)

	assert.Equal(t, before+2, counterValue(t, HTTPRequestsTotal.With(get)))
}

func TestGauge(t *testing.T) {
	before := gaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, before+2, gaugeValue(t, HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, before, gaugeValue(t, HTTPRequestsInProgress))
}

func TestGaugeVec(t *testing.T) {
	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "events"}, 1)
	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "other"}, 0)

	assert.Equal(t, 1.0, gaugeValue(t, CircuitBreakerState.With(prometheus.Labels{"name": "events"})))
	assert.Equal(t, 0.0, gaugeValue(t, CircuitBreakerState.With(prometheus.Labels{"name": "other"})))
}

func TestHistogramVec(t *testing.T) {
	labels := map[string]string{"method": "GET", "route": "/api/reviews"}

	h := HTTPRequestDuration.With(labels).(prometheus.Histogram)
	before := histogramCount(t, h)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.2)

	assert.Equal(t, before+2, histogramCount(t, h))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}
