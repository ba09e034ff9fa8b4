// Package observability records decode metrics with Prometheus collectors.
package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	decodeInputs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pbscope",
			Subsystem: "decode",
			Name:      "inputs_total",
			Help:      "Inputs handed to the decoder, by result.",
		},
		[]string{"result"},
	)
	decodeFields = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pbscope",
			Subsystem: "decode",
			Name:      "top_level_fields_total",
			Help:      "Distinct top-level field numbers produced by successful decodes.",
		},
	)
	decodeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pbscope",
			Subsystem: "decode",
			Name:      "input_bytes",
			Help:      "Size of decoded inputs after text decoding and decompression.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		},
	)
	decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pbscope",
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Decode duration in seconds, by result.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		registry.MustRegister(decodeInputs, decodeFields, decodeBytes, decodeDuration)
	})
}

// Registry returns the registry holding the decode metrics.
func Registry() *prometheus.Registry {
	RegisterMetrics()
	return registry
}

func RecordDecode(size, fields int, duration time.Duration, err error) {
	RegisterMetrics()
	result := "ok"
	if err != nil {
		result = "error"
	}
	decodeInputs.WithLabelValues(result).Inc()
	decodeDuration.WithLabelValues(result).Observe(duration.Seconds())
	decodeBytes.Observe(float64(size))
	if err == nil {
		decodeFields.Add(float64(fields))
	}
}

// WriteTextfile dumps the registry in the Prometheus text exposition format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry())
}
