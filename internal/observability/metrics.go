package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Parse results recorded by RecordParse.
const (
	ResultOK                = "ok"
	ResultProtocolError     = "protocol_error"
	ResultInvalidSocketType = "invalid_socket_type"
	ResultPropertyRejected  = "property_rejected"
	// ResultError covers validator failures that are not property rejections.
	ResultError = "error"
)

var (
	registerOnce sync.Once

	metadataParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zmtpmeta",
			Subsystem: "handshake",
			Name:      "metadata_parses_total",
			Help:      "Handshake metadata parses by outcome.",
		},
		[]string{"socket_type", "result"},
	)
	metadataProperties = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zmtpmeta",
			Subsystem: "handshake",
			Name:      "properties_total",
			Help:      "Accepted handshake properties by destination dictionary.",
		},
		[]string{"socket_type", "dictionary"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(metadataParses, metadataProperties)
	})
}

func RecordParse(socketType, result string) {
	RegisterMetrics()
	metadataParses.WithLabelValues(socketType, result).Inc()
}

// ParseCount reports the current parse counter for socketType and result.
func ParseCount(socketType, result string) float64 {
	RegisterMetrics()
	var m dto.Metric
	if err := metadataParses.WithLabelValues(socketType, result).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func RecordProperty(socketType string, zap bool) {
	RegisterMetrics()
	dictionary := "zmtp"
	if zap {
		dictionary = "zap"
	}
	metadataProperties.WithLabelValues(socketType, dictionary).Inc()
}
