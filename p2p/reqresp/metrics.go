package reqresp

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	acceptedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "inbound_accepted_total",
		Help:      "Inbound requests accepted past admission control, by protocol.",
	}, []string{"protocol"})
	droppedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "inbound_dropped_total",
		Help:      "Inbound substreams refused at admission control, by protocol.",
	}, []string{"protocol"})
	busyTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "inbound_busy_total",
		Help:      "Inbound requests that resolved Busy, by protocol.",
	}, []string{"protocol"})
	completedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "inbound_completed_total",
		Help:      "Inbound requests answered successfully, by protocol.",
	}, []string{"protocol"})
	failedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "inbound_failed_total",
		Help:      "Inbound requests that failed for network/codec reasons, by protocol.",
	}, []string{"protocol"})
	clientSucceededTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "outbound_succeeded_total",
		Help:      "Outbound requests that received a response, by protocol.",
	}, []string{"protocol"})
	clientFailedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "outbound_failed_total",
		Help:      "Outbound requests that did not receive a response, by protocol.",
	}, []string{"protocol"})
	clientTimeoutTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reqresp",
		Name:      "outbound_timeout_total",
		Help:      "Outbound requests that timed out, by protocol.",
	}, []string{"protocol"})
	serverLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reqresp",
		Name:      "inbound_latency_seconds",
		Help:      "Time from accepting an inbound request to writing its response.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"protocol"})
	clientLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reqresp",
		Name:      "outbound_latency_seconds",
		Help:      "Time from SendRequest to a received response.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"protocol"})
)

func init() {
	prometheus.MustRegister(
		acceptedTotal, droppedTotal, busyTotal, completedTotal, failedTotal,
		clientSucceededTotal, clientFailedTotal, clientTimeoutTotal,
		serverLatencySeconds, clientLatencySeconds,
	)
}

// tracker holds the pre-labeled metric handles for one registered
// protocol, generalizing the teacher's single-protocol tracker to the
// multiplexer's one-tracker-per-protocol model.
type tracker struct {
	accepted        prometheus.Counter
	dropped         prometheus.Counter
	busy            prometheus.Counter
	completed       prometheus.Counter
	failed          prometheus.Counter
	clientSucceeded prometheus.Counter
	clientFailed    prometheus.Counter
	clientTimeout   prometheus.Counter
	serverLatency   prometheus.Observer
	clientLatency   prometheus.Observer
}

func newTracker(protocol string) *tracker {
	return &tracker{
		accepted:        acceptedTotal.WithLabelValues(protocol),
		dropped:         droppedTotal.WithLabelValues(protocol),
		busy:            busyTotal.WithLabelValues(protocol),
		completed:       completedTotal.WithLabelValues(protocol),
		failed:          failedTotal.WithLabelValues(protocol),
		clientSucceeded: clientSucceededTotal.WithLabelValues(protocol),
		clientFailed:    clientFailedTotal.WithLabelValues(protocol),
		clientTimeout:   clientTimeoutTotal.WithLabelValues(protocol),
		serverLatency:   serverLatencySeconds.WithLabelValues(protocol),
		clientLatency:   clientLatencySeconds.WithLabelValues(protocol),
	}
}

// counterValue reads a counter's current value, for tests only — mirrors
// the teacher's NumAcceptedRequests helper.
func counterValue(c prometheus.Counter) int {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		panic("reqresp: failed to read metric: " + err.Error())
	}
	return int(m.Counter.GetValue())
}
