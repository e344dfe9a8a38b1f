package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters/histograms for update handling.
type BotMetrics struct {
	updatesTotal   *prometheus.CounterVec
	repliesTotal   *prometheus.CounterVec
	handlerLatency *prometheus.HistogramVec
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carrental",
			Subsystem: "bot",
			Name:      "updates_total",
			Help:      "Total inbound Telegram updates",
		}, []string{"kind", "status"}),
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carrental",
			Subsystem: "bot",
			Name:      "replies_total",
			Help:      "Total outbound Telegram messages",
		}, []string{"status"}),
		handlerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carrental",
			Subsystem: "bot",
			Name:      "handler_latency_seconds",
			Help:      "Latency of update handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.updatesTotal, m.repliesTotal, m.handlerLatency)
	return m
}

func (m *BotMetrics) ObserveUpdate(kind, status string) {
	if m == nil {
		return
	}
	m.updatesTotal.WithLabelValues(kind, status).Inc()
}

func (m *BotMetrics) ObserveReply(status string) {
	if m == nil {
		return
	}
	m.repliesTotal.WithLabelValues(status).Inc()
}

func (m *BotMetrics) ObserveHandlerLatency(kind string, seconds float64) {
	if m == nil {
		return
	}
	m.handlerLatency.WithLabelValues(kind).Observe(seconds)
}
