package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBotMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBotMetrics(reg)

	m.ObserveUpdate("command", "ok")
	m.ObserveUpdate("command", "ok")
	m.ObserveUpdate("callback", "error")
	m.ObserveReply("sent")
	m.ObserveHandlerLatency("command", 0.02)

	if got := testutil.ToFloat64(m.updatesTotal.WithLabelValues("command", "ok")); got != 2 {
		t.Errorf("expected 2 command updates, got %v", got)
	}
	if got := testutil.ToFloat64(m.updatesTotal.WithLabelValues("callback", "error")); got != 1 {
		t.Errorf("expected 1 callback error, got %v", got)
	}
	if got := testutil.ToFloat64(m.repliesTotal.WithLabelValues("sent")); got != 1 {
		t.Errorf("expected 1 reply, got %v", got)
	}
}

func TestBotMetricsNilSafe(t *testing.T) {
	var m *BotMetrics
	m.ObserveUpdate("command", "ok")
	m.ObserveReply("sent")
	m.ObserveHandlerLatency("command", 0.1)
}
