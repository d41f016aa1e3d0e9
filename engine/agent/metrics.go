package agent

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cascade outcomes. A nil *Metrics records nothing.
type Metrics struct {
	decisions *prometheus.CounterVec
	aborted   prometheus.Counter
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hanabai",
			Subsystem: "agent",
			Name:      "decisions_total",
			Help:      "Decisions made, by the rule that fired.",
		}, []string{"rule"}),
		aborted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hanabai",
			Subsystem: "agent",
			Name:      "aborted_decisions_total",
			Help:      "Decisions aborted because no legal action could be produced.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.decisions, m.aborted)
	}
	return m
}

func (m *Metrics) observeDecision(rule RuleName) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(string(rule)).Inc()
}

func (m *Metrics) observeAbort() {
	if m == nil {
		return
	}
	m.aborted.Inc()
}
