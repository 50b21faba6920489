package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ResultOK = "ok"

// Metrics holds the registry counters. A nil *Metrics records nothing.
type Metrics struct {
	enrollments  *prometheus.CounterVec
	withdrawals  *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		enrollments: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "activities",
				Name:      "enrollments_total",
				Help:      "Total number of signup attempts by activity and result",
			},
			[]string{"activity", "result"},
		),
		withdrawals: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "activities",
				Name:      "withdrawals_total",
				Help:      "Total number of unregister attempts by activity and result",
			},
			[]string{"activity", "result"},
		),
		participants: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "activities",
				Name:      "participants",
				Help:      "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}

func (m *Metrics) RecordEnrollment(activity, result string) {
	if m == nil {
		return
	}
	m.enrollments.WithLabelValues(activity, result).Inc()
}

func (m *Metrics) RecordWithdrawal(activity, result string) {
	if m == nil {
		return
	}
	m.withdrawals.WithLabelValues(activity, result).Inc()
}

func (m *Metrics) SetParticipants(activity string, n int) {
	if m == nil {
		return
	}
	m.participants.WithLabelValues(activity).Set(float64(n))
}
