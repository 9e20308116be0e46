package observability

import (
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts navigation events per tree.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decisiontree_transitions_total",
				Help: "Total number of cursor moves between nodes",
			},
			[]string{"tree", "from", "to"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decisiontree_rejected_answers_total",
				Help: "Total number of answers rejected by a node",
			},
			[]string{"tree", "node"},
		),
	}
	for _, c := range []prometheus.Collector{m.Transitions, m.Rejections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns tree hooks that record into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.Tree, e.From, e.To).Inc()
		},
		OnRejected: func(e *domain.RejectionEvent) {
			m.Rejections.WithLabelValues(e.Tree, e.Node).Inc()
		},
	}
}
