package observability

import (
	"log/slog"

	"github.com/aretw0/decisiontree/pkg/domain"
)

// LogHooks returns hooks that log every event at Info.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e *domain.TransitionEvent) {
			logger.Info("node_enter",
				"tree", e.Tree,
				"from", e.From,
				"node", e.To,
				"answers", e.Answers,
				"forced", e.Forced,
			)
		},
		OnRejected: func(e *domain.RejectionEvent) {
			logger.Info("answer_rejected",
				"tree", e.Tree,
				"node", e.Node,
				"answers", e.Answers,
				"err", e.Err,
			)
		},
	}
}

// Chain fans each event out to every hook set, in order.
func Chain(hooks ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e *domain.TransitionEvent) {
			for _, h := range hooks {
				if h.OnTransition != nil {
					h.OnTransition(e)
				}
			}
		},
		OnRejected: func(e *domain.RejectionEvent) {
			for _, h := range hooks {
				if h.OnRejected != nil {
					h.OnRejected(e)
				}
			}
		},
	}
}
