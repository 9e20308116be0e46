package domain

// TransitionEvent describes a cursor move.
// Forced is true for direct navigation (SetState, Reset) that bypasses answers.
type TransitionEvent struct {
	Tree    string
	From    string
	To      string
	Answers []string
	Forced  bool
}

// RejectionEvent describes an answer that was refused.
type RejectionEvent struct {
	Tree    string
	Node    string
	Answers []string
	Err     error
}

// Hooks defines callbacks for navigation observability.
// Nil callbacks are skipped. Hooks run synchronously on the navigating goroutine.
type Hooks struct {
	OnTransition func(*TransitionEvent)
	OnRejected   func(*RejectionEvent)
}
