package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an identifier or slug matches no node or tree.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAnswer is returned when an answer is not legal for the current node.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrBuild is returned when a tree definition is inconsistent.
	ErrBuild = errors.New("invalid tree definition")

	// ErrSessionNotFound is returned when a session ID cannot be found in the store.
	ErrSessionNotFound = errors.New("session not found")
)

// NotFoundError reports a failed lookup. Tree is empty when the missing
// reference is a tree itself.
type NotFoundError struct {
	Tree string
	Ref  string
}

func (e *NotFoundError) Error() string {
	if e.Tree == "" {
		return fmt.Sprintf("no such tree %q", e.Ref)
	}
	return fmt.Sprintf("tree %q: no such node %q", e.Tree, e.Ref)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidAnswerError reports an answer rejected by the current node.
// The cursor is unchanged when this error is returned.
type InvalidAnswerError struct {
	Tree    string
	Node    string
	Answers []string
	Reason  string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("tree %q: node %q: invalid answer %q: %s", e.Tree, e.Node, e.Answers, e.Reason)
}

func (e *InvalidAnswerError) Unwrap() error { return ErrInvalidAnswer }

// BuildError reports an inconsistency found while assembling a tree.
type BuildError struct {
	Tree   string
	Node   string
	Reason string
}

func (e *BuildError) Error() string {
	msg := e.Reason
	if e.Node != "" {
		msg = fmt.Sprintf("node %q: %s", e.Node, msg)
	}
	if e.Tree != "" {
		msg = fmt.Sprintf("tree %q: %s", e.Tree, msg)
	}
	return "build: " + msg
}

func (e *BuildError) Unwrap() error { return ErrBuild }
